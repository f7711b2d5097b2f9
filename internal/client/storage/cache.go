package storage

import "context"

// Cache keys used by the dashboard flow.
const (
	CacheKeyDashboard = "dashboard"
	CacheKeyPinStatus = "pin-status"
)

// CacheStorage keeps the last successfully fetched snapshots so a failed
// poll cycle can keep showing stale data instead of resetting to empty.
// Values are opaque JSON blobs owned by the caller.
type CacheStorage interface {
	// SaveCache stores a snapshot blob under key, replacing any
	// previous value.
	SaveCache(ctx context.Context, key string, value []byte) error

	// GetCache retrieves the blob stored under key.
	// Returns ErrCacheMiss if nothing is stored yet.
	GetCache(ctx context.Context, key string) ([]byte, error)
}
