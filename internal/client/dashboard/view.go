package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	clientapi "github.com/iudanet/mailerctl/internal/client/api"
	"github.com/iudanet/mailerctl/internal/client/storage"
	pkgapi "github.com/iudanet/mailerctl/pkg/api"
)

// View holds the dashboard state: the last good snapshot plus the
// machinery to replace it. A failed cycle keeps the previous snapshot
// visible instead of resetting to empty.
type View struct {
	apiClient *clientapi.Client
	cache     storage.CacheStorage
	mu        sync.Mutex
	last      *Snapshot
	ctlBusy   bool
}

// NewView creates the dashboard view. cache may be nil; it only feeds
// the stale-data display and the offline status command.
func NewView(apiClient *clientapi.Client, cache storage.CacheStorage) *View {
	return &View{
		apiClient: apiClient,
		cache:     cache,
	}
}

// Last returns the most recent successful snapshot, or nil before the
// first successful cycle.
func (v *View) Last() *Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.last
}

// LoadCached seeds the view with the snapshot persisted by a previous
// run. A cache miss is not an error.
func (v *View) LoadCached(ctx context.Context) error {
	if v.cache == nil {
		return nil
	}

	blob, err := v.cache.GetCache(ctx, storage.CacheKeyDashboard)
	if err != nil {
		if err == storage.ErrCacheMiss {
			return nil
		}
		return fmt.Errorf("failed to read cached snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return fmt.Errorf("failed to decode cached snapshot: %w", err)
	}

	// A forced PIN refresh may have run after the snapshot was
	// mirrored; its separately cached copy is the fresher one.
	if pinBlob, err := v.cache.GetCache(ctx, storage.CacheKeyPinStatus); err == nil {
		var pinStatus pkgapi.PinStatusResponse
		if err := json.Unmarshal(pinBlob, &pinStatus); err == nil {
			snap.PinStatus = pinStatus
		}
	}

	v.mu.Lock()
	if v.last == nil {
		v.last = &snap
	}
	v.mu.Unlock()

	return nil
}

// FetchBatch issues the four dashboard reads concurrently and waits for
// all of them. The batch is all-or-nothing: if any read fails, partial
// results are discarded and the previous snapshot stays in place.
func (v *View) FetchBatch(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := v.apiClient.GetDashboard(gctx)
		if err != nil {
			return err
		}
		snap.Dashboard = *resp
		return nil
	})
	g.Go(func() error {
		resp, err := v.apiClient.CertificateStatus(gctx)
		if err != nil {
			return err
		}
		snap.CertStatus = *resp
		return nil
	})
	g.Go(func() error {
		resp, err := v.apiClient.Certificates(gctx)
		if err != nil {
			return err
		}
		snap.Certificates = *resp
		return nil
	})
	g.Go(func() error {
		resp, err := v.apiClient.PinStatus(gctx, false)
		if err != nil {
			return err
		}
		snap.PinStatus = *resp
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard batch failed: %w", err)
	}

	snap.FetchedAt = time.Now()

	v.mu.Lock()
	v.last = snap
	v.mu.Unlock()

	v.persistSnapshot(ctx, snap)

	return snap, nil
}

// persistSnapshot mirrors the snapshot into the cache, best effort. The
// PIN status is mirrored under its own key too, so both keys stay in
// step with whichever read was the latest.
func (v *View) persistSnapshot(ctx context.Context, snap *Snapshot) {
	if v.cache == nil {
		return
	}
	blob, err := json.Marshal(snap)
	if err != nil {
		slog.Error("failed to encode snapshot for cache", "error", err)
		return
	}
	if err := v.cache.SaveCache(ctx, storage.CacheKeyDashboard, blob); err != nil {
		slog.Error("failed to cache snapshot", "error", err)
	}
	v.persistPinStatus(ctx, &snap.PinStatus)
}

// persistPinStatus mirrors the PIN status into the cache, best effort.
func (v *View) persistPinStatus(ctx context.Context, status *pkgapi.PinStatusResponse) {
	if v.cache == nil {
		return
	}
	blob, err := json.Marshal(status)
	if err != nil {
		slog.Error("failed to encode pin status for cache", "error", err)
		return
	}
	if err := v.cache.SaveCache(ctx, storage.CacheKeyPinStatus, blob); err != nil {
		slog.Error("failed to cache pin status", "error", err)
	}
}
