// Package storage defines the durable client-side storage interfaces.
// This is the console's counterpart of the browser's local storage: the
// bearer token and the user record live here across restarts.
package storage

import "context"

// SessionData is the persisted session mirror. Token and Username are
// written together and deleted together, never independently.
type SessionData struct {
	Username  string `json:"username"`
	Token     string `json:"token"`
	CreatedAt int64  `json:"created_at"`
}

// SessionStorage stores the current session.
type SessionStorage interface {
	// SaveSession stores the session, replacing any previous one.
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves the stored session.
	// Returns ErrSessionNotFound if no session exists.
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session (logout or failed
	// verification). Deleting an absent session is not an error.
	DeleteSession(ctx context.Context) error
}
