package storage

import "errors"

var (
	// ErrSessionNotFound is returned when no session is persisted.
	ErrSessionNotFound = errors.New("session not found")

	// ErrCacheMiss is returned when no snapshot is cached under a key.
	ErrCacheMiss = errors.New("cache miss")
)
