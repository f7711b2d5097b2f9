// Package session owns the operator session: the in-memory (user, token)
// pair, its durable mirror, and the startup bootstrap that decides
// whether the console starts authenticated. The pair is set and cleared
// as a unit, never one half at a time.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	clientapi "github.com/iudanet/mailerctl/internal/client/api"
	"github.com/iudanet/mailerctl/internal/client/storage"
	"github.com/iudanet/mailerctl/internal/validation"
	pkgapi "github.com/iudanet/mailerctl/pkg/api"
)

// State is the session lifecycle tri-state.
type State int

const (
	// StateEmpty means no session exists; only login is possible.
	StateEmpty State = iota
	// StateAuthenticating means startup verification is outstanding.
	StateAuthenticating
	// StateAuthenticated means a verified (user, token) pair is loaded.
	StateAuthenticated
)

// Session is the in-memory session value.
type Session struct {
	Username string
	Token    string
}

// Service is the session store. All mutation goes through Login, Logout
// and Bootstrap; everything else reads.
type Service struct {
	apiClient    *clientapi.Client
	store        storage.SessionStorage
	mu           sync.Mutex
	current      Session
	state        State
	bootstrapped bool
}

// NewService creates the session service over the given API client and
// durable store.
func NewService(apiClient *clientapi.Client, store storage.SessionStorage) *Service {
	return &Service{
		apiClient: apiClient,
		store:     store,
	}
}

// State returns the current lifecycle state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsAuthenticated reports whether a token is present in memory. Every
// protected command derives its access decision from this alone.
func (s *Service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Token != ""
}

// Current returns the in-memory session value.
func (s *Service) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Token implements the API client's TokenSource: memory first, then the
// durable mirror, so verification at startup can authenticate before the
// in-memory session is restored.
func (s *Service) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	token := s.current.Token
	s.mu.Unlock()
	if token != "" {
		return token, nil
	}

	persisted, err := s.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return "", nil
		}
		return "", err
	}
	return persisted.Token, nil
}

// Bootstrap restores the session at process start. Without a persisted
// pair it does nothing and makes no network call. With one it makes
// exactly one verification call: success restores the session, any
// failure (application-level or transport) clears the persisted pair and
// leaves the session empty. Verification failure is swallowed — the
// operator just lands on login.
func (s *Service) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	if s.bootstrapped {
		s.mu.Unlock()
		return nil
	}
	s.bootstrapped = true
	s.mu.Unlock()

	persisted, err := s.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read persisted session: %w", err)
	}

	s.setState(StateAuthenticating)

	resp, err := s.apiClient.VerifySession(ctx)
	if err != nil || !resp.Success {
		if err != nil {
			slog.Debug("session verification failed", "error", err)
		}
		if delErr := s.store.DeleteSession(ctx); delErr != nil {
			slog.Error("failed to clear stale session", "error", delErr)
		}
		s.clear()
		return nil
	}

	s.mu.Lock()
	s.current = Session{Username: persisted.Username, Token: persisted.Token}
	s.state = StateAuthenticated
	s.mu.Unlock()

	return nil
}

// Login authenticates the operator and persists the session. The
// returned error carries the backend message when the backend supplied
// one.
func (s *Service) Login(ctx context.Context, username, password string) error {
	if err := validation.ValidateCredentials(username, password); err != nil {
		return err
	}

	s.setState(StateAuthenticating)

	resp, err := s.apiClient.Authenticate(ctx, pkgapi.AuthRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		s.clear()
		return err
	}
	if !resp.Success {
		s.clear()
		if resp.Message != "" {
			return fmt.Errorf("authentication failed: %s", resp.Message)
		}
		return fmt.Errorf("authentication failed")
	}

	if err := s.store.SaveSession(ctx, &storage.SessionData{
		Username:  resp.User.Username,
		Token:     resp.Token,
		CreatedAt: time.Now().Unix(),
	}); err != nil {
		s.clear()
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.mu.Lock()
	s.current = Session{Username: resp.User.Username, Token: resp.Token}
	s.state = StateAuthenticated
	s.mu.Unlock()

	return nil
}

// Logout clears the in-memory session and the durable mirror together.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete persisted session: %w", err)
	}
	s.clear()
	return nil
}

func (s *Service) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *Service) clear() {
	s.mu.Lock()
	s.current = Session{}
	s.state = StateEmpty
	s.mu.Unlock()
}
