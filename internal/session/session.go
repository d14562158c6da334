// Package session holds the signed-in state of the learner: the bearer token
// and the cached user profile. A Session is created once per process and
// passed to every component that needs it.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/at-ishikawa/aiboost/internal/user"
)

// State is everything persisted on the client side.
type State struct {
	Token string    `json:"token" yaml:"token"`
	User  user.User `json:"user" yaml:"user"`
}

//go:generate mockgen -source=session.go -destination=../mocks/session/mock_store.go -package=mock_session

// Store persists State between CLI invocations.
// Load returns a nil State when nothing was saved.
type Store interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, state State) error
	Clear(ctx context.Context) error
}

// Session is safe for concurrent use; parallel requests share it and any of
// them may log out on a 401.
type Session struct {
	mu    sync.RWMutex
	store Store
	state *State
}

// Open restores the saved state from store.
func Open(ctx context.Context, store Store) (*Session, error) {
	state, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.Load() > %w", err)
	}
	return &Session{
		store: store,
		state: state,
	}, nil
}

func (s *Session) Login(ctx context.Context, token string, u user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.login(ctx, token, u)
}

func (s *Session) login(ctx context.Context, token string, u user.User) error {
	state := State{Token: token, User: u}
	if err := s.store.Save(ctx, state); err != nil {
		return fmt.Errorf("store.Save() > %w", err)
	}
	s.state = &state
	return nil
}

// Logout drops the in-memory state first so a failing store cannot keep the
// process authenticated. Only the first of concurrent calls clears the store.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil
	}
	s.state = nil
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("store.Clear() > %w", err)
	}
	return nil
}

// UpdateUser replaces the cached profile, e.g. after enrolling in a course.
func (s *Session) UpdateUser(ctx context.Context, u user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil
	}
	return s.login(ctx, s.state.Token, u)
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated()
}

func (s *Session) authenticated() bool {
	return s.state != nil && s.state.Token != ""
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return ""
	}
	return s.state.Token
}

// User returns the cached profile or nil when signed out.
func (s *Session) User() *user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return nil
	}
	u := s.state.User
	return &u
}

// Expired reports whether the token's exp claim is before now.
// Tokens without a readable expiry are left for the backend to judge.
func (s *Session) Expired(now time.Time) bool {
	s.mu.RLock()
	if !s.authenticated() {
		s.mu.RUnlock()
		return false
	}
	token := s.state.Token
	s.mu.RUnlock()

	claims, err := ParseClaims(token)
	if err != nil {
		slog.Default().Debug("token claims are not readable", "error", err)
		return false
	}
	return claims.ExpiresAt != nil && claims.ExpiresAt.Before(now)
}
