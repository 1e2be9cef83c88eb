// Package session holds the bearer token the API client attaches to every
// request. It is passed explicitly to whoever needs identity.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/coach-admin/internal/config"
)

// DefaultKey is the slot the token is stored under.
const DefaultKey = "auth_token"

// Session reads and writes the auth token in a Store.
type Session struct {
	mu    sync.Mutex
	store Store
	key   string
	now   func() time.Time
	log   *slog.Logger
}

// New creates a Session over store.
func New(store Store, key string, logger *slog.Logger) *Session {
	if key == "" {
		key = DefaultKey
	}
	return &Session{
		store: store,
		key:   key,
		now:   time.Now,
		log:   logger.With("adapter", "session"),
	}
}

// FromConfig builds the Session selected by the session config section.
func FromConfig(cfg config.SessionConfig, logger *slog.Logger) (*Session, error) {
	switch cfg.Store {
	case config.SessionStoreMemory:
		return New(NewMemoryStore(), cfg.Key, logger), nil
	case config.SessionStoreFile, "":
		if cfg.Path == "" {
			return nil, fmt.Errorf("session: file store requires a path")
		}
		return New(NewFileStore(cfg.Path), cfg.Key, logger), nil
	}
	return nil, fmt.Errorf("session: unknown store %q", cfg.Store)
}

// Token returns the stored token, or "" when there is none or it has
// expired. An expired token is removed from the store.
//
// Only JWTs can be checked locally; any other token is trusted until the
// backend rejects it.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.store.Get(s.key)
	if err != nil {
		s.log.Warn("read session", slog.String("error", err.Error()))
		return ""
	}
	if token == "" {
		return ""
	}

	if exp, ok := expiry(token); ok && !exp.After(s.now()) {
		s.log.Info("session expired", slog.Time("expired_at", exp))
		if err := s.store.Delete(s.key); err != nil {
			s.log.Warn("drop expired session", slog.String("error", err.Error()))
		}
		return ""
	}
	return token
}

// Set stores a new token.
func (s *Session) Set(token string) error {
	if token == "" {
		return errors.New("session: empty token")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Set(s.key, token); err != nil {
		return fmt.Errorf("session: save: %w", err)
	}
	return nil
}

// Clear forgets the token.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(s.key); err != nil {
		return fmt.Errorf("session: clear: %w", err)
	}
	return nil
}

// Authenticated reports whether a usable token is present.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// ExpiresAt returns the exp claim of a JWT token.
func (s *Session) ExpiresAt() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}
	return expiry(token)
}

// expiry reads the exp claim without verifying the signature.
func expiry(token string) (time.Time, bool) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
