package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/coach-admin/internal/domain"
	"github.com/heartmarshall/coach-admin/internal/schema"
)

// authAPI defines the backend auth endpoints needed by the service.
type authAPI interface {
	Login(ctx context.Context, payload any) (domain.AuthResult, error)
	Register(ctx context.Context, payload any) (domain.AuthResult, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (domain.User, error)
}

// sessionStore holds the bearer token between runs.
type sessionStore interface {
	Token() string
	Set(token string) error
	Clear() error
}

var errNoToken = errors.New("backend returned no token")

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	api      authAPI
	session  sessionStore
	login    *schema.Schema
	register *schema.Schema
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, api authAPI, session sessionStore, schemas *schema.Registry) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		api:      api,
		session:  session,
		login:    schemas.Must(schema.Login),
		register: schemas.Must(schema.Register),
	}
}

// Authenticated reports whether a usable token is stored.
func (s *Service) Authenticated() bool {
	return s.session.Token() != ""
}

// store saves the token of a successful login or registration.
func (s *Service) store(res domain.AuthResult) error {
	if res.Token == "" {
		return errNoToken
	}
	return s.session.Set(res.Token)
}
