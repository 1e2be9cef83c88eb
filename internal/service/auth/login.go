package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/coach-admin/internal/domain"
	"github.com/heartmarshall/coach-admin/internal/schema"
	"github.com/heartmarshall/coach-admin/internal/validator"
)

// Login exchanges credentials for a token and stores it in the session.
// Invalid input is rejected with a *domain.ValidationError before any
// request is made.
func (s *Service) Login(ctx context.Context, input LoginInput) (domain.AuthResult, error) {
	draft := input.values()
	if err := validator.Validate(s.login, draft).Err(); err != nil {
		return domain.AuthResult{}, err
	}

	res, err := s.api.Login(ctx, schema.Coerce(s.login, draft))
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("auth.Login: %w", err)
	}
	if err := s.store(res); err != nil {
		return domain.AuthResult{}, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.Int64("user_id", res.User.ID))
	return res, nil
}
