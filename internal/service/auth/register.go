package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/coach-admin/internal/domain"
	"github.com/heartmarshall/coach-admin/internal/schema"
	"github.com/heartmarshall/coach-admin/internal/validator"
)

// Register creates an account and signs it in.
func (s *Service) Register(ctx context.Context, input RegisterInput) (domain.AuthResult, error) {
	draft := input.values()
	if err := validator.Validate(s.register, draft).Err(); err != nil {
		return domain.AuthResult{}, err
	}

	res, err := s.api.Register(ctx, schema.Coerce(s.register, draft))
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("auth.Register: %w", err)
	}
	if err := s.store(res); err != nil {
		return domain.AuthResult{}, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.Int64("user_id", res.User.ID))
	return res, nil
}
