package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/coach-admin/internal/domain"
)

// Me returns the signed-in user. Without a token, or when the backend
// rejects it, the session is dropped and domain.ErrUnauthorized returned.
func (s *Service) Me(ctx context.Context) (domain.User, error) {
	if s.session.Token() == "" {
		return domain.User{}, domain.ErrUnauthorized
	}

	u, err := s.api.Me(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			if cerr := s.session.Clear(); cerr != nil {
				s.log.WarnContext(ctx, "drop rejected session", slog.String("error", cerr.Error()))
			}
			return domain.User{}, fmt.Errorf("auth.Me: %w", domain.ErrUnauthorized)
		}
		return domain.User{}, fmt.Errorf("auth.Me: %w", err)
	}
	return u, nil
}
