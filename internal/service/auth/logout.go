package auth

import (
	"context"
	"fmt"
	"log/slog"
)

// Logout revokes the token on the backend and always forgets it locally,
// even when the backend call fails.
func (s *Service) Logout(ctx context.Context) error {
	if s.session.Token() != "" {
		if err := s.api.Logout(ctx); err != nil {
			s.log.WarnContext(ctx, "backend logout failed", slog.String("error", err.Error()))
		}
	}

	if err := s.session.Clear(); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}
	s.log.InfoContext(ctx, "user logged out")
	return nil
}
