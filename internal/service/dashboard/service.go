// Package dashboard computes the summary counts shown on the landing page.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/coach-admin/internal/domain"
)

// counter is the list call of one collection. Only the total is used.
type counter interface {
	Count(ctx context.Context) (int, error)
}

// CounterFunc adapts a function to counter.
type CounterFunc func(ctx context.Context) (int, error)

func (f CounterFunc) Count(ctx context.Context) (int, error) { return f(ctx) }

// Lister is a collection whose first page carries the total count.
type Lister[T any] interface {
	List(ctx context.Context, filter domain.EntityFilter) (domain.PagedResult[T], error)
}

// Total counts a collection with a single page-1 request.
func Total[T any](l Lister[T]) CounterFunc {
	return func(ctx context.Context) (int, error) {
		page, err := l.List(ctx, domain.NewFilter(nil))
		if err != nil {
			return 0, err
		}
		return page.Normalize().Total, nil
	}
}

// Stats holds the dashboard numbers.
type Stats struct {
	Users     int
	Gyms      int
	DietPlans int
}

// Service loads dashboard stats.
type Service struct {
	log       *slog.Logger
	users     counter
	gyms      counter
	dietPlans counter
}

// NewService creates a new dashboard service instance.
func NewService(logger *slog.Logger, users, gyms, dietPlans counter) *Service {
	return &Service{
		log:       logger.With("service", "dashboard"),
		users:     users,
		gyms:      gyms,
		dietPlans: dietPlans,
	}
}

// Stats fetches all counts concurrently. The first failure cancels the
// other requests and is returned.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	var stats Stats

	g, gctx := errgroup.WithContext(ctx)
	count := func(name string, c counter, dst *int) {
		g.Go(func() error {
			n, err := c.Count(gctx)
			if err != nil {
				return fmt.Errorf("dashboard.Stats %s: %w", name, err)
			}
			*dst = n
			return nil
		})
	}
	count("users", s.users, &stats.Users)
	count("gyms", s.gyms, &stats.Gyms)
	count("diet plans", s.dietPlans, &stats.DietPlans)

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	s.log.DebugContext(ctx, "stats loaded",
		slog.Int("users", stats.Users),
		slog.Int("gyms", stats.Gyms),
		slog.Int("diet_plans", stats.DietPlans))
	return stats, nil
}
