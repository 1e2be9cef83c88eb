// Package loader provides per-command DataLoaders that batch and
// de-duplicate lookups made while rendering a list, such as resolving the
// client of every diet plan on a page.
package loader

import (
	"context"
	"errors"
	"time"

	"github.com/graph-gophers/dataloader/v7"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/coach-admin/internal/domain"
)

const (
	maxBatch    = 50
	wait        = 2 * time.Millisecond
	parallelism = 4
)

// userFetcher is the part of the users resource the loader needs.
type userFetcher interface {
	Get(ctx context.Context, id int64) (domain.User, error)
}

// Loaders holds the DataLoader instances for one command run.
type Loaders struct {
	// UserByID resolves user summaries. A missing user yields nil.
	UserByID *dataloader.Loader[int64, *domain.UserSummary]
}

// NewLoaders creates a fresh set of loaders. Results are cached for the
// lifetime of the returned value, so create one per command or page load.
func NewLoaders(users userFetcher) *Loaders {
	return &Loaders{
		UserByID: newLoader(newUsersBatchFn(users)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

// UserSummaries loads every id and returns the summaries found, keyed by id.
// The first lookup error aborts the call.
func (l *Loaders) UserSummaries(ctx context.Context, ids []int64) (map[int64]domain.UserSummary, error) {
	thunk := l.UserByID.LoadMany(ctx, ids)
	results, errs := thunk()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := make(map[int64]domain.UserSummary, len(ids))
	for i, id := range ids {
		if i < len(results) && results[i] != nil {
			out[id] = *results[i]
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Users by ID
// ---------------------------------------------------------------------------

// newUsersBatchFn fans a batch out to single-user requests, since the
// backend has no bulk lookup. Keys arrive de-duplicated.
func newUsersBatchFn(users userFetcher) dataloader.BatchFunc[int64, *domain.UserSummary] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.UserSummary] {
		results := make([]*dataloader.Result[*domain.UserSummary], len(keys))

		var g errgroup.Group
		g.SetLimit(parallelism)
		for i, id := range keys {
			g.Go(func() error {
				results[i] = fetchUser(ctx, users, id)
				return nil
			})
		}
		_ = g.Wait()
		return results
	}
}

func fetchUser(ctx context.Context, users userFetcher, id int64) *dataloader.Result[*domain.UserSummary] {
	if err := ctx.Err(); err != nil {
		return &dataloader.Result[*domain.UserSummary]{Error: err}
	}
	u, err := users.Get(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return &dataloader.Result[*domain.UserSummary]{}
	case err != nil:
		return &dataloader.Result[*domain.UserSummary]{Error: err}
	}
	s := u.Summary()
	return &dataloader.Result[*domain.UserSummary]{Data: &s}
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "loaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context, or nil.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}
