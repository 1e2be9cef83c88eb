package profile

import (
	"context"
	"errors"

	"github.com/heartmarshall/coach-admin/internal/domain"
)

var errNoCollection = errors.New("profile: not a collection")

// remote adapts the per-user profile endpoints to controller.Remote.
// A profile is addressed by its user id.
type remote struct {
	api    profileAPI
	userID int64
}

func (r *remote) List(ctx context.Context, _ domain.EntityFilter) (domain.PagedResult[domain.ClientProfile], error) {
	p, err := r.api.GetProfile(ctx, r.userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.SinglePage[domain.ClientProfile](nil), nil
		}
		return domain.PagedResult[domain.ClientProfile]{}, err
	}
	return domain.SinglePage([]domain.ClientProfile{p}), nil
}

func (r *remote) Get(ctx context.Context, _ int64) (domain.ClientProfile, error) {
	return r.api.GetProfile(ctx, r.userID)
}

func (r *remote) Create(ctx context.Context, payload any) (domain.ClientProfile, error) {
	return r.api.CreateProfile(ctx, r.userID, payload)
}

func (r *remote) Update(ctx context.Context, _ int64, payload any) (domain.ClientProfile, error) {
	return r.api.UpdateProfile(ctx, r.userID, payload)
}

func (r *remote) Delete(context.Context, int64) error {
	return errNoCollection
}
