package gym

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/coach-admin/internal/cache"
	"github.com/heartmarshall/coach-admin/internal/controller"
	"github.com/heartmarshall/coach-admin/internal/domain"
	"github.com/heartmarshall/coach-admin/internal/schema"
)

type fakeRemote[T any] struct {
	filters []domain.EntityFilter
	created []any
	deleted []int64
	items   []T
}

func (f *fakeRemote[T]) List(_ context.Context, filter domain.EntityFilter) (domain.PagedResult[T], error) {
	f.filters = append(f.filters, filter)
	return domain.SinglePage(f.items), nil
}

func (f *fakeRemote[T]) Get(context.Context, int64) (T, error) {
	var zero T
	return zero, &domain.RemoteError{Status: 404}
}

func (f *fakeRemote[T]) Create(_ context.Context, payload any) (T, error) {
	f.created = append(f.created, payload)
	var zero T
	return zero, nil
}

func (f *fakeRemote[T]) Update(context.Context, int64, any) (T, error) {
	var zero T
	return zero, nil
}

func (f *fakeRemote[T]) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func newTestService(c *cache.Cache) (*Service, *fakeRemote[domain.Gym], map[int64]*fakeRemote[domain.GymUser]) {
	gyms := &fakeRemote[domain.Gym]{}
	rosters := map[int64]*fakeRemote[domain.GymUser]{}
	roster := func(gymID int64) controller.Remote[domain.GymUser] {
		if r, ok := rosters[gymID]; ok {
			return r
		}
		r := &fakeRemote[domain.GymUser]{}
		rosters[gymID] = r
		return r
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, gyms, roster, c, schema.MustBuiltin()), gyms, rosters
}

func TestService_Gyms_Create(t *testing.T) {
	t.Parallel()

	svc, gyms, _ := newTestService(cache.New())
	ctrl := svc.Gyms(domain.NewFilter(nil))
	defer ctrl.Close()

	out, err := ctrl.SubmitCreate(context.Background(), schema.Values{
		"name":    "Iron Works",
		"address": "12 Main Street",
		"phone":   "5551234",
	})
	require.NoError(t, err)
	assert.Equal(t, "Gym created successfully", out.Message)
	assert.Len(t, gyms.created, 1)
}

func TestService_Roster_AddMember(t *testing.T) {
	t.Parallel()

	c := cache.New()
	svc, _, rosters := newTestService(c)
	ctx := context.Background()

	gyms := svc.Gyms(domain.NewFilter(nil))
	defer gyms.Close()
	require.NoError(t, gyms.Refresh(ctx))

	other := svc.Roster(9, domain.NewFilter(nil))
	defer other.Close()
	require.NoError(t, other.Refresh(ctx))

	ctrl := svc.Roster(4, domain.NewFilter(map[string]any{"role": domain.GymRoleTrainer}))
	defer ctrl.Close()
	require.NoError(t, ctrl.Refresh(ctx))
	assert.Equal(t, "trainer", rosters[4].filters[0].Fields["role"])
	require.Equal(t, 3, c.Len())

	out, err := ctrl.SubmitCreate(ctx, svc.MemberDraft(31))
	require.NoError(t, err)
	assert.Equal(t, "Gym member created successfully", out.Message)

	payload := rosters[4].created[0].(schema.Values)
	assert.Equal(t, int64(31), payload["user_id"])
	assert.Equal(t, "client", payload["role"])
	assert.Equal(t, "active", payload["status"])

	// only the roster of gym 4 is dropped and refetched
	assert.Len(t, rosters[4].filters, 2)
	assert.Equal(t, 3, c.Len())

	_, ok := c.Get(cache.ListKey(domain.EntityGym, "gyms", domain.NewFilter(nil)))
	assert.True(t, ok, "gym list stays cached")
	require.NoError(t, other.SetPage(ctx, 1))
	assert.Len(t, rosters[9].filters, 1, "other rosters stay cached")
}

func TestService_Roster_AddMemberWithoutUser(t *testing.T) {
	t.Parallel()

	svc, _, rosters := newTestService(cache.New())
	ctrl := svc.Roster(4, domain.NewFilter(nil))
	defer ctrl.Close()

	out, err := ctrl.SubmitCreate(context.Background(), svc.MemberDraft(0))
	require.NoError(t, err)

	assert.Equal(t, controller.OutcomeInvalid, out.Kind)
	assert.Equal(t, "User is required", out.Validation.Errors["user_id"])
	assert.Empty(t, rosters[4].created)
}

func TestService_Roster_RemoveMember(t *testing.T) {
	t.Parallel()

	svc, _, rosters := newTestService(cache.New())
	ctrl := svc.Roster(4, domain.NewFilter(nil))
	defer ctrl.Close()

	var prompt string
	out, err := ctrl.SubmitDelete(context.Background(), 31, controller.ConfirmFunc(func(_ context.Context, p string) (bool, error) {
		prompt = p
		return true, nil
	}))
	require.NoError(t, err)

	assert.Equal(t, "Delete this gym member? This action cannot be undone.", prompt)
	assert.Equal(t, "Gym member deleted successfully", out.Message)
	assert.Equal(t, []int64{31}, rosters[4].deleted)
}

func TestDraftFor(t *testing.T) {
	t.Parallel()

	d := DraftFor(domain.Gym{Name: "Iron Works", Address: "12 Main Street", Phone: "555"})
	assert.Equal(t, schema.Values{"name": "Iron Works", "address": "12 Main Street", "phone": "555"}, d)
}
