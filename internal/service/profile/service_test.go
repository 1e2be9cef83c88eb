package profile

import (
	"context"
	"errors"
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

//go:generate moq -out profile_api_mock_test.go -pkg profile . profileAPI

func newTestService(api profileAPI) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, api, cache.New(), schema.MustBuiltin())
}

func notFound(context.Context, int64) (domain.ClientProfile, error) {
	return domain.ClientProfile{}, &domain.RemoteError{Status: 404, Message: "Profile not found"}
}

func storedProfile() domain.ClientProfile {
	details := "mild asthma"
	return domain.ClientProfile{
		ID:               5,
		UserID:           12,
		Age:              41,
		Gender:           "female",
		Height:           165,
		CurrentWeight:    80,
		TargetWeight:     68.5,
		Country:          "NZ",
		State:            "Auckland",
		City:             "Auckland",
		ActivityLevel:    "lightly_active",
		DietType:         "vegetarian",
		HealthConditions: []string{"hypertension"},
		HealthDetails:    &details,
		Allergies:        nil,
		RecoveryNeeds:    []string{"energy"},
		MealPreferences:  []string{"high_protein"},
		PlanTypeDisplay:  "muscle_gain",
	}
}

func TestService_Open_WithoutProfile(t *testing.T) {
	t.Parallel()

	api := &profileAPIMock{GetProfileFunc: notFound}
	svc := newTestService(api)

	f, err := svc.Open(context.Background(), 12)
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, f.Exists())
	assert.Nil(t, f.Profile())
	assert.False(t, f.Dirty())

	d := f.Draft
	assert.Equal(t, 30.0, d["age"])
	assert.Equal(t, "male", d["gender"])
	assert.Equal(t, 170.0, d["height"])
	assert.Equal(t, 70.0, d["current_weight"])
	assert.Equal(t, 70.0, d["target_weight"])
	assert.Equal(t, "moderately_active", d["activity_level"])
	assert.Equal(t, "standard", d["diet_type"])
	assert.Equal(t, []string{"none"}, d["health_conditions"])
	assert.Equal(t, []string{"none"}, d["allergies"])
	assert.Equal(t, []string{}, d["recovery_needs"])
	assert.Equal(t, DefaultPlanType, d["plan_type"])
}

func TestService_Open_SeedsFromProfile(t *testing.T) {
	t.Parallel()

	api := &profileAPIMock{
		GetProfileFunc: func(ctx context.Context, userID int64) (domain.ClientProfile, error) {
			return storedProfile(), nil
		},
	}
	svc := newTestService(api)

	f, err := svc.Open(context.Background(), 12)
	require.NoError(t, err)
	defer f.Close()

	assert.True(t, f.Exists())
	require.NotNil(t, f.Profile())
	assert.Equal(t, int64(5), f.Profile().ID)

	d := f.Draft
	assert.Equal(t, 41, d["age"])
	assert.Equal(t, "female", d["gender"])
	assert.Equal(t, 68.5, d["target_weight"])
	assert.Equal(t, []string{"hypertension"}, d["health_conditions"])
	assert.Equal(t, []string{}, d["allergies"], "missing lists become empty lists")
	assert.Equal(t, "mild asthma", d["health_details"])
	assert.Equal(t, "muscle_gain", d["plan_type"])
	assert.Equal(t, int64(12), api.GetProfileCalls()[0].UserID)
}

func TestService_Open_CachesLookup(t *testing.T) {
	t.Parallel()

	api := &profileAPIMock{
		GetProfileFunc: func(ctx context.Context, userID int64) (domain.ClientProfile, error) {
			return storedProfile(), nil
		},
	}
	svc := newTestService(api)
	ctx := context.Background()

	for range 3 {
		f, err := svc.Open(ctx, 12)
		require.NoError(t, err)
		f.Close()
	}
	assert.Len(t, api.GetProfileCalls(), 1)
}

func TestService_Open_Error(t *testing.T) {
	t.Parallel()

	api := &profileAPIMock{
		GetProfileFunc: func(ctx context.Context, userID int64) (domain.ClientProfile, error) {
			return domain.ClientProfile{}, &domain.NetworkError{Op: "GET users/12/profile", Err: errors.New("refused")}
		},
	}
	svc := newTestService(api)

	_, err := svc.Open(context.Background(), 12)
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestSeed_PlanType(t *testing.T) {
	t.Parallel()

	s := schema.MustBuiltin().Must(schema.ClientProfile)
	tests := []struct {
		name    string
		plan    string
		display string
		want    string
	}{
		{name: "plan type wins", plan: "maintenance", display: "muscle_gain", want: "maintenance"},
		{name: "display as fallback", display: "muscle_gain", want: "muscle_gain"},
		{name: "default", want: DefaultPlanType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := domain.ClientProfile{PlanType: tt.plan, PlanTypeDisplay: tt.display}
			assert.Equal(t, tt.want, Seed(s, &p)["plan_type"])
		})
	}
}

func TestForm_Toggle(t *testing.T) {
	t.Parallel()

	svc := newTestService(&profileAPIMock{GetProfileFunc: notFound})
	f, err := svc.Open(context.Background(), 12)
	require.NoError(t, err)
	defer f.Close()

	require.True(t, f.Toggle("health_conditions", "diabetes", true))
	assert.Equal(t, []string{"diabetes"}, f.Draft["health_conditions"])

	require.True(t, f.Toggle("health_conditions", "thyroid", true))
	assert.Equal(t, []string{"diabetes", "thyroid"}, f.Draft["health_conditions"])

	require.True(t, f.Toggle("health_conditions", "none", true))
	assert.Equal(t, []string{"none"}, f.Draft["health_conditions"])

	require.True(t, f.Toggle("recovery_needs", "energy", true))
	require.True(t, f.Toggle("recovery_needs", "energy", false))
	assert.Equal(t, []string{}, f.Draft["recovery_needs"])

	assert.False(t, f.Toggle("city", "x", true), "only checklists toggle")
	assert.False(t, f.Dirty(), "draft is back to the defaults")

	require.True(t, f.Toggle("recovery_needs", "energy", true))
	assert.True(t, f.Dirty())

	require.True(t, f.Toggle("recovery_needs", "energy", false))
	assert.False(t, f.Dirty())
}

func TestService_Save_UnchangedDefaults(t *testing.T) {
	t.Parallel()

	api := &profileAPIMock{GetProfileFunc: notFound}
	svc := newTestService(api)
	f, err := svc.Open(context.Background(), 12)
	require.NoError(t, err)
	defer f.Close()

	out, err := svc.Save(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, controller.OutcomeFailure, out.Kind)
	assert.Equal(t, "Please update the profile data before submitting.", out.Message)
	assert.ErrorIs(t, out.Err, ErrUnchanged)
	assert.Empty(t, api.CreateProfileCalls())
}

func TestService_Save_Invalid(t *testing.T) {
	t.Parallel()

	api := &profileAPIMock{GetProfileFunc: notFound}
	svc := newTestService(api)
	f, err := svc.Open(context.Background(), 12)
	require.NoError(t, err)
	defer f.Close()

	f.Set("age", "12")

	out, err := svc.Save(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, controller.OutcomeInvalid, out.Kind)
	assert.Equal(t, "Age must be at least 18", out.Validation.Errors["age"])
	assert.Equal(t, "Country is required", out.Validation.Errors["country"])
	assert.Empty(t, api.CreateProfileCalls())
}

func TestService_Save_CreateThenUpdate(t *testing.T) {
	t.Parallel()

	var created bool
	api := &profileAPIMock{
		GetProfileFunc: func(ctx context.Context, userID int64) (domain.ClientProfile, error) {
			if created {
				return domain.ClientProfile{ID: 1, UserID: userID, Country: "NZ"}, nil
			}
			return notFound(ctx, userID)
		},
		CreateProfileFunc: func(ctx context.Context, userID int64, payload any) (domain.ClientProfile, error) {
			created = true
			return domain.ClientProfile{ID: 1, UserID: userID}, nil
		},
		UpdateProfileFunc: func(ctx context.Context, userID int64, payload any) (domain.ClientProfile, error) {
			return domain.ClientProfile{ID: 1, UserID: userID}, nil
		},
	}
	svc := newTestService(api)
	ctx := context.Background()

	f, err := svc.Open(ctx, 12)
	require.NoError(t, err)
	defer f.Close()

	f.Set("country", "NZ")
	f.Set("state", "Auckland")
	f.Set("city", "Auckland")
	f.Toggle("allergies", "nuts", true)

	out, err := svc.Save(ctx, f)
	require.NoError(t, err)
	require.Equal(t, controller.OutcomeSuccess, out.Kind, out.Message)
	assert.Equal(t, "Profile created successfully", out.Message)
	assert.True(t, f.Exists())
	assert.False(t, f.Dirty())

	calls := api.CreateProfileCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, int64(12), calls[0].UserID)
	payload := calls[0].Payload.(schema.Values)
	assert.Equal(t, int64(30), payload["age"])
	assert.Equal(t, []string{"nuts"}, payload["allergies"])
	assert.Equal(t, []string{}, payload["recovery_needs"])

	// the second save of the same form updates
	out, err = svc.Save(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, "Profile updated successfully", out.Message)
	assert.Len(t, api.UpdateProfileCalls(), 1)

	// the cached lookup was invalidated by the save
	g, err := svc.Open(ctx, 12)
	require.NoError(t, err)
	defer g.Close()
	assert.True(t, g.Exists())
	assert.Len(t, api.GetProfileCalls(), 2)
}

func TestService_Save_RemoteFailure(t *testing.T) {
	t.Parallel()

	api := &profileAPIMock{
		GetProfileFunc: func(ctx context.Context, userID int64) (domain.ClientProfile, error) {
			return storedProfile(), nil
		},
		UpdateProfileFunc: func(ctx context.Context, userID int64, payload any) (domain.ClientProfile, error) {
			return domain.ClientProfile{}, &domain.RemoteError{Status: 500, Message: "Server Error"}
		},
	}
	svc := newTestService(api)
	f, err := svc.Open(context.Background(), 12)
	require.NoError(t, err)
	defer f.Close()

	out, err := svc.Save(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, controller.OutcomeFailure, out.Kind)
	assert.Equal(t, "Server Error", out.Message)
	assert.True(t, f.Exists())
}
