// Package profile edits the health questionnaire of one client. A user
// without a profile is edited in create mode with sensible defaults.
package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/heartmarshall/coach-admin/internal/controller"
	"github.com/heartmarshall/coach-admin/internal/domain"
	"github.com/heartmarshall/coach-admin/internal/schema"
)

// profileAPI defines the backend profile endpoints needed by the service.
type profileAPI interface {
	GetProfile(ctx context.Context, userID int64) (domain.ClientProfile, error)
	CreateProfile(ctx context.Context, userID int64, payload any) (domain.ClientProfile, error)
	UpdateProfile(ctx context.Context, userID int64, payload any) (domain.ClientProfile, error)
}

// ErrUnchanged is reported when a new profile is submitted with the
// untouched defaults.
var ErrUnchanged = errors.New("profile: defaults were not changed")

// Service opens and saves profile forms.
type Service struct {
	log    *slog.Logger
	api    profileAPI
	cache  controller.Cache
	schema *schema.Schema
}

// NewService creates a new profile service instance.
func NewService(logger *slog.Logger, api profileAPI, cache controller.Cache, schemas *schema.Registry) *Service {
	return &Service{
		log:    logger.With("service", "profile"),
		api:    api,
		cache:  cache,
		schema: schemas.Must(schema.ClientProfile),
	}
}

// Schema returns the profile form schema.
func (s *Service) Schema() *schema.Schema { return s.schema }

// Open looks up the profile of userID and returns a form seeded from it,
// or from the create-mode defaults when the user has no profile yet.
func (s *Service) Open(ctx context.Context, userID int64) (*Form, error) {
	ctrl := controller.New(controller.Config[domain.ClientProfile]{
		Entity: domain.EntityClientProfile,
		Noun:   "profile",
		Path:   "users/" + strconv.FormatInt(userID, 10) + "/profile",
		Schema: s.schema,
		Remote: &remote{api: s.api, userID: userID},
		Cache:  s.cache,
		Logger: s.log,
	})

	p, err := ctrl.Load(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.log.DebugContext(ctx, "no profile yet", slog.Int64("user_id", userID))
		return newForm(userID, nil, Seed(s.schema, nil), ctrl), nil
	case err != nil:
		ctrl.Close()
		return nil, fmt.Errorf("profile.Open: %w", err)
	}
	return newForm(userID, &p, Seed(s.schema, &p), ctrl), nil
}

// Save creates or updates the profile behind f. A create-mode form that
// still holds the defaults is refused without a request.
func (s *Service) Save(ctx context.Context, f *Form) (controller.Outcome[domain.ClientProfile], error) {
	if !f.exists && !f.Dirty() {
		return controller.Outcome[domain.ClientProfile]{
			Kind:    controller.OutcomeFailure,
			Message: "Please update the profile data before submitting.",
			Err:     ErrUnchanged,
		}, nil
	}

	var (
		out controller.Outcome[domain.ClientProfile]
		err error
	)
	if f.exists {
		out, err = f.ctrl.SubmitUpdate(ctx, f.UserID, f.Draft)
	} else {
		out, err = f.ctrl.SubmitCreate(ctx, f.Draft)
	}
	if err != nil {
		return out, fmt.Errorf("profile.Save: %w", err)
	}

	if out.OK() {
		f.saved(out.Entity)
		s.log.InfoContext(ctx, "profile saved", slog.Int64("user_id", f.UserID))
	}
	return out, nil
}
