// Package gym wires the gym pages: the gym list and form, and the member
// roster of each gym.
package gym

import (
	"log/slog"
	"strconv"

	"github.com/heartmarshall/coach-admin/internal/controller"
	"github.com/heartmarshall/coach-admin/internal/domain"
	"github.com/heartmarshall/coach-admin/internal/schema"
)

// RosterFunc returns the member collection of one gym.
type RosterFunc func(gymID int64) controller.Remote[domain.GymUser]

// Service builds gym controllers.
type Service struct {
	log     *slog.Logger
	gyms    controller.Remote[domain.Gym]
	roster  RosterFunc
	cache   controller.Cache
	schemas *schema.Registry
}

// NewService creates a new gym service instance.
func NewService(logger *slog.Logger, gyms controller.Remote[domain.Gym], roster RosterFunc, c controller.Cache, schemas *schema.Registry) *Service {
	return &Service{
		log:     logger.With("service", "gym"),
		gyms:    gyms,
		roster:  roster,
		cache:   c,
		schemas: schemas,
	}
}

// Gyms returns a controller for the gym list and form.
func (s *Service) Gyms(filter domain.EntityFilter) *controller.Controller[domain.Gym] {
	return controller.New(controller.Config[domain.Gym]{
		Entity: domain.EntityGym,
		Noun:   "gym",
		Path:   "gyms",
		Schema: s.schemas.Must(schema.Gym),
		Remote: s.gyms,
		Cache:  s.cache,
		Filter: filter,
		Logger: s.log,
	})
}

// Roster returns a controller for the members of gymID, filterable by
// role and status. Removing a member takes the member's user id.
func (s *Service) Roster(gymID int64, filter domain.EntityFilter) *controller.Controller[domain.GymUser] {
	return controller.New(controller.Config[domain.GymUser]{
		Entity:      domain.EntityGymUser,
		Noun:        "gym member",
		Path:        "gyms/" + strconv.FormatInt(gymID, 10) + "/users",
		Schema:      s.schemas.Must(schema.GymUser),
		Remote:      s.roster(gymID),
		Cache:       s.cache,
		Scoped:      true,
		Filter:      filter,
		Logger:      s.log,
	})
}

// MemberDraft returns the add-member form for userID with the default role
// and status.
func (s *Service) MemberDraft(userID int64) schema.Values {
	d := s.schemas.Must(schema.GymUser).Defaults()
	if userID > 0 {
		d["user_id"] = userID
	}
	return d
}

// DraftFor seeds the gym form from an existing gym.
func DraftFor(g domain.Gym) schema.Values {
	return schema.Values{
		"name":    g.Name,
		"address": g.Address,
		"phone":   g.Phone,
	}
}
