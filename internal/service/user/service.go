// Package user wires the user pages: the user list with its role filter
// and the user form.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/coach-admin/internal/cache"
	"github.com/heartmarshall/coach-admin/internal/controller"
	"github.com/heartmarshall/coach-admin/internal/domain"
	"github.com/heartmarshall/coach-admin/internal/schema"
)

// rolesAPI defines the roles endpoint needed by the service.
type rolesAPI interface {
	Roles(ctx context.Context) ([]domain.Role, error)
}

// Service builds user controllers.
type Service struct {
	log    *slog.Logger
	users  controller.Remote[domain.User]
	roles  rolesAPI
	cache  controller.Cache
	schema *schema.Schema
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users controller.Remote[domain.User], roles rolesAPI, c controller.Cache, schemas *schema.Registry) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		users:  users,
		roles:  roles,
		cache:  c,
		schema: schemas.Must(schema.User),
	}
}

// Users returns a controller for the user list and form. Profiles hang
// off users, so they are invalidated too.
func (s *Service) Users(filter domain.EntityFilter) *controller.Controller[domain.User] {
	return controller.New(controller.Config[domain.User]{
		Entity:      domain.EntityUser,
		Noun:        "user",
		Path:        "users",
		Schema:      s.schema,
		Remote:      s.users,
		Cache:       s.cache,
		Invalidates: []domain.EntityType{domain.EntityClientProfile},
		Filter:      filter,
		Logger:      s.log,
	})
}

var rolesKey = cache.Key{Entity: domain.EntityRole, Scope: "list:roles"}

// Roles returns the assignable roles, cached after the first call.
func (s *Service) Roles(ctx context.Context) ([]domain.Role, error) {
	if e, ok := s.cache.Get(rolesKey); ok {
		if roles, ok := e.Value.([]domain.Role); ok {
			return roles, nil
		}
	}

	gen := s.cache.Generation(domain.EntityRole)
	roles, err := s.roles.Roles(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.Roles: %w", err)
	}
	s.cache.SetIf(rolesKey, roles, gen)
	return roles, nil
}

// DraftFor seeds the user form from an existing user. The password is left
// blank so an update keeps the current one.
func DraftFor(u domain.User) schema.Values {
	return schema.Values{
		"name":           u.Name,
		"email":          u.Email,
		"phone":          u.Phone,
		"whatsapp_phone": u.WhatsAppPhone,
		"status":         string(u.Status),
	}
}
