package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/coach-admin/internal/adapter/api"
	"github.com/heartmarshall/coach-admin/internal/adapter/session"
	"github.com/heartmarshall/coach-admin/internal/cache"
	"github.com/heartmarshall/coach-admin/internal/config"
	"github.com/heartmarshall/coach-admin/internal/controller"
	"github.com/heartmarshall/coach-admin/internal/domain"
	"github.com/heartmarshall/coach-admin/internal/loader"
	"github.com/heartmarshall/coach-admin/internal/schema"
	authsvc "github.com/heartmarshall/coach-admin/internal/service/auth"
	dashboardsvc "github.com/heartmarshall/coach-admin/internal/service/dashboard"
	dietplansvc "github.com/heartmarshall/coach-admin/internal/service/dietplan"
	gymsvc "github.com/heartmarshall/coach-admin/internal/service/gym"
	profilesvc "github.com/heartmarshall/coach-admin/internal/service/profile"
	usersvc "github.com/heartmarshall/coach-admin/internal/service/user"
)

// App holds the wired components shared by every console command.
type App struct {
	Config  *config.Config
	Log     *slog.Logger
	Session *session.Session
	API     *api.Client
	Cache   *cache.Cache
	Schemas *schema.Registry

	Auth      *authsvc.Service
	Users     *usersvc.Service
	Gyms      *gymsvc.Service
	DietPlans *dietplansvc.Service
	Profiles  *profilesvc.Service
	Dashboard *dashboardsvc.Service
}

// Load reads the configuration from configPath, or from the default
// locations when it is empty, and wires the application. Logs go to logOut,
// or stderr when it is nil.
func Load(configPath string, logOut io.Writer) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return New(cfg, logOut)
}

// New wires the application from cfg.
func New(cfg *config.Config, logOut io.Writer) (*App, error) {
	logger := NewLogger(cfg.Log, logOut)

	schemas, err := schema.Builtin()
	if err != nil {
		return nil, fmt.Errorf("load schemas: %w", err)
	}

	sess, err := session.FromConfig(cfg.Session, logger)
	if err != nil {
		return nil, err
	}

	client := api.NewClient(cfg.API, sess, logger)
	c := cache.New()

	roster := func(gymID int64) controller.Remote[domain.GymUser] { return client.GymUsers(gymID) }
	mealPlans := func(dietPlanID int64) controller.Remote[domain.MealPlan] { return client.MealPlans(dietPlanID) }

	a := &App{
		Config:  cfg,
		Log:     logger,
		Session: sess,
		API:     client,
		Cache:   c,
		Schemas: schemas,

		Auth:  authsvc.NewService(logger, client, sess, schemas),
		Users: usersvc.NewService(logger, client.Users(), client, c, schemas),
		Gyms:  gymsvc.NewService(logger, client.Gyms(), roster, c, schemas),
		DietPlans: dietplansvc.NewService(logger, dietplansvc.Deps{
			Plans:     client.DietPlans(),
			MealPlans: mealPlans,
			Dup:       client,
			Users:     client.Users(),
			Cache:     c,
			Schemas:   schemas,
		}),
		Profiles: profilesvc.NewService(logger, client, c, schemas),
		Dashboard: dashboardsvc.NewService(logger,
			dashboardsvc.Total[domain.User](client.Users()),
			dashboardsvc.Total[domain.Gym](client.Gyms()),
			dashboardsvc.Total[domain.DietPlan](client.DietPlans()),
		),
	}

	logger.Debug("application wired",
		slog.String("version", BuildVersion()),
		slog.String("api", cfg.API.BaseURL),
		slog.String("session_store", cfg.Session.Store),
	)
	return a, nil
}

// Filter returns an initial list filter holding fields and the configured
// page size.
func (a *App) Filter(fields map[string]any) domain.EntityFilter {
	f := domain.NewFilter(fields)
	if a.Config.UI.PerPage > 0 {
		f.Fields["per_page"] = fmt.Sprint(a.Config.UI.PerPage)
	}
	return f
}

// Context attaches a fresh set of batch loaders to ctx. Call it once per
// command so lookups are not cached across commands.
func (a *App) Context(ctx context.Context) context.Context {
	return loader.WithLoaders(ctx, loader.NewLoaders(a.API.Users()))
}
