// Package dietplan wires the diet plan pages: the plan list and form, the
// duplicate form, and the per-plan meal plan list.
package dietplan

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/heartmarshall/coach-admin/internal/controller"
	"github.com/heartmarshall/coach-admin/internal/domain"
	"github.com/heartmarshall/coach-admin/internal/schema"
)

// duplicator defines the duplicate endpoint needed by the service.
type duplicator interface {
	DuplicateDietPlan(ctx context.Context, id int64, payload any) (domain.DietPlan, error)
}

// userFetcher resolves plan clients that the backend did not embed.
type userFetcher interface {
	Get(ctx context.Context, id int64) (domain.User, error)
}

// MealPlansFunc returns the meal plan collection of one diet plan.
type MealPlansFunc func(dietPlanID int64) controller.Remote[domain.MealPlan]

// Deps holds the collaborators of the service.
type Deps struct {
	Plans     controller.Remote[domain.DietPlan]
	MealPlans MealPlansFunc
	Dup       duplicator
	Users     userFetcher
	Cache     controller.Cache
	Schemas   *schema.Registry
}

// Service builds diet plan controllers and runs the plan-specific actions.
type Service struct {
	log       *slog.Logger
	plans     controller.Remote[domain.DietPlan]
	mealPlans MealPlansFunc
	dup       duplicator
	users     userFetcher
	cache     controller.Cache
	schemas   *schema.Registry
	now       func() time.Time
}

// NewService creates a new diet plan service instance.
func NewService(logger *slog.Logger, deps Deps) *Service {
	return &Service{
		log:       logger.With("service", "dietplan"),
		plans:     deps.Plans,
		mealPlans: deps.MealPlans,
		dup:       deps.Dup,
		users:     deps.Users,
		cache:     deps.Cache,
		schemas:   deps.Schemas,
		now:       time.Now,
	}
}

// Plans returns a controller for the diet plan list and form. Deleting a
// plan removes its meal plans, so both are invalidated.
func (s *Service) Plans(filter domain.EntityFilter) *controller.Controller[domain.DietPlan] {
	return controller.New(controller.Config[domain.DietPlan]{
		Entity:      domain.EntityDietPlan,
		Noun:        "diet plan",
		Path:        "diet-plans",
		Schema:      s.schemas.Must(schema.DietPlan),
		Remote:      s.plans,
		Cache:       s.cache,
		Invalidates: []domain.EntityType{domain.EntityMealPlan},
		Filter:      filter,
		Logger:      s.log,
	})
}

// MealPlans returns a controller for the meal plans of one diet plan.
// Plan totals are derived from meal plans, so every mutation also drops
// cached diet plans.
func (s *Service) MealPlans(dietPlanID int64) *controller.Controller[domain.MealPlan] {
	return controller.New(controller.Config[domain.MealPlan]{
		Entity:      domain.EntityMealPlan,
		Noun:        "meal plan",
		Path:        "diet-plans/" + strconv.FormatInt(dietPlanID, 10) + "/meal-plans",
		Schema:      s.schemas.Must(schema.MealPlan),
		Remote:      s.mealPlans(dietPlanID),
		Cache:       s.cache,
		Invalidates: []domain.EntityType{domain.EntityDietPlan},
		Logger:      s.log,
	})
}

// DraftFor seeds the plan form from an existing plan.
func DraftFor(p domain.DietPlan) schema.Values {
	return schema.Values{
		"client_id":      p.ClientID,
		"title":          p.Title,
		"description":    p.Description,
		"daily_calories": p.DailyCalories,
		"protein_grams":  p.ProteinGrams,
		"carbs_grams":    p.CarbsGrams,
		"fats_grams":     p.FatsGrams,
		"status":         string(p.Status),
		"start_date":     p.StartDate,
		"end_date":       p.EndDate,
	}
}
