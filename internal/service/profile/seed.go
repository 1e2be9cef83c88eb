package profile

import (
	"github.com/heartmarshall/coach-admin/internal/domain"
	"github.com/heartmarshall/coach-admin/internal/schema"
)

// DefaultPlanType is used when a profile carries no plan type.
const DefaultPlanType = "weight_loss"

// Seed returns the initial draft for p. A nil profile yields the schema
// defaults used in create mode.
func Seed(s *schema.Schema, p *domain.ClientProfile) schema.Values {
	if p == nil {
		return s.Defaults()
	}

	return schema.Values{
		"age":                 p.Age,
		"gender":              p.Gender,
		"height":              p.Height,
		"current_weight":      p.CurrentWeight,
		"target_weight":       p.TargetWeight,
		"country":             p.Country,
		"state":               p.State,
		"city":                p.City,
		"activity_level":      p.ActivityLevel,
		"diet_type":           p.DietType,
		"health_conditions":   list(p.HealthConditions),
		"health_details":      deref(p.HealthDetails),
		"allergies":           list(p.Allergies),
		"recovery_needs":      list(p.RecoveryNeeds),
		"meal_preferences":    list(p.MealPreferences),
		"stress_sleep":        p.StressSleep,
		"meal_timing":         p.MealTiming,
		"exercise_routine":    p.ExerciseRoutine,
		"body_type":           p.BodyType,
		"water_intake":        p.WaterIntake,
		"weight_goal":         p.WeightGoal,
		"plan_type":           planType(p),
		"additional_requests": deref(p.AdditionalRequests),
	}
}

func planType(p *domain.ClientProfile) string {
	switch {
	case p.PlanType != "":
		return p.PlanType
	case p.PlanTypeDisplay != "":
		return p.PlanTypeDisplay
	default:
		return DefaultPlanType
	}
}

func list(v []string) []string {
	out := make([]string, len(v))
	copy(out, v)
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
