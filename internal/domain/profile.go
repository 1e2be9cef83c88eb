package domain

import "time"

// ClientProfile is the health and lifestyle questionnaire of one client.
// A user may have no profile yet; the backend answers 404 in that case.
type ClientProfile struct {
	ID                 int64      `json:"id"`
	UserID             int64      `json:"user_id"`
	Age                int        `json:"age"`
	Gender             string     `json:"gender"`
	Height             float64    `json:"height"`
	CurrentWeight      float64    `json:"current_weight"`
	TargetWeight       float64    `json:"target_weight"`
	Country            string     `json:"country"`
	State              string     `json:"state"`
	City               string     `json:"city"`
	ActivityLevel      string     `json:"activity_level"`
	DietType           string     `json:"diet_type"`
	HealthConditions   []string   `json:"health_conditions"`
	HealthDetails      *string    `json:"health_details,omitempty"`
	Allergies          []string   `json:"allergies"`
	RecoveryNeeds      []string   `json:"recovery_needs"`
	Medications        []string   `json:"medications,omitempty"`
	MealPreferences    []string   `json:"meal_preferences"`
	CuisinePreferences []string   `json:"cuisine_preferences,omitempty"`
	FoodRestrictions   []string   `json:"food_restrictions,omitempty"`
	MealTiming         string     `json:"meal_timing,omitempty"`
	ExerciseRoutine    string     `json:"exercise_routine,omitempty"`
	StressSleep        string     `json:"stress_sleep,omitempty"`
	BodyType           string     `json:"body_type,omitempty"`
	WaterIntake        string     `json:"water_intake,omitempty"`
	WeightGoal         string     `json:"weight_goal,omitempty"`
	PlanType           string     `json:"plan_type,omitempty"`
	PlanTypeDisplay    string     `json:"plan_type_display,omitempty"`
	AdditionalRequests *string    `json:"additional_requests,omitempty"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// WeightDifference returns target minus current weight in kg.
func (p ClientProfile) WeightDifference() float64 {
	return p.TargetWeight - p.CurrentWeight
}
