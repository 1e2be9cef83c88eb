package domain

import "time"

// DietPlan is a nutrition plan assigned to one client for a date range.
type DietPlan struct {
	ID               int64           `json:"id"`
	ClientID         int64           `json:"client_id"`
	Client           *UserSummary    `json:"client,omitempty"`
	CreatedBy        int64           `json:"created_by,omitempty"`
	Creator          *UserSummary    `json:"creator,omitempty"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	DailyCalories    float64         `json:"daily_calories"`
	ProteinGrams     float64         `json:"protein_grams"`
	CarbsGrams       float64         `json:"carbs_grams"`
	FatsGrams        float64         `json:"fats_grams"`
	MacroPercentages *MacroBreakdown `json:"macro_percentages,omitempty"`
	Status           DietPlanStatus  `json:"status"`
	StartDate        string          `json:"start_date"`
	EndDate          string          `json:"end_date"`
	MealPlans        []MealPlan      `json:"meal_plans,omitempty"`
	CreatedAt        *time.Time      `json:"created_at,omitempty"`
	UpdatedAt        *time.Time      `json:"updated_at,omitempty"`
}

// MacroBreakdown holds macro shares in percent.
type MacroBreakdown struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

// MealPlan is one day of a diet plan.
type MealPlan struct {
	ID            int64      `json:"id"`
	DietPlanID    int64      `json:"diet_plan_id"`
	DayOfWeek     string     `json:"day_of_week"`
	TotalCalories float64    `json:"total_calories"`
	TotalProtein  float64    `json:"total_protein"`
	TotalCarbs    float64    `json:"total_carbs"`
	TotalFats     float64    `json:"total_fats"`
	Meals         []Meal     `json:"meals"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// Meal is a single meal within a meal plan.
type Meal struct {
	ID              int64      `json:"id"`
	MealPlanID      int64      `json:"meal_plan_id"`
	MealType        string     `json:"meal_type"`
	MealTypeDisplay string     `json:"meal_type_display"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Calories        float64    `json:"calories"`
	ProteinGrams    float64    `json:"protein_grams"`
	CarbsGrams      float64    `json:"carbs_grams"`
	FatsGrams       float64    `json:"fats_grams"`
	TimeOfDay       string     `json:"time_of_day"`
	Recipes         []Recipe   `json:"recipes,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// Recipe describes how to prepare a meal.
type Recipe struct {
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

// DaysOfWeek are the accepted meal plan days, in display order.
var DaysOfWeek = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}
