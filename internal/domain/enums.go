package domain

// EntityType names a remote collection. Cache invalidation is scoped by it.
type EntityType string

const (
	EntityUser          EntityType = "user"
	EntityRole          EntityType = "role"
	EntityGym           EntityType = "gym"
	EntityGymUser       EntityType = "gym_user"
	EntityClientProfile EntityType = "client_profile"
	EntityDietPlan      EntityType = "diet_plan"
	EntityMealPlan      EntityType = "meal_plan"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityUser, EntityRole, EntityGym, EntityGymUser,
		EntityClientProfile, EntityDietPlan, EntityMealPlan:
		return true
	}
	return false
}

// UserStatus is the account status of a platform user.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusPending  UserStatus = "pending"
)

func (s UserStatus) String() string { return string(s) }

// GymUserRole is the role a user holds inside one gym.
type GymUserRole string

const (
	GymRoleAdmin     GymUserRole = "gym_admin"
	GymRoleTrainer   GymUserRole = "trainer"
	GymRoleDietitian GymUserRole = "dietitian"
	GymRoleClient    GymUserRole = "client"
)

func (r GymUserRole) String() string { return string(r) }

func (r GymUserRole) IsValid() bool {
	switch r {
	case GymRoleAdmin, GymRoleTrainer, GymRoleDietitian, GymRoleClient:
		return true
	}
	return false
}

// DietPlanStatus is the lifecycle status of a diet plan.
type DietPlanStatus string

const (
	DietPlanActive    DietPlanStatus = "active"
	DietPlanInactive  DietPlanStatus = "inactive"
	DietPlanCompleted DietPlanStatus = "completed"
)

func (s DietPlanStatus) String() string { return string(s) }

func (s DietPlanStatus) IsValid() bool {
	switch s {
	case DietPlanActive, DietPlanInactive, DietPlanCompleted:
		return true
	}
	return false
}
