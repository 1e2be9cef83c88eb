package domain

import "time"

// Gym is a physical location with its own member roster.
type Gym struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	Phone     string     `json:"phone"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// GymUser is one roster membership: a user holding a role in a gym.
type GymUser struct {
	ID     int64       `json:"id"`
	UserID int64       `json:"user_id"`
	GymID  int64       `json:"gym_id"`
	Role   GymUserRole `json:"role"`
	Status UserStatus  `json:"status"`
	User   UserSummary `json:"user"`
}
