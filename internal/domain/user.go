package domain

import "time"

// User is a platform account as returned by the backend.
type User struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`
	WhatsAppPhone string     `json:"whatsapp_phone,omitempty"`
	Status        UserStatus `json:"status"`
	Role          string     `json:"role,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// UserSummary is the embedded user shape used by nested resources.
type UserSummary struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Status string `json:"status,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// Summary returns the embedded shape of u.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Status: string(u.Status),
	}
}

// Role is an assignable platform role, used by the user list filter.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AuthResult is the backend's answer to login and register.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
