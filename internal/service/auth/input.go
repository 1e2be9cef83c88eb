package auth

import (
	"strings"

	"github.com/heartmarshall/coach-admin/internal/schema"
)

// LoginInput holds the login form.
type LoginInput struct {
	Email    string
	Password string
}

func (i LoginInput) values() schema.Values {
	return schema.Values{
		"email":    strings.TrimSpace(i.Email),
		"password": i.Password,
	}
}

// RegisterInput holds the registration form.
type RegisterInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
	Phone                string
}

func (i RegisterInput) values() schema.Values {
	return schema.Values{
		"name":                  strings.TrimSpace(i.Name),
		"email":                 strings.TrimSpace(i.Email),
		"password":              i.Password,
		"password_confirmation": i.PasswordConfirmation,
		"phone":                 strings.TrimSpace(i.Phone),
	}
}
