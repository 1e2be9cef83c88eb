package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/heartmarshall/coach-admin/internal/domain"
)

// Users is the /users collection.
func (cl *Client) Users() *Resource[domain.User] {
	return NewResource[domain.User](cl, "users", "user")
}

// Gyms is the /gyms collection.
func (cl *Client) Gyms() *Resource[domain.Gym] {
	return NewResource[domain.Gym](cl, "gyms", "gym")
}

// GymUsers is the roster of one gym. Delete takes the member's user id.
func (cl *Client) GymUsers(gymID int64) *Resource[domain.GymUser] {
	return NewResource[domain.GymUser](cl, "gyms/"+strconv.FormatInt(gymID, 10)+"/users", "gym member")
}

// DietPlans is the /diet-plans collection.
func (cl *Client) DietPlans() *Resource[domain.DietPlan] {
	return NewResource[domain.DietPlan](cl, "diet-plans", "diet plan")
}

// MealPlans is the per-day breakdown of one diet plan.
func (cl *Client) MealPlans(dietPlanID int64) *Resource[domain.MealPlan] {
	return NewResource[domain.MealPlan](cl, "diet-plans/"+strconv.FormatInt(dietPlanID, 10)+"/meal-plans", "meal plan")
}

// Roles lists the assignable platform roles.
func (cl *Client) Roles(ctx context.Context) ([]domain.Role, error) {
	body, err := cl.get(ctx, "roles", nil, "Failed to load roles")
	if err != nil {
		return nil, err
	}
	page, err := decodeList[domain.Role](body)
	if err != nil {
		return nil, fmt.Errorf("api: roles: %w", err)
	}
	return page.Items, nil
}

// DuplicateDietPlan copies a diet plan for another client and date range.
func (cl *Client) DuplicateDietPlan(ctx context.Context, id int64, payload any) (domain.DietPlan, error) {
	path := "diet-plans/" + strconv.FormatInt(id, 10) + "/duplicate"
	return decodeBody[domain.DietPlan](cl.send(ctx, http.MethodPost, path, payload, "Failed to duplicate diet plan"))
}

func (cl *Client) profileURL(userID int64) string {
	return "users/" + strconv.FormatInt(userID, 10) + "/" + cl.profilePath
}

// GetProfile fetches the client profile of a user. A user without a profile
// yields an error matching domain.ErrNotFound.
func (cl *Client) GetProfile(ctx context.Context, userID int64) (domain.ClientProfile, error) {
	return decodeBody[domain.ClientProfile](cl.get(ctx, cl.profileURL(userID), nil, "Failed to load profile"))
}

// CreateProfile creates the client profile of a user.
func (cl *Client) CreateProfile(ctx context.Context, userID int64, payload any) (domain.ClientProfile, error) {
	return decodeBody[domain.ClientProfile](cl.send(ctx, http.MethodPost, cl.profileURL(userID), payload, "Failed to save profile"))
}

// UpdateProfile replaces the client profile of a user.
func (cl *Client) UpdateProfile(ctx context.Context, userID int64, payload any) (domain.ClientProfile, error) {
	return decodeBody[domain.ClientProfile](cl.send(ctx, http.MethodPut, cl.profileURL(userID), payload, "Failed to update profile"))
}

// Login exchanges credentials for a token.
func (cl *Client) Login(ctx context.Context, payload any) (domain.AuthResult, error) {
	return decodeBody[domain.AuthResult](cl.send(ctx, http.MethodPost, "auth/login", payload, "Please check your credentials and try again"))
}

// Register creates an account and returns its token.
func (cl *Client) Register(ctx context.Context, payload any) (domain.AuthResult, error) {
	return decodeBody[domain.AuthResult](cl.send(ctx, http.MethodPost, "auth/register", payload, "Please check your information and try again"))
}

// Logout revokes the current token on the backend.
func (cl *Client) Logout(ctx context.Context) error {
	_, err := cl.send(ctx, http.MethodPost, "auth/logout", nil, "Logout failed")
	return err
}

// Me returns the user the current token belongs to.
func (cl *Client) Me(ctx context.Context) (domain.User, error) {
	return decodeBody[domain.User](cl.get(ctx, "auth/me", nil, "Failed to load current user"))
}
