package api

import (
	"context"
	"net/http"

	"github.com/nyunja/fity-cli/internal/model"
)

// rawUser is the account shape the auth endpoints return.
type rawUser struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	IsOnboarded bool   `json:"is_onboarded"`
}

func (u rawUser) normalize() model.User {
	return model.User{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		IsOnboarded: u.IsOnboarded,
	}
}

// AuthResult is a user plus the bearer token to persist.
type AuthResult struct {
	User  model.User
	Token string
}

type authPayload struct {
	User  rawUser `json:"user"`
	Token string  `json:"token"`
}

// Register creates an account and returns the issued token.
func (c *Client) Register(ctx context.Context, name, email, password string) (AuthResult, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var payload authPayload
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, body, &payload); err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: payload.User.normalize(), Token: payload.Token}, nil
}

// Login authenticates and returns the issued token.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var payload authPayload
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &payload); err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: payload.User.normalize(), Token: payload.Token}, nil
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (model.User, error) {
	var payload struct {
		User rawUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &payload); err != nil {
		return model.User{}, err
	}
	return payload.User.normalize(), nil
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// UpdateProfile edits the profile and returns the updated user.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (model.User, error) {
	var payload struct {
		User rawUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/auth/profile", nil, req, &payload); err != nil {
		return model.User{}, err
	}
	return payload.User.normalize(), nil
}

// OnboardingRequest completes first-run setup.
type OnboardingRequest struct {
	Currency       string   `json:"currency"`
	FinancialGoals []string `json:"financial_goals"`
	MonthlyIncome  float64  `json:"monthly_income"`
}

// CompleteOnboarding records income, currency and goal preferences.
func (c *Client) CompleteOnboarding(ctx context.Context, req OnboardingRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/onboarding", nil, req, nil)
}
