package api

import (
	"context"
	"net/http"

	"github.com/nyunja/fity-cli/internal/model"
)

type rawGoal struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Deadline      string  `json:"deadline,omitempty"`
	Priority      string  `json:"priority,omitempty"`
	Category      string  `json:"category,omitempty"`
	Status        string  `json:"status,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
}

func normalizeGoal(raw rawGoal) model.SavingGoal {
	g := model.SavingGoal{
		ID:       raw.ID,
		Name:     raw.Name,
		Category: raw.Category,
		Target:   raw.TargetAmount,
		Current:  raw.CurrentAmount,
		Priority: model.PriorityMedium,
		Status:   model.GoalActive,
	}
	if raw.Priority != "" {
		g.Priority = model.GoalPriority(raw.Priority)
	}
	if raw.Status != "" {
		g.Status = model.GoalStatus(raw.Status)
	}
	if t, ok := parseTimestamp(raw.Deadline); ok {
		g.Deadline = t
	}
	if t, ok := parseTimestamp(raw.CreatedAt); ok {
		g.CreatedAt = t
	}
	return g
}

// ListGoals fetches all savings goals.
func (c *Client) ListGoals(ctx context.Context) ([]model.SavingGoal, error) {
	var payload struct {
		Goals []rawGoal `json:"goals"`
	}
	if err := c.do(ctx, http.MethodGet, "/goals", nil, nil, &payload); err != nil {
		return nil, err
	}
	goals := make([]model.SavingGoal, 0, len(payload.Goals))
	for _, raw := range payload.Goals {
		goals = append(goals, normalizeGoal(raw))
	}
	return goals, nil
}

// CreateGoalRequest is the creation schema.
type CreateGoalRequest struct {
	Name         string  `json:"name"`
	Deadline     string  `json:"deadline"`
	Category     string  `json:"category,omitempty"`
	Priority     string  `json:"priority,omitempty"`
	TargetAmount float64 `json:"target_amount"`
}

// CreateGoal adds a savings goal.
func (c *Client) CreateGoal(ctx context.Context, req CreateGoalRequest) (model.SavingGoal, error) {
	var payload struct {
		Goal rawGoal `json:"goal"`
	}
	if err := c.do(ctx, http.MethodPost, "/goals", nil, req, &payload); err != nil {
		return model.SavingGoal{}, err
	}
	return normalizeGoal(payload.Goal), nil
}

// UpdateGoalRequest carries the mutable goal fields.
type UpdateGoalRequest struct {
	Name         *string  `json:"name,omitempty"`
	Deadline     *string  `json:"deadline,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Status       *string  `json:"status,omitempty"`
	TargetAmount *float64 `json:"target_amount,omitempty"`
}

// UpdateGoal applies a partial update (also used to pause and resume).
func (c *Client) UpdateGoal(ctx context.Context, id string, req UpdateGoalRequest) (model.SavingGoal, error) {
	var payload struct {
		Goal rawGoal `json:"goal"`
	}
	if err := c.do(ctx, http.MethodPut, "/goals/"+id, nil, req, &payload); err != nil {
		return model.SavingGoal{}, err
	}
	return normalizeGoal(payload.Goal), nil
}

// UpdateGoalProgress adds amount to the saved total.
func (c *Client) UpdateGoalProgress(ctx context.Context, id string, amount float64) (model.SavingGoal, error) {
	body := map[string]float64{"amount": amount}
	var payload struct {
		Goal rawGoal `json:"goal"`
	}
	if err := c.do(ctx, http.MethodPatch, "/goals/"+id+"/progress", nil, body, &payload); err != nil {
		return model.SavingGoal{}, err
	}
	return normalizeGoal(payload.Goal), nil
}

// DeleteGoal removes a goal.
func (c *Client) DeleteGoal(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/goals/"+id, nil, nil, nil)
}
