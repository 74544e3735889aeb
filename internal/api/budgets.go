package api

import (
	"context"
	"net/http"

	"github.com/nyunja/fity-cli/internal/model"
)

type rawBudget struct {
	ID             string  `json:"id"`
	Category       string  `json:"category"`
	Type           string  `json:"type,omitempty"`
	LimitAmount    float64 `json:"limit_amount"`
	AlertThreshold int     `json:"alert_threshold,omitempty"`
	IsRollover     bool    `json:"is_rollover"`
}

func normalizeBudget(raw rawBudget) model.Budget {
	b := model.Budget{
		ID:             raw.ID,
		Category:       raw.Category,
		Limit:          raw.LimitAmount,
		Rollover:       raw.IsRollover,
		Type:           model.BudgetVariable,
		AlertThreshold: raw.AlertThreshold,
	}
	if raw.Type != "" {
		b.Type = model.BudgetType(raw.Type)
	}
	if b.AlertThreshold <= 0 {
		b.AlertThreshold = model.DefaultAlertThreshold
	}
	return b
}

// ListBudgets fetches all budgets.
func (c *Client) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	var payload struct {
		Budgets []rawBudget `json:"budgets"`
	}
	if err := c.do(ctx, http.MethodGet, "/budgets", nil, nil, &payload); err != nil {
		return nil, err
	}
	budgets := make([]model.Budget, 0, len(payload.Budgets))
	for _, raw := range payload.Budgets {
		budgets = append(budgets, normalizeBudget(raw))
	}
	return budgets, nil
}

// CreateBudgetRequest is the creation schema.
type CreateBudgetRequest struct {
	Category       string  `json:"category"`
	Period         string  `json:"period,omitempty"`
	Limit          float64 `json:"limit"`
	AlertThreshold int     `json:"alert_threshold,omitempty"`
}

// CreateBudget adds a category budget.
func (c *Client) CreateBudget(ctx context.Context, req CreateBudgetRequest) (model.Budget, error) {
	var payload struct {
		Budget rawBudget `json:"budget"`
	}
	if err := c.do(ctx, http.MethodPost, "/budgets", nil, req, &payload); err != nil {
		return model.Budget{}, err
	}
	return normalizeBudget(payload.Budget), nil
}

// UpdateBudgetRequest carries the mutable budget fields.
type UpdateBudgetRequest struct {
	Limit          *float64 `json:"limit,omitempty"`
	AlertThreshold *int     `json:"alert_threshold,omitempty"`
	Period         *string  `json:"period,omitempty"`
}

// UpdateBudget applies a partial update.
func (c *Client) UpdateBudget(ctx context.Context, id string, req UpdateBudgetRequest) (model.Budget, error) {
	var payload struct {
		Budget rawBudget `json:"budget"`
	}
	if err := c.do(ctx, http.MethodPut, "/budgets/"+id, nil, req, &payload); err != nil {
		return model.Budget{}, err
	}
	return normalizeBudget(payload.Budget), nil
}

// DeleteBudget removes a budget.
func (c *Client) DeleteBudget(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/budgets/"+id, nil, nil, nil)
}

// GetBudgetSummary returns the chart slices for the dashboard.
func (c *Client) GetBudgetSummary(ctx context.Context) ([]model.BudgetSlice, error) {
	var payload struct {
		Summary struct {
			Categories []struct {
				Name  string  `json:"name"`
				Color string  `json:"color"`
				Value float64 `json:"value"`
			} `json:"categories"`
		} `json:"summary"`
	}
	if err := c.do(ctx, http.MethodGet, "/budgets/summary", nil, nil, &payload); err != nil {
		return nil, err
	}
	slices := make([]model.BudgetSlice, 0, len(payload.Summary.Categories))
	for _, cat := range payload.Summary.Categories {
		slices = append(slices, model.BudgetSlice{Name: cat.Name, Color: cat.Color, Value: cat.Value})
	}
	return slices, nil
}
