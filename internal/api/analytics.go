package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nyunja/fity-cli/internal/model"
)

// GetDashboard returns the headline stat cards. An empty list is not an
// error; callers substitute model.DefaultStats.
func (c *Client) GetDashboard(ctx context.Context) ([]model.StatMetric, error) {
	var payload struct {
		Dashboard struct {
			Stats []struct {
				Label          string  `json:"label"`
				Prefix         string  `json:"prefix,omitempty"`
				TrendDirection string  `json:"trend_direction"`
				Value          float64 `json:"value"`
				Trend          float64 `json:"trend"`
			} `json:"stats"`
		} `json:"dashboard"`
	}
	if err := c.do(ctx, http.MethodGet, "/analytics/dashboard", nil, nil, &payload); err != nil {
		return nil, err
	}
	stats := make([]model.StatMetric, 0, len(payload.Dashboard.Stats))
	for _, s := range payload.Dashboard.Stats {
		stats = append(stats, model.StatMetric{
			Label:          s.Label,
			Prefix:         s.Prefix,
			TrendDirection: s.TrendDirection,
			Value:          s.Value,
			Trend:          s.Trend,
		})
	}
	return stats, nil
}

// GetMoneyFlow returns the income-versus-expense series for a period
// ("7days", "1month", "6months", "1year"). Empty period uses the backend
// default.
func (c *Client) GetMoneyFlow(ctx context.Context, period string) ([]model.MoneyFlowPoint, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}

	var payload struct {
		Data struct {
			DataPoints []struct {
				Date    string  `json:"date"`
				Income  float64 `json:"income"`
				Expense float64 `json:"expense"`
			} `json:"data_points"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/analytics/money-flow", q, nil, &payload); err != nil {
		return nil, err
	}
	flow := make([]model.MoneyFlowPoint, 0, len(payload.Data.DataPoints))
	for _, p := range payload.Data.DataPoints {
		flow = append(flow, model.MoneyFlowPoint{Month: p.Date, Income: p.Income, Expense: p.Expense})
	}
	return flow, nil
}

// SpendingAnalysis is the category breakdown for a period.
type SpendingAnalysis struct {
	ByCategory    []model.BudgetSlice
	TotalSpending float64
}

// GetSpending returns total spending and its category split.
func (c *Client) GetSpending(ctx context.Context, period string) (SpendingAnalysis, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}

	var payload struct {
		ByCategory []struct {
			Category string  `json:"category"`
			Amount   float64 `json:"amount"`
		} `json:"by_category"`
		TotalSpending float64 `json:"total_spending"`
	}
	if err := c.do(ctx, http.MethodGet, "/analytics/spending", q, nil, &payload); err != nil {
		return SpendingAnalysis{}, err
	}

	analysis := SpendingAnalysis{TotalSpending: payload.TotalSpending}
	for _, cat := range payload.ByCategory {
		analysis.ByCategory = append(analysis.ByCategory, model.BudgetSlice{Name: cat.Category, Value: cat.Amount})
	}
	return analysis, nil
}

// Insight is the backend-generated narrative summary.
type Insight struct {
	Message     string `json:"insight"`
	GeneratedAt string `json:"generated_at"`
}

// GetInsights returns the backend's canned insight for the account.
func (c *Client) GetInsights(ctx context.Context) (Insight, error) {
	var payload Insight
	if err := c.do(ctx, http.MethodGet, "/analytics/insights", nil, nil, &payload); err != nil {
		return Insight{}, err
	}
	return payload, nil
}
