package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyunja/fity-cli/internal/model"
)

func TestNormalizeGoal(t *testing.T) {
	tests := []struct {
		name         string
		raw          rawGoal
		wantPriority model.GoalPriority
		wantStatus   model.GoalStatus
	}{
		{
			name:         "defaults when priority and status are absent",
			raw:          rawGoal{ID: "g1", Name: "Emergency fund"},
			wantPriority: model.PriorityMedium,
			wantStatus:   model.GoalActive,
		},
		{
			name:         "explicit values kept",
			raw:          rawGoal{ID: "g2", Name: "Car", Priority: "High", Status: "Paused"},
			wantPriority: model.PriorityHigh,
			wantStatus:   model.GoalPaused,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeGoal(tt.raw)
			assert.Equal(t, tt.wantPriority, got.Priority)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestNormalizeGoalDeadline(t *testing.T) {
	got := normalizeGoal(rawGoal{ID: "g1", Deadline: "2026-01-31", TargetAmount: 1000, CurrentAmount: 250})
	assert.Equal(t, 2026, got.Deadline.Year())
	assert.InDelta(t, 0.25, got.Progress(), 0.001)
	assert.InDelta(t, 750, got.Remaining(), 0.001)
}

func TestUpdateGoalProgress(t *testing.T) {
	var gotPath string
	var gotBody map[string]float64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"success":true,"data":{"goal":{"id":"g1","name":"Car","target_amount":1000,"current_amount":350}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	goal, err := c.UpdateGoalProgress(context.Background(), "g1", 100)
	require.NoError(t, err)
	assert.Equal(t, "PATCH /goals/g1/progress", gotPath)
	assert.InDelta(t, 100, gotBody["amount"], 0.001)
	assert.InDelta(t, 350, goal.Current, 0.001)
}
