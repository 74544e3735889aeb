package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nyunja/fity-cli/internal/model"
)

func TestAnalyzeBudget(t *testing.T) {
	transactions := []model.Transaction{
		{Category: "Food", Amount: -60},
		{Category: "Food", Amount: -30},
		{Category: "Food", Amount: 20}, // income in the category is not spend
		{Category: "Transport", Amount: -50},
	}

	tests := []struct {
		name          string
		budget        model.Budget
		wantSpent     float64
		wantProgress  float64
		wantOverspent bool
		wantWarning   bool
	}{
		{
			name:         "under threshold",
			budget:       model.Budget{Category: "Food", Limit: 200, AlertThreshold: 80},
			wantSpent:    90,
			wantProgress: 45,
		},
		{
			name:        "at threshold warns",
			budget:      model.Budget{Category: "Food", Limit: 100, AlertThreshold: 80},
			wantSpent:   90, wantProgress: 90,
			wantWarning: true,
		},
		{
			name:          "overspent clamps progress and suppresses warning",
			budget:        model.Budget{Category: "Food", Limit: 50, AlertThreshold: 80},
			wantSpent:     90,
			wantProgress:  100,
			wantOverspent: true,
		},
		{
			name:         "zero limit with spend pins to 100",
			budget:       model.Budget{Category: "Transport", Limit: 0},
			wantSpent:    50,
			wantProgress: 100,
			// spent > limit with a zero limit
			wantOverspent: true,
		},
		{
			name:         "no spend in category",
			budget:       model.Budget{Category: "Rent", Limit: 1000},
			wantSpent:    0,
			wantProgress: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeBudget(tt.budget, transactions)
			assert.InDelta(t, tt.wantSpent, got.Spent, 0.001)
			assert.InDelta(t, tt.wantProgress, got.Progress, 0.001)
			assert.Equal(t, tt.wantOverspent, got.Overspent)
			assert.Equal(t, tt.wantWarning, got.Warning)
			assert.InDelta(t, tt.budget.Limit-tt.wantSpent, got.Remaining, 0.001)
		})
	}
}

func TestAnalyzeBudgetDefaultThreshold(t *testing.T) {
	// An unset threshold falls back to 80 percent.
	b := model.Budget{Category: "Food", Limit: 100}
	got := AnalyzeBudget(b, []model.Transaction{{Category: "Food", Amount: -85}})
	assert.True(t, got.Warning)
}

func TestAnalyzeBudgetsPreservesOrder(t *testing.T) {
	budgets := []model.Budget{
		{Category: "B", Limit: 10},
		{Category: "A", Limit: 10},
	}
	got := AnalyzeBudgets(budgets, nil)
	assert.Equal(t, "B", got[0].Budget.Category)
	assert.Equal(t, "A", got[1].Budget.Category)
}

func TestMonthlySuggestion(t *testing.T) {
	now := time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		goal model.SavingGoal
		want float64
	}{
		{
			name: "five months out",
			goal: model.SavingGoal{Target: 1000, Current: 500, Deadline: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)},
			want: 100,
		},
		{
			name: "deadline this month suggests the whole gap",
			goal: model.SavingGoal{Target: 1000, Current: 400, Deadline: time.Date(2025, time.July, 31, 0, 0, 0, 0, time.UTC)},
			want: 600,
		},
		{
			name: "past deadline suggests the whole gap",
			goal: model.SavingGoal{Target: 1000, Current: 400, Deadline: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
			want: 600,
		},
		{
			name: "no deadline suggests nothing",
			goal: model.SavingGoal{Target: 1000, Current: 0},
			want: 0,
		},
		{
			name: "deadline next year counts whole months",
			goal: model.SavingGoal{Target: 1200, Current: 0, Deadline: time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MonthlySuggestion(tt.goal, now), 0.001)
		})
	}
}

func TestSummarizeGoals(t *testing.T) {
	goals := []model.SavingGoal{
		{Target: 1000, Current: 600, Status: model.GoalActive},
		{Target: 500, Current: 150, Status: model.GoalPaused},
		{Target: 500, Current: 250, Status: model.GoalActive},
	}

	p := SummarizeGoals(goals)
	assert.InDelta(t, 2000, p.TotalTarget, 0.001)
	assert.InDelta(t, 1000, p.TotalSaved, 0.001)
	assert.InDelta(t, 50, p.AverageProgress, 0.001)
	assert.Equal(t, 2, p.ActiveCount)
}

func TestSummarizeGoalsEmpty(t *testing.T) {
	p := SummarizeGoals(nil)
	assert.Zero(t, p.AverageProgress)
	assert.Zero(t, p.ActiveCount)
}

func TestComputeMetrics(t *testing.T) {
	tests := []struct {
		name         string
		transactions []model.Transaction
		want         FinancialMetrics
	}{
		{
			name: "normal mix",
			transactions: []model.Transaction{
				{Amount: 2000},
				{Amount: -500},
				{Amount: -300},
			},
			want: FinancialMetrics{TotalIncome: 2000, TotalExpense: 800, NetSavings: 1200, SavingsRate: 60},
		},
		{
			name:         "no income leaves rate at zero",
			transactions: []model.Transaction{{Amount: -100}},
			want:         FinancialMetrics{TotalExpense: 100, NetSavings: -100},
		},
		{
			name: "negative net still derives rate",
			transactions: []model.Transaction{
				{Amount: 100},
				{Amount: -150},
			},
			want: FinancialMetrics{TotalIncome: 100, TotalExpense: 150, NetSavings: -50, SavingsRate: -50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMetrics(tt.transactions)
			assert.InDelta(t, tt.want.TotalIncome, got.TotalIncome, 0.001)
			assert.InDelta(t, tt.want.TotalExpense, got.TotalExpense, 0.001)
			assert.InDelta(t, tt.want.NetSavings, got.NetSavings, 0.001)
			assert.InDelta(t, tt.want.SavingsRate, got.SavingsRate, 0.001)
		})
	}
}

func TestHealthScore(t *testing.T) {
	overspentBudget := model.Budget{Category: "Food", Limit: 10}
	overspentTx := []model.Transaction{{Category: "Food", Amount: -50}}

	tests := []struct {
		name         string
		savingsRate  float64
		budgets      []model.Budget
		transactions []model.Transaction
		wantScore    int
		wantLabel    string
	}{
		{
			name:        "high savings rate",
			savingsRate: 25,
			wantScore:   70,
			wantLabel:   "Good",
		},
		{
			name:        "moderate savings rate",
			savingsRate: 15,
			wantScore:   60,
			wantLabel:   "Good",
		},
		{
			name:        "base score",
			savingsRate: 5,
			wantScore:   50,
			wantLabel:   "Fair",
		},
		{
			name:         "overspending deducts",
			savingsRate:  25,
			budgets:      []model.Budget{overspentBudget},
			transactions: overspentTx,
			wantScore:    65,
			wantLabel:    "Good",
		},
		{
			name:        "boundary exactly 20 gets the smaller bonus",
			savingsRate: 20,
			wantScore:   60,
			wantLabel:   "Good",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HealthScore(tt.savingsRate, tt.budgets, tt.transactions)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantLabel, got.Label)
		})
	}
}

func TestHealthScoreClamps(t *testing.T) {
	// Eleven overspent budgets would push 50 below zero.
	budgets := make([]model.Budget, 11)
	transactions := make([]model.Transaction, 0, 11)
	for i := range budgets {
		cat := string(rune('A' + i))
		budgets[i] = model.Budget{Category: cat, Limit: 1}
		transactions = append(transactions, model.Transaction{Category: cat, Amount: -10})
	}

	got := HealthScore(0, budgets, transactions)
	assert.Equal(t, 0, got.Score)
	assert.Equal(t, "Needs Work", got.Label)
	assert.Equal(t, 11, got.Overspent)
}

func TestCategoryBreakdown(t *testing.T) {
	transactions := []model.Transaction{
		{Category: "Food", Amount: -50},
		{Category: "Rent", Amount: -800},
		{Category: "Food", Amount: -25},
		{Category: "Transport", Amount: -30},
		{Category: "Salary", Amount: 2000}, // income ignored
		{Category: "Fun", Amount: -10},
		{Category: "Health", Amount: -20},
		{Category: "Clothes", Amount: -5},
	}

	got := CategoryBreakdown(transactions)
	assert.Len(t, got, 5, "capped at five categories")
	assert.Equal(t, "Rent", got[0].Name)
	assert.InDelta(t, 800, got[0].Value, 0.001)
	assert.Equal(t, "Food", got[1].Name)
	assert.InDelta(t, 75, got[1].Value, 0.001)
	for _, c := range got {
		assert.NotEqual(t, "Salary", c.Name)
		assert.NotEqual(t, "Clothes", c.Name, "smallest category drops off")
	}
}

func TestRecurringExpenses(t *testing.T) {
	transactions := []model.Transaction{
		{Name: "Netflix", Category: "Subscription", Amount: -15.99},
		{Name: "KPLC", Category: "Utilities", Amount: -45},
		{Name: "Netflix", Category: "Subscription", Amount: -17.99}, // duplicate name skipped
		{Name: "Groceries", Category: "Food", Amount: -80},          // non-recurring category
		{Name: "Bonus", Category: "Subscription", Amount: 100},      // income skipped
	}

	got := RecurringExpenses(transactions)
	assert.Len(t, got, 2)
	assert.Equal(t, "Netflix", got[0].Name)
	assert.InDelta(t, 15.99, got[0].Amount, 0.001, "amount comes from the first occurrence")
	assert.Equal(t, "KPLC", got[1].Name)
}
