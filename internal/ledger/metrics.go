package ledger

import (
	"math"
	"sort"
	"time"

	"github.com/nyunja/fity-cli/internal/model"
)

// BudgetAnalysis is one budget with its spend-to-date derivations.
type BudgetAnalysis struct {
	Budget    model.Budget
	Spent     float64
	Remaining float64
	Progress  float64
	Overspent bool
	Warning   bool
}

// AnalyzeBudget derives spend, remaining, progress and the alert flags for
// one budget over the given transactions. Progress is clamped to [0,100]
// no matter how far spending exceeds the limit.
func AnalyzeBudget(b model.Budget, transactions []model.Transaction) BudgetAnalysis {
	var spent float64
	for _, tx := range transactions {
		if tx.Category == b.Category && tx.Amount < 0 {
			spent += math.Abs(tx.Amount)
		}
	}

	var progress float64
	switch {
	case b.Limit > 0:
		progress = math.Min(100, spent/b.Limit*100)
	case spent > 0:
		progress = 100
	}

	threshold := b.AlertThreshold
	if threshold <= 0 {
		threshold = model.DefaultAlertThreshold
	}

	overspent := spent > b.Limit
	return BudgetAnalysis{
		Budget:    b,
		Spent:     spent,
		Remaining: b.Limit - spent,
		Progress:  progress,
		Overspent: overspent,
		Warning:   !overspent && progress >= float64(threshold),
	}
}

// AnalyzeBudgets runs AnalyzeBudget over every budget, preserving order.
func AnalyzeBudgets(budgets []model.Budget, transactions []model.Transaction) []BudgetAnalysis {
	analyses := make([]BudgetAnalysis, 0, len(budgets))
	for _, b := range budgets {
		analyses = append(analyses, AnalyzeBudget(b, transactions))
	}
	return analyses
}

// MonthlySuggestion returns how much to save per month to hit the goal by
// its deadline. The month count is the whole-month difference between now
// and the deadline; when the deadline is this month or has passed, the
// whole remaining gap is suggested.
func MonthlySuggestion(g model.SavingGoal, now time.Time) float64 {
	if g.Deadline.IsZero() {
		return 0
	}
	months := (g.Deadline.Year()-now.Year())*12 + int(g.Deadline.Month()) - int(now.Month())
	if months <= 0 {
		return g.Target - g.Current
	}
	return (g.Target - g.Current) / float64(months)
}

// GoalPortfolio aggregates a set of goals for the goals page header.
type GoalPortfolio struct {
	TotalTarget     float64
	TotalSaved      float64
	AverageProgress float64
	ActiveCount     int
}

// SummarizeGoals computes the portfolio header figures.
func SummarizeGoals(goals []model.SavingGoal) GoalPortfolio {
	var p GoalPortfolio
	for _, g := range goals {
		p.TotalTarget += g.Target
		p.TotalSaved += g.Current
		if g.Status == model.GoalActive {
			p.ActiveCount++
		}
	}
	if p.TotalTarget > 0 {
		p.AverageProgress = p.TotalSaved / p.TotalTarget * 100
	}
	return p
}

// FinancialMetrics are the analytics-page totals over all transactions.
type FinancialMetrics struct {
	TotalIncome  float64
	TotalExpense float64
	NetSavings   float64
	SavingsRate  float64
}

// ComputeMetrics totals income and expense and derives the savings rate as
// a percentage of income (zero when there is no income).
func ComputeMetrics(transactions []model.Transaction) FinancialMetrics {
	var m FinancialMetrics
	for _, tx := range transactions {
		if tx.Amount > 0 {
			m.TotalIncome += tx.Amount
		}
		if tx.Amount < 0 {
			m.TotalExpense += math.Abs(tx.Amount)
		}
	}
	m.NetSavings = m.TotalIncome - m.TotalExpense
	if m.TotalIncome > 0 {
		m.SavingsRate = m.NetSavings / m.TotalIncome * 100
	}
	return m
}

// Health is the heuristic financial health score. Presentation-only; it is
// never persisted.
type Health struct {
	Label     string
	Score     int
	Overspent int
}

// HealthScore starts from a base of 50, rewards a savings rate above 10%
// or 20%, deducts 5 points per overspent budget and clamps to [0,100].
func HealthScore(savingsRate float64, budgets []model.Budget, transactions []model.Transaction) Health {
	score := 50

	if savingsRate > 20 {
		score += 20
	} else if savingsRate > 10 {
		score += 10
	}

	overspent := 0
	for _, b := range budgets {
		if AnalyzeBudget(b, transactions).Overspent {
			overspent++
		}
	}
	score -= overspent * 5

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	label := "Needs Work"
	switch {
	case score >= 80:
		label = "Excellent"
	case score >= 60:
		label = "Good"
	case score >= 40:
		label = "Fair"
	}

	return Health{Score: score, Label: label, Overspent: overspent}
}

// CategoryTotal is one expense category's accumulated spend.
type CategoryTotal struct {
	Name  string
	Value float64
}

// CategoryBreakdown returns the top five expense categories by spend.
func CategoryBreakdown(transactions []model.Transaction) []CategoryTotal {
	totals := make(map[string]float64)
	order := make([]string, 0)
	for _, tx := range transactions {
		if tx.Amount >= 0 {
			continue
		}
		if _, ok := totals[tx.Category]; !ok {
			order = append(order, tx.Category)
		}
		totals[tx.Category] += math.Abs(tx.Amount)
	}

	breakdown := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		breakdown = append(breakdown, CategoryTotal{Name: name, Value: totals[name]})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Value > breakdown[j].Value
	})
	if len(breakdown) > 5 {
		breakdown = breakdown[:5]
	}
	return breakdown
}

// recurringCategories are the categories treated as recurring obligations.
var recurringCategories = map[string]bool{
	"Subscription": true,
	"Utilities":    true,
	"Rent":         true,
	"Internet":     true,
}

// RecurringExpense is one detected recurring obligation. Amount is taken
// from the first occurrence seen.
type RecurringExpense struct {
	Name     string
	Category string
	Amount   float64
}

// RecurringExpenses picks out expenses in recurring categories, one entry
// per distinct name in first-seen order.
func RecurringExpenses(transactions []model.Transaction) []RecurringExpense {
	seen := make(map[string]bool)
	recurring := make([]RecurringExpense, 0)
	for _, tx := range transactions {
		if tx.Amount >= 0 || seen[tx.Name] {
			continue
		}
		seen[tx.Name] = true
		if recurringCategories[tx.Category] {
			recurring = append(recurring, RecurringExpense{
				Name:     tx.Name,
				Category: tx.Category,
				Amount:   math.Abs(tx.Amount),
			})
		}
	}
	return recurring
}
