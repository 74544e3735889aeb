package model

// StatMetric is one dashboard headline figure with its month-over-month
// trend.
type StatMetric struct {
	Label          string
	Prefix         string
	TrendDirection string
	Value          float64
	Trend          float64
}

// DefaultStats is rendered when the backend returns no dashboard data yet.
func DefaultStats() []StatMetric {
	return []StatMetric{
		{Label: "Total balance", Prefix: "$", TrendDirection: "up"},
		{Label: "Income", Prefix: "$", TrendDirection: "up"},
		{Label: "Expense", Prefix: "$", TrendDirection: "down"},
		{Label: "Total savings", Prefix: "$", TrendDirection: "up"},
	}
}

// MoneyFlowPoint is one month of the income-versus-expense series.
type MoneyFlowPoint struct {
	Month   string
	Income  float64
	Expense float64
}

// BudgetSlice is one category's share of the budget summary chart.
type BudgetSlice struct {
	Name  string
	Color string
	Value float64
}

// TransactionStats is the backend aggregate over a date range.
type TransactionStats struct {
	TotalIncome      float64
	TotalExpense     float64
	NetBalance       float64
	TransactionCount int
}
