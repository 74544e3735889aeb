package model

// BudgetType distinguishes fixed obligations from variable spending.
type BudgetType string

const (
	// BudgetFixed covers recurring obligations like rent.
	BudgetFixed BudgetType = "Fixed"
	// BudgetVariable covers discretionary categories.
	BudgetVariable BudgetType = "Variable"
)

// DefaultAlertThreshold is the warning percentage applied when the backend
// does not supply one.
const DefaultAlertThreshold = 80

// Budget is a monthly spending limit for one category. Category is unique
// per user in practice; the client does not enforce that.
type Budget struct {
	ID             string
	Category       string
	Type           BudgetType
	Limit          float64
	AlertThreshold int
	Rollover       bool
}
