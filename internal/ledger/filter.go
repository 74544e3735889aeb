// Package ledger holds the pure data-shaping pipeline: filtering, grouping
// and the derived metrics rendered on the budgets, goals and analytics
// screens. Everything here is in-memory math over normalized transactions;
// no I/O.
package ledger

import (
	"strings"

	"github.com/nyunja/fity-cli/internal/model"
)

// TypeFilter selects income, expense, or everything.
type TypeFilter string

const (
	// TypeAll passes every transaction.
	TypeAll TypeFilter = "All"
	// TypeIncome excludes negative amounts.
	TypeIncome TypeFilter = "Income"
	// TypeExpense excludes positive amounts.
	TypeExpense TypeFilter = "Expense"
)

// Filter is the conjunction of the three list filters. Zero values pass
// everything.
type Filter struct {
	Type   TypeFilter
	Wallet string
	Search string
}

// Apply returns the transactions passing all three predicates, preserving
// input order. An exact-zero amount passes both Income and Expense.
func Apply(transactions []model.Transaction, f Filter) []model.Transaction {
	filtered := make([]model.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if matches(tx, f) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

func matches(tx model.Transaction, f Filter) bool {
	if f.Type == TypeIncome && tx.Amount < 0 {
		return false
	}
	if f.Type == TypeExpense && tx.Amount > 0 {
		return false
	}

	if f.Wallet != "" && f.Wallet != "All" {
		wallet := strings.ToLower(f.Wallet)
		methodMatch := strings.Contains(strings.ToLower(tx.Method), wallet)
		walletMatch := strings.Contains(strings.ToLower(tx.Wallet), wallet)
		if !methodMatch && !walletMatch {
			return false
		}
	}

	// Once type and wallet have passed, a present search query decides the
	// outcome on its own.
	if f.Search != "" {
		query := strings.ToLower(f.Search)
		return strings.Contains(strings.ToLower(tx.Name), query) ||
			strings.Contains(strings.ToLower(tx.Category), query) ||
			strings.Contains(strings.ToLower(tx.Method), query) ||
			(tx.Notes != "" && strings.Contains(strings.ToLower(tx.Notes), query))
	}

	return true
}
