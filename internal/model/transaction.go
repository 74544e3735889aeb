// Package model defines the canonical in-memory entities the client works
// with after boundary normalization.
package model

import "time"

// TransactionStatus is the settlement state reported by the backend.
type TransactionStatus string

const (
	// StatusCompleted is the default settlement state.
	StatusCompleted TransactionStatus = "Completed"
	// StatusPending marks a transaction still clearing.
	StatusPending TransactionStatus = "Pending"
	// StatusFailed marks a transaction that did not settle.
	StatusFailed TransactionStatus = "Failed"
)

// Transaction is a single normalized ledger entry. Amount is signed:
// positive means income, negative means expense. The sign is synthesized at
// the boundary from the backend's unsigned amount and type field.
type Transaction struct {
	Date        time.Time
	ID          string
	Name        string
	Method      string
	Category    string
	Wallet      string
	Notes       string
	DisplayDate string
	Status      TransactionStatus
	Amount      float64
}

// IsIncome reports whether the entry adds money. A zero amount counts as
// both income and expense for filtering purposes.
func (t Transaction) IsIncome() bool { return t.Amount >= 0 }

// IsExpense reports whether the entry removes money.
func (t Transaction) IsExpense() bool { return t.Amount <= 0 }
