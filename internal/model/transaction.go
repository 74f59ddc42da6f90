// Package model defines the core domain models used throughout the application.
package model

import "time"

// TransactionType indicates whether a transaction is money out or money in.
type TransactionType string

const (
	// TypeExpense represents money leaving the ledger.
	TypeExpense TransactionType = "expense"
	// TypeIncome represents money entering the ledger.
	TypeIncome TransactionType = "income"
)

// Valid reports whether the type is one of the two known literals.
func (t TransactionType) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

// Toggle flips expense to income and back.
func (t TransactionType) Toggle() TransactionType {
	if t == TypeExpense {
		return TypeIncome
	}
	return TypeExpense
}

// Transaction is a confirmed, persisted bookkeeping record. It is immutable
// once created; the only supported mutation is deletion by ID.
type Transaction struct {
	Date      time.Time
	CreatedAt time.Time
	ID        string
	Category  string
	Note      string
	SourceID  string // upstream identifier for imported records, used for deduplication
	Type      TransactionType
	Amount    float64
}

// DateKey returns the ISO calendar date used for grouping and display.
func (t Transaction) DateKey() string {
	return t.Date.Format(time.DateOnly)
}

// Signed returns the amount with a sign reflecting its direction:
// positive for income, negative for expense.
func (t Transaction) Signed() float64 {
	if t.Type == TypeIncome {
		return t.Amount
	}
	return -t.Amount
}
