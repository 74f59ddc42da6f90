package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ParseResult is an unconfirmed candidate record extracted by a provider.
// It has no identity and may be freely edited during review; it is destroyed
// either by cancellation or by conversion into a Transaction on confirm.
type ParseResult struct {
	Category string          `json:"category"`
	Note     string          `json:"note,omitempty"`
	Date     string          `json:"date"` // ISO calendar date, YYYY-MM-DD
	Type     TransactionType `json:"type"`
	Amount   float64         `json:"amount"`
}

// Confirm converts an edited ParseResult into a Transaction, assigning a
// fresh ID and creation timestamp.
func (p ParseResult) Confirm(now time.Time) (Transaction, error) {
	date, err := time.Parse(time.DateOnly, p.Date)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid date %q: %w", p.Date, err)
	}
	if p.Amount < 0 {
		return Transaction{}, fmt.Errorf("negative amount %.2f", p.Amount)
	}
	if !p.Type.Valid() {
		return Transaction{}, fmt.Errorf("invalid transaction type %q", p.Type)
	}

	return Transaction{
		ID:        uuid.NewString(),
		Date:      date,
		Amount:    p.Amount,
		Category:  p.Category,
		Note:      p.Note,
		Type:      p.Type,
		CreatedAt: now,
	}, nil
}

// ConfirmAll converts a batch of reviewed results. It fails on the first
// invalid entry so a partial batch is never committed.
func ConfirmAll(results []ParseResult, now time.Time) ([]Transaction, error) {
	transactions := make([]Transaction, 0, len(results))
	for i, r := range results {
		txn, err := r.Confirm(now)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		transactions = append(transactions, txn)
	}
	return transactions, nil
}
