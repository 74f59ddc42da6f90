package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResultConfirm(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		result  ParseResult
		wantErr string
	}{
		{
			name:   "valid expense",
			result: ParseResult{Amount: 120, Category: "Food", Note: "lunch", Date: "2026-09-01", Type: TypeExpense},
		},
		{
			name:   "valid income",
			result: ParseResult{Amount: 2000, Category: "Salary", Note: "bonus", Date: "2026-08-31", Type: TypeIncome},
		},
		{
			name:    "malformed date",
			result:  ParseResult{Amount: 10, Category: "Food", Date: "09/01/2026", Type: TypeExpense},
			wantErr: "invalid date",
		},
		{
			name:    "missing date",
			result:  ParseResult{Amount: 10, Category: "Food", Type: TypeExpense},
			wantErr: "invalid date",
		},
		{
			name:    "negative amount",
			result:  ParseResult{Amount: -10, Category: "Food", Date: "2026-09-01", Type: TypeExpense},
			wantErr: "negative amount",
		},
		{
			name:    "unknown type",
			result:  ParseResult{Amount: 10, Category: "Food", Date: "2026-09-01", Type: "transfer"},
			wantErr: "invalid transaction type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn, err := tt.result.Confirm(now)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, txn.ID)
			assert.Equal(t, tt.result.Date, txn.DateKey())
			assert.Equal(t, tt.result.Amount, txn.Amount)
			assert.Equal(t, tt.result.Type, txn.Type)
			assert.Equal(t, now, txn.CreatedAt)
		})
	}
}

func TestConfirmAssignsUniqueIDs(t *testing.T) {
	now := time.Now()
	r := ParseResult{Amount: 10, Category: "Food", Date: "2026-09-01", Type: TypeExpense}

	a, err := r.Confirm(now)
	require.NoError(t, err)
	b, err := r.Confirm(now)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestConfirmAll(t *testing.T) {
	now := time.Now()
	results := []ParseResult{
		{Amount: 10, Category: "Food", Date: "2026-09-01", Type: TypeExpense},
		{Amount: 20, Category: "Transport", Date: "2026-09-02", Type: TypeExpense},
	}

	transactions, err := ConfirmAll(results, now)
	require.NoError(t, err)
	assert.Len(t, transactions, 2)
}

func TestConfirmAllRejectsPartialBatch(t *testing.T) {
	now := time.Now()
	results := []ParseResult{
		{Amount: 10, Category: "Food", Date: "2026-09-01", Type: TypeExpense},
		{Amount: 20, Category: "Transport", Date: "bad-date", Type: TypeExpense},
	}

	transactions, err := ConfirmAll(results, now)
	require.Error(t, err)
	assert.Nil(t, transactions, "one invalid record fails the whole batch")
	assert.Contains(t, err.Error(), "record 2")
}

func TestTransactionTypeToggle(t *testing.T) {
	assert.Equal(t, TypeIncome, TypeExpense.Toggle())
	assert.Equal(t, TypeExpense, TypeIncome.Toggle())
}

func TestTransactionSigned(t *testing.T) {
	income := Transaction{Amount: 100, Type: TypeIncome}
	expense := Transaction{Amount: 30, Type: TypeExpense}

	assert.Equal(t, 100.0, income.Signed())
	assert.Equal(t, -30.0, expense.Signed())
}
