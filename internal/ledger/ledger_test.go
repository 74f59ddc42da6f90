package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jay870423/one-sentence/internal/model"
)

func tx(date string, amount float64, txType model.TransactionType) model.Transaction {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return model.Transaction{
		ID:       date + "-" + string(txType),
		Date:     d,
		Amount:   amount,
		Type:     txType,
		Category: "Other",
	}
}

func TestSummarize(t *testing.T) {
	transactions := []model.Transaction{
		tx("2026-09-01", 100, model.TypeIncome),
		tx("2026-09-01", 30, model.TypeExpense),
		tx("2026-09-02", 20, model.TypeExpense),
	}

	s := Summarize(transactions)
	assert.Equal(t, 100.0, s.Income)
	assert.Equal(t, 50.0, s.Expense)
	assert.Equal(t, 50.0, s.Balance())
}

func TestDayNets_MixedDay(t *testing.T) {
	transactions := []model.Transaction{
		tx("2026-09-01", 100, model.TypeIncome),
		tx("2026-09-01", 30, model.TypeExpense),
		tx("2026-09-15", 45, model.TypeExpense),
		tx("2026-08-31", 999, model.TypeExpense), // previous month, excluded
	}

	nets := DayNets(transactions, 2026, time.September)
	require.Len(t, nets, 2)
	assert.Equal(t, 70.0, nets[1], "income and expense on the same day combine into one net")
	assert.Equal(t, -45.0, nets[15])
	_, ok := nets[31]
	assert.False(t, ok, "days with no activity are absent")
}

func TestInMonthAndOnDate(t *testing.T) {
	transactions := []model.Transaction{
		tx("2026-08-31", 10, model.TypeExpense),
		tx("2026-09-01", 20, model.TypeExpense),
		tx("2026-09-30", 30, model.TypeExpense),
		tx("2026-10-01", 40, model.TypeExpense),
	}

	september := InMonth(transactions, 2026, time.September)
	require.Len(t, september, 2)

	first := OnDate(september, "2026-09-01")
	require.Len(t, first, 1)
	assert.Equal(t, 20.0, first[0].Amount)
}

func TestGroupByDate(t *testing.T) {
	transactions := []model.Transaction{
		tx("2026-09-01", 30, model.TypeExpense),
		tx("2026-09-03", 200, model.TypeIncome),
		tx("2026-09-03", 50, model.TypeExpense),
		tx("2026-09-02", 15, model.TypeExpense),
	}

	groups := GroupByDate(transactions)
	require.Len(t, groups, 3)

	assert.Equal(t, "2026-09-03", groups[0].Date, "groups are ordered newest date first")
	assert.Equal(t, "2026-09-02", groups[1].Date)
	assert.Equal(t, "2026-09-01", groups[2].Date)

	assert.Len(t, groups[0].Transactions, 2)
	assert.Equal(t, 50.0, groups[0].Expense, "group subtotal counts expenses only")
	assert.Equal(t, 15.0, groups[1].Expense)
}

func TestAbbreviateAmount(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "positive below threshold", in: 70, want: "+70"},
		{name: "negative below threshold", in: -45, want: "-45"},
		{name: "positive thousands", in: 1234, want: "+1.2k"},
		{name: "negative thousands", in: -1250, want: "-1.2k"},
		{name: "exact thousand", in: 1000, want: "+1.0k"},
		{name: "cents preserved below threshold", in: -12.5, want: "-12.50"},
		{name: "zero", in: 0, want: "+0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AbbreviateAmount(tt.in))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "120", FormatAmount(120))
	assert.Equal(t, "120.50", FormatAmount(120.5))
	assert.Equal(t, "30", FormatAmount(-30))
}
