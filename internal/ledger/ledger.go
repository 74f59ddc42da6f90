// Package ledger derives calendar and list views from the transaction
// collection: month and day scoping, per-day net totals, income/expense
// aggregates and date grouping. All functions are pure.
package ledger

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/jay870423/one-sentence/internal/model"
)

// Summary aggregates a displayed subset of transactions.
type Summary struct {
	Income  float64
	Expense float64
}

// Balance is income minus expense.
func (s Summary) Balance() float64 {
	return s.Income - s.Expense
}

// DateGroup is one list-view section: all transactions sharing an exact
// calendar date, newest date first across groups.
type DateGroup struct {
	Date         string
	Transactions []model.Transaction
	Expense      float64
}

// InMonth returns the subset of transactions whose date falls in the given
// year and month.
func InMonth(transactions []model.Transaction, year int, month time.Month) []model.Transaction {
	var out []model.Transaction
	for _, t := range transactions {
		if t.Date.Year() == year && t.Date.Month() == month {
			out = append(out, t)
		}
	}
	return out
}

// OnDate returns the subset of transactions on the exact ISO calendar date.
func OnDate(transactions []model.Transaction, date string) []model.Transaction {
	var out []model.Transaction
	for _, t := range transactions {
		if t.DateKey() == date {
			out = append(out, t)
		}
	}
	return out
}

// Summarize computes income, expense and balance over a subset.
func Summarize(transactions []model.Transaction) Summary {
	var s Summary
	for _, t := range transactions {
		if t.Type == model.TypeIncome {
			s.Income += t.Amount
		} else {
			s.Expense += t.Amount
		}
	}
	return s
}

// DayNets computes the net signed total (income minus expense) per day of
// month, for calendar cell annotations. Days with no activity are absent.
func DayNets(transactions []model.Transaction, year int, month time.Month) map[int]float64 {
	nets := make(map[int]float64)
	for _, t := range InMonth(transactions, year, month) {
		nets[t.Date.Day()] += t.Signed()
	}
	return nets
}

// GroupByDate groups a subset by exact date, sorted descending by date
// string. Each group carries its own expense subtotal.
func GroupByDate(transactions []model.Transaction) []DateGroup {
	byDate := make(map[string][]model.Transaction)
	for _, t := range transactions {
		key := t.DateKey()
		byDate[key] = append(byDate[key], t)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	groups := make([]DateGroup, 0, len(dates))
	for _, date := range dates {
		group := DateGroup{Date: date, Transactions: byDate[date]}
		for _, t := range group.Transactions {
			if t.Type == model.TypeExpense {
				group.Expense += t.Amount
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// AbbreviateAmount renders a signed total for calendar cells. Magnitudes of
// 1000 and above fold thousands to one decimal with a "k" suffix; the
// leading sign always matches the total's sign.
func AbbreviateAmount(v float64) string {
	sign := "+"
	if v < 0 {
		sign = "-"
	}
	mag := math.Abs(v)
	if mag >= 1000 {
		return fmt.Sprintf("%s%.1fk", sign, mag/1000)
	}
	return fmt.Sprintf("%s%s", sign, trimAmount(mag))
}

// FormatAmount renders a plain unsigned amount, dropping trailing zero cents.
func FormatAmount(v float64) string {
	return trimAmount(math.Abs(v))
}

func trimAmount(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
