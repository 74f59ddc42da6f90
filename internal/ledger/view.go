package ledger

import (
	"time"

	"github.com/jay870423/one-sentence/internal/model"
)

// View holds the list view's scope: a month, optionally narrowed to one
// selected day. The zero SelectedDate means month scope.
type View struct {
	SelectedDate string
	Year         int
	Month        time.Month
}

// NewView creates a month-scoped view for the month containing t.
func NewView(t time.Time) View {
	return View{Year: t.Year(), Month: t.Month()}
}

// ToggleDay selects a day, or reverts to month scope when the same day is
// selected twice.
func (v *View) ToggleDay(date string) {
	if v.SelectedDate == date {
		v.SelectedDate = ""
		return
	}
	v.SelectedDate = date
}

// DayScoped reports whether a single day is selected.
func (v View) DayScoped() bool {
	return v.SelectedDate != ""
}

// Visible applies the view's scope to the full collection: the month subset,
// further narrowed to the selected date when one is set.
func (v View) Visible(transactions []model.Transaction) []model.Transaction {
	subset := InMonth(transactions, v.Year, v.Month)
	if v.SelectedDate == "" {
		return subset
	}
	return OnDate(subset, v.SelectedDate)
}
