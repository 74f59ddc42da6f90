package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jay870423/one-sentence/internal/model"
)

func TestViewToggleDay(t *testing.T) {
	v := NewView(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	assert.False(t, v.DayScoped())

	v.ToggleDay("2026-09-15")
	assert.True(t, v.DayScoped())
	assert.Equal(t, "2026-09-15", v.SelectedDate)

	v.ToggleDay("2026-09-16")
	assert.Equal(t, "2026-09-16", v.SelectedDate, "selecting another day moves the selection")

	v.ToggleDay("2026-09-16")
	assert.False(t, v.DayScoped(), "selecting the same day twice reverts to month scope")
}

func TestViewVisible(t *testing.T) {
	transactions := []model.Transaction{
		tx("2026-08-31", 10, model.TypeExpense),
		tx("2026-09-01", 20, model.TypeExpense),
		tx("2026-09-15", 30, model.TypeIncome),
	}

	v := NewView(time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC))

	monthScope := v.Visible(transactions)
	require.Len(t, monthScope, 2, "month scope excludes other months")

	v.ToggleDay("2026-09-15")
	dayScope := v.Visible(transactions)
	require.Len(t, dayScope, 1)
	assert.Equal(t, 30.0, dayScope[0].Amount)
}
