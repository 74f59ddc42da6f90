package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jay870423/one-sentence/internal/ledger"
)

const calendarCellWidth = 9

var (
	calHeaderStyle  = lipgloss.NewStyle().Bold(true)
	calWeekdayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a78bfa")).Width(calendarCellWidth)
	calDayStyle     = lipgloss.NewStyle().Width(calendarCellWidth)
	calNetPosStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981")).Width(calendarCellWidth)
	calNetNegStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Width(calendarCellWidth)
	calEmptyStyle   = lipgloss.NewStyle().Width(calendarCellWidth)
)

func calendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month calendar with daily net totals",
		RunE:  runCalendar,
	}

	cmd.Flags().String("month", "", "month to show (YYYY-MM, default: current)")

	return cmd
}

func runCalendar(cmd *cobra.Command, _ []string) error {
	monthFlag, _ := cmd.Flags().GetString("month")

	year, month, err := parseMonthFlag(monthFlag)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	all, err := store.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	nets := ledger.DayNets(all, year, month)
	fmt.Println(renderCalendar(year, month, nets))

	summary := ledger.Summarize(ledger.InMonth(all, year, month))
	fmt.Printf("income %s   expense %s   balance %s\n",
		ledger.FormatAmount(summary.Income),
		ledger.FormatAmount(summary.Expense),
		ledger.AbbreviateAmount(summary.Balance()))

	return nil
}

// renderCalendar lays out the month as Sunday-first weeks; each day cell
// shows the day number and, when there was activity, its net total.
func renderCalendar(year int, month time.Month, nets map[int]float64) string {
	var b strings.Builder

	b.WriteString(calHeaderStyle.Render(fmt.Sprintf("%s %d", month, year)))
	b.WriteString("\n")

	for _, wd := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		b.WriteString(calWeekdayStyle.Render(wd))
	}
	b.WriteString("\n")

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	weekday := int(first.Weekday())

	var dayLine, netLine strings.Builder
	for i := 0; i < weekday; i++ {
		dayLine.WriteString(calEmptyStyle.Render(""))
		netLine.WriteString(calEmptyStyle.Render(""))
	}

	flush := func() {
		b.WriteString(dayLine.String())
		b.WriteString("\n")
		b.WriteString(netLine.String())
		b.WriteString("\n")
		dayLine.Reset()
		netLine.Reset()
	}

	for day := 1; day <= daysInMonth; day++ {
		dayLine.WriteString(calDayStyle.Render(fmt.Sprintf("%d", day)))

		if net, ok := nets[day]; ok {
			style := calNetPosStyle
			if net < 0 {
				style = calNetNegStyle
			}
			netLine.WriteString(style.Render(ledger.AbbreviateAmount(net)))
		} else {
			netLine.WriteString(calEmptyStyle.Render(""))
		}

		weekday = (weekday + 1) % 7
		if weekday == 0 {
			flush()
		}
	}

	if dayLine.Len() > 0 {
		flush()
	}

	return b.String()
}
