package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jay870423/one-sentence/internal/ledger"
	"github.com/jay870423/one-sentence/internal/model"
)

var (
	listHeaderStyle = lipgloss.NewStyle().Bold(true)
	listDateStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a78bfa"))
	listMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#737373"))
	listIncomeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981"))
	listErrStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show transactions grouped by date",
		Long: `Show the ledger grouped by date, newest first, with income, expense and
balance totals for the displayed range.

By default the current month is shown. --day narrows to a single date.`,
		RunE: runList,
	}

	cmd.Flags().String("month", "", "month to show (YYYY-MM, default: current)")
	cmd.Flags().String("day", "", "single day to show (YYYY-MM-DD)")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	monthFlag, _ := cmd.Flags().GetString("month")
	dayFlag, _ := cmd.Flags().GetString("day")

	year, month, err := parseMonthFlag(monthFlag)
	if err != nil {
		return err
	}

	view := ledger.View{Year: year, Month: month}
	if dayFlag != "" {
		day, err := time.Parse(time.DateOnly, dayFlag)
		if err != nil {
			return fmt.Errorf("invalid day %q, expected YYYY-MM-DD", dayFlag)
		}
		view = ledger.NewView(day)
		view.ToggleDay(dayFlag)
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

	visible := view.Visible(all)
	summary := ledger.Summarize(visible)

	scope := fmt.Sprintf("%s %d", view.Month, view.Year)
	if view.DayScoped() {
		scope = view.SelectedDate
	}

	fmt.Println(listHeaderStyle.Render(fmt.Sprintf("%s   income %s   expense %s   balance %s",
		scope,
		listIncomeStyle.Render(ledger.FormatAmount(summary.Income)),
		listErrStyle.Render(ledger.FormatAmount(summary.Expense)),
		ledger.AbbreviateAmount(summary.Balance()))))

	if len(visible) == 0 {
		fmt.Println(listMutedStyle.Render("no transactions"))
		return nil
	}

	for _, group := range ledger.GroupByDate(visible) {
		fmt.Println()
		fmt.Printf("%s  %s\n",
			listDateStyle.Render(group.Date),
			listMutedStyle.Render(fmt.Sprintf("spent %s", ledger.FormatAmount(group.Expense))))

		for _, txn := range group.Transactions {
			amount := listErrStyle.Render("-" + ledger.FormatAmount(txn.Amount))
			if txn.Type == model.TypeIncome {
				amount = listIncomeStyle.Render("+" + ledger.FormatAmount(txn.Amount))
			}
			fmt.Printf("  %-10s  %-14s %s  %s\n",
				amount,
				txn.Category,
				txn.Note,
				listMutedStyle.Render(txn.ID))
		}
	}

	return nil
}
