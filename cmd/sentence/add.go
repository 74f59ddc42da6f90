package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jay870423/one-sentence/internal/common"
	"github.com/jay870423/one-sentence/internal/ledger"
	"github.com/jay870423/one-sentence/internal/model"
	"github.com/jay870423/one-sentence/internal/tui"
)

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [text...]",
		Short: "Record transactions from a free-text statement",
		Long: `Turn a free-text statement into bookkeeping records.

The statement is sent to the configured language model, which splits it into
candidate records. You review and edit them before anything is saved.

Examples:
  sentence add breakfast 15, taxi yesterday 50
  echo "got paid 2k today" | sentence add`,
		RunE: runAdd,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	input := strings.TrimSpace(strings.Join(args, " "))
	if input == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		input = strings.TrimSpace(string(data))
	}
	if input == "" {
		return fmt.Errorf("nothing to record: pass a statement as arguments or on stdin")
	}

	parser, err := createParser()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	fmt.Println("Parsing...")

	// One parse per invocation; the command blocks until it completes or
	// fails, so there is never a second in-flight request.
	results, err := parser.Parse(ctx, input)
	if err != nil {
		return common.NewUserError("Parsing failed, nothing was saved", err)
	}
	if results == nil {
		fmt.Println("No transactions recognized. Try rephrasing your statement.")
		return nil
	}

	reviewed, ok, err := tui.Run(results, activeCategories())
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled, nothing saved.")
		return nil
	}

	transactions, err := model.ConfirmAll(reviewed, time.Now())
	if err != nil {
		return err
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveTransactions(ctx, transactions); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}

	for _, txn := range transactions {
		sign := "-"
		if txn.Type == model.TypeIncome {
			sign = "+"
		}
		fmt.Printf("Saved %s %s%s (%s) %s\n",
			txn.DateKey(), sign, ledger.FormatAmount(txn.Amount), txn.Category, txn.Note)
	}

	return nil
}
