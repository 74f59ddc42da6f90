package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/jay870423/one-sentence/internal/model"
	"github.com/jay870423/one-sentence/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import transactions from OFX or QFX (Quicken) files exported from your bank.

Amount signs map to type: money out becomes an expense, money in an income.
Records already imported (matched by the bank's own transaction ID) are
skipped, so re-importing overlapping statements is safe.

Examples:
  sentence import-ofx ~/Downloads/chase_jan_2024.qfx
  sentence import-ofx ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")

	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	// Expand globs and collect all files
	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// If no glob matches, check if it's a direct file
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	slog.Info("Importing OFX files",
		"file_count", len(allFiles),
		"dry_run", dryRun)

	parser := ofx.NewParser()
	ctx := cmd.Context()

	var allTransactions []model.Transaction
	seen := make(map[string]bool) // cross-file deduplication within this run
	for _, filePath := range allFiles {
		f, err := os.Open(filePath)
		if err != nil {
			slog.Error("Failed to open file",
				"file", filePath,
				"error", err)
			continue
		}

		transactions, err := parser.ParseFile(ctx, f)
		_ = f.Close()
		if err != nil {
			slog.Error("Failed to parse file",
				"file", filepath.Base(filePath),
				"error", err)
			continue
		}

		for _, txn := range transactions {
			if txn.SourceID != "" {
				if seen[txn.SourceID] {
					continue
				}
				seen[txn.SourceID] = true
			}
			allTransactions = append(allTransactions, txn)
		}
	}

	if len(allTransactions) == 0 {
		fmt.Println("No transactions found in the given files.")
		return nil
	}

	if dryRun {
		for _, txn := range allTransactions {
			fmt.Printf("%s  %-7s %10.2f  %s\n", txn.DateKey(), txn.Type, txn.Amount, txn.Note)
		}
		fmt.Printf("\nDry run: %d transactions would be imported.\n", len(allTransactions))
		return nil
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	bar := progressbar.NewOptions(len(allTransactions),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing transactions..."),
	)

	// Insert in small batches so the bar tracks real progress.
	const batchSize = 50
	for start := 0; start < len(allTransactions); start += batchSize {
		end := start + batchSize
		if end > len(allTransactions) {
			end = len(allTransactions)
		}

		if err := store.SaveTransactions(ctx, allTransactions[start:end]); err != nil {
			return fmt.Errorf("failed to save transactions: %w", err)
		}
		_ = bar.Add(end - start)
	}
	_ = bar.Finish()
	fmt.Println()

	fmt.Printf("Imported %d transactions from %d files.\n", len(allTransactions), len(allFiles))
	return nil
}
