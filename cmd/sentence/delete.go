package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jay870423/one-sentence/internal/common"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteTransaction(ctx, args[0]); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return fmt.Errorf("no transaction with ID %s; run `sentence list` to see IDs", args[0])
				}
				return err
			}

			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}
