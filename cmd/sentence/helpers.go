package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/jay870423/one-sentence/internal/config"
	"github.com/jay870423/one-sentence/internal/service"
	"github.com/jay870423/one-sentence/internal/storage"
)

// openStorage opens the ledger database and brings the schema up to date.
// Callers own closing it.
func openStorage(ctx context.Context) (service.Storage, error) {
	dbPath := config.ExpandPath(viper.GetString("database.path"))
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate ledger database: %w", err)
	}

	return store, nil
}

// activeCategories returns the configured vocabulary, or the default set.
func activeCategories() []string {
	if cats := viper.GetStringSlice("categories"); len(cats) > 0 {
		return cats
	}
	return nil // callers fall back to model.DefaultCategories
}

// parseMonthFlag parses a --month value as YYYY-MM, defaulting to the
// current month when empty.
func parseMonthFlag(value string) (int, time.Month, error) {
	if value == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}

	t, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM", value)
	}
	return t.Year(), t.Month(), nil
}
