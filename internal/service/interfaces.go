// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/jay870423/one-sentence/internal/model"
)

// Storage defines the contract for the persistence layer. The ledger is
// small enough to read in full; views derive everything else in memory.
type Storage interface {
	// SaveTransactions appends confirmed records atomically.
	SaveTransactions(ctx context.Context, transactions []model.Transaction) error
	// ListTransactions returns the full collection in insertion order.
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	// GetTransactionByID fetches a single record.
	GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error)
	// DeleteTransaction removes exactly the record with the given ID.
	DeleteTransaction(ctx context.Context, id string) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// Extractor turns free text into candidate records. Implemented by llm.Parser;
// defined here so commands and tests can swap in doubles.
type Extractor interface {
	Parse(ctx context.Context, input string) ([]model.ParseResult, error)
}
