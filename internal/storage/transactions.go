package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jay870423/one-sentence/internal/common"
	"github.com/jay870423/one-sentence/internal/model"
)

// SaveTransactions appends confirmed records in a single database transaction.
// Imported records carrying a source ID are skipped when already present.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransactions(transactions); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (
			id, date, amount, category, note, type, source_id, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, txn := range transactions {
		var sourceID any
		if txn.SourceID != "" {
			sourceID = txn.SourceID
		}

		if _, err := stmt.ExecContext(ctx,
			txn.ID,
			txn.DateKey(),
			txn.Amount,
			txn.Category,
			txn.Note,
			string(txn.Type),
			sourceID,
			txn.CreatedAt.UTC().Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
		}
	}

	return tx.Commit()
}

// ListTransactions returns the full collection in insertion order.
func (s *SQLiteStorage) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, amount, category, note, type, source_id, created_at
		FROM transactions
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}

// GetTransactionByID fetches a single record.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, date, amount, category, note, type, source_id, created_at
		FROM transactions
		WHERE id = ?
	`, id)

	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return &txn, nil
}

// DeleteTransaction removes exactly the record with the given ID.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}

	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanTransaction.
type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (model.Transaction, error) {
	var (
		txn       model.Transaction
		dateStr   string
		note      sql.NullString
		sourceID  sql.NullString
		typeStr   string
		createdAt string
	)

	if err := row.Scan(&txn.ID, &dateStr, &txn.Amount, &txn.Category, &note, &typeStr, &sourceID, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Transaction{}, err
		}
		return model.Transaction{}, fmt.Errorf("failed to scan transaction: %w", err)
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to parse stored date %q: %w", dateStr, err)
	}
	txn.Date = date

	if created, err := time.Parse(time.RFC3339, createdAt); err == nil {
		txn.CreatedAt = created
	}

	txn.Note = note.String
	txn.SourceID = sourceID.String
	txn.Type = model.TransactionType(typeStr)

	return txn, nil
}
