package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nimesh4992/Stack-sub000/internal/common"
	"github.com/nimesh4992/Stack-sub000/internal/model"
	"github.com/nimesh4992/Stack-sub000/internal/service"
)

var _ service.Ledger = (*SQLiteStorage)(nil)

const entryColumns = `id, hash, received_at, source, raw_text, type, amount, balance,
	merchant_name, bank_id, bank_name, account_last4, category_id, confidence`

// SaveEntries inserts entries in one transaction and returns how many were
// new. Entries whose hash is already stored are skipped.
func (s *SQLiteStorage) SaveEntries(ctx context.Context, entries []model.LedgerEntry) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateEntries(entries); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO ledger_entries (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for i := range entries {
		res, err := stmt.ExecContext(ctx, entryArgs(&entries[i])...)
		if err != nil {
			return 0, fmt.Errorf("failed to insert entry %s: %w", entries[i].ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to read rows affected: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit entries: %w", err)
	}

	return inserted, nil
}

// SaveEntry inserts one entry, failing with common.ErrDuplicateEntry when
// the same SMS is already stored.
func (s *SQLiteStorage) SaveEntry(ctx context.Context, entry *model.LedgerEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry", ErrNilParameter)
	}

	n, err := s.SaveEntries(ctx, []model.LedgerEntry{*entry})
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: hash %s", common.ErrDuplicateEntry, entry.Hash)
	}
	return nil
}

// HasHash reports whether an entry with the given SMS hash exists.
func (s *SQLiteStorage) HasHash(ctx context.Context, hash string) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateString(hash, "hash"); err != nil {
		return false, err
	}

	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM ledger_entries WHERE hash = ?)`, hash).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check hash: %w", err)
	}
	return exists, nil
}

// GetEntry returns the entry with the given ID or common.ErrNotFound.
func (s *SQLiteStorage) GetEntry(ctx context.Context, id string) (*model.LedgerEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+entryColumns+` FROM ledger_entries WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query entry: %w", err)
	}
	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("entry %s: %w", id, common.ErrNotFound)
	}
	return &entries[0], nil
}

// ListEntries returns matching entries, newest first.
func (s *SQLiteStorage) ListEntries(ctx context.Context, filter service.EntryFilter) ([]model.LedgerEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	return s.listEntries(ctx, s.db, filter)
}

func (s *SQLiteStorage) listEntries(ctx context.Context, q queryable, filter service.EntryFilter) ([]model.LedgerEntry, error) {
	var (
		where []string
		args  []any
	)

	if filter.Type != "" {
		where = append(where, "type = ?")
		args = append(args, string(filter.Type))
	}
	if filter.BankID != "" {
		where = append(where, "bank_id = ?")
		args = append(args, strings.ToLower(filter.BankID))
	}
	if filter.Category != "" {
		where = append(where, "category_id = ?")
		args = append(args, string(filter.Category))
	}
	if filter.Since != nil {
		where = append(where, "received_at >= ?")
		args = append(args, filter.Since.UTC())
	}
	if filter.Until != nil {
		where = append(where, "received_at < ?")
		args = append(args, filter.Until.UTC())
	}

	query := `SELECT ` + entryColumns + ` FROM ledger_entries`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY received_at DESC, id"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	return scanEntries(rows)
}

// CountEntries returns the number of stored entries.
func (s *SQLiteStorage) CountEntries(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ledger_entries`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

// DeleteEntry removes one entry.
func (s *SQLiteStorage) DeleteEntry(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM ledger_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("entry %s: %w", id, common.ErrNotFound)
	}
	return nil
}

// CategoryTotals sums expense amounts per category for entries matching
// filter. Amounts are stored as text and summed as decimals.
func (s *SQLiteStorage) CategoryTotals(ctx context.Context, filter service.EntryFilter) (map[model.CategoryID]decimal.Decimal, error) {
	filter.Type = model.TypeExpense
	filter.Limit = 0

	entries, err := s.ListEntries(ctx, filter)
	if err != nil {
		return nil, err
	}

	totals := make(map[model.CategoryID]decimal.Decimal)
	for _, e := range entries {
		id := model.CategoryOther
		if e.Transaction.Category != nil {
			id = e.Transaction.Category.CategoryID
		}
		totals[id] = totals[id].Add(e.Transaction.Amount)
	}
	return totals, nil
}

func entryArgs(e *model.LedgerEntry) []any {
	txn := &e.Transaction

	var (
		categoryID sql.NullString
		confidence sql.NullFloat64
		account    sql.NullString
	)
	if txn.Category != nil {
		categoryID = sql.NullString{String: string(txn.Category.CategoryID), Valid: true}
		confidence = sql.NullFloat64{Float64: txn.Category.Confidence, Valid: true}
	}
	if txn.AccountLast4 != "" {
		account = sql.NullString{String: txn.AccountLast4, Valid: true}
	}

	return []any{
		e.ID,
		e.Hash,
		e.ReceivedAt.UTC(),
		string(e.Source),
		e.RawText,
		string(txn.Type),
		txn.Amount,
		txn.Balance,
		txn.MerchantName,
		txn.BankID,
		txn.BankName,
		account,
		categoryID,
		confidence,
	}
}

func scanEntries(rows *sql.Rows) ([]model.LedgerEntry, error) {
	defer func() { _ = rows.Close() }()

	var entries []model.LedgerEntry
	for rows.Next() {
		var (
			e          model.LedgerEntry
			source     string
			txnType    string
			account    sql.NullString
			categoryID sql.NullString
			confidence sql.NullFloat64
		)

		err := rows.Scan(
			&e.ID,
			&e.Hash,
			&e.ReceivedAt,
			&source,
			&e.RawText,
			&txnType,
			&e.Transaction.Amount,
			&e.Transaction.Balance,
			&e.Transaction.MerchantName,
			&e.Transaction.BankID,
			&e.Transaction.BankName,
			&account,
			&categoryID,
			&confidence,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}

		e.Source = model.EntrySource(source)
		e.Transaction.Type = model.TransactionType(txnType)
		e.Transaction.AccountLast4 = account.String
		if categoryID.Valid {
			c := model.NewClassification(model.CategoryID(categoryID.String), confidence.Float64)
			e.Transaction.Category = &c
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}
	return entries, nil
}
