package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nimesh4992/Stack-sub000/internal/model"
	"github.com/nimesh4992/Stack-sub000/internal/service"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrEmptySlice         = errors.New("slice cannot be empty")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidEntry       = errors.New("invalid ledger entry")
	ErrInvalidFilter      = errors.New("invalid entry filter")
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateEntries(entries []model.LedgerEntry) error {
	if entries == nil {
		return fmt.Errorf("%w: entries", ErrNilParameter)
	}
	if len(entries) == 0 {
		return fmt.Errorf("%w: entries", ErrEmptySlice)
	}

	for i := range entries {
		if err := validateEntry(&entries[i]); err != nil {
			return fmt.Errorf("entry at index %d: %w", i, err)
		}
	}
	return nil
}

func validateEntry(entry *model.LedgerEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry", ErrNilParameter)
	}
	if entry.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidEntry)
	}
	if entry.Hash == "" {
		return fmt.Errorf("%w: missing hash", ErrInvalidEntry)
	}
	if entry.ReceivedAt.IsZero() {
		return fmt.Errorf("%w: missing received time", ErrInvalidEntry)
	}

	if entry.Source != model.SourceSMS {
		return fmt.Errorf("%w: unknown source %q", ErrInvalidEntry, entry.Source)
	}

	return validateTransaction(&entry.Transaction)
}

func validateTransaction(txn *model.ParsedTransaction) error {
	switch txn.Type {
	case model.TypeExpense, model.TypeIncome:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, txn.Type)
	}
	if !txn.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidTransaction)
	}
	if strings.TrimSpace(txn.MerchantName) == "" {
		return fmt.Errorf("%w: missing merchant", ErrInvalidTransaction)
	}
	if strings.TrimSpace(txn.BankName) == "" {
		return fmt.Errorf("%w: missing bank", ErrInvalidTransaction)
	}
	if c := txn.Category; c != nil {
		if !c.CategoryID.Valid() {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidTransaction, c.CategoryID)
		}
		if c.Confidence < 0 || c.Confidence > 1 {
			return fmt.Errorf("%w: confidence must be between 0 and 1", ErrInvalidTransaction)
		}
	}
	return nil
}

func validateFilter(f service.EntryFilter) error {
	switch f.Type {
	case "", model.TypeExpense, model.TypeIncome:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidFilter, f.Type)
	}
	if f.Limit < 0 {
		return fmt.Errorf("%w: negative limit", ErrInvalidFilter)
	}
	if f.Since != nil && f.Until != nil && f.Until.Before(*f.Since) {
		return fmt.Errorf("%w: until is before since", ErrInvalidFilter)
	}
	return nil
}
