// Package service defines the contracts between the parser's callers.
package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nimesh4992/Stack-sub000/internal/model"
)

// EntryFilter narrows ledger queries. Zero values match everything.
type EntryFilter struct {
	Since    *time.Time
	Until    *time.Time
	Type     model.TransactionType
	BankID   string
	Category model.CategoryID
	Limit    int
}

// Ledger is where callers keep the transactions they accepted.
type Ledger interface {
	SaveEntries(ctx context.Context, entries []model.LedgerEntry) (int, error)
	SaveEntry(ctx context.Context, entry *model.LedgerEntry) error
	HasHash(ctx context.Context, hash string) (bool, error)
	GetEntry(ctx context.Context, id string) (*model.LedgerEntry, error)
	ListEntries(ctx context.Context, filter EntryFilter) ([]model.LedgerEntry, error)
	CountEntries(ctx context.Context) (int, error)
	DeleteEntry(ctx context.Context, id string) error
	CategoryTotals(ctx context.Context, filter EntryFilter) (map[model.CategoryID]decimal.Decimal, error)
	Close() error
}

// SMSParser is the pipeline as seen by callers.
type SMSParser interface {
	Parse(text string) *model.ParsedTransaction
	Diagnose(text string) (*model.ParsedTransaction, error)
}
