// Package testutil provides shared fixtures for tests that need a ledger or
// a parser.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/nimesh4992/Stack-sub000/internal/model"
	"github.com/nimesh4992/Stack-sub000/internal/parser"
	"github.com/nimesh4992/Stack-sub000/internal/storage"
)

// SetupTestDB creates a migrated in-memory ledger that is closed when the
// test ends.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return store
}

// NewParser returns a parser over the built-in tables.
func NewParser(t *testing.T) *parser.Parser {
	t.Helper()

	p, err := parser.NewDefault()
	if err != nil {
		t.Fatalf("failed to build parser: %v", err)
	}
	return p
}

// MustEntry parses raw and wraps it as an SMS ledger entry received at.
func MustEntry(t *testing.T, p *parser.Parser, raw string, at time.Time) model.LedgerEntry {
	t.Helper()

	txn, err := p.Diagnose(raw)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", raw, err)
	}
	return model.NewLedgerEntry(raw, *txn, at, model.SourceSMS)
}

// SeedEntries parses and stores every raw SMS, one hour apart from start.
func SeedEntries(t *testing.T, store *storage.SQLiteStorage, p *parser.Parser, start time.Time, raws ...string) []model.LedgerEntry {
	t.Helper()

	entries := make([]model.LedgerEntry, 0, len(raws))
	for i, raw := range raws {
		entries = append(entries, MustEntry(t, p, raw, start.Add(time.Duration(i)*time.Hour)))
	}

	if _, err := store.SaveEntries(context.Background(), entries); err != nil {
		t.Fatalf("failed to seed entries: %v", err)
	}
	return entries
}

// Sample SMS bodies used across packages.
const (
	HDFCPurchase = "HDFC Bank: INR 1,250.00 has been debited from A/c XX1234 for purchase at AMAZON on 25-Feb-26. Avl Bal: INR 45,678.90"
	SBISwiggy    = "SBI: Rs.500 debited from A/c XX9012 for UPI/P2M/SWIGGY on 25-Feb. Bal: Rs.12,345.67"
	UPIZomato    = "UPI: Money sent! Rs.150 debited from Paytm Wallet to ZOMATO@paytm. Wallet Bal: Rs.850.00"
	AxisSalary   = "INR 15,000.00 credited to A/c no. XX5678 on 15-03-26 by NEFT from INFOSYS LTD. Avl Bal INR 33,200.50 - Axis Bank"
	HDFCPromo    = "HDFC Bank: Get a pre-approved personal loan at 10.5% p.a. Apply now at hdfc.bank.in. T&C apply"
	NotBank      = "Your Amazon order has shipped and will arrive tomorrow."
)
