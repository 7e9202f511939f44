package model

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of money movement described by an SMS.
type TransactionType string

const (
	// TypeExpense is money leaving the account (debit).
	TypeExpense TransactionType = "expense"
	// TypeIncome is money entering the account (credit).
	TypeIncome TransactionType = "income"
)

// UnknownMerchant is used when the matched rule carried no counterparty.
const UnknownMerchant = "Unknown"

// ParsedTransaction is the structured record extracted from one SMS body.
type ParsedTransaction struct {
	Category     *CategoryClassification `json:"category,omitempty"`
	Type         TransactionType         `json:"type"`
	MerchantName string                  `json:"merchantName"`
	BankID       string                  `json:"bankId"`
	BankName     string                  `json:"bankName"`
	AccountLast4 string                  `json:"accountLast4,omitempty"`
	Amount       decimal.Decimal         `json:"amount"`
	// Balance is only valid when a balance rule matched on its own span.
	Balance decimal.NullDecimal `json:"balance"`
}

// HasBalance reports whether the SMS carried an available-balance snapshot.
func (t *ParsedTransaction) HasBalance() bool {
	return t.Balance.Valid
}

// SignedAmount returns the amount negated for expenses.
func (t *ParsedTransaction) SignedAmount() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// EntrySource records how a ledger entry was created.
type EntrySource string

const (
	// SourceSMS entries were parsed from an SMS body.
	SourceSMS EntrySource = "sms"
)

// LedgerEntry is a parsed transaction the caller decided to keep.
type LedgerEntry struct {
	ReceivedAt  time.Time         `json:"receivedAt"`
	ID          string            `json:"id"`
	RawText     string            `json:"rawText"`
	Hash        string            `json:"hash"`
	Source      EntrySource       `json:"source"`
	Transaction ParsedTransaction `json:"transaction"`
}

// NewLedgerEntry wraps a parsed transaction for storage under a fresh ID.
func NewLedgerEntry(raw string, txn ParsedTransaction, receivedAt time.Time, source EntrySource) LedgerEntry {
	return LedgerEntry{
		ID:          uuid.NewString(),
		RawText:     raw,
		Hash:        HashText(raw),
		ReceivedAt:  receivedAt,
		Source:      source,
		Transaction: txn,
	}
}

// GenerateHash creates a unique hash for duplicate detection. Two imports of
// the same SMS body produce the same hash.
func (e *LedgerEntry) GenerateHash() string {
	return HashText(e.RawText)
}

// HashText hashes an SMS body after trimming surrounding whitespace.
func HashText(raw string) string {
	hash := sha256.Sum256([]byte(strings.TrimSpace(raw)))
	return fmt.Sprintf("%x", hash)
}
