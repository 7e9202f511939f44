package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryID_Label(t *testing.T) {
	for _, id := range AllCategories() {
		assert.True(t, id.Valid(), "category %s should be valid", id)
		assert.NotEmpty(t, id.Label(), "category %s needs a label", id)
	}

	assert.Equal(t, "Food & Dining", CategoryFood.Label())
	assert.False(t, CategoryID("travel").Valid())
	assert.Empty(t, CategoryID("travel").Label())
}

func TestParseCategoryID(t *testing.T) {
	id, err := ParseCategoryID("  Groceries ")
	require.NoError(t, err)
	assert.Equal(t, CategoryGroceries, id)

	_, err = ParseCategoryID("fuel")
	assert.Error(t, err)
}

func TestNewClassification(t *testing.T) {
	c := NewClassification(CategoryOther, ConfidenceFallback)

	assert.Equal(t, "Other", c.CategoryLabel)
	assert.NotNil(t, c.AlternativeCategories)
	assert.Empty(t, c.AlternativeCategories)
	assert.True(t, c.IsFallback())

	assert.False(t, NewClassification(CategoryOther, ConfidenceKeyword).IsFallback())
}

func TestParsedTransaction_SignedAmount(t *testing.T) {
	txn := ParsedTransaction{Type: TypeExpense, Amount: decimal.RequireFromString("1250.00")}
	assert.Equal(t, "-1250.00", txn.SignedAmount().StringFixed(2))
	assert.False(t, txn.HasBalance())

	txn.Type = TypeIncome
	txn.Balance = decimal.NewNullDecimal(decimal.RequireFromString("10.5"))
	assert.Equal(t, "1250.00", txn.SignedAmount().StringFixed(2))
	assert.True(t, txn.HasBalance())
}

func TestHashText(t *testing.T) {
	a := HashText("HDFC Bank: INR 10.00 debited")
	b := HashText("  HDFC Bank: INR 10.00 debited\n")
	c := HashText("HDFC Bank: INR 11.00 debited")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	entry := LedgerEntry{RawText: "HDFC Bank: INR 10.00 debited"}
	assert.Equal(t, a, entry.GenerateHash())
}

func TestNewLedgerEntry(t *testing.T) {
	at := time.Date(2026, 2, 25, 10, 30, 0, 0, time.UTC)
	txn := ParsedTransaction{Type: TypeExpense, MerchantName: "AMAZON", BankName: "HDFC Bank"}

	a := NewLedgerEntry(" raw sms ", txn, at, SourceSMS)
	b := NewLedgerEntry("raw sms", txn, at, SourceSMS)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Hash, b.Hash)
	assert.Equal(t, " raw sms ", a.RawText)
	assert.Equal(t, at, a.ReceivedAt)
	assert.Equal(t, SourceSMS, a.Source)
	assert.Equal(t, "AMAZON", a.Transaction.MerchantName)
}
