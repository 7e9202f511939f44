package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimesh4992/Stack-sub000/internal/banks"
	"github.com/nimesh4992/Stack-sub000/internal/common"
	"github.com/nimesh4992/Stack-sub000/internal/model"
)

func compiledSet(t *testing.T, set banks.BankPatternSet, opts ...banks.Option) *banks.CompiledSet {
	t.Helper()
	reg, err := banks.NewRegistry([]banks.BankPatternSet{set}, opts...)
	require.NoError(t, err)
	cs, ok := reg.Get(set.ID)
	require.True(t, ok)
	return cs
}

func TestSpanOverlaps(t *testing.T) {
	tests := []struct {
		a, b Span
		want bool
	}{
		{a: Span{0, 5}, b: Span{5, 9}, want: false},
		{a: Span{0, 5}, b: Span{4, 9}, want: true},
		{a: Span{3, 4}, b: Span{0, 9}, want: true},
		{a: Span{0, 0}, b: Span{0, 9}, want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.Overlaps(tt.b), "%v %v", tt.a, tt.b)
		assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "%v %v", tt.b, tt.a)
	}
}

func TestExtractSkipsOverlappingBalance(t *testing.T) {
	// A deliberately loose balance rule that also matches the amount.
	cs := compiledSet(t, banks.BankPatternSet{
		ID:      "loose",
		Name:    "Loose Bank",
		Tokens:  []string{"loose"},
		Debit:   []string{`(?P<amount>\d+)\s+debited`},
		Balance: []string{`(?P<amount>\d+)`},
	})

	text := "500 debited. Bal 900"
	fields, err := Extract(text, cs)
	require.NoError(t, err)

	assert.Equal(t, "500", fields.AmountText)
	assert.Equal(t, Span{0, 3}, fields.AmountSpan)
	require.True(t, fields.Balance.Valid)
	assert.True(t, decimal.NewFromInt(900).Equal(fields.Balance.Decimal))
	assert.False(t, fields.BalanceSpan.Overlaps(fields.AmountSpan))

	// The only candidate is the amount itself: no balance.
	fields, err = Extract("500 debited", cs)
	require.NoError(t, err)
	assert.False(t, fields.Balance.Valid)
}

func TestExtractDebitBeforeCredit(t *testing.T) {
	cs := compiledSet(t, banks.BankPatternSet{
		ID:     "both",
		Name:   "Both Bank",
		Tokens: []string{"both"},
		Debit:  []string{`(?P<amount>\d+)\s+debited`},
		Credit: []string{`(?P<amount>\d+)\s+credited`},
	})

	fields, err := Extract("200 credited, 100 debited", cs)
	require.NoError(t, err)
	assert.Equal(t, model.TypeExpense, fields.Type)
	assert.Equal(t, "100", fields.AmountText)

	fields, err = Extract("200 credited", cs)
	require.NoError(t, err)
	assert.Equal(t, model.TypeIncome, fields.Type)
	assert.Empty(t, fields.Merchant)
}

func TestExtractErrors(t *testing.T) {
	reg, err := banks.Default()
	require.NoError(t, err)
	hdfc, _ := reg.Get(banks.HDFC)

	_, err = Extract(hdfcDebit, nil)
	assert.ErrorIs(t, err, common.ErrUnrecognizedSource)

	_, err = Extract(hdfcPromo, hdfc)
	assert.ErrorIs(t, err, common.ErrUnparsableBody)

	_, err = Extract("HDFC Bank: INR 12.345 debited from A/c XX1234 for purchase at AMAZON on 25-Feb-26.", hdfc)
	assert.ErrorIs(t, err, common.ErrMalformedAmount)
}

func TestExtractMalformedBalanceIsOmitted(t *testing.T) {
	reg, err := banks.Default()
	require.NoError(t, err)
	hdfc, _ := reg.Get(banks.HDFC)

	fields, err := Extract("HDFC Bank: INR 100.00 debited from A/c XX1234 for purchase at SWIGGY on 25-Feb-26. Avl Bal: INR 1.234.56", hdfc)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(fields.Amount))
	assert.False(t, fields.Balance.Valid)
	assert.Equal(t, "SWIGGY", fields.Merchant)
}

func TestExtractAccountLast4(t *testing.T) {
	cs := compiledSet(t, banks.BankPatternSet{
		ID:      "acct",
		Name:    "Acct Bank",
		Tokens:  []string{"acct"},
		Debit:   []string{`(?P<amount>\d+)\s+debited`},
		Account: []string{`a/c\s+(?P<account>[X\d]+)`},
	})

	tests := []struct {
		text string
		want string
	}{
		{text: "100 debited from a/c XX123456", want: "3456"},
		{text: "100 debited from a/c XXXX12", want: "12"},
		{text: "100 debited from a/c XXXX", want: ""},
		{text: "100 debited", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			fields, err := Extract(tt.text, cs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fields.AccountLast4)
		})
	}
}
