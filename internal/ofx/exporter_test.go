package ofx

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimesh4992/Stack-sub000/internal/common"
	"github.com/nimesh4992/Stack-sub000/internal/model"
)

var day = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func entry(bank, last4 string, typ model.TransactionType, amount, balance, merchant string, at time.Time) model.LedgerEntry {
	txn := model.ParsedTransaction{
		Type:         typ,
		Amount:       decimal.RequireFromString(amount),
		MerchantName: merchant,
		BankID:       bank,
		BankName:     strings.ToUpper(bank),
		AccountLast4: last4,
	}
	if balance != "" {
		txn.Balance = decimal.NewNullDecimal(decimal.RequireFromString(balance))
	}
	if typ == model.TypeExpense {
		c := model.NewClassification(model.CategoryFood, model.ConfidenceKeyword)
		txn.Category = &c
	}
	return model.NewLedgerEntry(merchant+amount, txn, at, model.SourceSMS)
}

func TestExporterRoundTrip(t *testing.T) {
	exp, err := NewExporter("inr")
	require.NoError(t, err)
	exp.now = func() time.Time { return day }

	entries := []model.LedgerEntry{
		entry("sbi", "9012", model.TypeExpense, "500", "12345.67", "SWIGGY", day.Add(-2*time.Hour)),
		entry("hdfc", "1234", model.TypeIncome, "25000", "70678.90", "ACME CORP", day.Add(-time.Hour)),
		entry("hdfc", "1234", model.TypeExpense, "1250", "45678.90", "A MERCHANT NAME THAT IS FAR TOO LONG FOR OFX", day.Add(-3*time.Hour)),
	}

	var buf bytes.Buffer
	require.NoError(t, exp.Write(context.Background(), &buf, entries))

	resp, err := ofxgo.ParseResponse(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, resp.Bank, 2)

	hdfc, ok := resp.Bank[0].(*ofxgo.StatementResponse)
	require.True(t, ok)
	assert.Equal(t, "HDFC", string(hdfc.BankAcctFrom.BankID))
	assert.Equal(t, "hdfc-1234", string(hdfc.BankAcctFrom.AcctID))
	assert.Equal(t, "INR", hdfc.CurDef.String())
	require.NotNil(t, hdfc.BankTranList)
	require.Len(t, hdfc.BankTranList.Transactions, 2)

	// Oldest first; the latest balance snapshot becomes the ledger balance.
	debit := hdfc.BankTranList.Transactions[0]
	assert.Equal(t, ofxgo.TrnTypeDebit, debit.TrnType)
	assert.Equal(t, "-1250", debit.TrnAmt.RatString())
	assert.Len(t, string(debit.Name), maxNameLen)
	assert.Equal(t, "Food & Dining", string(debit.Memo))

	credit := hdfc.BankTranList.Transactions[1]
	assert.Equal(t, ofxgo.TrnTypeCredit, credit.TrnType)
	assert.Equal(t, "25000", credit.TrnAmt.RatString())
	assert.Equal(t, "ACME CORP", string(credit.Name))
	assert.Equal(t, "70678.90", hdfc.BalAmt.FloatString(2))

	sbi, ok := resp.Bank[1].(*ofxgo.StatementResponse)
	require.True(t, ok)
	assert.Equal(t, "sbi-9012", string(sbi.BankAcctFrom.AcctID))
	require.Len(t, sbi.BankTranList.Transactions, 1)
	assert.Equal(t, entries[0].ID, string(sbi.BankTranList.Transactions[0].FiTID))
}

func TestExporterUnknownAccount(t *testing.T) {
	exp, err := NewExporter("INR")
	require.NoError(t, err)

	var buf bytes.Buffer
	entries := []model.LedgerEntry{entry("upi", "", model.TypeExpense, "150", "", "ZOMATO", day)}
	require.NoError(t, exp.Write(context.Background(), &buf, entries))

	resp, err := ofxgo.ParseResponse(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, resp.Bank, 1)
	stmt := resp.Bank[0].(*ofxgo.StatementResponse)
	assert.Equal(t, "upi-UNKNOWN", string(stmt.BankAcctFrom.AcctID))
	assert.Equal(t, "0", stmt.BalAmt.RatString())
}

func TestExporterErrors(t *testing.T) {
	_, err := NewExporter("XYZW")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)

	exp, err := NewExporter("USD")
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.ErrorIs(t, exp.Write(context.Background(), &buf, nil), common.ErrNoTransactions)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = exp.Write(ctx, &buf, []model.LedgerEntry{entry("hdfc", "1234", model.TypeIncome, "1", "", "X", day)})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}
