// Package ofx writes ledger entries as OFX 2.0.3 bank statements.
package ofx

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/google/uuid"

	"github.com/nimesh4992/Stack-sub000/internal/common"
	"github.com/nimesh4992/Stack-sub000/internal/model"
)

// maxNameLen is the OFX limit for <NAME>.
const maxNameLen = 32

// Exporter builds one statement per bank account found in the entries.
type Exporter struct {
	now      func() time.Time
	currency ofxgo.CurrSymbol
}

// NewExporter creates an exporter for an ISO 4217 currency code.
func NewExporter(currency string) (*Exporter, error) {
	cur, err := ofxgo.NewCurrSymbol(strings.ToUpper(currency))
	if err != nil {
		return nil, fmt.Errorf("%w: currency %q: %w", common.ErrInvalidConfig, currency, err)
	}

	return &Exporter{
		currency: *cur,
		now:      time.Now,
	}, nil
}

type accountKey struct {
	bankID string
	last4  string
}

// Write marshals entries into w. Expenses become DEBIT transactions with a
// negative amount and incomes CREDIT transactions.
func (e *Exporter) Write(ctx context.Context, w io.Writer, entries []model.LedgerEntry) error {
	if len(entries) == 0 {
		return common.ErrNoTransactions
	}

	groups := make(map[accountKey][]model.LedgerEntry)
	var keys []accountKey
	for _, entry := range entries {
		k := accountKey{bankID: entry.Transaction.BankID, last4: entry.Transaction.AccountLast4}
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], entry)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].bankID != keys[j].bankID {
			return keys[i].bankID < keys[j].bankID
		}
		return keys[i].last4 < keys[j].last4
	})

	resp := ofxgo.Response{
		Version: ofxgo.OfxVersion203,
		Signon: ofxgo.SignonResponse{
			Status:   ofxgo.Status{Code: 0, Severity: "INFO"},
			DtServer: ofxgo.Date{Time: e.now()},
			Language: "ENG",
		},
	}

	for _, k := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}
		resp.Bank = append(resp.Bank, e.statement(k, groups[k]))
	}

	buf, err := resp.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal OFX: %w", err)
	}
	if _, err := io.Copy(w, buf); err != nil {
		return fmt.Errorf("failed to write OFX: %w", err)
	}

	common.LogInfo("Exported OFX", common.Fields{
		"transactions": len(entries),
		"accounts":     len(keys),
	})

	return nil
}

func (e *Exporter) statement(k accountKey, entries []model.LedgerEntry) *ofxgo.StatementResponse {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ReceivedAt.Before(entries[j].ReceivedAt)
	})

	list := &ofxgo.TransactionList{
		DtStart: ofxgo.Date{Time: entries[0].ReceivedAt},
		DtEnd:   ofxgo.Date{Time: entries[len(entries)-1].ReceivedAt},
	}

	var (
		balance ofxgo.Amount
		asOf    = entries[len(entries)-1].ReceivedAt
	)
	for _, entry := range entries {
		list.Transactions = append(list.Transactions, transaction(entry))
		if entry.Transaction.Balance.Valid {
			balance.SetString(entry.Transaction.Balance.Decimal.String())
			asOf = entry.ReceivedAt
		}
	}

	return &ofxgo.StatementResponse{
		TrnUID: ofxgo.UID(uuid.NewString()),
		Status: ofxgo.Status{Code: 0, Severity: "INFO"},
		CurDef: e.currency,
		BankAcctFrom: ofxgo.BankAcct{
			BankID:   ofxgo.String(strings.ToUpper(k.bankID)),
			AcctID:   ofxgo.String(accountID(k)),
			AcctType: ofxgo.AcctTypeSavings,
		},
		BankTranList: list,
		BalAmt:       balance,
		DtAsOf:       ofxgo.Date{Time: asOf},
	}
}

func transaction(entry model.LedgerEntry) ofxgo.Transaction {
	txn := entry.Transaction

	var amount ofxgo.Amount
	amount.SetString(txn.SignedAmount().String())

	trnType := ofxgo.TrnTypeCredit
	if txn.Type == model.TypeExpense {
		trnType = ofxgo.TrnTypeDebit
	}

	name := []rune(txn.MerchantName)
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}

	out := ofxgo.Transaction{
		TrnType:  trnType,
		DtPosted: ofxgo.Date{Time: entry.ReceivedAt},
		TrnAmt:   amount,
		FiTID:    ofxgo.String(entry.ID),
		Name:     ofxgo.String(string(name)),
	}
	if txn.Category != nil {
		out.Memo = ofxgo.String(txn.Category.CategoryLabel)
	}
	return out
}

func accountID(k accountKey) string {
	if k.last4 == "" {
		return k.bankID + "-UNKNOWN"
	}
	return k.bankID + "-" + k.last4
}
