package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nimesh4992/Stack-sub000/internal/banks"
	"github.com/nimesh4992/Stack-sub000/internal/common"
	"github.com/nimesh4992/Stack-sub000/internal/model"
)

// Span is a half-open byte range of the SMS text.
type Span struct {
	Start int
	End   int
}

// Overlaps reports whether the two spans share at least one byte.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// RawFields is what one pattern set read out of an SMS before assembly.
type RawFields struct {
	Type         model.TransactionType
	AmountText   string
	Merchant     string
	AccountLast4 string
	Amount       decimal.Decimal
	Balance      decimal.NullDecimal
	AmountSpan   Span
	BalanceSpan  Span
}

// Extract reads the transaction fields of text with set. Debit rules are
// tried before credit rules and the first hit decides the type. Balance and
// account are optional. The balance is taken from the first balance match
// whose amount does not overlap the transaction amount.
func Extract(text string, set *banks.CompiledSet) (*RawFields, error) {
	if set == nil {
		return nil, common.ErrUnrecognizedSource
	}

	fields, err := matchTransaction(text, set)
	if err != nil {
		return nil, err
	}

	fields.AccountLast4 = matchAccount(text, set.Account)
	fields.Balance, fields.BalanceSpan = matchBalance(text, set.Balance, fields.AmountSpan)

	return fields, nil
}

func matchTransaction(text string, set *banks.CompiledSet) (*RawFields, error) {
	groups := []struct {
		typ   model.TransactionType
		rules []banks.Rule
	}{
		{model.TypeExpense, set.Debit},
		{model.TypeIncome, set.Credit},
	}

	for _, g := range groups {
		for _, rule := range g.rules {
			loc := rule.Regexp.FindStringSubmatchIndex(text)
			span, ok := groupSpan(loc, rule.AmountGroup)
			if !ok {
				continue
			}

			amountText := text[span.Start:span.End]
			amount, err := ParseAmount(amountText)
			if err != nil {
				return nil, fmt.Errorf("%s %s amount: %w", set.ID, g.typ, err)
			}

			fields := &RawFields{
				Type:       g.typ,
				Amount:     amount,
				AmountText: amountText,
				AmountSpan: span,
			}
			if ms, ok := groupSpan(loc, rule.MerchantGroup); ok {
				fields.Merchant = cleanMerchant(text[ms.Start:ms.End])
			}
			return fields, nil
		}
	}

	return nil, fmt.Errorf("%s: %w", set.ID, common.ErrUnparsableBody)
}

func matchBalance(text string, rules []banks.Rule, amount Span) (decimal.NullDecimal, Span) {
	for _, rule := range rules {
		for _, loc := range rule.Regexp.FindAllStringSubmatchIndex(text, -1) {
			span, ok := groupSpan(loc, rule.AmountGroup)
			if !ok || span.Overlaps(amount) {
				continue
			}

			value, err := ParseAmount(text[span.Start:span.End])
			if err != nil {
				slog.Debug("balance omitted", "error", err)
				return decimal.NullDecimal{}, Span{}
			}
			return decimal.NewNullDecimal(value), span
		}
	}

	return decimal.NullDecimal{}, Span{}
}

func matchAccount(text string, rules []banks.Rule) string {
	for _, rule := range rules {
		loc := rule.Regexp.FindStringSubmatchIndex(text)
		span, ok := groupSpan(loc, rule.AccountGroup)
		if !ok {
			continue
		}

		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, text[span.Start:span.End])
		if digits == "" {
			continue
		}
		if len(digits) > 4 {
			digits = digits[len(digits)-4:]
		}
		return digits
	}

	return ""
}

func groupSpan(loc []int, group int) (Span, bool) {
	if loc == nil || group < 0 || 2*group+1 >= len(loc) || loc[2*group] < 0 {
		return Span{}, false
	}
	return Span{Start: loc[2*group], End: loc[2*group+1]}, true
}

func cleanMerchant(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".,;:-")
}
