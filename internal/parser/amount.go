package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nimesh4992/Stack-sub000/internal/common"
)

var plainAmount = regexp.MustCompile(`^\d+(?:\.\d{1,2})?$`)

// ParseAmount parses an SMS money figure. Thousands separators are stripped;
// the rest must be digits with at most two fractional digits and the value
// must be positive.
func ParseAmount(text string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", "")

	if !plainAmount.MatchString(cleaned) {
		return decimal.Zero, fmt.Errorf("%w: %q", common.ErrMalformedAmount, text)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %w", common.ErrMalformedAmount, text, err)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %q is not positive", common.ErrMalformedAmount, text)
	}

	return d, nil
}
