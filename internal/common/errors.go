// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Parse outcomes. These are expected results, not faults: most SMS are not
// bank transactions.
var (
	// ErrUnrecognizedSource means no bank token and no UPI marker was found.
	ErrUnrecognizedSource = errors.New("unrecognized sender")
	// ErrUnparsableBody means the source was detected but no debit or credit rule matched.
	ErrUnparsableBody = errors.New("no transaction in message body")
	// ErrMalformedAmount means a numeric capture was not a valid positive amount.
	ErrMalformedAmount = errors.New("malformed amount")
)

// Configuration errors.
var (
	ErrMissingConfig  = errors.New("missing configuration")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrInvalidPattern = errors.New("invalid pattern")
)

// Ledger errors.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrNoTransactions = errors.New("no transactions")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// ReasonCode maps a parse outcome to a stable snake_case code for telemetry
// and API responses. Unknown errors map to "error".
func ReasonCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnrecognizedSource):
		return "unrecognized_source"
	case errors.Is(err, ErrUnparsableBody):
		return "unparsable_body"
	case errors.Is(err, ErrMalformedAmount):
		return "malformed_amount"
	default:
		return "error"
	}
}
