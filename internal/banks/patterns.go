// Package banks holds the bank SMS pattern table: one BankPatternSet per
// supported issuer, compiled once into an immutable Registry.
package banks

// BankID identifies a pattern set, e.g. "hdfc".
type BankID string

// Built-in sources.
const (
	HDFC  BankID = "hdfc"
	SBI   BankID = "sbi"
	Axis  BankID = "axis"
	Kotak BankID = "kotak"
	ICICI BankID = "icici"
	UPI   BankID = "upi"
)

// BankPatternSet describes how to recognize and read one issuer's SMS.
//
// Debit and Credit rules must contain an "amount" group and may contain a
// "merchant" group. Balance rules need an "amount" group and Account rules an
// "account" group. Empty Balance or Account lists fall back to the registry's
// shared rules. All rules are compiled case-insensitively.
type BankPatternSet struct {
	ID      BankID   `yaml:"id"`
	Name    string   `yaml:"name"`
	Tokens  []string `yaml:"tokens"`
	Debit   []string `yaml:"debit"`
	Credit  []string `yaml:"credit"`
	Balance []string `yaml:"balance,omitempty"`
	Account []string `yaml:"account,omitempty"`
	// Fallback sets are only consulted after every bank-specific set failed
	// to detect. The generic UPI source is the only built-in fallback.
	Fallback bool `yaml:"fallback,omitempty"`
}
