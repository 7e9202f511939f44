// Package parser turns bank and UPI SMS bodies into categorized
// transactions: detect the source, extract the fields, classify the merchant.
package parser

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nimesh4992/Stack-sub000/internal/banks"
	"github.com/nimesh4992/Stack-sub000/internal/classification"
	"github.com/nimesh4992/Stack-sub000/internal/common"
	"github.com/nimesh4992/Stack-sub000/internal/model"
)

// Parser is the SMS pipeline. It holds only immutable tables and is safe for
// concurrent use.
type Parser struct {
	registry   *banks.Registry
	detector   *Detector
	classifier *classification.Classifier
	logger     *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for parse misses.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = l
	}
}

// New creates a parser over a compiled registry and classifier.
func New(registry *banks.Registry, classifier *classification.Classifier, opts ...Option) (*Parser, error) {
	if registry == nil {
		return nil, errors.New("parser: registry is required")
	}
	if classifier == nil {
		return nil, errors.New("parser: classifier is required")
	}

	p := &Parser{
		registry:   registry,
		detector:   NewDetector(registry),
		classifier: classifier,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// NewDefault creates a parser over the built-in bank and keyword tables.
func NewDefault(opts ...Option) (*Parser, error) {
	registry, err := banks.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to compile bank patterns: %w", err)
	}
	classifier, err := classification.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to build classifier: %w", err)
	}
	return New(registry, classifier, opts...)
}

// Registry returns the pattern table in use.
func (p *Parser) Registry() *banks.Registry {
	return p.registry
}

// Classifier returns the merchant classifier in use.
func (p *Parser) Classifier() *classification.Classifier {
	return p.classifier
}

// DetectSource returns the ID of the pattern set that applies to text.
func (p *Parser) DetectSource(text string) (banks.BankID, bool) {
	cs, ok := p.detector.Detect(text)
	if !ok {
		return "", false
	}
	return cs.ID, true
}

// Parse returns the transaction described by text, or nil when the sender is
// not recognized or the body cannot be read.
func (p *Parser) Parse(text string) *model.ParsedTransaction {
	txn, err := p.Diagnose(text)
	if err != nil {
		p.logger.Debug("sms not parsed", "reason", common.ReasonCode(err), "error", err)
		return nil
	}
	return txn
}

// Diagnose is Parse with the failure reason: common.ErrUnrecognizedSource,
// common.ErrUnparsableBody or common.ErrMalformedAmount.
func (p *Parser) Diagnose(text string) (*model.ParsedTransaction, error) {
	set, ok := p.detector.Detect(text)
	if !ok {
		return nil, common.ErrUnrecognizedSource
	}

	raw, err := Extract(text, set)
	if err != nil {
		return nil, err
	}

	merchant := raw.Merchant
	if merchant == "" {
		merchant = model.UnknownMerchant
	}

	txn := &model.ParsedTransaction{
		Type:         raw.Type,
		Amount:       raw.Amount,
		MerchantName: merchant,
		BankID:       string(set.ID),
		BankName:     set.Name,
		AccountLast4: raw.AccountLast4,
		Balance:      raw.Balance,
	}

	if raw.Type == model.TypeExpense {
		category := p.classifier.Classify(merchant)
		txn.Category = &category
	}

	return txn, nil
}

// ParseBatch parses texts; the result is index-aligned with nil for misses.
func (p *Parser) ParseBatch(texts []string) []*model.ParsedTransaction {
	results := make([]*model.ParsedTransaction, len(texts))
	for i, text := range texts {
		results[i] = p.Parse(text)
	}
	return results
}
