package banks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nimesh4992/Stack-sub000/internal/common"
)

// Capture group names recognized in rules.
const (
	GroupAmount   = "amount"
	GroupMerchant = "merchant"
	GroupAccount  = "account"
)

// Rule is a compiled extraction rule with the indexes of its capture groups.
// A missing group has index -1.
type Rule struct {
	Regexp        *regexp.Regexp
	AmountGroup   int
	MerchantGroup int
	AccountGroup  int
}

// CompiledSet is a BankPatternSet with every rule compiled.
type CompiledSet struct {
	ID       BankID
	Name     string
	Tokens   []string
	Debit    []Rule
	Credit   []Rule
	Balance  []Rule
	Account  []Rule
	Fallback bool
}

// Registry is the immutable, compiled pattern table in detector priority
// order. It is safe for concurrent use.
type Registry struct {
	byID map[BankID]*CompiledSet
	sets []*CompiledSet
}

// Option configures NewRegistry.
type Option func(*registryOptions)

type registryOptions struct {
	priority []BankID
	balance  []string
	account  []string
}

// WithPriority reorders the sets. Listed IDs come first in the given order;
// unlisted sets keep their declaration order after them.
func WithPriority(ids ...BankID) Option {
	return func(o *registryOptions) {
		o.priority = ids
	}
}

// WithSharedRules replaces the shared balance and account rules.
func WithSharedRules(balance, account []string) Option {
	return func(o *registryOptions) {
		o.balance = balance
		o.account = account
	}
}

// NewRegistry validates and compiles the given sets.
func NewRegistry(sets []BankPatternSet, opts ...Option) (*Registry, error) {
	o := registryOptions{
		balance: DefaultBalancePatterns(),
		account: DefaultAccountPatterns(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{
		byID: make(map[BankID]*CompiledSet, len(sets)),
		sets: make([]*CompiledSet, 0, len(sets)),
	}

	for _, set := range sets {
		cs, err := compileSet(set, o)
		if err != nil {
			return nil, err
		}
		if _, exists := r.byID[cs.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate bank id %q", common.ErrInvalidConfig, cs.ID)
		}
		r.byID[cs.ID] = cs
		r.sets = append(r.sets, cs)
	}

	if len(o.priority) > 0 {
		ordered, err := reorder(r.sets, r.byID, o.priority)
		if err != nil {
			return nil, err
		}
		r.sets = ordered
	}

	return r, nil
}

// Default compiles the built-in pattern table.
func Default(opts ...Option) (*Registry, error) {
	return NewRegistry(DefaultPatternSets(), opts...)
}

// Sets returns the compiled sets in priority order.
func (r *Registry) Sets() []*CompiledSet {
	out := make([]*CompiledSet, len(r.sets))
	copy(out, r.sets)
	return out
}

// Get returns the set with the given ID.
func (r *Registry) Get(id BankID) (*CompiledSet, bool) {
	cs, ok := r.byID[id]
	return cs, ok
}

// Len returns the number of sets.
func (r *Registry) Len() int {
	return len(r.sets)
}

func reorder(sets []*CompiledSet, byID map[BankID]*CompiledSet, priority []BankID) ([]*CompiledSet, error) {
	ordered := make([]*CompiledSet, 0, len(sets))
	seen := make(map[BankID]bool, len(sets))

	for _, id := range priority {
		cs, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: unknown bank %q in priority", common.ErrInvalidConfig, id)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ordered = append(ordered, cs)
	}

	for _, cs := range sets {
		if !seen[cs.ID] {
			ordered = append(ordered, cs)
		}
	}

	return ordered, nil
}

func compileSet(set BankPatternSet, o registryOptions) (*CompiledSet, error) {
	id := normalizeID(set.ID)
	if id == "" {
		return nil, fmt.Errorf("%w: bank id is required", common.ErrInvalidConfig)
	}
	if strings.TrimSpace(set.Name) == "" {
		return nil, fmt.Errorf("%w: bank %s has no name", common.ErrInvalidConfig, id)
	}
	if len(set.Debit) == 0 && len(set.Credit) == 0 {
		return nil, fmt.Errorf("%w: bank %s has no debit or credit rules", common.ErrInvalidConfig, id)
	}

	tokens := make([]string, 0, len(set.Tokens))
	for _, tok := range set.Tokens {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" {
			return nil, fmt.Errorf("%w: bank %s has an empty token", common.ErrInvalidConfig, id)
		}
		tokens = append(tokens, tok)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: bank %s has no tokens", common.ErrInvalidConfig, id)
	}

	balance := set.Balance
	if len(balance) == 0 {
		balance = o.balance
	}
	account := set.Account
	if len(account) == 0 {
		account = o.account
	}

	cs := &CompiledSet{
		ID:       id,
		Name:     set.Name,
		Tokens:   tokens,
		Fallback: set.Fallback,
	}

	var err error
	if cs.Debit, err = compileRules(id, "debit", set.Debit, GroupAmount); err != nil {
		return nil, err
	}
	if cs.Credit, err = compileRules(id, "credit", set.Credit, GroupAmount); err != nil {
		return nil, err
	}
	if cs.Balance, err = compileRules(id, "balance", balance, GroupAmount); err != nil {
		return nil, err
	}
	if cs.Account, err = compileRules(id, "account", account, GroupAccount); err != nil {
		return nil, err
	}

	return cs, nil
}

func compileRules(id BankID, kind string, patterns []string, required string) ([]Rule, error) {
	rules := make([]Rule, 0, len(patterns))

	for i, p := range patterns {
		re, err := common.CompileCaseInsensitive(p)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %s %s[%d]: %w", id, kind, i, err)
		}

		rule := Rule{
			Regexp:        re,
			AmountGroup:   re.SubexpIndex(GroupAmount),
			MerchantGroup: re.SubexpIndex(GroupMerchant),
			AccountGroup:  re.SubexpIndex(GroupAccount),
		}
		if re.SubexpIndex(required) < 0 {
			return nil, fmt.Errorf("%w: %s %s[%d] has no %q group", common.ErrInvalidPattern, id, kind, i, required)
		}

		rules = append(rules, rule)
	}

	return rules, nil
}
