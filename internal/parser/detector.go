package parser

import (
	"strings"

	"github.com/nimesh4992/Stack-sub000/internal/banks"
)

// Detector picks the pattern set for an SMS by token containment.
type Detector struct {
	primary  []*banks.CompiledSet
	fallback []*banks.CompiledSet
}

// NewDetector splits the registry into bank sets and fallback sets, keeping
// priority order within each.
func NewDetector(reg *banks.Registry) *Detector {
	d := &Detector{}
	for _, cs := range reg.Sets() {
		if cs.Fallback {
			d.fallback = append(d.fallback, cs)
		} else {
			d.primary = append(d.primary, cs)
		}
	}
	return d
}

// Detect returns the first bank set in priority order with a token in text,
// then the first matching fallback set. Where a token occurs in the text
// does not matter.
func (d *Detector) Detect(text string) (*banks.CompiledSet, bool) {
	lower := strings.ToLower(text)

	for _, group := range [][]*banks.CompiledSet{d.primary, d.fallback} {
		for _, cs := range group {
			if containsAny(lower, cs.Tokens) {
				return cs, true
			}
		}
	}

	return nil, false
}

func containsAny(text string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			return true
		}
	}
	return false
}
