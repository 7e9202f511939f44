// Package classification maps merchant names to spending categories by
// keyword containment.
package classification

import (
	"fmt"
	"strings"

	"github.com/nimesh4992/Stack-sub000/internal/common"
	"github.com/nimesh4992/Stack-sub000/internal/model"
)

// Keyword assigns a category to every merchant name containing Keyword.
type Keyword struct {
	Keyword  string           `yaml:"keyword"`
	Category model.CategoryID `yaml:"category"`
}

// Classifier walks its keyword table in declaration order; the first keyword
// contained in the normalized merchant name wins. It is immutable and safe
// for concurrent use.
type Classifier struct {
	keywords []Keyword
}

// NewClassifier validates the table and lowercases every keyword.
func NewClassifier(keywords []Keyword) (*Classifier, error) {
	normalized := make([]Keyword, 0, len(keywords))

	for i, kw := range keywords {
		word := normalize(kw.Keyword)
		if word == "" {
			return nil, fmt.Errorf("%w: keyword %d is empty", common.ErrInvalidConfig, i)
		}

		category, err := model.ParseCategoryID(string(kw.Category))
		if err != nil {
			return nil, fmt.Errorf("%w: keyword %q: %w", common.ErrInvalidConfig, kw.Keyword, err)
		}

		normalized = append(normalized, Keyword{Keyword: word, Category: category})
	}

	return &Classifier{keywords: normalized}, nil
}

// Default builds a classifier over DefaultKeywords.
func Default() (*Classifier, error) {
	return NewClassifier(DefaultKeywords())
}

// Classify returns the category of merchant. It never fails: names matching
// no keyword, including the empty string, fall back to "other" at
// model.ConfidenceFallback.
func (c *Classifier) Classify(merchant string) model.CategoryClassification {
	name := normalize(merchant)

	if name != "" {
		for _, kw := range c.keywords {
			if strings.Contains(name, kw.Keyword) {
				return model.NewClassification(kw.Category, model.ConfidenceKeyword)
			}
		}
	}

	return model.NewClassification(model.CategoryOther, model.ConfidenceFallback)
}

// ClassifyBatch classifies merchants, index-aligned with the input.
func (c *Classifier) ClassifyBatch(merchants []string) []model.CategoryClassification {
	results := make([]model.CategoryClassification, len(merchants))
	for i, m := range merchants {
		results[i] = c.Classify(m)
	}
	return results
}

// Keywords returns a copy of the normalized table.
func (c *Classifier) Keywords() []Keyword {
	out := make([]Keyword, len(c.keywords))
	copy(out, c.keywords)
	return out
}

// Len returns the number of keywords.
func (c *Classifier) Len() int {
	return len(c.keywords)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
