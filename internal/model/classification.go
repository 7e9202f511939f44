// Package model defines the core domain models used throughout the application.
package model

// Fixed classifier confidences. They describe how a category was derived,
// they are not calibrated probabilities.
const (
	ConfidenceKeyword  = 0.95
	ConfidenceFallback = 0.3
)

// CategoryClassification is the classifier's verdict for one merchant name.
type CategoryClassification struct {
	CategoryID    CategoryID `json:"categoryId"`
	CategoryLabel string     `json:"categoryLabel"`
	// AlternativeCategories is ordered best-first. Keyword matching leaves it
	// empty; it is never nil.
	AlternativeCategories []CategoryID `json:"alternativeCategories"`
	Confidence            float64      `json:"confidence"`
}

// NewClassification builds a classification with the label filled in.
func NewClassification(id CategoryID, confidence float64) CategoryClassification {
	return CategoryClassification{
		CategoryID:            id,
		CategoryLabel:         id.Label(),
		Confidence:            confidence,
		AlternativeCategories: []CategoryID{},
	}
}

// IsFallback reports whether this is the low-confidence "other" result.
func (c CategoryClassification) IsFallback() bool {
	return c.CategoryID == CategoryOther && c.Confidence == ConfidenceFallback
}
