package model

import (
	"fmt"
	"strings"
)

// CategoryID identifies one of the fixed spending categories.
type CategoryID string

// Spending categories. CategoryOther doubles as the classifier fallback.
const (
	CategoryFood          CategoryID = "food"
	CategoryTransport     CategoryID = "transport"
	CategoryShopping      CategoryID = "shopping"
	CategoryEntertainment CategoryID = "entertainment"
	CategoryBills         CategoryID = "bills"
	CategoryGroceries     CategoryID = "groceries"
	CategoryOther         CategoryID = "other"
)

// AllCategories returns every category in display order.
func AllCategories() []CategoryID {
	return []CategoryID{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBills,
		CategoryGroceries,
		CategoryOther,
	}
}

// Label returns the human-readable label paired with the category.
func (c CategoryID) Label() string {
	switch c {
	case CategoryFood:
		return "Food & Dining"
	case CategoryTransport:
		return "Transport"
	case CategoryShopping:
		return "Shopping"
	case CategoryEntertainment:
		return "Entertainment"
	case CategoryBills:
		return "Bills & Utilities"
	case CategoryGroceries:
		return "Groceries"
	case CategoryOther:
		return "Other"
	default:
		return ""
	}
}

// Valid reports whether c is one of the known categories.
func (c CategoryID) Valid() bool {
	return c.Label() != ""
}

// ParseCategoryID converts user or config input into a CategoryID.
func ParseCategoryID(s string) (CategoryID, error) {
	id := CategoryID(strings.ToLower(strings.TrimSpace(s)))
	if !id.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return id, nil
}
