package recipe

import (
	"fmt"
	"strings"
)

// SchemaViolation reports a backend payload that does not conform to
// the recipe schema. Field names the offending field (ingredient
// fields are prefixed with their index, e.g. "ingredients[2].name").
type SchemaViolation struct {
	Field      string
	Constraint string
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("schema violation: %s: %s", e.Field, e.Constraint)
}

// Validate checks a decoded payload field by field and returns a
// *SchemaViolation for the first broken constraint. The backend is
// untrusted input, so nothing about the structure is assumed.
//
// Deliberately lenient, favoring availability over strictness:
// departments outside the taxonomy pass (the shopping list sorts them
// last), unrecognized difficulty labels pass (consumers report them as
// unknown), and total_minutes is not checked against prep + cook.
func Validate(r *Recipe) error {
	if strings.TrimSpace(r.Title) == "" {
		return &SchemaViolation{Field: "title", Constraint: "must not be empty"}
	}
	if strings.TrimSpace(r.Summary) == "" {
		return &SchemaViolation{Field: "summary", Constraint: "must not be empty"}
	}
	if strings.TrimSpace(r.PreparationText) == "" {
		return &SchemaViolation{Field: "preparation_text", Constraint: "must not be empty"}
	}
	if r.PrepMinutes < 0 {
		return &SchemaViolation{Field: "prep_minutes", Constraint: "must be non-negative"}
	}
	if r.CookMinutes < 0 {
		return &SchemaViolation{Field: "cook_minutes", Constraint: "must be non-negative"}
	}
	if r.TotalMinutes < 0 {
		return &SchemaViolation{Field: "total_minutes", Constraint: "must be non-negative"}
	}
	if r.Servings < 1 {
		return &SchemaViolation{Field: "servings", Constraint: "must be at least 1"}
	}
	for i, ing := range r.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			return &SchemaViolation{
				Field:      fmt.Sprintf("ingredients[%d].name", i),
				Constraint: "must not be empty",
			}
		}
		if strings.TrimSpace(ing.Quantity) == "" {
			return &SchemaViolation{
				Field:      fmt.Sprintf("ingredients[%d].quantity", i),
				Constraint: "must not be empty",
			}
		}
		if ing.EstimatedPrice < 0 {
			return &SchemaViolation{
				Field:      fmt.Sprintf("ingredients[%d].estimated_price", i),
				Constraint: "must be non-negative",
			}
		}
	}
	return nil
}
