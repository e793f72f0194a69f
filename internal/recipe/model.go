// Package recipe defines the structured recipe contract produced by
// the extraction backend, its validation rules, and the deterministic
// transformations (shopping list, preparation steps) derived from it.
package recipe

import (
	"fmt"
	"strings"

	"rezeptplaner/internal/taxonomy"
)

// Ingredient is one item of a recipe. Immutable after extraction.
type Ingredient struct {
	Name           string  `json:"name"`
	Quantity       string  `json:"quantity"`
	Department     string  `json:"department"`
	EstimatedPrice float64 `json:"estimated_price"`
}

// Recipe is the full structured result of one extraction call.
// Constructed once per successful extraction, never persisted.
type Recipe struct {
	Title           string       `json:"title"`
	Summary         string       `json:"summary"`
	Ingredients     []Ingredient `json:"ingredients"`
	PreparationText string       `json:"preparation_text"`
	PrepMinutes     int          `json:"prep_minutes"`
	CookMinutes     int          `json:"cook_minutes"`
	TotalMinutes    int          `json:"total_minutes"`
	Servings        int          `json:"servings"`
	Difficulty      string       `json:"difficulty"`
}

// Difficulty levels the backend is asked to use. Anything else passes
// validation but is reported as DifficultyUnknown to consumers.
const (
	DifficultyEasy    = "Easy"
	DifficultyMedium  = "Medium"
	DifficultyHard    = "Hard"
	DifficultyUnknown = "unknown"
)

// NormalizeDifficulty maps a raw difficulty label onto the fixed set,
// ignoring case and surrounding whitespace. Unrecognized labels map to
// DifficultyUnknown; they are never a validation failure.
func NormalizeDifficulty(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	default:
		return DifficultyUnknown
	}
}

// fieldSpec describes one schema field for the format instructions.
// The same table drives the guidance text handed to the backend, so
// prompt and validator stay in lock-step.
type fieldSpec struct {
	Name string
	Type string
	Desc string
}

var ingredientFields = []fieldSpec{
	{"name", "string", "Name of the ingredient"},
	{"quantity", "string", "Required amount, e.g. \"200 g\", \"2 pcs\", \"1 tbsp\""},
	{"department", "string", "Supermarket department. Must be exactly one of: " + strings.Join(taxonomy.Names(), ", ")},
	{"estimated_price", "number", "Estimated current retail price in euros (Germany) for the given amount, non-negative"},
}

var recipeFields = []fieldSpec{
	{"title", "string", "Full recipe title"},
	{"summary", "string", "Appetizing short description of the dish (2-3 sentences)"},
	{"ingredients", "array of ingredient objects", "All required ingredients with supermarket department and price"},
	{"preparation_text", "string", "Detailed preparation steps, each step on its own line, numbered (e.g. \"1. Boil water ...\")"},
	{"prep_minutes", "integer", "Preparation time in minutes, non-negative"},
	{"cook_minutes", "integer", "Cooking/baking time in minutes, non-negative"},
	{"total_minutes", "integer", "Total time in minutes, non-negative"},
	{"servings", "integer", "Number of servings, at least 1"},
	{"difficulty", "string", "Difficulty level: Easy, Medium or Hard"},
}

// FormatInstructions renders the machine-readable guidance describing
// the exact JSON shape the backend must return. It is derived purely
// from the field tables above and embedded verbatim in the system
// prompt by the extraction request builder.
func FormatInstructions() string {
	var b strings.Builder
	b.WriteString("Respond with a single JSON object and nothing else: no markdown fences, no commentary.\n")
	b.WriteString("The object must have exactly these fields:\n")
	for _, f := range recipeFields {
		fmt.Fprintf(&b, "- %q (%s): %s\n", f.Name, f.Type, f.Desc)
	}
	b.WriteString("Each element of \"ingredients\" must have exactly these fields:\n")
	for _, f := range ingredientFields {
		fmt.Fprintf(&b, "- %q (%s): %s\n", f.Name, f.Type, f.Desc)
	}
	return b.String()
}
