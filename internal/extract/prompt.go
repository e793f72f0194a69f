package extract

import (
	"fmt"

	"rezeptplaner/internal/recipe"
)

const systemDirective = `You are an experienced cook and grocery-shopping expert for the German market.
The user names a dish. You produce:
- A complete recipe with all ingredients
- Current German supermarket prices (REWE / EDEKA / Aldi, as of 2025) for each required amount
- Every ingredient assigned to a supermarket department
- Numbered preparation steps (e.g. "1. Boil water ...")

`

// SystemPrompt is the fixed system directive handed to the backend:
// the persona plus the schema's format instructions. It depends only
// on the schema definition, never on the dish.
func SystemPrompt() string {
	return systemDirective + recipe.FormatInstructions()
}

// UserPrompt names the dish to extract. The dish is expected to be
// trimmed and non-empty; the HTTP boundary rejects blank input.
func UserPrompt(dish string) string {
	return fmt.Sprintf("Create a detailed recipe for: %s", dish)
}
