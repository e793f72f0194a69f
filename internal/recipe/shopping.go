package recipe

import (
	"sort"
	"strconv"

	"rezeptplaner/internal/taxonomy"
)

// ShoppingListEntry is one department group of the shopping list with
// its items in input order and the subtotal of their prices.
type ShoppingListEntry struct {
	Department      string       `json:"department"`
	Icon            string       `json:"icon"`
	Items           []Ingredient `json:"items"`
	Subtotal        float64      `json:"subtotal"`
	SubtotalDisplay string       `json:"subtotal_display"`
}

// ShoppingList is the department-grouped, store-walk-ordered view of a
// recipe's ingredients. Derived fresh on every call, never mutated.
type ShoppingList struct {
	Entries      []ShoppingListEntry `json:"entries"`
	Total        float64             `json:"total"`
	TotalDisplay string              `json:"total_display"`
}

// BuildShoppingList groups ingredients by department, orders the
// groups by the canonical store-walk order (departments outside the
// taxonomy sink to the end, keeping the order in which they first
// appeared), and totals the estimated prices. The grand total is summed
// in canonical group order, then input order within each group, so
// floating-point rounding stays deterministic.
func BuildShoppingList(ingredients []Ingredient) ShoppingList {
	var entries []ShoppingListEntry
	indexByDept := make(map[string]int)

	for _, ing := range ingredients {
		i, ok := indexByDept[ing.Department]
		if !ok {
			i = len(entries)
			indexByDept[ing.Department] = i
			entries = append(entries, ShoppingListEntry{
				Department: ing.Department,
				Icon:       taxonomy.Icon(ing.Department),
			})
		}
		entries[i].Items = append(entries[i].Items, ing)
	}

	// Stable sort keeps first-appearance order among the unclassified
	// groups, which all share the sentinel index.
	sort.SliceStable(entries, func(a, b int) bool {
		return taxonomy.CanonicalIndex(entries[a].Department) < taxonomy.CanonicalIndex(entries[b].Department)
	})

	var total float64
	for i := range entries {
		var subtotal float64
		for _, item := range entries[i].Items {
			subtotal += item.EstimatedPrice
		}
		entries[i].Subtotal = subtotal
		entries[i].SubtotalDisplay = FormatPrice(subtotal)
		total += subtotal
	}

	return ShoppingList{
		Entries:      entries,
		Total:        total,
		TotalDisplay: FormatPrice(total),
	}
}

// FormatPrice renders a price with two decimal places for display.
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
