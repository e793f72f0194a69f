// Package taxonomy holds the fixed set of supermarket departments used
// to classify ingredients and to order the rendered shopping list. The
// order of the departments mirrors the typical walk through a German
// supermarket.
package taxonomy

// Department is one section of the supermarket.
type Department string

const (
	Produce       Department = "Produce"
	Bakery        Department = "Bakery"
	DairyEggs     Department = "Dairy & Eggs"
	MeatSausage   Department = "Meat & Sausage"
	FishSeafood   Department = "Fish & Seafood"
	Frozen        Department = "Frozen"
	CannedReady   Department = "Canned & Ready Meals"
	PastaRice     Department = "Pasta, Rice & Grains"
	SpicesOils    Department = "Spices, Oils & Vinegar"
	BakingSweets  Department = "Baking & Sweets"
	Beverages     Department = "Beverages"
	Miscellaneous Department = "Other"
)

// walkOrder is the canonical store-walk order. Never mutated after init.
var walkOrder = []Department{
	Produce,
	Bakery,
	DairyEggs,
	MeatSausage,
	FishSeafood,
	Frozen,
	CannedReady,
	PastaRice,
	SpicesOils,
	BakingSweets,
	Beverages,
	Miscellaneous,
}

var icons = map[Department]string{
	Produce:       "🥬",
	Bakery:        "🍞",
	DairyEggs:     "🥚",
	MeatSausage:   "🥩",
	FishSeafood:   "🐟",
	Frozen:        "🧊",
	CannedReady:   "🥫",
	PastaRice:     "🍝",
	SpicesOils:    "🧂",
	BakingSweets:  "🍰",
	Beverages:     "🥤",
	Miscellaneous: "🛒",
}

var indexByName = func() map[Department]int {
	m := make(map[Department]int, len(walkOrder))
	for i, d := range walkOrder {
		m[d] = i
	}
	return m
}()

// DefaultIcon is used for any department outside the canonical set.
const DefaultIcon = "🛒"

// WalkOrder returns the canonical departments in store-walk order.
func WalkOrder() []Department {
	out := make([]Department, len(walkOrder))
	copy(out, walkOrder)
	return out
}

// CanonicalIndex returns the position of name in the walk order.
// Unknown departments get a sentinel index greater than every
// canonical one so they sort after all classified departments.
// Matching is case- and accent-exact.
func CanonicalIndex(name string) int {
	if i, ok := indexByName[Department(name)]; ok {
		return i
	}
	return len(walkOrder)
}

// IsCanonical reports whether name is one of the fixed departments.
func IsCanonical(name string) bool {
	_, ok := indexByName[Department(name)]
	return ok
}

// Icon returns the display icon for a department name, falling back to
// the generic cart icon for anything outside the canonical set.
func Icon(name string) string {
	if icon, ok := icons[Department(name)]; ok {
		return icon
	}
	return DefaultIcon
}

// Names returns the canonical department names as plain strings, in
// walk order. Used to enumerate the allowed values in prompts.
func Names() []string {
	out := make([]string, len(walkOrder))
	for i, d := range walkOrder {
		out[i] = string(d)
	}
	return out
}
