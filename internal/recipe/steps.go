package recipe

import (
	"regexp"
	"strings"
)

// stepMarker matches a leading numbering marker like "1. " or "2) ".
// Anchored to the start of the line; at most one marker is removed so
// the operation is idempotent.
var stepMarker = regexp.MustCompile(`^\d+[.)]\s*`)

// NormalizeSteps splits a preparation text blob into an ordered
// sequence of atomic steps. Blank lines are dropped and any leading
// numbering is stripped so the consumer can re-number deterministically.
// A blob without line breaks yields a single step; an empty or
// all-whitespace blob yields an empty sequence.
func NormalizeSteps(preparationText string) []string {
	var steps []string
	for _, line := range strings.Split(preparationText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		step := stepMarker.ReplaceAllString(line, "")
		if step == "" {
			// A bare marker like "3." carries no step text.
			continue
		}
		steps = append(steps, step)
	}
	return steps
}
