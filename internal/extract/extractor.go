// Package extract turns a free-text dish name into a validated
// recipe.Recipe via a generative-text backend. The backend is treated
// as untrusted: its raw output is cleaned, decoded and validated field
// by field, and every failure funnels into a single ExtractionFailure.
package extract

import (
	"context"
	"encoding/json"
	"strings"

	"rezeptplaner/internal/recipe"
)

// Backend is the generative-text collaborator. Implementations send
// the two-part instruction to a model and return its raw text output.
type Backend interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// Extractor builds extraction requests and validates the responses.
type Extractor struct {
	backend Backend
}

// New creates an Extractor on top of the given backend.
func New(backend Backend) *Extractor {
	return &Extractor{backend: backend}
}

// Extract performs one synchronous extraction call for the given dish
// name. It never retries. On success the returned Recipe satisfies the
// schema; on any failure the error is an *ExtractionFailure wrapping
// either a *BackendError or a *recipe.SchemaViolation.
func (e *Extractor) Extract(ctx context.Context, dish string) (*recipe.Recipe, error) {
	raw, err := e.backend.Generate(ctx, SystemPrompt(), UserPrompt(dish))
	if err != nil {
		return nil, &ExtractionFailure{Err: &BackendError{Err: err}}
	}

	rec, err := parseResponse(raw)
	if err != nil {
		return nil, &ExtractionFailure{Err: err}
	}
	return rec, nil
}

// parseResponse coerces raw model output into a validated Recipe.
// Models occasionally wrap the JSON in markdown fences or prose, so
// everything outside the outermost braces is discarded first.
func parseResponse(raw string) (*recipe.Recipe, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || start > end {
		return nil, &recipe.SchemaViolation{
			Field:      "response",
			Constraint: "no JSON object found in backend output",
		}
	}

	var rec recipe.Recipe
	if err := json.Unmarshal([]byte(raw[start:end+1]), &rec); err != nil {
		return nil, &recipe.SchemaViolation{
			Field:      "response",
			Constraint: "backend output is not a valid recipe object: " + err.Error(),
		}
	}

	if err := recipe.Validate(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
