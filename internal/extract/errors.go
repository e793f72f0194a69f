package extract

import "fmt"

// BackendError wraps a transport, auth, quota or model failure from
// the generative backend. Distinct from a schema violation so callers
// can choose different messaging.
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error: %v", e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// ExtractionFailure is the single failure channel of an extraction
// call. It always carries the underlying cause, either a *BackendError
// or a *recipe.SchemaViolation, reachable via errors.As.
type ExtractionFailure struct {
	Err error
}

func (e *ExtractionFailure) Error() string {
	return fmt.Sprintf("extraction failed: %v", e.Err)
}

func (e *ExtractionFailure) Unwrap() error { return e.Err }
