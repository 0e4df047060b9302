// README: Error taxonomy for the generation pipeline.
package itinerary

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a malformed or impossible request. Never retried;
	// surfaced to the caller as a client error.
	ErrValidation = errors.New("invalid trip request")

	// ErrExhaustedRetries is the terminal state after the attempt budget is
	// spent. The handler layer reports it as one generic server error and
	// never forwards raw model output or provider error text.
	ErrExhaustedRetries = errors.New("itinerary generation retries exhausted")
)

// SchemaError reports a structural mismatch between the model's output and
// the required document shape. It names the offending field so the log line
// explains what the model got wrong; it is retried, not surfaced.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema violation at %q: %s", e.Field, e.Reason)
}

func schemaErrf(field, format string, args ...any) *SchemaError {
	return &SchemaError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
