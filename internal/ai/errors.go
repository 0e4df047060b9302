package ai

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	// ErrTransient marks a provider failure that may clear on a retry
	// (service temporarily unavailable, overloaded, network-level failure).
	ErrTransient = errors.New("transient generation service error")

	// ErrFatal marks a provider failure that retrying cannot fix
	// (bad credentials, exhausted quota).
	ErrFatal = errors.New("fatal generation service error")
)

// classify wraps a provider error with ErrTransient or ErrFatal.
// Auth and quota failures are fatal; server-side errors and anything
// unrecognized (typically network-level) are transient.
func classify(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrFatal, err)
		}
		if gerr.Code >= 500 {
			return fmt.Errorf("%w: %v", ErrTransient, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrTransient, err)
}
