package ai

import (
	"context"
)

// Generator defines the contract for invoking a generative-language model.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future,
// and lets tests drive the retry protocol with scripted failures.
type Generator interface {
	// Generate sends a single prompt and returns the raw response text.
	// Failures are classified: errors.Is(err, ErrTransient) marks a failure worth
	// retrying, errors.Is(err, ErrFatal) marks one that is not.
	Generate(ctx context.Context, prompt string) (string, error)
}
