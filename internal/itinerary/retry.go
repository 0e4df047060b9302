// README: Bounded-attempt retry protocol around generation and parsing.
package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"voyago/internal/ai"
)

type retryState int

const (
	stateAttempting retryState = iota
	stateRetrying
	stateSuccess
	stateExhausted
)

func (s retryState) String() string {
	switch s {
	case stateAttempting:
		return "attempting"
	case stateRetrying:
		return "retrying"
	case stateSuccess:
		return "success"
	case stateExhausted:
		return "exhausted"
	}
	return "unknown"
}

// Runner drives the generate-then-parse loop under a bounded attempt budget.
// Transient provider failures and schema violations consume an attempt and
// back off linearly (attempt × BaseDelay); fatal provider failures abort at
// once without consuming the budget.
type Runner struct {
	Generator   ai.Generator
	MaxAttempts int
	BaseDelay   time.Duration
}

// Run executes up to MaxAttempts generation attempts against a fixed prompt.
// The prompt is deterministic, so it is never rebuilt between attempts.
// It returns the parsed document and the number of attempts consumed.
func (r *Runner) Run(ctx context.Context, prompt string, wantDays int) (*Document, int, error) {
	state := stateAttempting
	var lastErr error

	for attempt := 1; attempt <= r.MaxAttempts; attempt++ {
		if state == stateRetrying {
			if err := r.backoff(ctx, attempt-1); err != nil {
				return nil, attempt - 1, err
			}
			state = stateAttempting
		}

		raw, err := r.Generator.Generate(ctx, prompt)
		if err != nil {
			if errors.Is(err, ai.ErrFatal) {
				log.Printf("generation attempt %d: fatal provider error: %v", attempt, err)
				return nil, attempt, err
			}
			log.Printf("generation attempt %d: transient provider error: %v", attempt, err)
			lastErr = err
			state = stateRetrying
			continue
		}

		doc, perr := ParseDocument(raw, wantDays)
		if perr != nil {
			// The model may well produce conforming output next time.
			log.Printf("generation attempt %d: %v", attempt, perr)
			lastErr = perr
			state = stateRetrying
			continue
		}

		state = stateSuccess
		log.Printf("generation %s after %d attempt(s)", state, attempt)
		return doc, attempt, nil
	}

	state = stateExhausted
	log.Printf("generation %s after %d attempts, last error: %v", state, r.MaxAttempts, lastErr)
	return nil, r.MaxAttempts, fmt.Errorf("%w: %v", ErrExhaustedRetries, lastErr)
}

// backoff sleeps attempt × BaseDelay without holding up other requests;
// context cancellation cuts the wait short.
func (r *Runner) backoff(ctx context.Context, attempt int) error {
	delay := time.Duration(attempt) * r.BaseDelay
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
