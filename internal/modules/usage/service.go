package usage

import (
	"context"
	"log"
	"time"
)

// Service records generation outcomes. All writes are best-effort: a ledger
// failure is logged and otherwise invisible to the request that caused it.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// RecordGeneration appends one row to the generation ledger.
func (s *Service) RecordGeneration(ctx context.Context, destination string, days, attempts int, success bool) {
	err := s.store.Insert(ctx, Record{
		Destination: destination,
		Days:        days,
		Attempts:    attempts,
		Success:     success,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		log.Printf("generation ledger write failed: %v", err)
	}
}
