package usage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles generation_log persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Insert appends one generation record.
func (s *Store) Insert(ctx context.Context, r Record) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO generation_log (destination, day_count, attempts, success, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, r.Destination, r.Days, r.Attempts, r.Success, r.CreatedAt)
	return err
}

// CountByDestination reports how many generations were recorded for a
// destination, split by outcome.
func (s *Store) CountByDestination(ctx context.Context, destination string) (succeeded, failed int, err error) {
	err = s.db.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE success),
			COUNT(*) FILTER (WHERE NOT success)
		FROM generation_log WHERE destination = $1
	`, destination).Scan(&succeeded, &failed)
	return succeeded, failed, err
}
