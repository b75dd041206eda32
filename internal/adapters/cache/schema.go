package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// InitSchema creates the places cache table and its index if missing.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPlacesCacheQuery := `
	CREATE TABLE IF NOT EXISTS places_cache (
		cache_key TEXT PRIMARY KEY,
		payload JSONB NOT NULL,
		fetched_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_places_cache_fetched_at
	ON places_cache(fetched_at);
	`

	for _, stmt := range []string{createPlacesCacheQuery, createIndexQuery} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit: %w", err)
	}

	return nil
}

// PurgeStale deletes cache rows fetched more than olderThan ago and reports how many were removed.
func PurgeStale(ctx context.Context, db *sql.DB, olderThan time.Duration) (int64, error) {
	if db == nil {
		return 0, errors.New("purge places cache: DB is nil")
	}

	cutoff := time.Now().Add(-olderThan)
	res, err := db.ExecContext(ctx, `DELETE FROM places_cache WHERE fetched_at < $1;`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge places cache: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge places cache: rows affected: %w", err)
	}

	return n, nil
}
