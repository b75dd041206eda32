package cache

import (
	"career-guidance-service/internal/domain"
	"career-guidance-service/internal/platform/obs"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SQLPlacesCache is a Postgres-backed cache of live places lookups.
// Rows older than TTL are treated as misses and overwritten on the next Put.
type SQLPlacesCache struct {
	DB  *sql.DB
	TTL time.Duration
}

func NewSQLPlacesCache(db *sql.DB, ttl time.Duration) *SQLPlacesCache {
	return &SQLPlacesCache{DB: db, TTL: ttl}
}

// cacheKey identifies a query. Origins are rounded to 4 decimals (about 11 m)
// so nearby repeat requests share an entry.
func cacheKey(q domain.QueryParameters) string {
	return fmt.Sprintf("%.4f,%.4f|r=%g|l=%d",
		q.Origin.Latitude, q.Origin.Longitude, q.RadiusKm, q.Limit)
}

// Get returns the cached institutions for q when present and fresh.
func (s *SQLPlacesCache) Get(
	ctx context.Context,
	q domain.QueryParameters,
) (_ []domain.Institution, _ bool, err error) {
	defer obs.Time(ctx, "places.cache.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("places cache: db is nil")
	}

	var payload []byte
	var fetchedAt time.Time

	row := s.DB.QueryRowContext(ctx, `
	SELECT payload, fetched_at
	FROM places_cache
	WHERE cache_key = $1;
	`, cacheKey(q))

	if err := row.Scan(&payload, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get places cache: scan row: %w", err)
	}

	if s.TTL > 0 && time.Since(fetchedAt) > s.TTL {
		return nil, false, nil
	}

	var items []domain.Institution
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, false, fmt.Errorf("get places cache: decode payload: %w", err)
	}

	return items, true, nil
}

// Put stores institutions for q, replacing any previous entry.
func (s *SQLPlacesCache) Put(ctx context.Context, q domain.QueryParameters, items []domain.Institution) (err error) {
	defer obs.Time(ctx, "places.cache.Put")(&err)

	if s.DB == nil {
		return errors.New("places cache: db is nil")
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("insert places cache: encode payload: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO places_cache (cache_key, payload, fetched_at)
	VALUES ($1, $2, now())
	ON CONFLICT (cache_key) DO UPDATE
	SET payload = EXCLUDED.payload,
		fetched_at = EXCLUDED.fetched_at;
	`, cacheKey(q), string(payload))
	if err != nil {
		return fmt.Errorf("insert places cache key=%q: %w", cacheKey(q), err)
	}

	return nil
}
