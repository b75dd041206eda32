package ports

import (
	"career-guidance-service/internal/domain"
	"context"
)

// Contract for live nearby-institution search against an external places API.
type PlacesProvider interface {
	// Return institutions near q.Origin within q.RadiusKm, at most q.Limit when positive.
	FindInstitutions(ctx context.Context, q domain.QueryParameters) ([]domain.Institution, error)
}

// Storage for previously successful live lookups, keyed by query.
type PlacesCache interface {
	// Return cached institutions for q; ok is false on a miss or stale entry.
	Get(ctx context.Context, q domain.QueryParameters) (items []domain.Institution, ok bool, err error)
	// Store institutions for q.
	Put(ctx context.Context, q domain.QueryParameters, items []domain.Institution) error
}
