package services

import (
	"career-guidance-service/internal/domain"
	"career-guidance-service/internal/ports"
	"context"
	"log/slog"
)

// FallbackLocator answers nearby-institution queries from the static catalog.
type FallbackLocator struct {
	Catalog ports.InstitutionCatalog
}

func NewFallbackLocator(catalog ports.InstitutionCatalog) *FallbackLocator {
	return &FallbackLocator{Catalog: catalog}
}

// Locate returns catalog institutions within radiusKm of origin, nearest first.
// The boundary is inclusive. A non-positive limit leaves the result uncapped.
// The result is never nil.
func (f *FallbackLocator) Locate(
	ctx context.Context,
	origin domain.GeoPoint,
	radiusKm float64,
	limit int,
) []domain.Institution {
	entries := f.Catalog.Entries()

	slog.DebugContext(ctx, "checking fallback catalog",
		"entries", len(entries),
		"lat", origin.Latitude,
		"lon", origin.Longitude,
		"radius_km", radiusKm,
	)

	out := make([]domain.Institution, 0, len(entries))
	for _, e := range entries {
		d := domain.HaversineKm(origin, e.Location())
		if d <= radiusKm {
			slog.DebugContext(ctx, "fallback institution in range", "name", e.Name, "distance_km", d)
			out = append(out, e.At(d))
			continue
		}
		slog.DebugContext(ctx, "fallback institution out of range", "name", e.Name, "distance_km", d)
	}

	domain.SortByDistance(out)
	out = domain.Truncate(out, limit)

	slog.InfoContext(ctx, "fallback lookup complete", "count", len(out), "radius_km", radiusKm)
	return out
}
