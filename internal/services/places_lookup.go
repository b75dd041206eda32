package services

import (
	"career-guidance-service/internal/domain"
	"career-guidance-service/internal/ports"
	"context"
	"log/slog"
)

// PlacesLookup finds nearby institutions through a live provider and
// falls back to the static catalog whenever the provider is unavailable,
// fails, or finds nothing. It never returns an error.
type PlacesLookup struct {
	Provider ports.PlacesProvider // nil disables live lookup
	Cache    ports.PlacesCache    // optional
	Fallback *FallbackLocator
}

func NewPlacesLookup(provider ports.PlacesProvider, cache ports.PlacesCache, fallback *FallbackLocator) *PlacesLookup {
	return &PlacesLookup{
		Provider: provider,
		Cache:    cache,
		Fallback: fallback,
	}
}

// Find returns institutions near q.Origin sorted by distance. The result is never nil.
func (l *PlacesLookup) Find(ctx context.Context, q domain.QueryParameters) []domain.Institution {
	if l.Provider == nil {
		slog.InfoContext(ctx, "live places lookup disabled, using fallback catalog")
		return l.fallback(ctx, q)
	}

	if items, ok := l.cached(ctx, q); ok {
		return items
	}

	items, err := l.Provider.FindInstitutions(ctx, q)
	if err != nil {
		slog.WarnContext(ctx, "live places lookup failed, using fallback catalog", "err", err)
		return l.fallback(ctx, q)
	}
	if len(items) == 0 {
		slog.InfoContext(ctx, "live places lookup found nothing, using fallback catalog")
		return l.fallback(ctx, q)
	}

	domain.SortByDistance(items)
	items = domain.Truncate(items, q.Limit)

	if l.Cache != nil {
		if err := l.Cache.Put(ctx, q, items); err != nil {
			slog.WarnContext(ctx, "places cache write failed", "err", err)
		}
	}

	slog.InfoContext(ctx, "live places lookup complete", "count", len(items))
	return items
}

func (l *PlacesLookup) cached(ctx context.Context, q domain.QueryParameters) ([]domain.Institution, bool) {
	if l.Cache == nil {
		return nil, false
	}

	items, ok, err := l.Cache.Get(ctx, q)
	if err != nil {
		slog.WarnContext(ctx, "places cache read failed", "err", err)
		return nil, false
	}
	if !ok || len(items) == 0 {
		return nil, false
	}

	slog.DebugContext(ctx, "places cache hit", "count", len(items))
	return domain.Truncate(items, q.Limit), true
}

func (l *PlacesLookup) fallback(ctx context.Context, q domain.QueryParameters) []domain.Institution {
	return l.Fallback.Locate(ctx, q.Origin, q.RadiusKm, q.Limit)
}
