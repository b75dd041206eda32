package api

import (
	"career-guidance-service/internal/api/handlers"
	"career-guidance-service/internal/config"
	"career-guidance-service/internal/services"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	cfg *config.Config,
	recommender *services.Recommender,
	places *services.PlacesLookup,
	fallback *services.FallbackLocator,
) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{
		LivePlaces:  places.Provider != nil,
		PlacesCache: places.Cache != nil,
	}
	recHandler := &handlers.RecommendHandler{Recommender: recommender}
	diagHandler := &handlers.DiagnosticsHandler{
		Places:   places,
		Fallback: fallback,
		RadiusKm: cfg.SearchRadiusKm,
		Limit:    cfg.SearchLimit,
	}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/recommend", recHandler.Recommend)
	mux.HandleFunc("/test-location", diagHandler.TestLocation)
	mux.HandleFunc("/test-fallback", diagHandler.TestFallback)
	mux.HandleFunc("/test-distance", diagHandler.TestDistance)

	return chain(mux,
		requestIDMiddleware,
		loggingMiddleware,
		recoveryMiddleware,
		corsMiddleware,
	)
}
