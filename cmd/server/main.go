package main

import (
	"career-guidance-service/internal/adapters/cache"
	"career-guidance-service/internal/adapters/catalog"
	"career-guidance-service/internal/adapters/gemini"
	"career-guidance-service/internal/adapters/places"
	"career-guidance-service/internal/api"
	"career-guidance-service/internal/config"
	"career-guidance-service/internal/platform/db"
	"career-guidance-service/internal/platform/obs"
	"career-guidance-service/internal/ports"
	"career-guidance-service/internal/services"
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// main is the application composition root.
// It wires concrete adapters (Gemini, Geoapify, Redis or Postgres, static catalog) behind ports and starts the HTTP server.
func main() {
	cfg := config.Load()

	slog.SetDefault(obs.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat))

	if err := cfg.Validate(); err != nil {
		log.Fatal("configuration error: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator, err := gemini.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal(err)
	}

	institutions, err := catalog.NewStaticCatalog()
	if err != nil {
		log.Fatal(err)
	}
	fallback := services.NewFallbackLocator(institutions)

	var provider ports.PlacesProvider
	if cfg.PlacesEnabled() {
		geo, err := places.NewGeoapifyProvider(cfg.GeoapifyAPIKey, cfg.GeoapifyBaseURL)
		if err != nil {
			log.Fatal(err)
		}
		provider = geo
	} else {
		slog.Warn("GEOAPIFY_API_KEY not set, nearby institutions come from the static catalog")
	}

	// Places cache is optional; a backend that cannot be reached only disables caching.
	var placesCache ports.PlacesCache
	if cfg.CacheEnabled() && provider != nil {
		c, closeFn, err := openCache(ctx, cfg)
		if err != nil {
			slog.Warn("places cache disabled", "err", err)
		} else {
			defer closeFn()
			placesCache = c
		}
	}

	lookup := services.NewPlacesLookup(provider, placesCache, fallback)
	recommender := services.NewRecommender(generator, lookup, cfg.SearchRadiusKm, cfg.SearchLimit)
	router := api.NewRouter(cfg, recommender, lookup, fallback)

	// Write timeout leaves room for a slow model call plus the places lookup.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "err", err)
		}
	}()

	slog.Info("server listening",
		"addr", srv.Addr,
		"model", cfg.GeminiModel,
		"live_places", provider != nil,
		"places_cache", placesCache != nil,
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// openCache connects the configured cache backend, preferring Redis over Postgres.
func openCache(ctx context.Context, cfg *config.Config) (ports.PlacesCache, func() error, error) {
	if cfg.RedisURL != "" {
		client, err := cache.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("places cache backend", "kind", "redis")
		return cache.NewRedisPlacesCache(client, cfg.PlacesCacheTTL), client.Close, nil
	}

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	if err := cache.InitSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, nil, err
	}

	slog.Info("places cache backend", "kind", "postgres")
	return cache.NewSQLPlacesCache(conn, cfg.PlacesCacheTTL), conn.Close, nil
}
