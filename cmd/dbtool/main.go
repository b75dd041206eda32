package main

import (
	"career-guidance-service/internal/adapters/cache"
	"career-guidance-service/internal/config"
	"career-guidance-service/internal/platform/db"
	"context"
	"flag"
	"log"
	"time"
)

func main() {
	purge := flag.Bool("purge", false, "delete cached places lookups older than the cache TTL")
	flag.Parse()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing places cache schema...")
	if err := cache.InitSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if *purge {
		log.Printf("Purging cache rows older than %s...", cfg.PlacesCacheTTL)
		n, err := cache.PurgeStale(ctx, conn, cfg.PlacesCacheTTL)
		if err != nil {
			log.Fatalf("purge failed: %v", err)
		}
		log.Printf("Purged %d rows.", n)
	}
}
