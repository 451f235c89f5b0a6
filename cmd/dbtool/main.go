package main

import (
	"context"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"shipping-rate-service/internal/adapters/cache"
	"shipping-rate-service/internal/adapters/postal"
	"shipping-rate-service/internal/config"
	"shipping-rate-service/internal/domain"
	"shipping-rate-service/internal/platform/db"
)

// seedableStore is what the tool needs from either durable backend.
type seedableStore interface {
	InitSchema(ctx context.Context) error
	PutRegions(ctx context.Context, regions []domain.PostalRegion) error
}

// dbtool initializes the durable region cache schema and pre-seeds it
// with the offline metro table, so cold starts resolve the big cities
// without any external call.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()
	ctx := context.Background()

	var store seedableStore
	if cfg.DatabaseURL != "" {
		conn, err := db.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()
		store = cache.NewPostgresRegionStore(conn)
		seed(ctx, store)
		return
	}

	conn, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()
	store = cache.NewSqliteRegionStore(conn)
	seed(ctx, store)
}

func seed(ctx context.Context, store seedableStore) {
	log.Println("Initializing region store schema...")
	if err := store.InitSchema(ctx); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	regions := postal.KnownRegions()
	log.Printf("Seeding %d metro regions...", len(regions))
	if err := store.PutRegions(ctx, regions); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
