package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"shipping-rate-service/internal/adapters/cache"
	"shipping-rate-service/internal/adapters/postal"
	"shipping-rate-service/internal/api"
	"shipping-rate-service/internal/config"
	"shipping-rate-service/internal/platform/db"
	"shipping-rate-service/internal/ports"
	"shipping-rate-service/internal/services"
)

// regionStore is what main needs from either durable backend.
type regionStore interface {
	ports.RegionStore
	InitSchema(ctx context.Context) error
}

// main is the application composition root.
// It wires concrete adapters (SQLite/Postgres, external postal APIs)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()

	conn, store, err := openStore(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := store.InitSchema(context.Background()); err != nil {
		log.Fatal(err)
	}

	// Resolution order: fast public API, government dataset (when a key
	// is configured), offline metro table, leading-digit heuristic.
	sources := []ports.RegionSource{postal.NewPincodeAPI(cfg.PincodeAPIBase)}
	if cfg.DataGovAPIKey != "" {
		sources = append(sources, postal.NewDataGovAPI(cfg.DataGovAPIBase, cfg.DataGovAPIKey))
	}
	sources = append(sources, postal.NewStaticTable(), postal.NewDigitHeuristic())
	chain := services.NewChainResolver(sources...)

	mem := cache.NewMemory()
	mem.StartSweep(cfg.SweepInterval)
	defer mem.StopSweep()

	resolver := services.NewCachedRegionResolver(chain, mem, store, cfg.RegionTTL)
	validator := services.NewAddressValidator(resolver)
	calculator := services.NewRateCalculator(resolver, cfg.OriginState, cfg.OriginCity)
	suggester := postal.NewNominatimAPI(cfg.NominatimBase)

	router := api.NewRouter(api.Deps{
		Resolver:   resolver,
		Validator:  validator,
		Calculator: calculator,
		Suggester:  suggester,
		Cache:      mem,
		QuoteTTL:   cfg.QuoteTTL,
	})

	// Timeouts are tuned for cold-cache quoting (external API latency).
	log.Printf("Server listening addr=:%s origin=%s/%s", cfg.Port, cfg.OriginCity, cfg.OriginState)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openStore(cfg config.Config) (*sql.DB, regionStore, error) {
	if cfg.DatabaseURL != "" {
		conn, err := db.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return conn, cache.NewPostgresRegionStore(conn), nil
	}

	conn, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return conn, cache.NewSqliteRegionStore(conn), nil
}
