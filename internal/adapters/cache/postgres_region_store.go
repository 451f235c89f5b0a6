package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"shipping-rate-service/internal/domain"
	"shipping-rate-service/internal/platform/obs"
)

// PostgresRegionStore is the Postgres-backed variant of the region
// store, for deployments that share one durable cache across replicas.
type PostgresRegionStore struct {
	DB *sql.DB
}

func NewPostgresRegionStore(db *sql.DB) *PostgresRegionStore {
	return &PostgresRegionStore{DB: db}
}

// InitSchema creates the postal_regions table if it does not exist.
func (s *PostgresRegionStore) InitSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("region store: db is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS postal_regions (
        pincode TEXT PRIMARY KEY,
        city TEXT NOT NULL,
        state TEXT NOT NULL,
        district TEXT NOT NULL,
        zone TEXT NOT NULL
    );
	`
	if _, err := s.DB.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("init region store schema: %w", err)
	}
	return nil
}

// GetRegion fetches the cached region for a pincode; (nil, nil) on miss.
func (s *PostgresRegionStore) GetRegion(ctx context.Context, pincode string) (_ *domain.PostalRegion, err error) {
	defer obs.Time(ctx, "region.store.GetRegion")(&err)

	if s.DB == nil {
		return nil, errors.New("region store: db is nil")
	}

	if strings.TrimSpace(pincode) == "" {
		return nil, errors.New("get region: pincode must not be empty")
	}

	q := `
	SELECT pincode, city, state, district, zone
    FROM postal_regions
    WHERE pincode = $1;
	`

	var r domain.PostalRegion
	var zone string
	err = s.DB.QueryRowContext(ctx, q, pincode).Scan(&r.Pincode, &r.City, &r.State, &r.District, &zone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get region: query postal_regions table: %w", err)
	}

	r.Zone = domain.Zone(zone)
	return &r, nil
}

// PutRegion stores a pincode -> region mapping.
func (s *PostgresRegionStore) PutRegion(ctx context.Context, region domain.PostalRegion) error {
	if s.DB == nil {
		return errors.New("region store: db is nil")
	}

	if strings.TrimSpace(region.Pincode) == "" {
		return errors.New("put region: pincode must not be empty")
	}

	q := `
	INSERT INTO postal_regions (pincode, city, state, district, zone)
    VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (pincode) DO UPDATE
	SET city = EXCLUDED.city,
		state = EXCLUDED.state,
		district = EXCLUDED.district,
		zone = EXCLUDED.zone;
	`

	if _, err := s.DB.ExecContext(ctx, q, region.Pincode, region.City, region.State, region.District, string(region.Zone)); err != nil {
		return fmt.Errorf("put region pincode=%q: %w", region.Pincode, err)
	}

	return nil
}

// PutRegions stores many regions in one transaction.
func (s *PostgresRegionStore) PutRegions(ctx context.Context, regions []domain.PostalRegion) error {
	if s.DB == nil {
		return errors.New("region store: db is nil")
	}

	if len(regions) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("put regions: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO postal_regions (pincode, city, state, district, zone)
    VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (pincode) DO UPDATE
	SET city = EXCLUDED.city,
		state = EXCLUDED.state,
		district = EXCLUDED.district,
		zone = EXCLUDED.zone;
	`)
	if err != nil {
		return fmt.Errorf("put regions: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, r := range regions {
		if strings.TrimSpace(r.Pincode) == "" {
			return fmt.Errorf("put regions: empty pincode key")
		}

		if _, err := stmt.ExecContext(ctx, r.Pincode, r.City, r.State, r.District, string(r.Zone)); err != nil {
			return fmt.Errorf("put regions pincode=%q: %w", r.Pincode, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("put regions commit: %w", err)
	}

	return nil
}
