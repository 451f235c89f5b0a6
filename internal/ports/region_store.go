package ports

import (
	"context"
	"shipping-rate-service/internal/domain"
)

// Port: a boundary for durable postal region caching.
// GetRegion returns (nil, nil) on a miss.
type RegionStore interface {
	GetRegion(ctx context.Context, pincode string) (*domain.PostalRegion, error)
	PutRegion(ctx context.Context, region domain.PostalRegion) error
}
