package ports

import (
	"context"
	"shipping-rate-service/internal/domain"
)

// Contract for resolving a postal code to its region.
//
// A nil region with a nil error means "no match"; errors are reserved
// for context cancellation and genuinely unexpected failures. Sources
// must never report an unreachable upstream as an error — that is a
// miss, and the caller moves on to the next source.
type RegionSource interface {
	Resolve(ctx context.Context, pincode string) (*domain.PostalRegion, error)
}
