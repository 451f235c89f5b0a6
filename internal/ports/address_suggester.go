package ports

import (
	"context"
	"shipping-rate-service/internal/domain"
)

// Optional lookup for free-text address suggestions. Results are
// partial addresses (whatever fields the upstream geocoder returns).
type AddressSuggester interface {
	Suggest(ctx context.Context, query string, limit int) ([]domain.ShippingAddress, error)
}
