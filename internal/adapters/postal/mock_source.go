package postal

import (
	"context"

	"shipping-rate-service/internal/domain"
)

// MockSource is a canned RegionSource for tests. It records how many
// times it was asked so tests can assert that short-circuit paths
// never reach it.
type MockSource struct {
	Regions map[string]domain.PostalRegion
	Err     error
	Calls   int
}

func NewMockSource(regions ...domain.PostalRegion) *MockSource {
	m := &MockSource{Regions: make(map[string]domain.PostalRegion, len(regions))}
	for _, r := range regions {
		m.Regions[r.Pincode] = r
	}
	return m
}

func (m *MockSource) Resolve(ctx context.Context, pincode string) (*domain.PostalRegion, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	r, ok := m.Regions[pincode]
	if !ok {
		return nil, nil
	}
	return &r, nil
}
