package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"shipping-rate-service/internal/adapters/postal"
	"shipping-rate-service/internal/domain"
)

var shillong = domain.PostalRegion{
	Pincode:  "793001",
	City:     "Shillong",
	State:    "Meghalaya",
	District: "East Khasi Hills",
	Zone:     domain.ZoneNortheast,
}

func newTestCalculator(src *postal.MockSource) *RateCalculator {
	c := NewRateCalculator(NewChainResolver(src), "Maharashtra", "Mumbai")
	c.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return c
}

func smallParcel() domain.Parcel {
	return domain.Parcel{
		WeightKg:      1,
		Dimensions:    domain.Dimensions{LengthCm: 10, WidthCm: 10, HeightCm: 10},
		DeclaredValue: 1000,
	}
}

func rateFor(t *testing.T, rates []domain.ShippingRate, svc domain.ServiceType) domain.ShippingRate {
	t.Helper()
	for _, r := range rates {
		if r.ServiceType == svc {
			return r
		}
	}
	t.Fatalf("no %s rate in %v", svc, rates)
	return domain.ShippingRate{}
}

func TestQuoteSameZoneMetroGetsThreeRates(t *testing.T) {
	calc := newTestCalculator(postal.NewMockSource(mumbai))

	rates, err := calc.Quote(context.Background(), QuoteRequest{
		Destination: validMumbaiAddress(),
		Parcel:      smallParcel(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rates) != 3 {
		t.Fatalf("got %d rates, want 3 (standard, express, same_day)", len(rates))
	}

	std := rateFor(t, rates, domain.ServiceStandard)
	// Chargeable weight 1kg at the distance-1 tier (30/kg) lands under
	// the 40 floor.
	if std.Rate != 40 {
		t.Errorf("standard rate = %v, want 40 (floor)", std.Rate)
	}
	if std.EstimatedDays != 3 {
		t.Errorf("standard days = %d, want 3", std.EstimatedDays)
	}
	if !std.IsInsured || std.InsuranceCost != 5 {
		t.Errorf("standard insurance = (%v, %v), want (true, 5)", std.IsInsured, std.InsuranceCost)
	}

	exp := rateFor(t, rates, domain.ServiceExpress)
	if exp.Rate != 90 {
		t.Errorf("express rate = %v, want 90 (floor)", exp.Rate)
	}
	if exp.EstimatedDays != 1 {
		t.Errorf("express days = %d, want 1", exp.EstimatedDays)
	}

	same := rateFor(t, rates, domain.ServiceSameDay)
	if same.Rate != 150 {
		t.Errorf("same_day rate = %v, want 150 (floor)", same.Rate)
	}
	if same.EstimatedDays != 0 {
		t.Errorf("same_day days = %d, want 0", same.EstimatedDays)
	}
	if same.InsuranceCost != 10 {
		t.Errorf("same_day insurance = %v, want 10", same.InsuranceCost)
	}
}

func TestQuoteAboveFloorUsesWeightMath(t *testing.T) {
	calc := newTestCalculator(postal.NewMockSource(mumbai))

	parcel := smallParcel()
	parcel.WeightKg = 10

	rates, err := calc.Quote(context.Background(), QuoteRequest{
		Destination: validMumbaiAddress(),
		Parcel:      parcel,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 10kg x 30/kg at distance 1.
	if std := rateFor(t, rates, domain.ServiceStandard); std.Rate != 300 {
		t.Errorf("standard rate = %v, want 300", std.Rate)
	}
	if exp := rateFor(t, rates, domain.ServiceExpress); exp.Rate != 540 {
		t.Errorf("express rate = %v, want 540", exp.Rate)
	}
	if same := rateFor(t, rates, domain.ServiceSameDay); same.Rate != 900 {
		t.Errorf("same_day rate = %v, want 900", same.Rate)
	}
}

func TestQuoteDistantDestinationTwoRates(t *testing.T) {
	calc := newTestCalculator(postal.NewMockSource(shillong))

	rates, err := calc.Quote(context.Background(), QuoteRequest{
		Destination: domain.ShippingAddress{
			Street:     "Police Bazar Road",
			City:       "Shillong",
			State:      "Meghalaya",
			PostalCode: "793001",
		},
		Parcel: smallParcel(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rates) != 2 {
		t.Fatalf("got %d rates, want 2 (no same-day at zone distance 5)", len(rates))
	}

	// West -> northeast is the deepest tier: 7/3 day estimates.
	if std := rateFor(t, rates, domain.ServiceStandard); std.EstimatedDays != 7 {
		t.Errorf("standard days = %d, want 7", std.EstimatedDays)
	}
	if exp := rateFor(t, rates, domain.ServiceExpress); exp.EstimatedDays != 3 {
		t.Errorf("express days = %d, want 3", exp.EstimatedDays)
	}
}

func TestQuoteVolumetricWeightMonotonic(t *testing.T) {
	calc := newTestCalculator(postal.NewMockSource(mumbai))

	parcel := domain.Parcel{
		WeightKg:   2,
		Dimensions: domain.Dimensions{LengthCm: 40, WidthCm: 40, HeightCm: 40},
	}

	req := QuoteRequest{Destination: validMumbaiAddress(), Parcel: parcel}
	before, err := calc.Quote(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req.Parcel.Dimensions.HeightCm *= 2
	after, err := calc.Quote(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, svc := range []domain.ServiceType{domain.ServiceStandard, domain.ServiceExpress} {
		b := rateFor(t, before, svc)
		a := rateFor(t, after, svc)
		if a.Rate < b.Rate {
			t.Errorf("%s rate decreased after doubling height: %v -> %v", svc, b.Rate, a.Rate)
		}
	}
}

func TestQuoteResolverFailureFallsBackToWeightOnly(t *testing.T) {
	// Bypass the chain so the resolver error reaches the calculator.
	calc := NewRateCalculator(&postal.MockSource{Err: errors.New("resolver blew up")}, "Maharashtra", "Mumbai")
	calc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	parcel := domain.Parcel{WeightKg: 2}
	rates, err := calc.Quote(context.Background(), QuoteRequest{
		Destination: validMumbaiAddress(),
		Parcel:      parcel,
	})
	if err != nil {
		t.Fatalf("fallback path must not error: %v", err)
	}

	if len(rates) != 2 {
		t.Fatalf("got %d rates, want 2 from weight-only fallback", len(rates))
	}

	// 2kg at the mid-tier 60/kg.
	if std := rateFor(t, rates, domain.ServiceStandard); std.Rate != 120 {
		t.Errorf("fallback standard rate = %v, want 120", std.Rate)
	}
	if exp := rateFor(t, rates, domain.ServiceExpress); exp.Rate != 216 {
		t.Errorf("fallback express rate = %v, want 216", exp.Rate)
	}
}

func TestQuoteUnresolvedPincodeDefaultsByState(t *testing.T) {
	calc := newTestCalculator(postal.NewMockSource())

	rates, err := calc.Quote(context.Background(), QuoteRequest{
		Destination: domain.ShippingAddress{
			Street:     "1 Nowhere Lane",
			City:       "Nowhere",
			State:      "Atlantis", // unmapped -> central
			PostalCode: "999999",
		},
		Parcel: domain.Parcel{WeightKg: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// West -> central is distance 2: the quote still prices instead of
	// failing on the unknown region.
	if len(rates) != 2 {
		t.Fatalf("got %d rates, want 2", len(rates))
	}
	if std := rateFor(t, rates, domain.ServiceStandard); std.EstimatedDays != 3 {
		t.Errorf("standard days = %d, want 3 for distance 2", std.EstimatedDays)
	}
}

func TestQuoteDeliveryDateFromEstimatedDays(t *testing.T) {
	calc := newTestCalculator(postal.NewMockSource(mumbai))

	rates, err := calc.Quote(context.Background(), QuoteRequest{
		Destination: validMumbaiAddress(),
		Parcel:      smallParcel(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	std := rateFor(t, rates, domain.ServiceStandard)
	want := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	if !std.DeliveryDate.Equal(want) {
		t.Errorf("standard delivery date = %v, want %v", std.DeliveryDate, want)
	}
}

func TestQuoteCacheKeyDistinguishesInputs(t *testing.T) {
	base := QuoteRequest{Destination: validMumbaiAddress(), Parcel: smallParcel()}

	k1 := QuoteCacheKey("Maharashtra", base)
	if k2 := QuoteCacheKey("Maharashtra", base); k2 != k1 {
		t.Errorf("identical requests produced different keys: %q vs %q", k1, k2)
	}

	heavier := base
	heavier.Parcel.WeightKg = 2
	if QuoteCacheKey("Maharashtra", heavier) == k1 {
		t.Error("weight change did not change the cache key")
	}

	elsewhere := base
	elsewhere.Destination.PostalCode = "110001"
	if QuoteCacheKey("Maharashtra", elsewhere) == k1 {
		t.Error("destination change did not change the cache key")
	}

	otherCity := base
	otherCity.Destination.City = "Ratnagiri"
	if QuoteCacheKey("Maharashtra", otherCity) == k1 {
		t.Error("declared city change did not change the cache key")
	}

	otherState := base
	otherState.Destination.State = "Goa"
	if QuoteCacheKey("Maharashtra", otherState) == k1 {
		t.Error("declared state change did not change the cache key")
	}

	// Case and whitespace variants of the same city are one key.
	sameCity := base
	sameCity.Destination.City = "  BOMBAY "
	if QuoteCacheKey("Maharashtra", sameCity) != k1 {
		t.Error("city case/whitespace variant produced a different key")
	}
}
