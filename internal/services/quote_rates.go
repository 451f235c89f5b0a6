package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"shipping-rate-service/internal/domain"
	"shipping-rate-service/internal/platform/obs"
	"shipping-rate-service/internal/ports"
)

const (
	providerID   = "zoneship"
	providerName = "ZoneShip Logistics"
)

// baseRatesPerKg keys the per-kg base rate (INR) by zone distance tier.
var baseRatesPerKg = map[int]float64{
	1: 30,
	2: 45,
	3: 60,
	4: 80,
	5: 100,
}

// midTierRatePerKg covers any distance outside 1..5 and the weight-only
// fallback path.
const midTierRatePerKg = 60

type serviceParams struct {
	serviceType   domain.ServiceType
	serviceName   string
	multiplier    float64
	floor         float64
	insuranceRate float64
}

var serviceTable = []serviceParams{
	{domain.ServiceStandard, "Standard Surface", 1.0, 40, 0.005},
	{domain.ServiceExpress, "Express Air", 1.8, 90, 0.008},
	{domain.ServiceSameDay, "Same Day Metro", 3.0, 150, 0.010},
}

// sameDayCities is the metro allow-list for the same-day tier.
var sameDayCities = map[string]struct{}{
	"mumbai":    {},
	"delhi":     {},
	"new delhi": {},
	"bengaluru": {},
	"bangalore": {},
	"chennai":   {},
	"kolkata":   {},
	"hyderabad": {},
	"pune":      {},
	"ahmedabad": {},
}

// deliveryDays maps the distance tier to estimated transit days per
// service. Same-day is day 0 by definition.
func deliveryDays(zoneDistance int, svc domain.ServiceType) int {
	if svc == domain.ServiceSameDay {
		return 0
	}

	switch {
	case zoneDistance <= 2:
		if svc == domain.ServiceExpress {
			return 1
		}
		return 3
	case zoneDistance == 3:
		if svc == domain.ServiceExpress {
			return 2
		}
		return 5
	default:
		if svc == domain.ServiceExpress {
			return 3
		}
		return 7
	}
}

// QuoteRequest carries the destination and parcel for one quote. The
// origin is the calculator's fixed business location.
type QuoteRequest struct {
	Destination domain.ShippingAddress
	Parcel      domain.Parcel
}

// RateCalculator prices shipping options from a fixed origin using
// zone distance and chargeable weight.
type RateCalculator struct {
	Resolver    ports.RegionSource
	OriginState string
	OriginCity  string

	now func() time.Time
}

func NewRateCalculator(resolver ports.RegionSource, originState, originCity string) *RateCalculator {
	return &RateCalculator{
		Resolver:    resolver,
		OriginState: originState,
		OriginCity:  originCity,
		now:         time.Now,
	}
}

// Quote returns the priced options for a request: always standard and
// express, plus same-day when the destination is a nearby metro.
//
// The zone pipeline is not allowed to fail a checkout: any internal
// error degrades to a weight-only quote instead of surfacing.
func (c *RateCalculator) Quote(ctx context.Context, req QuoteRequest) (_ []domain.ShippingRate, err error) {
	defer obs.Time(ctx, "rates.Quote")(&err)

	rates, qerr := c.zoneQuote(ctx, req)
	if qerr != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("zone quote failed, using weight-only fallback: err=%v", qerr)
		return c.weightOnlyQuote(req), nil
	}
	return rates, nil
}

func (c *RateCalculator) zoneQuote(ctx context.Context, req QuoteRequest) ([]domain.ShippingRate, error) {
	region, err := c.Resolver.Resolve(ctx, req.Destination.PostalCode)
	if err != nil {
		return nil, fmt.Errorf("resolve destination %q: %w", req.Destination.PostalCode, err)
	}

	// Unresolvable pincodes price as zone-unknown rather than failing;
	// ZoneForState defaults to central for unmapped states.
	destZone := domain.ZoneForState(req.Destination.State)
	destCity := req.Destination.City
	if region != nil {
		destZone = region.Zone
		if region.City != "" {
			destCity = region.City
		}
	}

	originZone := domain.ZoneForState(c.OriginState)
	dist := domain.ZoneDistance(originZone, destZone)

	base, ok := baseRatesPerKg[dist]
	if !ok {
		base = midTierRatePerKg
	}

	weight := req.Parcel.ChargeableWeight()
	sameDayOK := dist <= 2 && isSameDayCity(destCity)

	rates := make([]domain.ShippingRate, 0, len(serviceTable))
	for _, svc := range serviceTable {
		if svc.serviceType == domain.ServiceSameDay && !sameDayOK {
			continue
		}
		rates = append(rates, c.buildRate(svc, weight, base, dist, req.Parcel.DeclaredValue))
	}

	return rates, nil
}

// weightOnlyQuote ignores zones entirely and guarantees the caller at
// least a standard and an express option.
func (c *RateCalculator) weightOnlyQuote(req QuoteRequest) []domain.ShippingRate {
	weight := req.Parcel.ChargeableWeight()

	rates := make([]domain.ShippingRate, 0, 2)
	for _, svc := range serviceTable {
		if svc.serviceType == domain.ServiceSameDay {
			continue
		}
		rates = append(rates, c.buildRate(svc, weight, midTierRatePerKg, 3, req.Parcel.DeclaredValue))
	}
	return rates
}

func (c *RateCalculator) buildRate(svc serviceParams, weight, base float64, dist int, declaredValue float64) domain.ShippingRate {
	amount := weight * base * svc.multiplier
	if amount < svc.floor {
		amount = svc.floor
	}

	days := deliveryDays(dist, svc.serviceType)

	rate := domain.ShippingRate{
		ProviderID:        providerID,
		ProviderName:      providerName,
		ServiceType:       svc.serviceType,
		ServiceName:       svc.serviceName,
		Rate:              round2(amount),
		EstimatedDays:     days,
		DeliveryDate:      c.now().AddDate(0, 0, days),
		TrackingAvailable: true,
	}

	if declaredValue > 0 {
		rate.IsInsured = true
		rate.InsuranceCost = round2(declaredValue * svc.insuranceRate)
	}

	return rate
}

func isSameDayCity(city string) bool {
	_, ok := sameDayCities[strings.ToLower(strings.TrimSpace(city))]
	return ok
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// QuoteCacheKey identifies a quote by everything that moves its price.
// The declared city and state are part of the key: when pincode
// resolution is partial, the city gates same-day eligibility and the
// state decides the zone, so requests differing only there must not
// share a cached quote.
func QuoteCacheKey(originState string, req QuoteRequest) string {
	return fmt.Sprintf("quote:%s|%s|%s|%s|%.3f|%.1fx%.1fx%.1f|%.2f",
		strings.ToLower(originState),
		req.Destination.PostalCode,
		strings.ToLower(strings.TrimSpace(req.Destination.City)),
		strings.ToLower(strings.TrimSpace(req.Destination.State)),
		req.Parcel.WeightKg,
		req.Parcel.Dimensions.LengthCm,
		req.Parcel.Dimensions.WidthCm,
		req.Parcel.Dimensions.HeightCm,
		req.Parcel.DeclaredValue,
	)
}
