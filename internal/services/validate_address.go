package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"shipping-rate-service/internal/domain"
	"shipping-rate-service/internal/ports"
)

// AddressValidator composes the region resolver with structural
// checks on the address fields.
type AddressValidator struct {
	Resolver ports.RegionSource
}

func NewAddressValidator(resolver ports.RegionSource) *AddressValidator {
	return &AddressValidator{Resolver: resolver}
}

// Validate runs every rule and accumulates failures; it never stops at
// the first error. One resolver call per validation, no retries.
//
// When the address is valid and a region resolved, the returned
// normalized copy carries the canonical city and state.
func (v *AddressValidator) Validate(ctx context.Context, addr domain.ShippingAddress) (domain.AddressValidation, error) {
	region, err := v.Resolver.Resolve(ctx, addr.PostalCode)
	if err != nil {
		return domain.AddressValidation{}, err
	}

	var errs []string

	if region == nil {
		errs = append(errs, "invalid postal code")
	} else if !strings.EqualFold(strings.TrimSpace(region.State), strings.TrimSpace(addr.State)) {
		errs = append(errs, "postal code does not match state")
	}

	// Minimums count characters, not bytes, so multibyte scripts are
	// held to the same lengths.
	if utf8.RuneCountInString(strings.TrimSpace(addr.Street)) < 5 {
		errs = append(errs, "street address too short")
	}

	if utf8.RuneCountInString(strings.TrimSpace(addr.City)) < 2 {
		errs = append(errs, "city name required")
	}

	result := domain.AddressValidation{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}

	if result.IsValid && region != nil {
		normalized := addr
		if region.City != "" {
			normalized.City = region.City
		}
		normalized.State = region.State
		result.NormalizedAddress = &normalized
	}

	return result, nil
}
