package services

import (
	"context"
	"slices"
	"testing"

	"shipping-rate-service/internal/adapters/postal"
	"shipping-rate-service/internal/domain"
)

func validMumbaiAddress() domain.ShippingAddress {
	return domain.ShippingAddress{
		Street:     "12 Marine Drive",
		City:       "Bombay",
		State:      "Maharashtra",
		PostalCode: "400001",
		Country:    "India",
	}
}

func TestValidateAddressValid(t *testing.T) {
	v := NewAddressValidator(NewChainResolver(postal.NewMockSource(mumbai)))

	result, err := v.Validate(context.Background(), validMumbaiAddress())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.IsValid {
		t.Fatalf("IsValid = false, errors = %v", result.Errors)
	}
	if result.NormalizedAddress == nil {
		t.Fatal("NormalizedAddress is nil for a valid address")
	}
	if result.NormalizedAddress.City != "Mumbai" {
		t.Errorf("normalized city = %q, want Mumbai", result.NormalizedAddress.City)
	}
	if result.NormalizedAddress.State != "Maharashtra" {
		t.Errorf("normalized state = %q, want Maharashtra", result.NormalizedAddress.State)
	}
	// Fields outside city/state stay untouched.
	if result.NormalizedAddress.Street != "12 Marine Drive" {
		t.Errorf("normalized street = %q, want original street", result.NormalizedAddress.Street)
	}
}

func TestValidateAddressStateMismatch(t *testing.T) {
	v := NewAddressValidator(NewChainResolver(postal.NewMockSource(mumbai)))

	addr := validMumbaiAddress()
	addr.State = "Delhi"

	result, err := v.Validate(context.Background(), addr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.IsValid {
		t.Fatal("IsValid = true for mismatched state")
	}
	if !slices.Contains(result.Errors, "postal code does not match state") {
		t.Errorf("errors = %v, want state mismatch error", result.Errors)
	}
	if result.NormalizedAddress != nil {
		t.Error("NormalizedAddress set on invalid address")
	}
}

func TestValidateAddressStateCaseInsensitive(t *testing.T) {
	v := NewAddressValidator(NewChainResolver(postal.NewMockSource(mumbai)))

	addr := validMumbaiAddress()
	addr.State = "mahaRASHtra"

	result, err := v.Validate(context.Background(), addr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsValid {
		t.Fatalf("IsValid = false for case-variant state, errors = %v", result.Errors)
	}
}

func TestValidateAddressCountsCharactersNotBytes(t *testing.T) {
	v := NewAddressValidator(NewChainResolver(postal.NewMockSource(mumbai)))

	addr := validMumbaiAddress()
	addr.Street = "गली" // 3 characters, 9 bytes
	addr.City = "म"     // 1 character, 3 bytes

	result, err := v.Validate(context.Background(), addr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.IsValid {
		t.Fatal("IsValid = true for sub-minimum multibyte fields")
	}
	for _, w := range []string{"street address too short", "city name required"} {
		if !slices.Contains(result.Errors, w) {
			t.Errorf("errors = %v, missing %q", result.Errors, w)
		}
	}

	// A multibyte city over the minimum passes.
	addr = validMumbaiAddress()
	addr.City = "मुंबई"
	result, err = v.Validate(context.Background(), addr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slices.Contains(result.Errors, "city name required") {
		t.Errorf("errors = %v, multibyte city flagged as too short", result.Errors)
	}
}

func TestValidateAddressAccumulatesErrors(t *testing.T) {
	v := NewAddressValidator(NewChainResolver(postal.NewMockSource()))

	result, err := v.Validate(context.Background(), domain.ShippingAddress{
		Street:     "abc",
		City:       "X",
		State:      "Maharashtra",
		PostalCode: "111111",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.IsValid {
		t.Fatal("IsValid = true, want false")
	}

	want := []string{"invalid postal code", "street address too short", "city name required"}
	for _, w := range want {
		if !slices.Contains(result.Errors, w) {
			t.Errorf("errors = %v, missing %q", result.Errors, w)
		}
	}
	if len(result.Errors) != len(want) {
		t.Errorf("got %d errors, want %d: %v", len(result.Errors), len(want), result.Errors)
	}
}
