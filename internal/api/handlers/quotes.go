package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"shipping-rate-service/internal/adapters/cache"
	"shipping-rate-service/internal/api/dto"
	"shipping-rate-service/internal/domain"
	"shipping-rate-service/internal/services"
)

type QuoteHandler struct {
	Calculator *services.RateCalculator
	Cache      *cache.Memory
	// QuoteTTL bounds how long a priced quote may be served from cache;
	// rates are price-sensitive, so this is short.
	QuoteTTL time.Duration
}

// Quote prices the shipping options for one destination and parcel.
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.Parcel.WeightKg < 0 {
		writeError(w, r, http.StatusBadRequest, "weight_kg must not be negative")
		return
	}
	if req.Parcel.LengthCm < 0 || req.Parcel.WidthCm < 0 || req.Parcel.HeightCm < 0 {
		writeError(w, r, http.StatusBadRequest, "dimensions must not be negative")
		return
	}
	if req.Parcel.DeclaredValue < 0 {
		writeError(w, r, http.StatusBadRequest, "declared_value must not be negative")
		return
	}

	svcReq := services.QuoteRequest{
		Destination: toDomainAddress(req.Destination),
		Parcel: domain.Parcel{
			WeightKg: req.Parcel.WeightKg,
			Dimensions: domain.Dimensions{
				LengthCm: req.Parcel.LengthCm,
				WidthCm:  req.Parcel.WidthCm,
				HeightCm: req.Parcel.HeightCm,
			},
			DeclaredValue: req.Parcel.DeclaredValue,
		},
	}

	key := services.QuoteCacheKey(h.Calculator.OriginState, svcReq)
	if h.Cache != nil {
		if res, ok := cache.GetAs[dto.QuoteResponse](h.Cache, key); ok {
			writeJSON(w, r, http.StatusOK, res)
			return
		}
	}

	rates, err := h.Calculator.Quote(r.Context(), svcReq)
	if err != nil {
		log.Printf("quote failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.QuoteResponse{Rates: make([]dto.RateResponse, 0, len(rates))}
	for _, rate := range rates {
		res.Rates = append(res.Rates, dto.RateResponse{
			ProviderID:        rate.ProviderID,
			ProviderName:      rate.ProviderName,
			ServiceType:       string(rate.ServiceType),
			ServiceName:       rate.ServiceName,
			Rate:              rate.Rate,
			EstimatedDays:     rate.EstimatedDays,
			DeliveryDate:      rate.DeliveryDate,
			IsInsured:         rate.IsInsured,
			InsuranceCost:     rate.InsuranceCost,
			TrackingAvailable: rate.TrackingAvailable,
		})
	}

	if h.Cache != nil {
		h.Cache.Set(key, res, h.QuoteTTL)
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toDomainAddress(a dto.AddressPayload) domain.ShippingAddress {
	return domain.ShippingAddress{
		Street:      a.Street,
		City:        a.City,
		State:       a.State,
		PostalCode:  a.PostalCode,
		Country:     a.Country,
		Landmark:    a.Landmark,
		AddressType: a.AddressType,
	}
}

func fromDomainAddress(a domain.ShippingAddress) dto.AddressPayload {
	return dto.AddressPayload{
		Street:      a.Street,
		City:        a.City,
		State:       a.State,
		PostalCode:  a.PostalCode,
		Country:     a.Country,
		Landmark:    a.Landmark,
		AddressType: a.AddressType,
	}
}
