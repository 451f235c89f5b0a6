package dto

import "time"

type ParcelPayload struct {
	WeightKg      float64 `json:"weight_kg"`
	LengthCm      float64 `json:"length_cm"`
	WidthCm       float64 `json:"width_cm"`
	HeightCm      float64 `json:"height_cm"`
	DeclaredValue float64 `json:"declared_value"`
}

type QuoteRequest struct {
	Destination AddressPayload `json:"destination"`
	Parcel      ParcelPayload  `json:"parcel"`
}

type RateResponse struct {
	ProviderID        string    `json:"provider_id"`
	ProviderName      string    `json:"provider_name"`
	ServiceType       string    `json:"service_type"`
	ServiceName       string    `json:"service_name"`
	Rate              float64   `json:"rate"`
	EstimatedDays     int       `json:"estimated_days"`
	DeliveryDate      time.Time `json:"delivery_date"`
	IsInsured         bool      `json:"is_insured"`
	InsuranceCost     float64   `json:"insurance_cost,omitempty"`
	TrackingAvailable bool      `json:"tracking_available"`
}

type QuoteResponse struct {
	Rates []RateResponse `json:"rates"`
}
