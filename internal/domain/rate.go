package domain

import "time"

// ServiceType identifies a delivery speed tier.
type ServiceType string

const (
	ServiceStandard ServiceType = "standard"
	ServiceExpress  ServiceType = "express"
	ServiceSameDay  ServiceType = "same_day"
)

// ShippingRate is one priced delivery option within a quote.
// Rates are computed fresh per request and never persisted; an ordered
// list of them forms a single quote.
type ShippingRate struct {
	ProviderID        string
	ProviderName      string
	ServiceType       ServiceType
	ServiceName       string
	Rate              float64
	EstimatedDays     int
	DeliveryDate      time.Time
	IsInsured         bool
	InsuranceCost     float64
	TrackingAvailable bool
}
