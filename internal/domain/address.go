package domain

// ShippingAddress is a caller-supplied destination. It is an input
// value only; nothing in this service persists addresses.
type ShippingAddress struct {
	Street      string
	City        string
	State       string
	PostalCode  string
	Country     string
	Landmark    string
	AddressType string
}

// AddressValidation is the transient result of one validation call.
// NormalizedAddress is set only when the address is valid and the
// postal code resolved to a known region.
type AddressValidation struct {
	IsValid           bool
	Errors            []string
	NormalizedAddress *ShippingAddress
}
