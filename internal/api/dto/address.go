package dto

type AddressPayload struct {
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"`
	Landmark    string `json:"landmark,omitempty"`
	AddressType string `json:"address_type,omitempty"`
}

type ValidateAddressRequest struct {
	Address AddressPayload `json:"address"`
}

type ValidateAddressResponse struct {
	IsValid           bool            `json:"is_valid"`
	Errors            []string        `json:"errors,omitempty"`
	NormalizedAddress *AddressPayload `json:"normalized_address,omitempty"`
}

type ListSuggestionsResponse struct {
	Suggestions []AddressPayload `json:"suggestions"`
}
