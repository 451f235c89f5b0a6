package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"shipping-rate-service/internal/api/dto"
	"shipping-rate-service/internal/ports"
	"shipping-rate-service/internal/services"
)

type AddressHandler struct {
	Validator *services.AddressValidator
	Suggester ports.AddressSuggester
}

// Validate checks one shipping address and returns the accumulated
// rule failures plus a normalized copy when everything passes.
func (h *AddressHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateAddressRequest

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

	result, err := h.Validator.Validate(r.Context(), toDomainAddress(req.Address))
	if err != nil {
		log.Printf("validate address failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ValidateAddressResponse{
		IsValid: result.IsValid,
		Errors:  result.Errors,
	}
	if result.NormalizedAddress != nil {
		normalized := fromDomainAddress(*result.NormalizedAddress)
		res.NormalizedAddress = &normalized
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Suggestions returns free-text address completions for checkout forms.
func (h *AddressHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, r, http.StatusBadRequest, "q is required")
		return
	}

	limit := 5
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 20 {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 20")
			return
		}
		limit = n
	}

	suggestions, err := h.Suggester.Suggest(r.Context(), query, limit)
	if err != nil {
		log.Printf("address suggestions failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListSuggestionsResponse{
		Suggestions: make([]dto.AddressPayload, 0, len(suggestions)),
	}
	for _, s := range suggestions {
		res.Suggestions = append(res.Suggestions, fromDomainAddress(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}
