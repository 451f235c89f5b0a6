package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"shipping-rate-service/internal/api/dto"
	"shipping-rate-service/internal/ports"
	"shipping-rate-service/internal/services"
)

// RegionHandler exposes raw pincode resolution, mainly for the admin
// console's address tooling.
type RegionHandler struct {
	Resolver ports.RegionSource
}

func (h *RegionHandler) Get(w http.ResponseWriter, r *http.Request) {
	pincode := chi.URLParam(r, "pincode")
	if !services.ValidPincode(pincode) {
		writeError(w, r, http.StatusBadRequest, "pincode must be 6 digits with a non-zero leading digit")
		return
	}

	region, err := h.Resolver.Resolve(r.Context(), pincode)
	if err != nil {
		log.Printf("resolve region failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if region == nil {
		writeError(w, r, http.StatusNotFound, "pincode not found")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.RegionResponse{
		Pincode:  region.Pincode,
		City:     region.City,
		State:    region.State,
		District: region.District,
		Zone:     string(region.Zone),
	})
}
