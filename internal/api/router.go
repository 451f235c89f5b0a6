package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"shipping-rate-service/internal/adapters/cache"
	"shipping-rate-service/internal/api/handlers"
	"shipping-rate-service/internal/ports"
	"shipping-rate-service/internal/services"
)

// Deps carries the wired collaborators for the HTTP surface.
type Deps struct {
	Resolver   ports.RegionSource
	Validator  *services.AddressValidator
	Calculator *services.RateCalculator
	Suggester  ports.AddressSuggester
	Cache      *cache.Memory
	QuoteTTL   time.Duration
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)

	regionHandler := &handlers.RegionHandler{Resolver: deps.Resolver}
	addressHandler := &handlers.AddressHandler{
		Validator: deps.Validator,
		Suggester: deps.Suggester,
	}
	quoteHandler := &handlers.QuoteHandler{
		Calculator: deps.Calculator,
		Cache:      deps.Cache,
		QuoteTTL:   deps.QuoteTTL,
	}

	r.Get("/health", handlers.Health)
	r.Get("/regions/{pincode}", regionHandler.Get)
	r.Post("/addresses/validate", addressHandler.Validate)
	r.Get("/addresses/suggestions", addressHandler.Suggestions)
	r.Post("/quotes", quoteHandler.Quote)

	return r
}
