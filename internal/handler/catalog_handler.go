package handler

import (
	"encoding/json"
	"net/http"

	"github.com/neuronova/backend/internal/catalog"
)

// CatalogHandler serves the compiled-in catalog: pricing categories, packs
// and the marketing services list. Pure reads; the persistence layer is
// never touched.
type CatalogHandler struct{}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

type servicesPricingResponse struct {
	Categories   []catalog.Category `json:"categories"`
	Packs        []catalog.Pack     `json:"packs"`
	ExchangeRate float64            `json:"exchange_rate"`
}

// ServicesPricing handles GET /api/services-pricing.
func (h *CatalogHandler) ServicesPricing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(servicesPricingResponse{
		Categories:   catalog.Categories(),
		Packs:        catalog.Packs(),
		ExchangeRate: catalog.ExchangeRate(),
	})
}

// Packs handles GET /api/packs.
func (h *CatalogHandler) Packs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(catalog.Packs())
}

// Services handles GET /api/services.
func (h *CatalogHandler) Services(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(catalog.Services())
}
