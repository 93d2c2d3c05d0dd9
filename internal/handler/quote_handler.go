package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/neuronova/backend/internal/model"
	"github.com/neuronova/backend/internal/repository"
	"github.com/neuronova/backend/internal/service"
)

// quoteConfirmation is the localized acknowledgement returned to the client.
const quoteConfirmation = "Votre demande de devis a été envoyée. Notre équipe vous contactera sous 24h."

// QuoteHandler handles quote submission and lookups.
type QuoteHandler struct {
	quoteService service.QuoteService
}

// NewQuoteHandler creates a QuoteHandler with the given service.
func NewQuoteHandler(quoteService service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// submitQuoteRequest is the expected JSON body for POST /api/quotes.
// Totals are pointers so that absent and zero can be told apart.
type submitQuoteRequest struct {
	ClientName  string   `json:"client_name"`
	ClientEmail string   `json:"client_email"`
	ClientPhone string   `json:"client_phone"`
	Company     string   `json:"company"`
	Services    []string `json:"services"`
	TotalUSD    *float64 `json:"total_usd"`
	TotalFC     *float64 `json:"total_fc"`
	Notes       string   `json:"notes"`
}

// Submit handles POST /api/quotes.
// client_name and a non-empty services list are required; totals must be
// present and non-negative; client_email is validated when provided.
func (h *QuoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	fields := map[string]string{}
	if strings.TrimSpace(req.ClientName) == "" {
		fields["client_name"] = "required"
	}
	if req.ClientEmail != "" && !isValidEmail(req.ClientEmail) {
		fields["client_email"] = "invalid email address"
	}
	if len(req.Services) == 0 {
		fields["services"] = "required"
	} else {
		for _, id := range req.Services {
			if strings.TrimSpace(id) == "" {
				fields["services"] = "service ids must be non-empty"
				break
			}
		}
	}
	switch {
	case req.TotalUSD == nil:
		fields["total_usd"] = "required"
	case *req.TotalUSD < 0:
		fields["total_usd"] = "must be non-negative"
	}
	switch {
	case req.TotalFC == nil:
		fields["total_fc"] = "required"
	case *req.TotalFC < 0:
		fields["total_fc"] = "must be non-negative"
	}
	if len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	quote := &model.QuoteRequest{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Company:     req.Company,
		Services:    req.Services,
		TotalUSD:    *req.TotalUSD,
		TotalFC:     *req.TotalFC,
		Notes:       req.Notes,
	}

	if err := h.quoteService.Submit(r.Context(), quote); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "submit_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":   "success",
		"quote_id": quote.ID,
		"message":  quoteConfirmation,
	})
}

// Get handles GET /api/quotes/{id}.
func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	quote, err := h.quoteService.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "quote_not_found"})
		return
	}
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "lookup_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(quote)
}

// ListByClient handles GET /api/quotes/client/{email}.
// An email with no submissions yields an empty list, not an error.
func (h *QuoteHandler) ListByClient(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.quoteService.ListByClientEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	if quotes == nil {
		quotes = []*model.QuoteRequest{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(quotes)
}

// List handles GET /api/quotes (admin listing, capped, no auth — see
// EXPOSE_ADMIN_ENDPOINTS).
func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.quoteService.List(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	if quotes == nil {
		quotes = []*model.QuoteRequest{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(quotes)
}
