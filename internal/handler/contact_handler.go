package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/neuronova/backend/internal/model"
	"github.com/neuronova/backend/internal/service"
)

// contactConfirmation is the localized acknowledgement returned to the client.
const contactConfirmation = "Votre message a été envoyé avec succès. Nous vous répondrons dans les plus brefs délais."

// ContactHandler handles contact form submission and the admin listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitContactRequest is the expected JSON body for POST /api/contact.
type submitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
// name, email and message are required; email must be syntactically valid;
// phone is optional free text. Validation runs before any side effect.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	fields := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "required"
	}
	if req.Email == "" {
		fields["email"] = "required"
	} else if !isValidEmail(req.Email) {
		fields["email"] = "invalid email address"
	}
	if strings.TrimSpace(req.Message) == "" {
		fields["message"] = "required"
	}
	if len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if err := h.contactService.Submit(r.Context(), msg); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "submit_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "success",
		"message": contactConfirmation,
	})
}

// List handles GET /api/contacts (admin listing, capped, no auth — see
// EXPOSE_ADMIN_ENDPOINTS).
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.List(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(messages)
}
