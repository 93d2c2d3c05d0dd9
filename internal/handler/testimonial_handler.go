package handler

import (
	"encoding/json"
	"net/http"

	"github.com/neuronova/backend/internal/model"
	"github.com/neuronova/backend/internal/service"
)

// TestimonialHandler serves the testimonials listing.
type TestimonialHandler struct {
	testimonialService service.TestimonialService
}

// NewTestimonialHandler creates a TestimonialHandler with the given service.
func NewTestimonialHandler(testimonialService service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

// List handles GET /api/testimonials. An empty store yields the compiled-in
// fallback set (applied by the service).
func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.testimonialService.List(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	if testimonials == nil {
		testimonials = []*model.Testimonial{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(testimonials)
}
