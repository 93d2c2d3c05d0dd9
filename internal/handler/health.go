package handler

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Error   string `json:"error,omitempty"`
}

// Health handles GET /api/health. Liveness includes a store ping.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Client().Ping(r.Context(), readpref.Primary()); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:  "unhealthy",
			Service: "neuronova-api",
			Error:   err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:  "healthy",
		Service: "neuronova-api",
	})
}
