package handler

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"
)

// isValidEmail reports whether s is a syntactically valid, bare email
// address (no display name).
func isValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && strings.Contains(s, "@")
}

// writeValidationError responds 422 with per-field diagnostics.
// No write has been performed when this is called.
func writeValidationError(w http.ResponseWriter, fields map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error":  "validation_failed",
		"fields": fields,
	})
}
