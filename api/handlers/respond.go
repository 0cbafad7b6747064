package handlers

import (
	"encoding/json"
	"net/http"

	"pulse-ims/api/schema"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":   code,
			"detail": detail,
		},
	})
}

func writeNotFound(w http.ResponseWriter, detail string) {
	writeError(w, http.StatusNotFound, "incidents.not_found", detail)
}

func writeValidationError(w http.ResponseWriter, fields []schema.FieldError) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error": map[string]string{
			"code":   "incidents.validation",
			"detail": "request validation failed",
		},
		"fields": fields,
	})
}

// writeServerError hides internals; the cause is already logged at the store.
func writeServerError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, "incidents.storage", "server error")
}
