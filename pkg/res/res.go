package res

import (
	"encoding/json"
	"net/http"
)

func Json(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, msg string, statusCode int) {
	Json(w, map[string]any{"error": msg}, statusCode)
}

// Fields reports per-field validation messages the way the form layer
// surfaces them: inline, keyed by field name.
func Fields(w http.ResponseWriter, fields map[string]string, statusCode int) {
	Json(w, map[string]any{"errors": fields}, statusCode)
}
