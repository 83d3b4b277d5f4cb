package goals

import (
	"encoding/json"
	"net/http"
)

const (
	headerAllowOrigin  = "Access-Control-Allow-Origin"
	headerAllowMethods = "Access-Control-Allow-Methods"
	headerAllowHeaders = "Access-Control-Allow-Headers"
)

// preflight answers a CORS OPTIONS request with no body.
func preflight(w http.ResponseWriter) {
	h := w.Header()
	h.Set(headerAllowOrigin, "*")
	h.Set(headerAllowMethods, "POST, OPTIONS")
	h.Set(headerAllowHeaders, "Content-Type")
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(headerAllowOrigin, "*")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}
