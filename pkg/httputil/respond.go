package httputil

import (
	"encoding/json"
	"net/http"
)

// Response is the JSON envelope shared by all API endpoints
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// StatusWriter wraps http.ResponseWriter to capture the status code
type StatusWriter struct {
	http.ResponseWriter
	statusCode int
}

// NewStatusWriter wraps a response writer, defaulting to 200
func NewStatusWriter(w http.ResponseWriter) *StatusWriter {
	return &StatusWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (sw *StatusWriter) WriteHeader(code int) {
	sw.statusCode = code
	sw.ResponseWriter.WriteHeader(code)
}

// StatusCode returns the captured status code
func (sw *StatusWriter) StatusCode() int {
	return sw.statusCode
}
