// Package response writes the JSON envelopes the API uses.
//
// Listing endpoints respond with {"data": ..., "meta": ...}; failures use
// {"error": ..., "message": ...}. Store errors never leak driver details:
// callers pass a generic message and log the underlying error themselves.
package response

import (
	"encoding/json"
	"net/http"
)

// Map is shorthand for ad-hoc JSON objects.
type Map = map[string]interface{}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Data sends a 200 {"data": ...} envelope.
func Data(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, Map{"data": data})
}

// DataMeta sends a 200 {"data": ..., "meta": ...} envelope.
func DataMeta(w http.ResponseWriter, data, meta interface{}) {
	JSON(w, http.StatusOK, Map{"data": data, "meta": meta})
}

// Error sends an {"error": ..., "message": ...} envelope.
func Error(w http.ResponseWriter, status int, errName, message string) {
	JSON(w, status, Map{"error": errName, "message": message})
}

// NotFound sends a 404 with the standard not-found shape.
func NotFound(w http.ResponseWriter, errName, message string) {
	Error(w, http.StatusNotFound, errName, message)
}

// Unauthorized sends the 401 shape the auth middleware uses.
func Unauthorized(w http.ResponseWriter) {
	JSON(w, http.StatusUnauthorized, Map{
		"success": false,
		"message": "Authentication required",
		"error":   "Unauthorized",
	})
}

// Internal sends a 500 with a generic message.
func Internal(w http.ResponseWriter, errName string) {
	Error(w, http.StatusInternalServerError, errName, "Something went wrong")
}

// ValidationError sends a 422 with a field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	JSON(w, http.StatusUnprocessableEntity, Map{
		"success": false,
		"message": "Validation failed",
		"errors":  errs,
	})
}
