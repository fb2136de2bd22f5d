// Package response holds the JSON response helpers shared by all API
// handlers, so trade, catalog, and portfolio endpoints answer in one shape.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the error body every endpoint returns. Details is
// optional; validation handlers use it to carry per-field messages.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RespondJSON writes data as a JSON body with the given status code.
// A nil data writes the status alone, which is how 204 No Content is sent.
// The status line is already on the wire when encoding runs, so encoding
// failures are logged rather than turned into a second response.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response body: %v", err)
	}
}

// RespondError writes an ErrorResponse with the given status code. The
// message is the client-facing description; details may be an error string,
// a field map, or nil.
func RespondError(w http.ResponseWriter, status int, message string, details interface{}) {
	RespondJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
