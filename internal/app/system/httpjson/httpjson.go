// Package httpjson centralizes the JSON response envelopes used by every
// API handler: success payloads, message-only rejections, and the
// field-error list produced by request validation.
package httpjson

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/alumnivoice/internal/app/system/inputval"
)

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// messageBody is the envelope for message-only responses.
type messageBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OK writes a 200 success envelope carrying only a message.
func OK(w http.ResponseWriter, message string) {
	Write(w, http.StatusOK, messageBody{Success: true, Message: message})
}

// Error writes a rejection envelope: {"success":false,"message":...}.
func Error(w http.ResponseWriter, status int, message string) {
	Write(w, status, messageBody{Success: false, Message: message})
}

// NotFound is a 404 rejection.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// validationBody carries the per-field error list for a 400 response.
type validationBody struct {
	Success bool                  `json:"success"`
	Errors  []inputval.FieldError `json:"errors"`
}

// ValidationFailed writes a 400 with the offending field list.
func ValidationFailed(w http.ResponseWriter, errs []inputval.FieldError) {
	Write(w, http.StatusBadRequest, validationBody{Success: false, Errors: errs})
}

// Decode reads the request body into dst. Unknown fields are tolerated
// (clients send presentation-only fields); malformed JSON is not.
func Decode(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
