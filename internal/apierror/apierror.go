// Package apierror models the two kinds of request failure the API
// reports: user-facing rejections that carry an explanatory message,
// and internal faults that stay opaque to the caller.
package apierror

import (
	"encoding/json"
	"net/http"
)

// Error is the wire-level form of a failed request. A non-empty
// Message is rendered as a {"message": ...} JSON body; an empty
// Message yields a status code with no body, so internal detail never
// crosses the boundary.
type Error struct {
	Status  int
	Message string
}

// New returns a user-facing error with the given status and message.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Opaque returns an error that exposes only a status code.
func Opaque(status int) *Error {
	return &Error{Status: status}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return http.StatusText(e.Status)
	}
	return e.Message
}

// WriteTo renders the error to the response. This is the single point
// where pipeline failures are converted to the wire.
func (e *Error) WriteTo(w http.ResponseWriter) {
	if e.Message == "" {
		w.WriteHeader(e.Status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": e.Message})
}
