package apierror

import (
	"fmt"
	"net/http"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Cause   string `json:"error,omitempty"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

var (
	MalformedBodyError = NewSimple(400, "Malformed JSON body")
	MissingFieldsError = NewSimple(400, "Missing required fields")

	UserIDRequiredError  = NewSimple(400, "User ID is required")
	UserIDNotNumberError = NewSimple(400, "User ID must be a number")
	UserNotFoundError    = NewSimple(404, "User not found")

	NoteIDRequiredError = NewSimple(400, "Note ID is required")
	NoteNotFoundError   = NewSimple(404, "Note not found")

	EndpointNotFoundError = NewSimple(404, "Endpoint not found")
)

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

// NewInternal wraps a storage failure. The failure text is part of the
// public contract of this API and is exposed verbatim under "error".
func NewInternal(msg string, err error) *APIError {
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: msg,
		Cause:   err.Error(),
	}
}
