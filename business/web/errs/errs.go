// Package errs provides the error types the web layer understands and the
// response sent to clients when a request fails.
package errs

import (
	"errors"
	"net/http"

	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/web"
)

// Response is the form used for API responses from failures in the API.
type Response struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Trusted is used to pass an error during the request through the
// application with web specific context. The message of a trusted error is
// safe to show the client.
type Trusted struct {
	Err    error
	Status int
}

// NewTrusted wraps a provided error with an HTTP status code. This
// function should be used when handlers encounter expected errors.
func NewTrusted(err error, status int) error {
	return &Trusted{err, status}
}

// Error implements the error interface. It uses the default message of the
// wrapped error. This is what will be shown in the services' logs.
func (te *Trusted) Error() string {
	return te.Err.Error()
}

// Unwrap provides access to the wrapped error.
func (te *Trusted) Unwrap() error {
	return te.Err
}

// IsTrusted checks if an error of type Trusted exists.
func IsTrusted(err error) bool {
	var te *Trusted
	return errors.As(err, &te)
}

// GetTrusted returns a copy of the Trusted pointer.
func GetTrusted(err error) *Trusted {
	var te *Trusted
	if !errors.As(err, &te) {
		return nil
	}
	return te
}

// =============================================================================

// NewResponse builds the response and status code for the error. Anything
// that isn't trusted or a validation failure is hidden behind a 500.
func NewResponse(err error) (Response, int) {
	switch {
	case web.IsFieldErrors(err):
		return Response{
			Error:  "data validation error",
			Fields: web.GetFieldErrors(err).Fields(),
		}, http.StatusBadRequest

	case IsTrusted(err):
		te := GetTrusted(err)
		return Response{
			Error: te.Error(),
		}, te.Status

	default:
		return Response{
			Error: http.StatusText(http.StatusInternalServerError),
		}, http.StatusInternalServerError
	}
}
