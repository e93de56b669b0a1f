package api

import (
	"errors"
	"net/http"
)

var (
	ErrCreatorNotSet = errors.New("email creator is not set")
	ErrCatalogNotSet = errors.New("template catalog is not set")
)

// HTTPError represents an HTTP error with a status code and a stable
// machine-readable code used in the response envelope.
type HTTPError struct {
	Status int
	Code   string
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Code
}

var (
	ErrBadRequest          = HTTPError{Status: http.StatusBadRequest, Code: "bad_request"}
	ErrNotFound            = HTTPError{Status: http.StatusNotFound, Code: "not_found"}
	ErrMethodNotAllowed    = HTTPError{Status: http.StatusMethodNotAllowed, Code: "method_not_allowed"}
	ErrUnprocessableEntity = HTTPError{Status: http.StatusUnprocessableEntity, Code: "unprocessable_entity"}
	ErrInternalServerError = HTTPError{Status: http.StatusInternalServerError, Code: "internal_error"}
	ErrBadGateway          = HTTPError{Status: http.StatusBadGateway, Code: "bad_gateway"}
	ErrServiceUnavailable  = HTTPError{Status: http.StatusServiceUnavailable, Code: "service_unavailable"}
)

// NewHTTPError creates a custom HTTP error with the given status code and
// envelope code.
func NewHTTPError(status int, code string) HTTPError {
	return HTTPError{Status: status, Code: code}
}
