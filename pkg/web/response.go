// Package web defines common components for a web application.
package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/go-petr/pet-ledger/pkg/currencypkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

// ErrInvalidJSON indicates a request body that cannot be decoded into the expected shape.
var ErrInvalidJSON = errorspkg.New(errorspkg.BadRequest, "invalid json")

// JSONError provides type for explicit json encoded error response.
type JSONError struct {
	Error string `json:"error"`
}

// Error wraps a given err into json friendly struct.
// Internal errors are replaced by errorspkg.ErrInternal so no details leak.
func Error(err error) JSONError {
	if errorspkg.KindOf(err) == errorspkg.Internal {
		return JSONError{Error: errorspkg.ErrInternal.Error()}
	}

	return JSONError{Error: err.Error()}
}

var statusCodes = map[errorspkg.Kind]int{
	errorspkg.BadRequest:         http.StatusBadRequest,
	errorspkg.NotFound:           http.StatusNotFound,
	errorspkg.Conflict:           http.StatusConflict,
	errorspkg.PreconditionFailed: http.StatusPreconditionFailed,
}

// StatusCode returns the HTTP status matching the kind of err.
func StatusCode(err error) int {
	if code, ok := statusCodes[errorspkg.KindOf(err)]; ok {
		return code
	}

	return http.StatusInternalServerError
}

// BindingError converts a request binding failure into a client error.
func BindingError(err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return GetError(ve[0])
	}

	return ErrInvalidJSON
}

// GetError returns the client error for a failed validation rule.
func GetError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "currency":
		return fmt.Errorf("%w '%v'", currencypkg.ErrUnknownCurrency, fe.Value())
	default:
		return ErrInvalidJSON
	}
}
