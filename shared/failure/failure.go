package failure

import (
	"errors"
	"net/http"
)

// Kind tags a Failure with one of the error categories the API exposes.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindNotFound
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindNotFound:
		return "NotFound"
	default:
		return "Internal"
	}
}

// Code returns the HTTP status code the kind maps to.
func (k Kind) Code() int {
	switch k {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Kind    Kind   `json:"-"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

func newFailure(kind Kind, msg string) *Failure {
	return &Failure{
		Kind:    kind,
		Code:    kind.Code(),
		Message: msg,
	}
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return newFailure(KindInvalidInput, msg)
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return newFailure(KindNotFound, msg)
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// KindOf returns the kind of the first Failure in the error chain, KindInternal otherwise.
func KindOf(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// Is reports whether err carries a Failure of the given kind.
func Is(err error, kind Kind) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Kind == kind
}
