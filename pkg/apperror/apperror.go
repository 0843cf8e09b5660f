// Package apperror defines the error taxonomy shared by services and the HTTP layer.
package apperror

import (
	"errors"
	"net/http"

	"github.com/oksasatya/go-expense-tracker/pkg/messages"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindBusiness
	KindAuthorization
	KindAuthentication
	KindNotFound
	KindLogical
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindBusiness:
		return "business"
	case KindAuthorization:
		return "authorization"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	case KindLogical:
		return "logical"
	default:
		return "internal"
	}
}

// Status maps the kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindBusiness:
		return http.StatusBadRequest
	case KindAuthorization:
		return http.StatusForbidden
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified application error. Fields is only set for validation errors.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

func Business(msg string) *Error { return &Error{Kind: KindBusiness, Message: msg} }

func Authorization(msg string) *Error { return &Error{Kind: KindAuthorization, Message: msg} }

func Authentication(msg string) *Error { return &Error{Kind: KindAuthentication, Message: msg} }

func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

func Logical(msg string) *Error { return &Error{Kind: KindLogical, Message: msg} }

// Wrap attaches a cause to a new error of the given kind. The cause is logged, never rendered.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// Common errors
var (
	ErrInvalidParameter = Logical(messages.InvalidParameter)
	ErrResourceNotFound = NotFound(messages.ResourceNotFound)
	ErrGeneric          = Logical(messages.GenericError)
	ErrUnauthorized     = Authorization(messages.Unauthorized)
)

// From extracts an *Error from err. Unclassified errors come back as KindInternal
// with the generic message so internal details never reach the client.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return &Error{Kind: KindInternal, Message: messages.GenericError, Err: err}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
