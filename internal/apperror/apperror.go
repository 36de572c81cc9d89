// Package apperror defines the error taxonomy shared by every service.
//
// Each package declares sentinels (for errors.Is) and constructors (which
// attach the offending id) on top of Error. Matching is by Code, so a
// sentinel matches every error built with the same code.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidCredentials
	KindUnauthorized
	KindAlreadyUsed
	KindExpired
	KindConflict
	KindValidation
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindUnauthorized:
		return "unauthorized"
	case KindAlreadyUsed:
		return "already_used"
	case KindExpired:
		return "expired"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// With returns a copy of the sentinel with a more specific message.
func (e *Error) With(format string, args ...any) *Error {
	return &Error{Kind: e.Kind, Code: e.Code, Message: fmt.Sprintf(format, args...), Err: e.Err}
}

// Wrap returns a copy of the sentinel carrying cause.
func (e *Error) Wrap(cause error) *Error {
	return &Error{Kind: e.Kind, Code: e.Code, Message: e.Message, Err: cause}
}

const CodeInternal = "INTERNAL_ERROR"

// Internal wraps a storage or transport failure so callers never see the raw
// driver error.
func Internal(op string, err error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: op + " failed", Err: err}
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps err to the status code the API layer should answer with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidCredentials, KindUnauthorized, KindExpired:
		return http.StatusUnauthorized
	case KindAlreadyUsed:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Response is the JSON body returned for a failed request.
type Response struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ResponseOf returns the status and body for err. Internal errors never
// expose their cause.
func ResponseOf(err error) (int, Response) {
	var appErr *Error
	if !errors.As(err, &appErr) || appErr.Kind == KindInternal {
		return http.StatusInternalServerError, Response{Code: CodeInternal, Message: "internal server error"}
	}
	return HTTPStatus(err), Response{Code: appErr.Code, Message: appErr.Message}
}
