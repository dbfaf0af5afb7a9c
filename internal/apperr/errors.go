// Package apperr holds the error kinds the HTTP layer knows how to render.
// Infra code wraps plain errors; services classify them into one of these.
package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Code is a machine-readable error code sent to clients.
type Code string

const (
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeUpload          Code = "UPLOAD_ERROR"
	CodeTooLarge        Code = "PAYLOAD_TOO_LARGE"
	CodeBackend         Code = "BACKEND_UNAVAILABLE"
	CodeMalformedOutput Code = "MALFORMED_GENERATION_OUTPUT"
	CodeCanceled        Code = "REQUEST_CANCELED"
	CodeInternal        Code = "INTERNAL_ERROR"
)

// Error is the application error type.
type Error struct {
	Code       Code
	Message    string
	HTTPStatus int
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

func New(code Code, message string, status int) *Error {
	return &Error{Code: code, Message: message, HTTPStatus: status}
}

func InvalidInput(message string) *Error {
	return New(CodeInvalidInput, message, http.StatusBadRequest)
}

func Upload(message string) *Error {
	return New(CodeUpload, message, http.StatusBadRequest)
}

func TooLarge(message string) *Error {
	return New(CodeTooLarge, message, http.StatusRequestEntityTooLarge)
}

// BackendUnavailable reports a failed STT or text-generation call.
func BackendUnavailable(backend string, cause error) *Error {
	return New(CodeBackend, fmt.Sprintf("the %s backend is unavailable", backend), http.StatusServiceUnavailable).
		WithCause(cause)
}

// StatusClientClosedRequest is the nginx convention for a request the client
// abandoned. Nobody reads the body; it keeps such requests out of 5xx stats.
const StatusClientClosedRequest = 499

func Canceled(cause error) *Error {
	return New(CodeCanceled, "request canceled by client", StatusClientClosedRequest).WithCause(cause)
}

// FromBackend classifies a failed backend call made under ctx. A call cut
// short because the caller went away is Canceled; everything else, including
// a timeout, is BackendUnavailable.
func FromBackend(ctx context.Context, backend string, err error) *Error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return Canceled(err)
	}
	return BackendUnavailable(backend, err)
}

// MalformedOutput reports a backend answer that could not be used.
func MalformedOutput(op string, cause error) *Error {
	return New(CodeMalformedOutput, fmt.Sprintf("%s: backend returned unusable output", op), http.StatusBadGateway).
		WithCause(cause)
}

func Internal(cause error) *Error {
	return New(CodeInternal, "internal error", http.StatusInternalServerError).WithCause(cause)
}

// As returns the *Error inside err, or nil.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	e := As(err)
	return e != nil && e.Code == code
}

// Status maps any error to an HTTP status; unknown errors are 500.
func Status(err error) int {
	if e := As(err); e != nil && e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return http.StatusInternalServerError
}

// Response is the JSON body written for failed requests.
type Response struct {
	Error Body `json:"error"`
}

type Body struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// ToResponse renders err for clients. Causes stay server-side.
func ToResponse(err error) Response {
	e := As(err)
	if e == nil {
		e = Internal(err)
	}
	return Response{Error: Body{Code: e.Code, Message: e.Message}}
}
