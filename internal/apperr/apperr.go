package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	CodeValidation   = "validation_error"
	CodeUnauthorized = "unauthorized"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeGeneration   = "generation_error"
	CodeMalformed    = "malformed_response"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func Validation(msg string) *Error {
	return New(http.StatusBadRequest, CodeValidation, errors.New(msg))
}

func Unauthorized(msg string) *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, errors.New(msg))
}

func NotFound(msg string) *Error {
	return New(http.StatusNotFound, CodeNotFound, errors.New(msg))
}

// Conflict maps to 400: duplicate registration is reported as a bad request.
func Conflict(msg string) *Error {
	return New(http.StatusBadRequest, CodeConflict, errors.New(msg))
}

func Generation(msg string, cause error) *Error {
	if cause != nil {
		return New(http.StatusInternalServerError, CodeGeneration, fmt.Errorf("%s: %w", msg, cause))
	}
	return New(http.StatusInternalServerError, CodeGeneration, errors.New(msg))
}

func Malformed(msg string, cause error) *Error {
	if cause != nil {
		return New(http.StatusInternalServerError, CodeMalformed, fmt.Errorf("%s: %w", msg, cause))
	}
	return New(http.StatusInternalServerError, CodeMalformed, errors.New(msg))
}

func HasCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// Status returns the HTTP status for err, 500 for anything not raised through this package.
func Status(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}

// Detail is the client-facing message. Upstream failures keep their outer message only.
func Detail(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "internal server error"
	}
	if e.Code == CodeGeneration || e.Code == CodeMalformed {
		return outerMessage(e)
	}
	return e.Error()
}

func outerMessage(e *Error) string {
	msg := e.Error()
	cause := errors.Unwrap(e.Err)
	if cause == nil {
		return msg
	}
	return strings.TrimSuffix(msg, ": "+cause.Error())
}
