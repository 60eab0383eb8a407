// Package apperror defines the errors the HTTP boundary reports to clients
// and renders them as JSON.
package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeInvalidJSON     Code = "INVALID_JSON"
	CodeMissingField    Code = "MISSING_FIELD"
	CodePayloadTooLarge Code = "PAYLOAD_TOO_LARGE"
	CodeUnauthorized    Code = "UNAUTHORIZED"
	CodeForbidden       Code = "FORBIDDEN"
	CodeRateLimited     Code = "RATE_LIMITED"
	CodeInternal        Code = "INTERNAL_ERROR"
)

const (
	MsgMissingFields = "Please pass all required fields in the request body"
	MsgInvalidJSON   = "Invalid JSON in request body"
)

type AppError struct {
	Code       Code
	Message    string
	HTTPStatus int
	Details    map[string]any
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Cause }

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

func New(code Code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// MissingFields reports absent or empty request fields by their JSON names.
func MissingFields(fields ...string) *AppError {
	e := New(CodeMissingField, MsgMissingFields, http.StatusBadRequest)
	if len(fields) > 0 {
		e.WithDetail("fields", fields)
	}
	return e
}

func InvalidJSON(cause error) *AppError {
	return New(CodeInvalidJSON, MsgInvalidJSON, http.StatusBadRequest).WithCause(cause)
}

func PayloadTooLarge(limit int64) *AppError {
	return New(CodePayloadTooLarge, "Request body too large", http.StatusRequestEntityTooLarge).
		WithDetail("limit_bytes", limit)
}

func Unauthorized(reason string) *AppError {
	if reason == "" {
		reason = "unauthorized"
	}
	return New(CodeUnauthorized, reason, http.StatusUnauthorized)
}

func Forbidden() *AppError {
	return New(CodeForbidden, "forbidden", http.StatusForbidden)
}

func RateLimited() *AppError {
	return New(CodeRateLimited, "too many requests, try again later", http.StatusTooManyRequests)
}

func Internal(cause error) *AppError {
	return New(CodeInternal, "internal server error", http.StatusInternalServerError).WithCause(cause)
}

type response struct {
	Error   string         `json:"error"`
	Code    Code           `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

// Write renders err as a JSON error body. Errors that are not AppErrors are
// reported as internal errors without leaking their text.
func Write(w http.ResponseWriter, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = Internal(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.HTTPStatus)
	json.NewEncoder(w).Encode(response{
		Error:   appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	})
}
