// Package apierror provides standardized error response structures for the API
// and the business-rule error type returned by the service layer.
// All errors returned to clients go through this package so that internal
// details (stack traces, DB errors, etc.) never leak.
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
	Kind   Kind   `json:"kind,omitempty"`
	Code   string `json:"code,omitempty"`
	Field  string `json:"field,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Kind   Kind              `json:"kind"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation error", Kind: KindValidation, Fields: fields}
}

// Kind classifies a business-rule failure. Each kind maps to one HTTP status.
type Kind string

const (
	KindValidation Kind = "validation"
	KindDuplicate  Kind = "duplicate"
	KindForbidden  Kind = "forbidden"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "referential_conflict"
)

// Machine-readable failure codes.
const (
	CodeFutureDate        = "future_date"
	CodeNonPositiveAmount = "non_positive_amount"
	CodeNonPositivePrice  = "non_positive_price"
	CodeInvalidQuantity   = "invalid_quantity"
	CodeInvalidPrecision  = "invalid_precision"
	CodeValueTooLarge     = "value_too_large"
	CodeRejectedValue     = "rejected_value"
	CodeNegativeValue     = "negative_value"
	CodeInvalidPassword   = "invalid_password"
	CodeInvalidRole       = "invalid_role"
	CodeInvalidLocation   = "invalid_location"
	CodeInvalidPeriod     = "invalid_period"
	CodeInvalidID         = "invalid_id"
	CodeInvalidDate       = "invalid_date"
	CodeDeletedStore      = "store_deleted"
	CodeSelfDeactivation  = "self_deactivation"
	CodeDuplicateEmail    = "duplicate_email"
	CodeDuplicateName     = "duplicate_name"
	CodeDuplicateEntry    = "duplicate_entry"
	CodeInUse             = "in_use"
	CodeForbidden         = "forbidden"
	CodeNotFound          = "not_found"
)

// HTTPStatus returns the response status for the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindDuplicate, KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a business-rule failure surfaced synchronously to the caller.
// Field is set for validation failures that concern a single input field.
type Error struct {
	Kind    Kind
	Code    string
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Response converts the failure into the wire envelope.
func (e *Error) Response() *APIError {
	return &APIError{Detail: e.Message, Kind: e.Kind, Code: e.Code, Field: e.Field}
}

func Validation(code, field, msg string) *Error {
	return &Error{Kind: KindValidation, Code: code, Field: field, Message: msg}
}

func Duplicate(code, field, msg string) *Error {
	return &Error{Kind: KindDuplicate, Code: code, Field: field, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Code: CodeForbidden, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Code: CodeNotFound, Message: msg}
}

func Conflict(code, msg string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: msg}
}

// As extracts a business-rule failure from err, unwrapping as needed.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err is a business-rule failure of kind k.
func IsKind(err error, k Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == k
}

// HasCode reports whether err is a business-rule failure carrying code.
func HasCode(err error, code string) bool {
	e, ok := As(err)
	return ok && e.Code == code
}
