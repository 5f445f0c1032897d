package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the Postgres error code for unique constraint violations.
const pgUniqueViolation = "23505"

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

// NewDuplicateAccount signals a uniqueness violation on email or username.
// The contract uses 400 for this case, not 409.
func NewDuplicateAccount() error {
	return NewDomainError("DUPLICATE_ACCOUNT", "username or email already exists", http.StatusBadRequest, nil)
}

func NewInsufficientBalance() error {
	return NewDomainError("INSUFFICIENT_BALANCE", "insufficient balance", http.StatusBadRequest, nil)
}

// NewBookingRejected carries the upstream status and message through to the caller.
func NewBookingRejected(status int, message string) error {
	if message == "" {
		message = "booking rejected by booking service"
	}
	if status < http.StatusBadRequest {
		status = http.StatusBadGateway
	}
	return NewDomainError("BOOKING_REJECTED", message, status, nil)
}

func NewGatewayUnreachable(service string, err error) error {
	return &DomainError{
		Code:       "GATEWAY_UNREACHABLE",
		Message:    fmt.Sprintf("%s service unreachable", service),
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func NewUpstreamError(service string, status int) error {
	return NewDomainError("UPSTREAM_ERROR", fmt.Sprintf("error retrieving %s", service), status, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// IsUniqueViolation reports whether err is a Postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		if de, ok := NewNotFound("resource", nil).(*DomainError); ok {
			return de
		}
	}
	if IsUniqueViolation(err) {
		if de, ok := NewDuplicateAccount().(*DomainError); ok {
			return de
		}
	}
	if de, ok := NewInternalError(err).(*DomainError); ok {
		return de
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
