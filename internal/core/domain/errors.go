// Package domain defines the core domain models for CarFlow.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error code.
type DomainError struct {
	Code    string // Error code (e.g., "CF-WIRE-4000")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Wire Errors (WIRE)
// ============================================================================

var (
	// ErrMalformedRecord indicates a payload chunk did not parse into a
	// well-formed three-field sighting record.
	ErrMalformedRecord = NewDomainError("CF-WIRE-4000", "malformed sighting record")
)

// ============================================================================
// Network Errors (NET)
// ============================================================================

var (
	// ErrTransport indicates a transport-level failure on a feed session
	// (connect refused, reset, DNS failure). Always carries the cause.
	ErrTransport = NewDomainError("CF-NET-5020", "feed transport failure")

	// ErrSessionTimeout indicates a feed session exceeded its configured
	// deadline before the peer closed the connection.
	ErrSessionTimeout = NewDomainError("CF-NET-5040", "feed session timed out")
)

// ============================================================================
// Cycle Errors (CYCLE)
// ============================================================================

var (
	// ErrCycleInFlight indicates an update cycle was started while a
	// previous one on the same controller had not yet completed.
	ErrCycleInFlight = NewDomainError("CF-CYCLE-4090", "update cycle already in flight")
)

// ============================================================================
// Argument Errors (ARG)
// ============================================================================

var (
	// ErrInvalidAddress indicates a feed address could not be parsed.
	ErrInvalidAddress = NewDomainError("CF-ARG-1001", "invalid feed address")

	// ErrMissingArgument indicates a required argument is missing.
	ErrMissingArgument = NewDomainError("CF-ARG-1002", "missing required argument")
)

// ============================================================================
// Configuration Errors (CFG)
// ============================================================================

var (
	// ErrConfigInvalid indicates the loaded configuration failed validation.
	ErrConfigInvalid = NewDomainError("CF-CFG-4000", "invalid configuration")
)

// ============================================================================
// System Errors (SYS)
// ============================================================================

var (
	// ErrInternal indicates an internal error.
	ErrInternal = NewDomainError("CF-SYS-5000", "internal error")
)
