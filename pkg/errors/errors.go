// Package errors provides the error types used across prodcat.
// Failures from the remote catalog service are converted into these
// kinds at the client boundary and reported as explicit outcomes, so
// callers can branch on them programmatically.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's chain matches target.
// It's an alias for the standard library errors.Is.
var Is = errors.Is

// As is an alias for the standard library errors.As.
var As = errors.As

// Common sentinel errors for the prodcat system.
var (
	// ErrNotFound indicates that a requested product was not found.
	ErrNotFound = errors.New("not found")

	// ErrRejected indicates that the remote service refused a mutation
	// with a non-success status.
	ErrRejected = errors.New("rejected")

	// ErrNetwork indicates a transport-level failure reaching the
	// remote service.
	ErrNetwork = errors.New("network failure")

	// ErrInvalidInput indicates that provided input was invalid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTimeout indicates that an operation timed out.
	ErrTimeout = errors.New("operation timed out")

	// ErrCanceled indicates that an operation was canceled, for example
	// a delete declined at the confirmation prompt.
	ErrCanceled = errors.New("operation canceled")
)

// NotFoundError represents an error when a resource is not found.
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a malformed view parameter or form field.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// APIError represents a non-success status returned by the remote
// catalog service.
type APIError struct {
	Operation  string // "list", "get", "create", "update", "delete"
	StatusCode int
	Endpoint   string
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s failed (status %d): %s", e.Operation, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support. A 404 maps to ErrNotFound; any other
// non-success status maps to ErrRejected.
func (e *APIError) Is(target error) bool {
	if e.StatusCode == 404 {
		return target == ErrNotFound
	}
	return target == ErrRejected
}

// NewAPIError creates a new APIError.
func NewAPIError(operation string, statusCode int, endpoint, message string) *APIError {
	return &APIError{
		Operation:  operation,
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// NetworkError represents a transport-level failure: the request never
// produced an HTTP status at all.
type NetworkError struct {
	Operation string
	URL       string
	Err       error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure during %s of %s: %v", e.Operation, e.URL, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// NewNetworkError creates a new NetworkError.
func NewNetworkError(operation, url string, err error) *NetworkError {
	return &NetworkError{Operation: operation, URL: url, Err: err}
}

// ParseError represents an error decoding a response body.
type ParseError struct {
	Format  string // "json"
	Source  string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s parse error in %s: %s", e.Format, e.Source, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(format, source, message string, err error) *ParseError {
	return &ParseError{Format: format, Source: source, Message: message, Err: err}
}

// MutationError represents a failed create, update, or delete. The
// underlying cause (APIError, NetworkError, NotFoundError) is wrapped
// and remains inspectable through errors.Is/As.
type MutationError struct {
	Op        string // "create", "update", "delete"
	ProductID string
	Err       error
}

// Error implements the error interface.
func (e *MutationError) Error() string {
	if e.ProductID != "" {
		return fmt.Sprintf("%s of product %s failed: %v", e.Op, e.ProductID, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *MutationError) Unwrap() error {
	return e.Err
}

// NewMutationError creates a new MutationError.
func NewMutationError(op, productID string, err error) *MutationError {
	return &MutationError{Op: op, ProductID: productID, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRejected checks if an error is a rejection from the remote service.
func IsRejected(err error) bool {
	return errors.Is(err, ErrRejected)
}

// IsNetwork checks if an error is a transport-level failure.
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsCanceled checks if an error is a cancellation.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
