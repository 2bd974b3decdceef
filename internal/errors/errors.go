// Package errors provides error handling utilities.
package errors

import (
	"fmt"
	"strings"
)

// Type identifies the category of error
type Type string

const (
	// TypeInvalidQuantity indicates a non-positive production quantity
	TypeInvalidQuantity Type = "INVALID_QUANTITY"

	// TypeUnrecognizedFormat indicates a format code outside the coefficient table
	TypeUnrecognizedFormat Type = "UNRECOGNIZED_FORMAT"

	// TypeInvalidPercentage indicates a VAT or discount percentage out of range
	TypeInvalidPercentage Type = "INVALID_PERCENTAGE"

	// TypeParse indicates raw input that cannot be parsed as a number
	TypeParse Type = "PARSE_ERROR"

	// TypeProfile indicates an unknown or invalid pricing profile
	TypeProfile Type = "PROFILE_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Field   string                 `json:"field,omitempty"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithField records the offending input field
func (e *Error) WithField(field string) *Error {
	e.Field = field
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// FieldOf returns the offending field recorded on a domain error, if any
func FieldOf(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Field
	}
	return ""
}

// InvalidQuantity creates an invalid quantity error
func InvalidQuantity(quantity int64) *Error {
	return Newf(TypeInvalidQuantity, "quantity must be greater than 0, got %d", quantity).
		WithField("quantity")
}

// UnrecognizedFormat creates an unrecognized format code error.
// The message enumerates the accepted codes so the caller can surface them.
func UnrecognizedFormat(field, code string, accepted []string) *Error {
	return Newf(TypeUnrecognizedFormat, "%s %q is not recognized, accepted codes: %s",
		field, code, strings.Join(accepted, ", ")).
		WithField(field).
		WithContext("accepted", accepted)
}

// InvalidPercentage creates an out-of-range percentage error
func InvalidPercentage(field, message string) *Error {
	return New(TypeInvalidPercentage, message).WithField(field)
}

// Parse creates a numeric parse error
func Parse(field string, cause error) *Error {
	return Wrap(TypeParse, fmt.Sprintf("%s is not a valid number", field), cause).
		WithField(field)
}

// UnknownProfile creates an unknown profile error
func UnknownProfile(name string, known []string) *Error {
	return Newf(TypeProfile, "pricing profile %q not found, known profiles: %s",
		name, strings.Join(known, ", ")).
		WithField("profile")
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
