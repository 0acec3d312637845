package breed

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType categorizes lookup failures
type ErrorType string

const (
	// ErrTypeNotFound indicates the service reported an unknown breed
	ErrTypeNotFound ErrorType = "not_found"

	// ErrTypeNetwork indicates the service could not be reached
	ErrTypeNetwork ErrorType = "network"

	// ErrTypeTimeout indicates the request deadline passed
	ErrTypeTimeout ErrorType = "timeout"

	// ErrTypeDecode indicates the response body was not a valid envelope
	ErrTypeDecode ErrorType = "decode"

	// ErrTypeStatus indicates an unexpected HTTP status without an envelope
	ErrTypeStatus ErrorType = "status"

	// ErrTypeConfiguration indicates invalid client configuration
	ErrTypeConfiguration ErrorType = "configuration"

	// ErrTypeInternal indicates a failure building the request
	ErrTypeInternal ErrorType = "internal"
)

// NotFoundMessage is shown when the service does not know the breed.
const NotFoundMessage = "breed not found"

// LookupError describes a failed breed lookup
type LookupError struct {
	// Type categorizes the error
	Type ErrorType `json:"type"`

	// Message provides human-readable error description
	Message string `json:"message"`

	// Breed is the name that was looked up, if any
	Breed string `json:"breed,omitempty"`

	// StatusCode for HTTP-related errors
	StatusCode int `json:"status_code,omitempty"`

	// Underlying error that caused this error
	Cause error `json:"-"`
}

// Error implements the error interface
func (e *LookupError) Error() string {
	var parts []string

	if e.Breed != "" {
		parts = append(parts, fmt.Sprintf("breed=%s", e.Breed))
	}

	parts = append(parts, fmt.Sprintf("type=%s", e.Type))

	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}

	parts = append(parts, e.Message)

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%s", e.Cause.Error()))
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error
func (e *LookupError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error type
func (e *LookupError) Is(target error) bool {
	if le, ok := target.(*LookupError); ok {
		return e.Type == le.Type
	}
	return false
}

// Display returns the text meant for the user: the service's message for
// unknown breeds, otherwise the underlying failure's message.
func (e *LookupError) Display() string {
	if e.Type == ErrTypeNotFound {
		if e.Message != "" {
			return e.Message
		}
		return NotFoundMessage
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Message
}

// ConfigurationError represents invalid client settings
type ConfigurationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error for field '%s': %s", e.Field, e.Message)
}

// NewLookupError creates a new lookup error
func NewLookupError(errType ErrorType, message, breed string) *LookupError {
	return &LookupError{
		Type:    errType,
		Message: message,
		Breed:   breed,
	}
}

// NewLookupErrorWithCause creates a lookup error with an underlying cause
func NewLookupErrorWithCause(errType ErrorType, message, breed string, cause error) *LookupError {
	return &LookupError{
		Type:    errType,
		Message: message,
		Breed:   breed,
		Cause:   cause,
	}
}

// NewConfigurationError creates a configuration error
func NewConfigurationError(field, message string) *ConfigurationError {
	return &ConfigurationError{
		Field:   field,
		Message: message,
	}
}

// IsNetworkError checks if err is a transport failure
func IsNetworkError(err error) bool {
	var le *LookupError
	return errors.As(err, &le) && (le.Type == ErrTypeNetwork || le.Type == ErrTypeTimeout)
}

// IsConfigurationError checks if err is a configuration error
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
