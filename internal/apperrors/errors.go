// Package apperrors defines the error kinds the API distinguishes at its
// boundaries. Handlers map these onto HTTP status codes; everything else
// is wrapped with fmt.Errorf("%w") and treated as an internal error.
package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError indicates bad operator input. No state was changed and
// the message is safe to show to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation creates a ValidationError with the given message.
func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// AuthenticationError indicates a failed credential or signature check.
type AuthenticationError struct {
	Message string
	Err     error
}

func (e *AuthenticationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// NewAuthentication creates an AuthenticationError wrapping err.
func NewAuthentication(message string, err error) *AuthenticationError {
	return &AuthenticationError{Message: message, Err: err}
}

// ConfigurationError indicates a required secret or credential is absent
// server-side. Distinct from operator-caused validation failures.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// NewConfiguration creates a ConfigurationError with the given message.
func NewConfiguration(message string) *ConfigurationError {
	return &ConfigurationError{Message: message}
}

// NotFoundError indicates a lookup by id, number, or slug had no match.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// NewNotFound creates a NotFoundError for the named resource.
func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// ExternalServiceError indicates a call to an external provider failed or
// timed out. Local state already committed is not rolled back.
type ExternalServiceError struct {
	Provider string
	Err      error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// NewExternalService creates an ExternalServiceError wrapping err.
func NewExternalService(provider string, err error) *ExternalServiceError {
	return &ExternalServiceError{Provider: provider, Err: err}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsAuthentication reports whether err is an AuthenticationError.
func IsAuthentication(err error) bool {
	var target *AuthenticationError
	return errors.As(err, &target)
}

// IsConfiguration reports whether err is a ConfigurationError.
func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsExternalService reports whether err is an ExternalServiceError.
func IsExternalService(err error) bool {
	var target *ExternalServiceError
	return errors.As(err, &target)
}
