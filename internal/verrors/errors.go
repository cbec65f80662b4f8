// Package verrors provides custom error types for viewls.
// These error types enable better error handling and more informative error
// messages on the load and validation paths; the completion path itself never
// surfaces errors to callers.
package verrors

import (
	"fmt"
)

// ViewlsError is the base interface for all viewls errors
type ViewlsError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all viewls errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// RegistryError represents errors while loading SDK registry files
type RegistryError struct {
	baseError
	Path string
}

// NewRegistryError creates a new registry error
func NewRegistryError(path string, message string, cause error) *RegistryError {
	return &RegistryError{
		baseError: baseError{
			code:    "REGISTRY_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// ConfigError represents errors in service configuration files
type ConfigError struct {
	baseError
	Path string
}

// NewConfigError creates a new configuration error
func NewConfigError(path string, message string, cause error) *ConfigError {
	return &ConfigError{
		baseError: baseError{
			code:    "CONFIG_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// ValidationError represents errors during registry schema validation
type ValidationError struct {
	baseError
	Field string
}

// NewValidationError creates a new validation error
func NewValidationError(field string, message string, cause error) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			code:    "VALIDATION_ERROR",
			message: message,
			cause:   cause,
		},
		Field: field,
	}
}
