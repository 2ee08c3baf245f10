// Package derrors provides custom error types for PipSeed.
// Each error carries a stable code so callers can branch on the failure kind
// without matching on message text.
package derrors

import (
	"fmt"
)

// PipseedError is the base interface for all PipSeed errors
type PipseedError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all PipSeed errors
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

// ConfigurationError represents errors in configuration files
type ConfigurationError struct {
	baseError
	Path string
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(path string, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		baseError: baseError{
			code:    "CONFIG_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// ValidationError represents an invalid value supplied by the user
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

// NotFoundError represents errors when a resource is not found
type NotFoundError struct {
	baseError
	Resource string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, message string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			code:    "NOT_FOUND",
			message: message,
			cause:   nil,
		},
		Resource: resource,
	}
}

// AlreadyExistsError represents errors when a resource already exists
type AlreadyExistsError struct {
	baseError
	Resource string
}

// NewAlreadyExistsError creates a new already exists error
func NewAlreadyExistsError(resource string, message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		baseError: baseError{
			code:    "ALREADY_EXISTS",
			message: message,
			cause:   nil,
		},
		Resource: resource,
	}
}

// OutputError represents a failure while writing generated data
type OutputError struct {
	baseError
	Target string
}

// NewOutputError creates a new output error. An empty target means stdout.
func NewOutputError(target string, message string, cause error) *OutputError {
	return &OutputError{
		baseError: baseError{
			code:    "OUTPUT_ERROR",
			message: message,
			cause:   cause,
		},
		Target: target,
	}
}

// TemplateError represents a template that failed to parse or execute
type TemplateError struct {
	baseError
	Template string
}

// NewTemplateError creates a new template error
func NewTemplateError(template string, message string, cause error) *TemplateError {
	return &TemplateError{
		baseError: baseError{
			code:    "TEMPLATE_ERROR",
			message: message,
			cause:   cause,
		},
		Template: template,
	}
}
