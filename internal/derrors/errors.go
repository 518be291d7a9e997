// Package derrors provides custom error types for routeconf.
// These error types enable better error handling and more informative error messages
// throughout the application.
package derrors

import (
	"fmt"
)

// RouteconfError is the base interface for all routeconf errors
type RouteconfError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all routeconf errors
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

// ValidationError represents errors during validation
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

// ProtocolError represents a JSON-RPC failure reported back to the editor
type ProtocolError struct {
	baseError
	RPCCode int
}

// NewProtocolError creates a new protocol error carrying a JSON-RPC error code
func NewProtocolError(rpcCode int, message string, cause error) *ProtocolError {
	return &ProtocolError{
		baseError: baseError{
			code:    "PROTOCOL_ERROR",
			message: message,
			cause:   cause,
		},
		RPCCode: rpcCode,
	}
}

// DocumentError represents errors about editor documents
type DocumentError struct {
	baseError
	URI string
}

// NewDocumentError creates a new document error
func NewDocumentError(uri string, message string, cause error) *DocumentError {
	return &DocumentError{
		baseError: baseError{
			code:    "DOCUMENT_ERROR",
			message: message,
			cause:   cause,
		},
		URI: uri,
	}
}
