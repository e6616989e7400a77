package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal        ErrorCode = "INTERNAL_ERROR"
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	ErrValidation      ErrorCode = "VALIDATION_ERROR"

	// Quiz specific errors
	ErrCatalogUnavailable     ErrorCode = "CATALOG_UNAVAILABLE"
	ErrImageUnavailable       ErrorCode = "IMAGE_UNAVAILABLE"
	ErrInsufficientPopulation ErrorCode = "INSUFFICIENT_POPULATION"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper constructors for the quiz error taxonomy

func NewInternalError(message string, cause error) *DomainError {
	return NewError(ErrInternal, message, cause)
}

func NewInvalidArgumentError(message string) *DomainError {
	return NewError(ErrInvalidArgument, message, nil)
}

// NewCatalogUnavailableError wraps an upstream catalog fetch or parse failure.
// This is fatal to the whole invocation; there is no partial catalog handling.
func NewCatalogUnavailableError(cause error) *DomainError {
	return NewError(ErrCatalogUnavailable, "Breed catalog is unavailable", cause)
}

// NewImageUnavailableError reports that the image provider returned no usable
// image for a breed.
func NewImageUnavailableError(breed string, cause error) *DomainError {
	err := NewError(ErrImageUnavailable, fmt.Sprintf("No image available for breed: %s", breed), cause)
	err.Context = map[string]interface{}{"breed": breed}
	return err
}

// NewInsufficientPopulationError reports a tier that is too small for the
// requested option or sample count. The offending tier and the
// required/available counts travel in the error context.
func NewInsufficientPopulationError(tier Difficulty, required, available int) *DomainError {
	err := NewError(ErrInsufficientPopulation,
		fmt.Sprintf("Tier %q has %d breeds, need %d", tier, available, required), nil)
	err.Context = map[string]interface{}{
		"tier":      string(tier),
		"required":  required,
		"available": available,
	}
	return err
}

// ValidationError represents a single field-level validation failure
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field-level validation failures
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("has invalid value: %s", value)}
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("value %d is out of range [%d, %d]", value, min, max),
	}
}
