package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Decode errors

// DecodeError reports a payload that decoded but lacks a required field
type DecodeError struct {
	*DomainError
	Entity string
}

func NewDecodeError(entity string, err error) *DecodeError {
	return &DecodeError{
		DomainError: NewDomainError(fmt.Sprintf("incomplete %s payload: %v", entity, err)),
		Entity:      entity,
	}
}

// Integrity errors

// IntegrityError reports an entity whose references disagree with each other.
// A constructor that returns one never returns the entity alongside it.
type IntegrityError struct {
	*DomainError
	ControlSystemID  int
	ExpectedSystemID int
	ActualSystemID   int
}

func NewIntegrityError(controlSystemID, expectedSystemID, actualSystemID int) *IntegrityError {
	return &IntegrityError{
		DomainError: NewDomainError(fmt.Sprintf(
			"control system %d references system %d but was attached to system %d",
			controlSystemID, expectedSystemID, actualSystemID,
		)),
		ControlSystemID:  controlSystemID,
		ExpectedSystemID: expectedSystemID,
		ActualSystemID:   actualSystemID,
	}
}
