package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InsufficientCandidatesError is returned by auto-assignment when fewer
// qualified supervisors exist than the session requires. It is an expected,
// recoverable outcome: the caller decides whether to accept a partial roster
// or widen the candidate pool.
type InsufficientCandidatesError struct {
	Required  int
	Available int
}

func (e *InsufficientCandidatesError) Error() string {
	return fmt.Sprintf("insufficient candidates: %d required, %d available", e.Required, e.Available)
}

// Shortfall returns how many supervisor slots could not be covered.
func (e *InsufficientCandidatesError) Shortfall() int {
	return e.Required - e.Available
}

// PersistenceError wraps a store failure during a multi-write operation.
// Committed carries how many writes succeeded before the failure so callers
// can retry only the unassigned remainder.
type PersistenceError struct {
	Op        string
	Committed int
	Err       error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s (%d writes committed): %v", e.Op, e.Committed, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrSupervisorNotFound  = &NotFoundError{Entity: "supervisor"}
	ErrExamNotFound        = &NotFoundError{Entity: "exam"}
	ErrExamSessionNotFound = &NotFoundError{Entity: "exam session"}
	ErrAssignmentNotFound  = &NotFoundError{Entity: "assignment"}
)

// Already Exists Errors
var (
	ErrSupervisorExists = &AlreadyExistsError{Entity: "supervisor", Context: "with this email"}
	ErrExamExists       = &AlreadyExistsError{Entity: "exam", Context: "with this name"}
)

// Assignment Errors
var (
	ErrSupervisorAlreadyAssigned = errors.New("supervisor is already assigned to this session")
	ErrSupervisorAtCapacity      = errors.New("supervisor has reached maximum load")
	ErrConcurrencyConflict       = errors.New("concurrent load update detected")
)

// Business Logic Errors
var (
	ErrInvalidTimeRange         = errors.New("invalid time range")
	ErrInvalidStatus            = errors.New("invalid status")
	ErrInvalidStatusTransition  = errors.New("invalid assignment status transition")
	ErrInvalidAvailabilityDay   = errors.New("day of week must be between 0 and 6")
	ErrInvalidAvailabilityTimes = errors.New("window start time must be before end time")
	ErrInvalidPaginationParams  = errors.New("invalid pagination parameters")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInsufficientCandidates checks if an error reports a candidate shortfall
func IsInsufficientCandidates(err error) bool {
	var icErr *InsufficientCandidatesError
	return errors.As(err, &icErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var pErr *PersistenceError
	return errors.As(err, &pErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
