package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "supervisor"}
		assert.Equal(t, "supervisor not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "supervisor"}
		err2 := &NotFoundError{Entity: "supervisor"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "supervisor"}
		err2 := &NotFoundError{Entity: "exam"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrSupervisorNotFound, ErrSupervisorNotFound))
		assert.False(t, errors.Is(ErrSupervisorNotFound, ErrExamSessionNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrAssignmentNotFound))
		assert.False(t, IsNotFound(ErrSupervisorAtCapacity))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "supervisor", Context: "with this email"}
		assert.Equal(t, "supervisor already exists with this email", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "exam"}
		assert.Equal(t, "exam already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "exam", Context: "with this name"}
		err2 := &AlreadyExistsError{Entity: "exam", Context: "with this name"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrSupervisorExists))
		assert.False(t, IsAlreadyExists(ErrSupervisorNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("max_load", "must be at least 1")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrSupervisorNotFound))
	})
}

func TestInsufficientCandidatesError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &InsufficientCandidatesError{Required: 3, Available: 1}
		assert.Equal(t, "insufficient candidates: 3 required, 1 available", err.Error())
	})

	t.Run("Shortfall", func(t *testing.T) {
		err := &InsufficientCandidatesError{Required: 3, Available: 1}
		assert.Equal(t, 2, err.Shortfall())
	})

	t.Run("IsInsufficientCandidates helper", func(t *testing.T) {
		err := &InsufficientCandidatesError{Required: 2, Available: 0}
		assert.True(t, IsInsufficientCandidates(err))
		assert.True(t, IsInsufficientCandidates(fmt.Errorf("auto-assign: %w", err)))
		assert.False(t, IsInsufficientCandidates(ErrConcurrencyConflict))
	})
}

func TestPersistenceError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &PersistenceError{Op: "auto-assign", Committed: 2, Err: errors.New("connection reset")}
		assert.Equal(t, "persistence failure during auto-assign (2 writes committed): connection reset", err.Error())
	})

	t.Run("Unwrap", func(t *testing.T) {
		err := &PersistenceError{Op: "auto-assign", Err: ErrConcurrencyConflict}
		assert.ErrorIs(t, err, ErrConcurrencyConflict)
	})

	t.Run("IsPersistence helper", func(t *testing.T) {
		err := &PersistenceError{Op: "auto-assign", Err: errors.New("boom")}
		assert.True(t, IsPersistence(err))
		assert.False(t, IsPersistence(ErrConcurrencyConflict))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("availability window")
		assert.Equal(t, "availability window not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("assignment", "for this session")
		assert.Equal(t, "assignment already exists for this session", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("start_time", "must be in HH:MM format")
		assert.Equal(t, "validation error: start_time - must be in HH:MM format", err.Error())
		assert.True(t, IsValidation(err))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	t.Run("Assignment errors", func(t *testing.T) {
		assert.Error(t, ErrSupervisorAlreadyAssigned)
		assert.Error(t, ErrSupervisorAtCapacity)
		assert.Error(t, ErrConcurrencyConflict)
	})

	t.Run("Business logic errors", func(t *testing.T) {
		assert.Error(t, ErrInvalidTimeRange)
		assert.Error(t, ErrInvalidStatus)
		assert.Error(t, ErrInvalidStatusTransition)
		assert.Error(t, ErrInvalidAvailabilityDay)
		assert.Error(t, ErrInvalidAvailabilityTimes)
		assert.Error(t, ErrInvalidPaginationParams)
	})
}
