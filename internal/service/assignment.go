package service

import (
	"errors"
	"fmt"
	"time"

	"exam-scheduler-backend/internal/database/models"
	apperrors "exam-scheduler-backend/internal/errors"
	"exam-scheduler-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentService handles the assignment lifecycle after auto-assignment:
// confirmation by the supervisor, declining, and replacement. Declining or
// replacing releases the supervisor's load slot.
type AssignmentService struct {
	repo           repository.AssignmentRepositoryInterface
	supervisorRepo repository.SupervisorRepositoryInterface
	sessionRepo    repository.ExamSessionRepositoryInterface
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	repo repository.AssignmentRepositoryInterface,
	supervisorRepo repository.SupervisorRepositoryInterface,
	sessionRepo repository.ExamSessionRepositoryInterface,
) *AssignmentService {
	return &AssignmentService{
		repo:           repo,
		supervisorRepo: supervisorRepo,
		sessionRepo:    sessionRepo,
	}
}

// AssignmentResponse represents the response for assignment operations
type AssignmentResponse struct {
	ID           uuid.UUID               `json:"id"`
	SessionID    uuid.UUID               `json:"session_id"`
	SupervisorID uuid.UUID               `json:"supervisor_id"`
	Role         models.AssignmentRole   `json:"role"`
	Status       models.AssignmentStatus `json:"status"`
	AssignedAt   string                  `json:"assigned_at"`
	ConfirmedAt  string                  `json:"confirmed_at,omitempty"`
}

// GetByID retrieves an assignment by ID
func (s *AssignmentService) GetByID(id uuid.UUID) (*AssignmentResponse, error) {
	assignment, err := s.getAssignment(id)
	if err != nil {
		return nil, err
	}
	return toAssignmentResponse(assignment), nil
}

// GetBySession retrieves all assignments for an exam session
func (s *AssignmentService) GetBySession(sessionID uuid.UUID) ([]AssignmentResponse, error) {
	if _, err := s.sessionRepo.GetByID(sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExamSessionNotFound
		}
		return nil, fmt.Errorf("failed to verify exam session: %w", err)
	}

	assignments, err := s.repo.GetBySessionID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *toAssignmentResponse(&assignments[i])
	}
	return responses, nil
}

// GetBySupervisor retrieves all assignments for a supervisor
func (s *AssignmentService) GetBySupervisor(supervisorID uuid.UUID) ([]AssignmentResponse, error) {
	if _, err := s.supervisorRepo.GetByID(supervisorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSupervisorNotFound
		}
		return nil, fmt.Errorf("failed to verify supervisor: %w", err)
	}

	assignments, err := s.repo.GetBySupervisorID(supervisorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *toAssignmentResponse(&assignments[i])
	}
	return responses, nil
}

// Confirm transitions an assignment from assigned to confirmed
func (s *AssignmentService) Confirm(id uuid.UUID) (*AssignmentResponse, error) {
	assignment, err := s.getAssignment(id)
	if err != nil {
		return nil, err
	}

	if assignment.Status != models.AssignmentStatusAssigned {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	now := time.Now()
	assignment.Status = models.AssignmentStatusConfirmed
	assignment.ConfirmedAt = &now

	if err := s.repo.UpdateStatus(assignment); err != nil {
		return nil, fmt.Errorf("failed to confirm assignment: %w", err)
	}
	return toAssignmentResponse(assignment), nil
}

// Decline transitions an active assignment to declined and releases the
// supervisor's load slot
func (s *AssignmentService) Decline(id uuid.UUID) (*AssignmentResponse, error) {
	return s.release(id, models.AssignmentStatusDeclined)
}

// Replace transitions an active assignment to replaced and releases the
// supervisor's load slot, so a follow-up auto-assign can fill the gap
func (s *AssignmentService) Replace(id uuid.UUID) (*AssignmentResponse, error) {
	return s.release(id, models.AssignmentStatusReplaced)
}

func (s *AssignmentService) release(id uuid.UUID, target models.AssignmentStatus) (*AssignmentResponse, error) {
	assignment, err := s.getAssignment(id)
	if err != nil {
		return nil, err
	}

	if !assignment.Status.IsActive() {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	assignment.Status = target
	if err := s.repo.UpdateStatus(assignment); err != nil {
		return nil, fmt.Errorf("failed to update assignment status: %w", err)
	}

	if err := s.releaseLoad(assignment.SupervisorID); err != nil {
		return nil, err
	}

	return toAssignmentResponse(assignment), nil
}

// releaseLoad decrements the supervisor's load under the optimistic version
// check, retrying once on a concurrent bump.
func (s *AssignmentService) releaseLoad(supervisorID uuid.UUID) error {
	for attempt := 0; attempt < 2; attempt++ {
		supervisor, err := s.supervisorRepo.GetByID(supervisorID)
		if err != nil {
			return fmt.Errorf("failed to read supervisor for load release: %w", err)
		}
		if supervisor.CurrentLoad == 0 {
			return nil
		}

		err = s.supervisorRepo.DecrementLoad(supervisorID, supervisor.LoadVersion)
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to release supervisor load: %w", err)
		}
	}
	return apperrors.ErrConcurrencyConflict
}

// Unassign removes an assignment entirely, releasing the load slot when the
// assignment was still active
func (s *AssignmentService) Unassign(id uuid.UUID) error {
	assignment, err := s.getAssignment(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	if assignment.Status.IsActive() {
		return s.releaseLoad(assignment.SupervisorID)
	}
	return nil
}

func (s *AssignmentService) getAssignment(id uuid.UUID) (*models.Assignment, error) {
	assignment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return assignment, nil
}

func toAssignmentResponse(assignment *models.Assignment) *AssignmentResponse {
	resp := &AssignmentResponse{
		ID:           assignment.ID,
		SessionID:    assignment.SessionID,
		SupervisorID: assignment.SupervisorID,
		Role:         assignment.Role,
		Status:       assignment.Status,
		AssignedAt:   assignment.AssignedAt.Format(time.RFC3339),
	}
	if assignment.ConfirmedAt != nil {
		resp.ConfirmedAt = assignment.ConfirmedAt.Format(time.RFC3339)
	}
	return resp
}
