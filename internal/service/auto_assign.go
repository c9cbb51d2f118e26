package service

import (
	"errors"
	"fmt"
	"time"

	"exam-scheduler-backend/internal/database/models"
	apperrors "exam-scheduler-backend/internal/errors"
	"exam-scheduler-backend/internal/logger"
	"exam-scheduler-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AutoAssignService assigns supervisors to an exam session automatically,
// taking the least-loaded available candidates and filling roles in slot
// order. Assignment is all-or-nothing: when fewer qualified candidates exist
// than the session requires, nothing is written and the shortfall is
// reported for the caller to decide on.
type AutoAssignService struct {
	sessionRepo    repository.ExamSessionRepositoryInterface
	assignmentRepo repository.AssignmentRepositoryInterface
	supervisorRepo repository.SupervisorRepositoryInterface
	selector       CandidateSelectorInterface
	log            *logger.Logger
}

// NewAutoAssignService creates a new auto-assignment service
func NewAutoAssignService(
	sessionRepo repository.ExamSessionRepositoryInterface,
	assignmentRepo repository.AssignmentRepositoryInterface,
	supervisorRepo repository.SupervisorRepositoryInterface,
	selector CandidateSelectorInterface,
) *AutoAssignService {
	return &AutoAssignService{
		sessionRepo:    sessionRepo,
		assignmentRepo: assignmentRepo,
		supervisorRepo: supervisorRepo,
		selector:       selector,
		log:            logger.New(),
	}
}

// AutoAssignResult is the structured outcome of an auto-assignment call.
// The caller distinguishes "fully assigned", "short by N" and "failed"
// from Success and Shortfall rather than parsing error text.
type AutoAssignResult struct {
	Success       bool                 `json:"success"`
	RequiredCount int                  `json:"required_count"`
	Shortfall     int                  `json:"shortfall"`
	Assignments   []AssignmentResponse `json:"assignments"`
}

// AutoAssign fills the session's supervisor slots with the best-ranked
// available candidates. requiredCount <= 0 means resolve it from the
// session and its exam configuration.
//
// On a candidate shortfall the returned error is an
// *apperrors.InsufficientCandidatesError and the result carries the
// shortfall; no assignments are written. On a write failure after one
// automatic retry, the returned error is an *apperrors.PersistenceError and
// the result carries the assignments already committed, so the caller can
// retry the remainder only.
func (s *AutoAssignService) AutoAssign(sessionID uuid.UUID, requiredCount int) (*AutoAssignResult, error) {
	session, err := s.sessionRepo.GetWithExam(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExamSessionNotFound
		}
		return nil, fmt.Errorf("failed to load exam session: %w", err)
	}

	if !session.EndTime.After(session.StartTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	if requiredCount <= 0 {
		requiredCount = session.ResolveRequiredCount()
	}

	result := &AutoAssignResult{
		RequiredCount: requiredCount,
		Assignments:   []AssignmentResponse{},
	}

	// Slots already filled by a previous call stay untouched: a repeated
	// call only covers the remainder, which makes full-success retries a
	// no-op instead of a double-booking.
	existing, err := s.assignmentRepo.CountBySessionAndStatuses(sessionID, models.ActiveAssignmentStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to count existing assignments: %w", err)
	}
	needed := requiredCount - int(existing)
	if needed <= 0 {
		result.Success = true
		return result, nil
	}

	candidates, err := s.selector.SelectCandidates(session.StartTime, session.EndTime)
	if err != nil {
		return nil, err
	}

	// max_load is a hard ceiling here even though the roster query does not
	// enforce it.
	qualified := make([]models.Supervisor, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.HasCapacity() {
			qualified = append(qualified, candidate)
		}
	}

	if len(qualified) < needed {
		result.Shortfall = needed - len(qualified)
		return result, &apperrors.InsufficientCandidatesError{
			Required:  needed,
			Available: len(qualified),
		}
	}

	for i := 0; i < needed; i++ {
		candidate := qualified[i]
		assignment := &models.Assignment{
			SessionID:    sessionID,
			SupervisorID: candidate.ID,
			Role:         models.RoleForSlot(int(existing) + i),
			Status:       models.AssignmentStatusAssigned,
			AssignedAt:   time.Now(),
		}

		if err := s.persistWithRetry(assignment, candidate.LoadVersion); err != nil {
			s.log.WithError(err).WithFields(map[string]interface{}{
				"session_id":    sessionID,
				"supervisor_id": candidate.ID,
			}).Error("auto-assignment aborted on persistence failure")
			return result, &apperrors.PersistenceError{
				Op:        "auto-assign",
				Committed: len(result.Assignments),
				Err:       err,
			}
		}

		result.Assignments = append(result.Assignments, *toAssignmentResponse(assignment))
	}

	result.Success = true
	s.log.WithFields(map[string]interface{}{
		"session_id": sessionID,
		"assigned":   len(result.Assignments),
	}).Info("auto-assignment completed")
	return result, nil
}

// persistWithRetry writes the assignment plus load increment, retrying once
// on a version conflict or a transient write failure. The supervisor is
// re-read before the second attempt so it carries the current load version.
func (s *AutoAssignService) persistWithRetry(assignment *models.Assignment, loadVersion int) error {
	err := s.assignmentRepo.CreateWithLoadIncrement(assignment, loadVersion)
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// A concurrent call already placed this supervisor on the session.
		return apperrors.ErrSupervisorAlreadyAssigned
	}

	conflicted := errors.Is(err, gorm.ErrRecordNotFound)

	supervisor, readErr := s.supervisorRepo.GetByID(assignment.SupervisorID)
	if readErr != nil {
		return fmt.Errorf("failed to re-read supervisor after write failure: %w", readErr)
	}
	// On a version conflict the concurrent assignment may have used up the
	// supervisor's capacity.
	if conflicted && !supervisor.HasCapacity() {
		return apperrors.ErrSupervisorAtCapacity
	}

	if err := s.assignmentRepo.CreateWithLoadIncrement(assignment, supervisor.LoadVersion); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrConcurrencyConflict
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrSupervisorAlreadyAssigned
		}
		return err
	}
	return nil
}
