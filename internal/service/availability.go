package service

import (
	"time"

	"exam-scheduler-backend/internal/database/models"
	"exam-scheduler-backend/internal/logger"
	"exam-scheduler-backend/internal/repository"

	"github.com/google/uuid"
)

// AvailabilityService answers whether a supervisor is free during a time
// window, based on their live assignments.
type AvailabilityService struct {
	assignmentRepo repository.AssignmentRepositoryInterface
	log            *logger.Logger
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(assignmentRepo repository.AssignmentRepositoryInterface) *AvailabilityService {
	return &AvailabilityService{
		assignmentRepo: assignmentRepo,
		log:            logger.New(),
	}
}

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. A zero-length interval never overlaps anything.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// IsAvailable reports whether the supervisor has no assigned or confirmed
// commitment overlapping [start, end). Lookup failures are treated as "not
// available": double-booking on uncertain data is worse than skipping a
// candidate.
func (s *AvailabilityService) IsAvailable(supervisorID uuid.UUID, start, end time.Time) bool {
	assignments, err := s.assignmentRepo.GetBySupervisorAndStatuses(supervisorID, models.ActiveAssignmentStatuses)
	if err != nil {
		s.log.WithError(err).WithField("supervisor_id", supervisorID).
			Warn("availability lookup failed, treating supervisor as unavailable")
		return false
	}

	for _, assignment := range assignments {
		if Overlaps(start, end, assignment.Session.StartTime, assignment.Session.EndTime) {
			return false
		}
	}
	return true
}
