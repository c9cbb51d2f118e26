package service

import (
	"fmt"
	"sort"
	"time"

	"exam-scheduler-backend/internal/database/models"
	"exam-scheduler-backend/internal/repository"
)

// CandidateSelector filters the supervisor roster to those free during a
// window and ranks them for assignment. Hard constraints (status, schedule
// conflicts) live in the filter stage; the ranking is only a preference
// order, so the two stay independently replaceable.
type CandidateSelector struct {
	supervisorRepo repository.SupervisorRepositoryInterface
	checker        AvailabilityCheckerInterface
}

// NewCandidateSelector creates a new candidate selector
func NewCandidateSelector(supervisorRepo repository.SupervisorRepositoryInterface, checker AvailabilityCheckerInterface) *CandidateSelector {
	return &CandidateSelector{
		supervisorRepo: supervisorRepo,
		checker:        checker,
	}
}

// SelectCandidates returns the supervisors free during [start, end), ordered
// by ascending current load with ties broken by preferred-window count
// descending. The full ranked sequence is returned; truncating to the
// required count is the caller's decision.
func (s *CandidateSelector) SelectCandidates(start, end time.Time) ([]models.Supervisor, error) {
	roster, err := s.supervisorRepo.GetByStatus(models.SupervisorStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("failed to load supervisor roster: %w", err)
	}

	candidates := make([]models.Supervisor, 0, len(roster))
	for _, supervisor := range roster {
		if s.checker.IsAvailable(supervisor.ID, start, end) {
			candidates = append(candidates, supervisor)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].CurrentLoad != candidates[j].CurrentLoad {
			return candidates[i].CurrentLoad < candidates[j].CurrentLoad
		}
		return candidates[i].PreferredWindowCount() > candidates[j].PreferredWindowCount()
	})

	return candidates, nil
}
