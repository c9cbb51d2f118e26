package service

import (
	"errors"
	"fmt"
	"sort"

	apperrors "exam-scheduler-backend/internal/errors"
	"exam-scheduler-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SuggestionService is the read-only counterpart of auto-assignment: it
// scores and ranks candidates for a session without committing anything, so
// a human can review the proposed roster plus alternates.
type SuggestionService struct {
	sessionRepo repository.ExamSessionRepositoryInterface
	selector    CandidateSelectorInterface
	score       ScoreFunc
	// alternatesFactor controls how many suggestions are returned per
	// required slot.
	alternatesFactor int
}

// NewSuggestionService creates a new suggestion service. A nil scoreFn uses
// DefaultScore; an alternatesFactor below 1 defaults to 2.
func NewSuggestionService(sessionRepo repository.ExamSessionRepositoryInterface, selector CandidateSelectorInterface, scoreFn ScoreFunc, alternatesFactor int) *SuggestionService {
	if scoreFn == nil {
		scoreFn = DefaultScore
	}
	if alternatesFactor < 1 {
		alternatesFactor = 2
	}
	return &SuggestionService{
		sessionRepo:      sessionRepo,
		selector:         selector,
		score:            scoreFn,
		alternatesFactor: alternatesFactor,
	}
}

// Suggestion pairs a candidate supervisor with their computed score
type Suggestion struct {
	Supervisor SupervisorResponse `json:"supervisor"`
	Score      int                `json:"score"`
}

// SuggestionResult is the ranked candidate list for a session
type SuggestionResult struct {
	Suggestions    []Suggestion `json:"suggestions"`
	RequiredCount  int          `json:"required_count"`
	AvailableCount int          `json:"available_count"`
}

// Suggest returns up to alternatesFactor * requiredCount candidates for the
// session, ranked by descending score. Never writes to the assignment store.
func (s *SuggestionService) Suggest(sessionID uuid.UUID) (*SuggestionResult, error) {
	session, err := s.sessionRepo.GetWithExam(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExamSessionNotFound
		}
		return nil, fmt.Errorf("failed to load exam session: %w", err)
	}

	required := session.ResolveRequiredCount()

	candidates, err := s.selector.SelectCandidates(session.StartTime, session.EndTime)
	if err != nil {
		return nil, err
	}

	suggestions := make([]Suggestion, len(candidates))
	for i := range candidates {
		suggestions[i] = Suggestion{
			Supervisor: *toSupervisorResponse(&candidates[i]),
			Score:      s.score(&candidates[i]),
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})

	limit := s.alternatesFactor * required
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	return &SuggestionResult{
		Suggestions:    suggestions,
		RequiredCount:  required,
		AvailableCount: len(candidates),
	}, nil
}
