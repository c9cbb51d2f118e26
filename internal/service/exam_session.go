package service

import (
	"errors"
	"fmt"
	"time"

	"exam-scheduler-backend/internal/database/models"
	apperrors "exam-scheduler-backend/internal/errors"
	"exam-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExamSessionService handles business logic for exam sessions
type ExamSessionService struct {
	repo      repository.ExamSessionRepositoryInterface
	examRepo  repository.ExamRepositoryInterface
	validator *validator.Validate
}

// NewExamSessionService creates a new exam session service
func NewExamSessionService(repo repository.ExamSessionRepositoryInterface, examRepo repository.ExamRepositoryInterface, validator *validator.Validate) *ExamSessionService {
	return &ExamSessionService{
		repo:      repo,
		examRepo:  examRepo,
		validator: validator,
	}
}

// CreateExamSessionRequest represents the request to create an exam session
type CreateExamSessionRequest struct {
	ExamID        uuid.UUID `json:"exam_id" validate:"required"`
	Room          string    `json:"room,omitempty"`
	StartTime     time.Time `json:"start_time" validate:"required"`
	EndTime       time.Time `json:"end_time" validate:"required"`
	RequiredCount int       `json:"required_count,omitempty"`
}

// UpdateExamSessionRequest represents the request to update an exam session
type UpdateExamSessionRequest struct {
	Room          *string    `json:"room,omitempty"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	RequiredCount *int       `json:"required_count,omitempty"`
}

// ExamSessionResponse represents the response for exam session operations
type ExamSessionResponse struct {
	ID            uuid.UUID `json:"id"`
	ExamID        uuid.UUID `json:"exam_id"`
	Room          string    `json:"room"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	RequiredCount int       `json:"required_count"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`
}

// ExamSessionListResponse represents a paginated list of exam sessions
type ExamSessionListResponse struct {
	Sessions []ExamSessionResponse `json:"sessions"`
	Total    int64                 `json:"total"`
	Limit    int                   `json:"limit"`
	Offset   int                   `json:"offset"`
}

// CreateSession creates a new exam session. Zero-length or inverted windows
// are rejected here so the scheduling core never sees them.
func (s *ExamSessionService) CreateSession(req *CreateExamSessionRequest) (*ExamSessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.EndTime.After(req.StartTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	if req.RequiredCount < 0 {
		return nil, apperrors.NewValidationError("required_count", "must not be negative")
	}

	if _, err := s.examRepo.GetByID(req.ExamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, fmt.Errorf("failed to verify exam: %w", err)
	}

	session := &models.ExamSession{
		ExamID:        req.ExamID,
		Room:          req.Room,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		RequiredCount: req.RequiredCount,
	}

	if err := s.repo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create exam session: %w", err)
	}

	return toExamSessionResponse(session), nil
}

// GetSessionByID retrieves an exam session by ID
func (s *ExamSessionService) GetSessionByID(id uuid.UUID) (*ExamSessionResponse, error) {
	session, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExamSessionNotFound
		}
		return nil, fmt.Errorf("failed to get exam session: %w", err)
	}
	return toExamSessionResponse(session), nil
}

// ListSessions retrieves exam sessions with pagination
func (s *ExamSessionService) ListSessions(limit, offset int) (*ExamSessionListResponse, error) {
	if limit < 1 || offset < 0 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	sessions, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list exam sessions: %w", err)
	}

	return toSessionListResponse(sessions, total, limit, offset), nil
}

// GetSessionsByExam retrieves all sessions for an exam
func (s *ExamSessionService) GetSessionsByExam(examID uuid.UUID, limit, offset int) (*ExamSessionListResponse, error) {
	if limit < 1 || offset < 0 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	if _, err := s.examRepo.GetByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, fmt.Errorf("failed to verify exam: %w", err)
	}

	sessions, total, err := s.repo.GetByExamID(examID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list exam sessions: %w", err)
	}

	return toSessionListResponse(sessions, total, limit, offset), nil
}

// UpdateSession updates an exam session
func (s *ExamSessionService) UpdateSession(id uuid.UUID, req *UpdateExamSessionRequest) (*ExamSessionResponse, error) {
	session, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExamSessionNotFound
		}
		return nil, fmt.Errorf("failed to get exam session: %w", err)
	}

	if req.Room != nil {
		session.Room = *req.Room
	}
	if req.StartTime != nil {
		session.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		session.EndTime = *req.EndTime
	}
	if req.RequiredCount != nil {
		if *req.RequiredCount < 0 {
			return nil, apperrors.NewValidationError("required_count", "must not be negative")
		}
		session.RequiredCount = *req.RequiredCount
	}

	if !session.EndTime.After(session.StartTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	if err := s.repo.Update(session); err != nil {
		return nil, fmt.Errorf("failed to update exam session: %w", err)
	}

	return toExamSessionResponse(session), nil
}

// DeleteSession removes an exam session
func (s *ExamSessionService) DeleteSession(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrExamSessionNotFound
		}
		return fmt.Errorf("failed to get exam session: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete exam session: %w", err)
	}
	return nil
}

func toSessionListResponse(sessions []models.ExamSession, total int64, limit, offset int) *ExamSessionListResponse {
	responses := make([]ExamSessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = *toExamSessionResponse(&sessions[i])
	}
	return &ExamSessionListResponse{
		Sessions: responses,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}
}

func toExamSessionResponse(session *models.ExamSession) *ExamSessionResponse {
	return &ExamSessionResponse{
		ID:            session.ID,
		ExamID:        session.ExamID,
		Room:          session.Room,
		StartTime:     session.StartTime.Format(time.RFC3339),
		EndTime:       session.EndTime.Format(time.RFC3339),
		RequiredCount: session.RequiredCount,
		CreatedAt:     session.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     session.UpdatedAt.Format(time.RFC3339),
	}
}
