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

// ExamService handles business logic for exams
type ExamService struct {
	repo      repository.ExamRepositoryInterface
	validator *validator.Validate
}

// NewExamService creates a new exam service
func NewExamService(repo repository.ExamRepositoryInterface, validator *validator.Validate) *ExamService {
	return &ExamService{
		repo:      repo,
		validator: validator,
	}
}

// CreateExamRequest represents the request to create an exam
type CreateExamRequest struct {
	Name                string `json:"name" validate:"required,max=200"`
	Subject             string `json:"subject,omitempty"`
	AcademicLevel       string `json:"academic_level,omitempty"`
	RequiredSupervisors *int   `json:"required_supervisors,omitempty"`
}

// UpdateExamRequest represents the request to update an exam
type UpdateExamRequest struct {
	Name                *string `json:"name,omitempty"`
	Subject             *string `json:"subject,omitempty"`
	AcademicLevel       *string `json:"academic_level,omitempty"`
	RequiredSupervisors *int    `json:"required_supervisors,omitempty"`
}

// ExamResponse represents the response for exam operations
type ExamResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Subject             string    `json:"subject"`
	AcademicLevel       string    `json:"academic_level"`
	RequiredSupervisors int       `json:"required_supervisors"`
	CreatedAt           string    `json:"created_at"`
	UpdatedAt           string    `json:"updated_at"`
}

// ExamListResponse represents a paginated list of exams
type ExamListResponse struct {
	Exams  []ExamResponse `json:"exams"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// CreateExam creates a new exam
func (s *ExamService) CreateExam(req *CreateExamRequest) (*ExamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrExamExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing exam: %w", err)
	}

	required := 1
	if req.RequiredSupervisors != nil {
		if *req.RequiredSupervisors < 1 {
			return nil, apperrors.NewValidationError("required_supervisors", "must be at least 1")
		}
		required = *req.RequiredSupervisors
	}

	exam := &models.Exam{
		Name:                req.Name,
		Subject:             req.Subject,
		AcademicLevel:       req.AcademicLevel,
		RequiredSupervisors: required,
	}

	if err := s.repo.Create(exam); err != nil {
		return nil, fmt.Errorf("failed to create exam: %w", err)
	}

	return toExamResponse(exam), nil
}

// GetExamByID retrieves an exam by ID
func (s *ExamService) GetExamByID(id uuid.UUID) (*ExamResponse, error) {
	exam, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, fmt.Errorf("failed to get exam: %w", err)
	}
	return toExamResponse(exam), nil
}

// ListExams retrieves exams with pagination
func (s *ExamService) ListExams(limit, offset int) (*ExamListResponse, error) {
	if limit < 1 || offset < 0 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	exams, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list exams: %w", err)
	}

	responses := make([]ExamResponse, len(exams))
	for i := range exams {
		responses[i] = *toExamResponse(&exams[i])
	}

	return &ExamListResponse{
		Exams:  responses,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// UpdateExam updates an exam
func (s *ExamService) UpdateExam(id uuid.UUID, req *UpdateExamRequest) (*ExamResponse, error) {
	exam, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, fmt.Errorf("failed to get exam: %w", err)
	}

	if req.Name != nil {
		exam.Name = *req.Name
	}
	if req.Subject != nil {
		exam.Subject = *req.Subject
	}
	if req.AcademicLevel != nil {
		exam.AcademicLevel = *req.AcademicLevel
	}
	if req.RequiredSupervisors != nil {
		if *req.RequiredSupervisors < 1 {
			return nil, apperrors.NewValidationError("required_supervisors", "must be at least 1")
		}
		exam.RequiredSupervisors = *req.RequiredSupervisors
	}

	if err := s.repo.Update(exam); err != nil {
		return nil, fmt.Errorf("failed to update exam: %w", err)
	}

	return toExamResponse(exam), nil
}

// DeleteExam removes an exam
func (s *ExamService) DeleteExam(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrExamNotFound
		}
		return fmt.Errorf("failed to get exam: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete exam: %w", err)
	}
	return nil
}

func toExamResponse(exam *models.Exam) *ExamResponse {
	return &ExamResponse{
		ID:                  exam.ID,
		Name:                exam.Name,
		Subject:             exam.Subject,
		AcademicLevel:       exam.AcademicLevel,
		RequiredSupervisors: exam.RequiredSupervisors,
		CreatedAt:           exam.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           exam.UpdatedAt.Format(time.RFC3339),
	}
}
