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

// SupervisorService handles business logic for supervisors
type SupervisorService struct {
	repo       repository.SupervisorRepositoryInterface
	windowRepo repository.AvailabilityWindowRepositoryInterface
	validator  *validator.Validate
}

// NewSupervisorService creates a new supervisor service
func NewSupervisorService(repo repository.SupervisorRepositoryInterface, windowRepo repository.AvailabilityWindowRepositoryInterface, validator *validator.Validate) *SupervisorService {
	return &SupervisorService{
		repo:       repo,
		windowRepo: windowRepo,
		validator:  validator,
	}
}

// AvailabilityWindowInput describes one recurring weekly availability range
type AvailabilityWindowInput struct {
	DayOfWeek   int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	IsPreferred bool   `json:"is_preferred"`
}

// CreateSupervisorRequest represents the request to create a supervisor
type CreateSupervisorRequest struct {
	FullName    string                    `json:"full_name" validate:"required,max=200"`
	Email       string                    `json:"email" validate:"required,email,max=255"`
	PhoneNumber string                    `json:"phone_number,omitempty"`
	Department  string                    `json:"department,omitempty"`
	Status      *models.SupervisorStatus  `json:"status,omitempty"`
	MaxLoad     *int                      `json:"max_load,omitempty"`
	Windows     []AvailabilityWindowInput `json:"availability_windows,omitempty"`
}

// UpdateSupervisorRequest represents the request to update a supervisor
type UpdateSupervisorRequest struct {
	FullName    *string                  `json:"full_name,omitempty"`
	PhoneNumber *string                  `json:"phone_number,omitempty"`
	Department  *string                  `json:"department,omitempty"`
	Status      *models.SupervisorStatus `json:"status,omitempty"`
	MaxLoad     *int                     `json:"max_load,omitempty"`
}

// SupervisorResponse represents the response for supervisor operations
type SupervisorResponse struct {
	ID          uuid.UUID                 `json:"id"`
	FullName    string                    `json:"full_name"`
	Email       string                    `json:"email"`
	PhoneNumber string                    `json:"phone_number"`
	Department  string                    `json:"department"`
	Status      models.SupervisorStatus   `json:"status"`
	CurrentLoad int                       `json:"current_load"`
	MaxLoad     int                       `json:"max_load"`
	Windows     []AvailabilityWindowInput `json:"availability_windows"`
	CreatedAt   string                    `json:"created_at"`
	UpdatedAt   string                    `json:"updated_at"`
}

// SupervisorListResponse represents a paginated list of supervisors
type SupervisorListResponse struct {
	Supervisors []SupervisorResponse `json:"supervisors"`
	Total       int64                `json:"total"`
	Limit       int                  `json:"limit"`
	Offset      int                  `json:"offset"`
}

// CreateSupervisor creates a new supervisor with optional availability windows
func (s *SupervisorService) CreateSupervisor(req *CreateSupervisorRequest) (*SupervisorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := validateWindows(req.Windows); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrSupervisorExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing supervisor: %w", err)
	}

	status := models.SupervisorStatusAvailable
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		status = *req.Status
	}

	maxLoad := 10
	if req.MaxLoad != nil {
		if *req.MaxLoad < 1 {
			return nil, apperrors.NewValidationError("max_load", "must be at least 1")
		}
		maxLoad = *req.MaxLoad
	}

	supervisor := &models.Supervisor{
		FullName:            req.FullName,
		Email:               req.Email,
		PhoneNumber:         req.PhoneNumber,
		Department:          req.Department,
		Status:              status,
		MaxLoad:             maxLoad,
		AvailabilityWindows: windowsFromInputs(req.Windows),
	}

	if err := s.repo.Create(supervisor); err != nil {
		return nil, fmt.Errorf("failed to create supervisor: %w", err)
	}

	return toSupervisorResponse(supervisor), nil
}

// GetSupervisorByID retrieves a supervisor by ID
func (s *SupervisorService) GetSupervisorByID(id uuid.UUID) (*SupervisorResponse, error) {
	supervisor, err := s.repo.GetWithWindows(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSupervisorNotFound
		}
		return nil, fmt.Errorf("failed to get supervisor: %w", err)
	}
	return toSupervisorResponse(supervisor), nil
}

// ListSupervisors retrieves supervisors with pagination
func (s *SupervisorService) ListSupervisors(limit, offset int) (*SupervisorListResponse, error) {
	if limit < 1 || offset < 0 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	supervisors, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list supervisors: %w", err)
	}

	responses := make([]SupervisorResponse, len(supervisors))
	for i := range supervisors {
		responses[i] = *toSupervisorResponse(&supervisors[i])
	}

	return &SupervisorListResponse{
		Supervisors: responses,
		Total:       total,
		Limit:       limit,
		Offset:      offset,
	}, nil
}

// UpdateSupervisor updates a supervisor
func (s *SupervisorService) UpdateSupervisor(id uuid.UUID, req *UpdateSupervisorRequest) (*SupervisorResponse, error) {
	supervisor, err := s.repo.GetWithWindows(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSupervisorNotFound
		}
		return nil, fmt.Errorf("failed to get supervisor: %w", err)
	}

	if req.FullName != nil {
		supervisor.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		supervisor.PhoneNumber = *req.PhoneNumber
	}
	if req.Department != nil {
		supervisor.Department = *req.Department
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		supervisor.Status = *req.Status
	}
	if req.MaxLoad != nil {
		if *req.MaxLoad < 1 {
			return nil, apperrors.NewValidationError("max_load", "must be at least 1")
		}
		supervisor.MaxLoad = *req.MaxLoad
	}

	if err := s.repo.Update(supervisor); err != nil {
		return nil, fmt.Errorf("failed to update supervisor: %w", err)
	}

	return toSupervisorResponse(supervisor), nil
}

// SetStatus changes a supervisor's availability status
func (s *SupervisorService) SetStatus(id uuid.UUID, status models.SupervisorStatus) (*SupervisorResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	return s.UpdateSupervisor(id, &UpdateSupervisorRequest{Status: &status})
}

// SetAvailabilityWindows replaces a supervisor's recurring weekly windows
func (s *SupervisorService) SetAvailabilityWindows(id uuid.UUID, inputs []AvailabilityWindowInput) (*SupervisorResponse, error) {
	if err := validateWindows(inputs); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSupervisorNotFound
		}
		return nil, fmt.Errorf("failed to get supervisor: %w", err)
	}

	if err := s.windowRepo.ReplaceForSupervisor(id, windowsFromInputs(inputs)); err != nil {
		return nil, fmt.Errorf("failed to replace availability windows: %w", err)
	}

	return s.GetSupervisorByID(id)
}

// DeleteSupervisor removes a supervisor
func (s *SupervisorService) DeleteSupervisor(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSupervisorNotFound
		}
		return fmt.Errorf("failed to get supervisor: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete supervisor: %w", err)
	}
	return nil
}

func validateWindows(inputs []AvailabilityWindowInput) error {
	for _, w := range inputs {
		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			return apperrors.ErrInvalidAvailabilityDay
		}
		start, err := time.Parse("15:04", w.StartTime)
		if err != nil {
			return apperrors.NewValidationError("start_time", "must be in HH:MM format")
		}
		end, err := time.Parse("15:04", w.EndTime)
		if err != nil {
			return apperrors.NewValidationError("end_time", "must be in HH:MM format")
		}
		if !end.After(start) {
			return apperrors.ErrInvalidAvailabilityTimes
		}
	}
	return nil
}

func windowsFromInputs(inputs []AvailabilityWindowInput) []models.AvailabilityWindow {
	windows := make([]models.AvailabilityWindow, len(inputs))
	for i, w := range inputs {
		windows[i] = models.AvailabilityWindow{
			DayOfWeek:   w.DayOfWeek,
			StartTime:   w.StartTime,
			EndTime:     w.EndTime,
			IsPreferred: w.IsPreferred,
		}
	}
	return windows
}

func toSupervisorResponse(supervisor *models.Supervisor) *SupervisorResponse {
	windows := make([]AvailabilityWindowInput, len(supervisor.AvailabilityWindows))
	for i, w := range supervisor.AvailabilityWindows {
		windows[i] = AvailabilityWindowInput{
			DayOfWeek:   w.DayOfWeek,
			StartTime:   w.StartTime,
			EndTime:     w.EndTime,
			IsPreferred: w.IsPreferred,
		}
	}

	return &SupervisorResponse{
		ID:          supervisor.ID,
		FullName:    supervisor.FullName,
		Email:       supervisor.Email,
		PhoneNumber: supervisor.PhoneNumber,
		Department:  supervisor.Department,
		Status:      supervisor.Status,
		CurrentLoad: supervisor.CurrentLoad,
		MaxLoad:     supervisor.MaxLoad,
		Windows:     windows,
		CreatedAt:   supervisor.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   supervisor.UpdatedAt.Format(time.RFC3339),
	}
}
