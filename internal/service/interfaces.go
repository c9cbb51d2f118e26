package service

import (
	"time"

	"exam-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AvailabilityCheckerInterface answers whether a supervisor is free during a window
type AvailabilityCheckerInterface interface {
	IsAvailable(supervisorID uuid.UUID, start, end time.Time) bool
}

// CandidateSelectorInterface produces the ranked candidate sequence for a window
type CandidateSelectorInterface interface {
	SelectCandidates(start, end time.Time) ([]models.Supervisor, error)
}

// AutoAssignServiceInterface defines the interface for the auto-assignment service
type AutoAssignServiceInterface interface {
	AutoAssign(sessionID uuid.UUID, requiredCount int) (*AutoAssignResult, error)
}

// SuggestionServiceInterface defines the interface for the suggestion service
type SuggestionServiceInterface interface {
	Suggest(sessionID uuid.UUID) (*SuggestionResult, error)
}

// SupervisorServiceInterface defines the interface for supervisor service
type SupervisorServiceInterface interface {
	CreateSupervisor(req *CreateSupervisorRequest) (*SupervisorResponse, error)
	GetSupervisorByID(id uuid.UUID) (*SupervisorResponse, error)
	ListSupervisors(limit, offset int) (*SupervisorListResponse, error)
	UpdateSupervisor(id uuid.UUID, req *UpdateSupervisorRequest) (*SupervisorResponse, error)
	SetStatus(id uuid.UUID, status models.SupervisorStatus) (*SupervisorResponse, error)
	SetAvailabilityWindows(id uuid.UUID, inputs []AvailabilityWindowInput) (*SupervisorResponse, error)
	DeleteSupervisor(id uuid.UUID) error
}

// ExamServiceInterface defines the interface for exam service
type ExamServiceInterface interface {
	CreateExam(req *CreateExamRequest) (*ExamResponse, error)
	GetExamByID(id uuid.UUID) (*ExamResponse, error)
	ListExams(limit, offset int) (*ExamListResponse, error)
	UpdateExam(id uuid.UUID, req *UpdateExamRequest) (*ExamResponse, error)
	DeleteExam(id uuid.UUID) error
}

// ExamSessionServiceInterface defines the interface for exam session service
type ExamSessionServiceInterface interface {
	CreateSession(req *CreateExamSessionRequest) (*ExamSessionResponse, error)
	GetSessionByID(id uuid.UUID) (*ExamSessionResponse, error)
	ListSessions(limit, offset int) (*ExamSessionListResponse, error)
	GetSessionsByExam(examID uuid.UUID, limit, offset int) (*ExamSessionListResponse, error)
	UpdateSession(id uuid.UUID, req *UpdateExamSessionRequest) (*ExamSessionResponse, error)
	DeleteSession(id uuid.UUID) error
}

// AssignmentServiceInterface defines the interface for assignment service
type AssignmentServiceInterface interface {
	GetByID(id uuid.UUID) (*AssignmentResponse, error)
	GetBySession(sessionID uuid.UUID) ([]AssignmentResponse, error)
	GetBySupervisor(supervisorID uuid.UUID) ([]AssignmentResponse, error)
	Confirm(id uuid.UUID) (*AssignmentResponse, error)
	Decline(id uuid.UUID) (*AssignmentResponse, error)
	Replace(id uuid.UUID) (*AssignmentResponse, error)
	Unassign(id uuid.UUID) error
}
