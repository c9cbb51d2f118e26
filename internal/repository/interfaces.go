package repository

import (
	"exam-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// SupervisorRepositoryInterface defines the interface for supervisor repository operations
type SupervisorRepositoryInterface interface {
	Create(supervisor *models.Supervisor) error
	GetByID(id uuid.UUID) (*models.Supervisor, error)
	GetByEmail(email string) (*models.Supervisor, error)
	GetWithWindows(id uuid.UUID) (*models.Supervisor, error)
	GetAll(limit, offset int) ([]models.Supervisor, int64, error)
	GetByStatus(status models.SupervisorStatus) ([]models.Supervisor, error)
	Update(supervisor *models.Supervisor) error
	Delete(id uuid.UUID) error
	DecrementLoad(id uuid.UUID, expectedVersion int) error
}

// AvailabilityWindowRepositoryInterface defines the interface for availability window repository operations
type AvailabilityWindowRepositoryInterface interface {
	Create(window *models.AvailabilityWindow) error
	GetBySupervisorID(supervisorID uuid.UUID) ([]models.AvailabilityWindow, error)
	ReplaceForSupervisor(supervisorID uuid.UUID, windows []models.AvailabilityWindow) error
	Delete(id uuid.UUID) error
}

// ExamRepositoryInterface defines the interface for exam repository operations
type ExamRepositoryInterface interface {
	Create(exam *models.Exam) error
	GetByID(id uuid.UUID) (*models.Exam, error)
	GetByName(name string) (*models.Exam, error)
	GetAll(limit, offset int) ([]models.Exam, int64, error)
	GetWithSessions(id uuid.UUID) (*models.Exam, error)
	Update(exam *models.Exam) error
	Delete(id uuid.UUID) error
}

// ExamSessionRepositoryInterface defines the interface for exam session repository operations
type ExamSessionRepositoryInterface interface {
	Create(session *models.ExamSession) error
	GetByID(id uuid.UUID) (*models.ExamSession, error)
	GetWithExam(id uuid.UUID) (*models.ExamSession, error)
	GetByExamID(examID uuid.UUID, limit, offset int) ([]models.ExamSession, int64, error)
	GetAll(limit, offset int) ([]models.ExamSession, int64, error)
	Update(session *models.ExamSession) error
	Delete(id uuid.UUID) error
}

// AssignmentRepositoryInterface defines the interface for assignment repository operations
type AssignmentRepositoryInterface interface {
	Create(assignment *models.Assignment) error
	CreateWithLoadIncrement(assignment *models.Assignment, expectedLoadVersion int) error
	GetByID(id uuid.UUID) (*models.Assignment, error)
	GetBySessionID(sessionID uuid.UUID) ([]models.Assignment, error)
	GetBySupervisorID(supervisorID uuid.UUID) ([]models.Assignment, error)
	GetBySupervisorAndStatuses(supervisorID uuid.UUID, statuses []models.AssignmentStatus) ([]models.Assignment, error)
	Exists(sessionID, supervisorID uuid.UUID) (bool, error)
	CountBySessionAndStatuses(sessionID uuid.UUID, statuses []models.AssignmentStatus) (int64, error)
	UpdateStatus(assignment *models.Assignment) error
	Delete(id uuid.UUID) error
}
