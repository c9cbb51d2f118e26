package testutils

import (
	"fmt"
	"time"

	"exam-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

// SupervisorFactory provides methods to create test Supervisor data
type SupervisorFactory struct{}

// NewSupervisorFactory creates a new SupervisorFactory
func NewSupervisorFactory() *SupervisorFactory {
	return &SupervisorFactory{}
}

// Create creates a test Supervisor with default values
func (f *SupervisorFactory) Create() *models.Supervisor {
	id := uuid.New()

	return &models.Supervisor{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:    "Test Supervisor",
		Email:       fmt.Sprintf("supervisor-%s@test.com", id.String()[:8]),
		PhoneNumber: "+1-555-0123",
		Department:  "Mathematics",
		Status:      models.SupervisorStatusAvailable,
		CurrentLoad: 0,
		MaxLoad:     10,
	}
}

// WithName sets a custom name for the supervisor
func (f *SupervisorFactory) WithName(name string) *models.Supervisor {
	supervisor := f.Create()
	supervisor.FullName = name
	return supervisor
}

// WithEmail sets a custom email for the supervisor
func (f *SupervisorFactory) WithEmail(email string) *models.Supervisor {
	supervisor := f.Create()
	supervisor.Email = email
	return supervisor
}

// WithStatus sets a custom status for the supervisor
func (f *SupervisorFactory) WithStatus(status models.SupervisorStatus) *models.Supervisor {
	supervisor := f.Create()
	supervisor.Status = status
	return supervisor
}

// WithLoad sets the current and maximum load for the supervisor
func (f *SupervisorFactory) WithLoad(current, max int) *models.Supervisor {
	supervisor := f.Create()
	supervisor.CurrentLoad = current
	supervisor.MaxLoad = max
	return supervisor
}

// WithWindows attaches availability windows to the supervisor
func (f *SupervisorFactory) WithWindows(windows ...models.AvailabilityWindow) *models.Supervisor {
	supervisor := f.Create()
	for i := range windows {
		windows[i].SupervisorID = supervisor.ID
	}
	supervisor.AvailabilityWindows = windows
	return supervisor
}

// AvailabilityWindowFactory provides methods to create test AvailabilityWindow data
type AvailabilityWindowFactory struct{}

// NewAvailabilityWindowFactory creates a new AvailabilityWindowFactory
func NewAvailabilityWindowFactory() *AvailabilityWindowFactory {
	return &AvailabilityWindowFactory{}
}

// Create creates a test AvailabilityWindow with default values
func (f *AvailabilityWindowFactory) Create() *models.AvailabilityWindow {
	return &models.AvailabilityWindow{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SupervisorID: uuid.New(),
		DayOfWeek:    1,
		StartTime:    "08:00",
		EndTime:      "16:00",
		IsPreferred:  false,
	}
}

// WithDay sets the day of week for the window
func (f *AvailabilityWindowFactory) WithDay(day int) *models.AvailabilityWindow {
	window := f.Create()
	window.DayOfWeek = day
	return window
}

// WithTimes sets the start and end times for the window
func (f *AvailabilityWindowFactory) WithTimes(start, end string) *models.AvailabilityWindow {
	window := f.Create()
	window.StartTime = start
	window.EndTime = end
	return window
}

// Preferred marks the window as preferred
func (f *AvailabilityWindowFactory) Preferred() *models.AvailabilityWindow {
	window := f.Create()
	window.IsPreferred = true
	return window
}

// ExamFactory provides methods to create test Exam data
type ExamFactory struct{}

// NewExamFactory creates a new ExamFactory
func NewExamFactory() *ExamFactory {
	return &ExamFactory{}
}

// Create creates a test Exam with default values
func (f *ExamFactory) Create() *models.Exam {
	id := uuid.New()

	return &models.Exam{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:                fmt.Sprintf("Test Exam %s", id.String()[:8]),
		Subject:             "Mathematics",
		AcademicLevel:       "12th grade",
		RequiredSupervisors: 1,
	}
}

// WithName sets a custom name for the exam
func (f *ExamFactory) WithName(name string) *models.Exam {
	exam := f.Create()
	exam.Name = name
	return exam
}

// WithRequiredSupervisors sets the required supervisor count
func (f *ExamFactory) WithRequiredSupervisors(count int) *models.Exam {
	exam := f.Create()
	exam.RequiredSupervisors = count
	return exam
}

// ExamSessionFactory provides methods to create test ExamSession data
type ExamSessionFactory struct{}

// NewExamSessionFactory creates a new ExamSessionFactory
func NewExamSessionFactory() *ExamSessionFactory {
	return &ExamSessionFactory{}
}

// Create creates a test ExamSession with default values
func (f *ExamSessionFactory) Create() *models.ExamSession {
	start := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

	return &models.ExamSession{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ExamID:    uuid.New(),
		Room:      "A-101",
		StartTime: start,
		EndTime:   start.Add(3 * time.Hour),
	}
}

// WithExam sets the exam ID for the session
func (f *ExamSessionFactory) WithExam(examID uuid.UUID) *models.ExamSession {
	session := f.Create()
	session.ExamID = examID
	return session
}

// WithWindow sets the start and end times for the session
func (f *ExamSessionFactory) WithWindow(start, end time.Time) *models.ExamSession {
	session := f.Create()
	session.StartTime = start
	session.EndTime = end
	return session
}

// WithRequiredCount sets the session-level required supervisor count
func (f *ExamSessionFactory) WithRequiredCount(count int) *models.ExamSession {
	session := f.Create()
	session.RequiredCount = count
	return session
}

// AssignmentFactory provides methods to create test Assignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a test Assignment with default values
func (f *AssignmentFactory) Create() *models.Assignment {
	return &models.Assignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SessionID:    uuid.New(),
		SupervisorID: uuid.New(),
		Role:         models.AssignmentRolePrimary,
		Status:       models.AssignmentStatusAssigned,
		AssignedAt:   time.Now(),
	}
}

// For links the assignment to a session and supervisor
func (f *AssignmentFactory) For(sessionID, supervisorID uuid.UUID) *models.Assignment {
	assignment := f.Create()
	assignment.SessionID = sessionID
	assignment.SupervisorID = supervisorID
	return assignment
}

// WithStatus sets a custom status for the assignment
func (f *AssignmentFactory) WithStatus(status models.AssignmentStatus) *models.Assignment {
	assignment := f.Create()
	assignment.Status = status
	return assignment
}

// WithRole sets a custom role for the assignment
func (f *AssignmentFactory) WithRole(role models.AssignmentRole) *models.Assignment {
	assignment := f.Create()
	assignment.Role = role
	return assignment
}
