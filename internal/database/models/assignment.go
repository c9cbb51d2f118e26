package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignment links one supervisor to one exam session with a role and status.
// The (session_id, supervisor_id) pair is unique so that retried assignment
// calls cannot double-book the same supervisor on a session.
type Assignment struct {
	BaseModel
	SessionID    uuid.UUID        `json:"session_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_assignments_session_supervisor" validate:"required"`
	SupervisorID uuid.UUID        `json:"supervisor_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_assignments_session_supervisor" validate:"required"`
	Role         AssignmentRole   `json:"role" gorm:"type:varchar(50);not null;default:'assistant'" validate:"required"`
	Status       AssignmentStatus `json:"status" gorm:"type:varchar(50);not null;default:'assigned'" validate:"required"`
	AssignedAt   time.Time        `json:"assigned_at" gorm:"not null" validate:"required"`
	ConfirmedAt  *time.Time       `json:"confirmed_at,omitempty"`

	// Relationships
	Session    ExamSession `json:"session,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	Supervisor Supervisor  `json:"supervisor,omitempty" gorm:"foreignKey:SupervisorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}
