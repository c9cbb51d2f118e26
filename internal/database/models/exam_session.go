package models

import (
	"time"

	"github.com/google/uuid"
)

// ExamSession represents a time-bounded sitting of an exam that must be
// covered by a minimum number of supervisors.
type ExamSession struct {
	BaseModel
	ExamID    uuid.UUID `json:"exam_id" gorm:"type:uuid;not null;index" validate:"required"`
	Room      string    `json:"room" gorm:"size:100"`
	StartTime time.Time `json:"start_time" gorm:"not null" validate:"required"`
	EndTime   time.Time `json:"end_time" gorm:"not null" validate:"required"`
	// RequiredCount overrides the exam's required supervisor count when > 0.
	RequiredCount int `json:"required_count" gorm:"not null;default:0"`

	// Relationships
	Exam        Exam         `json:"exam,omitempty" gorm:"foreignKey:ExamID;constraint:OnDelete:CASCADE"`
	Assignments []Assignment `json:"assignments,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ExamSession
func (ExamSession) TableName() string {
	return "exam_sessions"
}

// ResolveRequiredCount returns the session's own required count, falling back
// to the exam configuration and finally to 1.
func (s *ExamSession) ResolveRequiredCount() int {
	if s.RequiredCount > 0 {
		return s.RequiredCount
	}
	if s.Exam.RequiredSupervisors > 0 {
		return s.Exam.RequiredSupervisors
	}
	return 1
}
