package models

import (
	"encoding/json"
)

// Exam represents an exam configuration; its sessions inherit the required
// supervisor count unless they override it.
type Exam struct {
	BaseModel
	Name                string          `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Subject             string          `json:"subject" gorm:"size:100"`
	AcademicLevel       string          `json:"academic_level" gorm:"size:100"`
	RequiredSupervisors int             `json:"required_supervisors" gorm:"not null;default:1" validate:"min=1"`
	Metadata            json.RawMessage `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	Sessions []ExamSession `json:"sessions,omitempty" gorm:"foreignKey:ExamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Exam
func (Exam) TableName() string {
	return "exams"
}
