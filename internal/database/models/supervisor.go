package models

import (
	"encoding/json"
)

// Supervisor represents a staff member eligible to oversee exam sessions
type Supervisor struct {
	BaseModel
	FullName    string           `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Email       string           `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PhoneNumber string           `json:"phone_number" gorm:"size:20"`
	Department  string           `json:"department" gorm:"size:100"`
	Status      SupervisorStatus `json:"status" gorm:"type:varchar(50);not null;default:'available'" validate:"required"`
	CurrentLoad int              `json:"current_load" gorm:"not null;default:0"`
	MaxLoad     int              `json:"max_load" gorm:"not null;default:10" validate:"min=1"`
	// LoadVersion guards CurrentLoad against concurrent read-then-write
	// updates; every load change must compare-and-swap on it.
	LoadVersion int             `json:"-" gorm:"not null;default:0"`
	Metadata    json.RawMessage `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	AvailabilityWindows []AvailabilityWindow `json:"availability_windows,omitempty" gorm:"foreignKey:SupervisorID;constraint:OnDelete:CASCADE"`
	Assignments         []Assignment         `json:"assignments,omitempty" gorm:"foreignKey:SupervisorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Supervisor
func (Supervisor) TableName() string {
	return "supervisors"
}

// PreferredWindowCount returns how many of the supervisor's recurring
// availability windows are marked as preferred.
func (s *Supervisor) PreferredWindowCount() int {
	count := 0
	for _, w := range s.AvailabilityWindows {
		if w.IsPreferred {
			count++
		}
	}
	return count
}

// HasCapacity reports whether the supervisor can take one more assignment.
func (s *Supervisor) HasCapacity() bool {
	return s.CurrentLoad < s.MaxLoad
}
