package models

import (
	"github.com/google/uuid"
)

// AvailabilityWindow represents a recurring weekly time range during which a
// supervisor may be assigned. It is not a calendar-specific booking.
type AvailabilityWindow struct {
	BaseModel
	SupervisorID uuid.UUID `json:"supervisor_id" gorm:"type:uuid;not null;index" validate:"required"`
	DayOfWeek    int       `json:"day_of_week" gorm:"not null" validate:"min=0,max=6"`
	StartTime    string    `json:"start_time" gorm:"size:5;not null" validate:"required"` // "HH:MM"
	EndTime      string    `json:"end_time" gorm:"size:5;not null" validate:"required"`   // "HH:MM"
	IsPreferred  bool      `json:"is_preferred" gorm:"default:false"`

	// Relationships
	Supervisor Supervisor `json:"supervisor,omitempty" gorm:"foreignKey:SupervisorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AvailabilityWindow
func (AvailabilityWindow) TableName() string {
	return "availability_windows"
}
