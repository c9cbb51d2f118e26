package repository

import (
	"exam-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityWindowRepository handles database operations for availability windows
type AvailabilityWindowRepository struct {
	db *gorm.DB
}

// NewAvailabilityWindowRepository creates a new availability window repository
func NewAvailabilityWindowRepository(db *gorm.DB) *AvailabilityWindowRepository {
	return &AvailabilityWindowRepository{db: db}
}

// Create creates a new availability window
func (r *AvailabilityWindowRepository) Create(window *models.AvailabilityWindow) error {
	return r.db.Create(window).Error
}

// GetBySupervisorID retrieves all windows for a supervisor
func (r *AvailabilityWindowRepository) GetBySupervisorID(supervisorID uuid.UUID) ([]models.AvailabilityWindow, error) {
	var windows []models.AvailabilityWindow
	err := r.db.Where("supervisor_id = ?", supervisorID).Order("day_of_week, start_time").Find(&windows).Error
	return windows, err
}

// ReplaceForSupervisor swaps a supervisor's windows for a new set inside a
// transaction, so readers never observe a half-replaced week.
func (r *AvailabilityWindowRepository) ReplaceForSupervisor(supervisorID uuid.UUID, windows []models.AvailabilityWindow) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("supervisor_id = ?", supervisorID).Delete(&models.AvailabilityWindow{}).Error; err != nil {
			return err
		}
		for i := range windows {
			windows[i].SupervisorID = supervisorID
			if err := tx.Create(&windows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes an availability window
func (r *AvailabilityWindowRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AvailabilityWindow{}, "id = ?", id).Error
}
