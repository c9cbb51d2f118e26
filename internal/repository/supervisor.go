package repository

import (
	"exam-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupervisorRepository handles database operations for supervisors
type SupervisorRepository struct {
	db *gorm.DB
}

// NewSupervisorRepository creates a new supervisor repository
func NewSupervisorRepository(db *gorm.DB) *SupervisorRepository {
	return &SupervisorRepository{db: db}
}

// Create creates a new supervisor
func (r *SupervisorRepository) Create(supervisor *models.Supervisor) error {
	return r.db.Create(supervisor).Error
}

// GetByID retrieves a supervisor by ID
func (r *SupervisorRepository) GetByID(id uuid.UUID) (*models.Supervisor, error) {
	var supervisor models.Supervisor
	err := r.db.First(&supervisor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &supervisor, nil
}

// GetByEmail retrieves a supervisor by email
func (r *SupervisorRepository) GetByEmail(email string) (*models.Supervisor, error) {
	var supervisor models.Supervisor
	err := r.db.First(&supervisor, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &supervisor, nil
}

// GetWithWindows retrieves a supervisor with availability windows preloaded
func (r *SupervisorRepository) GetWithWindows(id uuid.UUID) (*models.Supervisor, error) {
	var supervisor models.Supervisor
	err := r.db.Preload("AvailabilityWindows").First(&supervisor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &supervisor, nil
}

// GetAll retrieves all supervisors with pagination
func (r *SupervisorRepository) GetAll(limit, offset int) ([]models.Supervisor, int64, error) {
	var supervisors []models.Supervisor
	var total int64

	if err := r.db.Model(&models.Supervisor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("AvailabilityWindows").Limit(limit).Offset(offset).Order("full_name").Find(&supervisors).Error
	return supervisors, total, err
}

// GetByStatus retrieves all supervisors with the given status, windows
// preloaded. This is the roster query the candidate selector runs on.
func (r *SupervisorRepository) GetByStatus(status models.SupervisorStatus) ([]models.Supervisor, error) {
	var supervisors []models.Supervisor
	err := r.db.Preload("AvailabilityWindows").Where("status = ?", status).Order("full_name").Find(&supervisors).Error
	return supervisors, err
}

// Update updates a supervisor
func (r *SupervisorRepository) Update(supervisor *models.Supervisor) error {
	return r.db.Save(supervisor).Error
}

// Delete removes a supervisor
func (r *SupervisorRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Supervisor{}, "id = ?", id).Error
}

// DecrementLoad lowers the supervisor's current load by one, guarded by an
// optimistic check on load_version and never going below zero. Returns
// ErrRecordNotFound when the version no longer matches, i.e. another writer
// got there first.
func (r *SupervisorRepository) DecrementLoad(id uuid.UUID, expectedVersion int) error {
	result := r.db.Model(&models.Supervisor{}).
		Where("id = ? AND load_version = ? AND current_load > 0", id, expectedVersion).
		Updates(map[string]interface{}{
			"current_load": gorm.Expr("current_load - 1"),
			"load_version": gorm.Expr("load_version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
