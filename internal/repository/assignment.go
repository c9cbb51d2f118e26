package repository

import (
	"exam-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *AssignmentRepository) Create(assignment *models.Assignment) error {
	return r.db.Create(assignment).Error
}

// CreateWithLoadIncrement writes an assignment and bumps the supervisor's
// current load in one transaction. The load update is guarded by an
// optimistic check on load_version; when the version no longer matches the
// whole transaction rolls back and ErrRecordNotFound is returned, so the
// caller can re-read the supervisor and retry.
func (r *AssignmentRepository) CreateWithLoadIncrement(assignment *models.Assignment, expectedLoadVersion int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(assignment).Error; err != nil {
			return err
		}
		result := tx.Model(&models.Supervisor{}).
			Where("id = ? AND load_version = ?", assignment.SupervisorID, expectedLoadVersion).
			Updates(map[string]interface{}{
				"current_load": gorm.Expr("current_load + 1"),
				"load_version": gorm.Expr("load_version + 1"),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(id uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetBySessionID retrieves all assignments for an exam session
func (r *AssignmentRepository) GetBySessionID(sessionID uuid.UUID) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Where("session_id = ?", sessionID).Order("assigned_at").Find(&assignments).Error
	return assignments, err
}

// GetBySupervisorID retrieves all assignments for a supervisor
func (r *AssignmentRepository) GetBySupervisorID(supervisorID uuid.UUID) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Where("supervisor_id = ?", supervisorID).Order("assigned_at").Find(&assignments).Error
	return assignments, err
}

// GetBySupervisorAndStatuses retrieves a supervisor's assignments in the
// given statuses with their session windows preloaded. This is the query
// the availability checker runs for conflict detection.
func (r *AssignmentRepository) GetBySupervisorAndStatuses(supervisorID uuid.UUID, statuses []models.AssignmentStatus) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Preload("Session").
		Where("supervisor_id = ? AND status IN ?", supervisorID, statuses).
		Find(&assignments).Error
	return assignments, err
}

// Exists checks if an assignment exists for the session/supervisor pair
func (r *AssignmentRepository) Exists(sessionID, supervisorID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Assignment{}).
		Where("session_id = ? AND supervisor_id = ?", sessionID, supervisorID).
		Count(&count).Error
	return count > 0, err
}

// CountBySessionAndStatuses counts a session's assignments in the given statuses
func (r *AssignmentRepository) CountBySessionAndStatuses(sessionID uuid.UUID, statuses []models.AssignmentStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Assignment{}).
		Where("session_id = ? AND status IN ?", sessionID, statuses).
		Count(&count).Error
	return count, err
}

// UpdateStatus updates an assignment's status and optional confirmation time
func (r *AssignmentRepository) UpdateStatus(assignment *models.Assignment) error {
	return r.db.Model(assignment).
		Select("status", "confirmed_at").
		Updates(map[string]interface{}{
			"status":       assignment.Status,
			"confirmed_at": assignment.ConfirmedAt,
		}).Error
}

// Delete removes an assignment
func (r *AssignmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Assignment{}, "id = ?", id).Error
}
