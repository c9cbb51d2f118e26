package repository

import (
	"exam-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExamSessionRepository handles database operations for exam sessions
type ExamSessionRepository struct {
	db *gorm.DB
}

// NewExamSessionRepository creates a new exam session repository
func NewExamSessionRepository(db *gorm.DB) *ExamSessionRepository {
	return &ExamSessionRepository{db: db}
}

// Create creates a new exam session
func (r *ExamSessionRepository) Create(session *models.ExamSession) error {
	return r.db.Create(session).Error
}

// GetByID retrieves an exam session by ID
func (r *ExamSessionRepository) GetByID(id uuid.UUID) (*models.ExamSession, error) {
	var session models.ExamSession
	err := r.db.First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetWithExam retrieves an exam session with its parent exam preloaded
func (r *ExamSessionRepository) GetWithExam(id uuid.UUID) (*models.ExamSession, error) {
	var session models.ExamSession
	err := r.db.Preload("Exam").First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetByExamID retrieves all sessions for an exam
func (r *ExamSessionRepository) GetByExamID(examID uuid.UUID, limit, offset int) ([]models.ExamSession, int64, error) {
	var sessions []models.ExamSession
	var total int64

	if err := r.db.Model(&models.ExamSession{}).Where("exam_id = ?", examID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("exam_id = ?", examID).Limit(limit).Offset(offset).Order("start_time").Find(&sessions).Error
	return sessions, total, err
}

// GetAll retrieves all exam sessions with pagination
func (r *ExamSessionRepository) GetAll(limit, offset int) ([]models.ExamSession, int64, error) {
	var sessions []models.ExamSession
	var total int64

	if err := r.db.Model(&models.ExamSession{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Order("start_time").Find(&sessions).Error
	return sessions, total, err
}

// Update updates an exam session
func (r *ExamSessionRepository) Update(session *models.ExamSession) error {
	return r.db.Save(session).Error
}

// Delete removes an exam session
func (r *ExamSessionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ExamSession{}, "id = ?", id).Error
}
