package repository

import (
	"exam-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExamRepository handles database operations for exams
type ExamRepository struct {
	db *gorm.DB
}

// NewExamRepository creates a new exam repository
func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{db: db}
}

// Create creates a new exam
func (r *ExamRepository) Create(exam *models.Exam) error {
	return r.db.Create(exam).Error
}

// GetByID retrieves an exam by ID
func (r *ExamRepository) GetByID(id uuid.UUID) (*models.Exam, error) {
	var exam models.Exam
	err := r.db.First(&exam, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

// GetByName retrieves an exam by name
func (r *ExamRepository) GetByName(name string) (*models.Exam, error) {
	var exam models.Exam
	err := r.db.First(&exam, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

// GetAll retrieves all exams with pagination
func (r *ExamRepository) GetAll(limit, offset int) ([]models.Exam, int64, error) {
	var exams []models.Exam
	var total int64

	if err := r.db.Model(&models.Exam{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Order("name").Find(&exams).Error
	return exams, total, err
}

// GetWithSessions retrieves an exam with its sessions preloaded
func (r *ExamRepository) GetWithSessions(id uuid.UUID) (*models.Exam, error) {
	var exam models.Exam
	err := r.db.Preload("Sessions").First(&exam, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

// Update updates an exam
func (r *ExamRepository) Update(exam *models.Exam) error {
	return r.db.Save(exam).Error
}

// Delete removes an exam
func (r *ExamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Exam{}, "id = ?", id).Error
}
