package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"exam-scheduler-backend/internal/config"
	"exam-scheduler-backend/internal/database"
	"exam-scheduler-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type SupervisorData struct {
	FullName    string                   `yaml:"full_name"`
	Email       string                   `yaml:"email"`
	PhoneNumber string                   `yaml:"phone_number,omitempty"`
	Department  string                   `yaml:"department,omitempty"`
	Status      string                   `yaml:"status,omitempty"`
	MaxLoad     int                      `yaml:"max_load,omitempty"`
	Windows     []AvailabilityWindowData `yaml:"availability_windows,omitempty"`
}

type AvailabilityWindowData struct {
	DayOfWeek   int    `yaml:"day_of_week"`
	StartTime   string `yaml:"start_time"`
	EndTime     string `yaml:"end_time"`
	IsPreferred bool   `yaml:"is_preferred,omitempty"`
}

type ExamData struct {
	Name                string            `yaml:"name"`
	Subject             string            `yaml:"subject,omitempty"`
	AcademicLevel       string            `yaml:"academic_level,omitempty"`
	RequiredSupervisors int               `yaml:"required_supervisors,omitempty"`
	Sessions            []ExamSessionData `yaml:"sessions,omitempty"`
}

type ExamSessionData struct {
	Room          string `yaml:"room,omitempty"`
	StartTime     string `yaml:"start_time"` // RFC 3339
	EndTime       string `yaml:"end_time"`   // RFC 3339
	RequiredCount int    `yaml:"required_count,omitempty"`
}

// File structures
type SupervisorsFile struct {
	Supervisors []SupervisorData `yaml:"supervisors"`
}

type ExamsFile struct {
	Exams []ExamData `yaml:"exams"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	supervisors, err := loadSupervisors(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load supervisors: %w", err)
	}

	exams, err := loadExams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load exams: %w", err)
	}

	supervisorCreated := 0
	for _, supervisorData := range supervisors {
		created, err := createSupervisor(db, supervisorData)
		if err != nil {
			return fmt.Errorf("failed to create supervisor %s: %w", supervisorData.Email, err)
		}
		if created {
			supervisorCreated++
		}
	}
	log.Printf("📋 Supervisors: %d created, %d total", supervisorCreated, len(supervisors))

	examCreated := 0
	sessionCreated := 0
	for _, examData := range exams {
		created, sessions, err := createExam(db, examData)
		if err != nil {
			return fmt.Errorf("failed to create exam %s: %w", examData.Name, err)
		}
		if created {
			examCreated++
		}
		sessionCreated += sessions
	}
	log.Printf("📋 Exams: %d created, %d total (%d sessions)", examCreated, len(exams), sessionCreated)

	return nil
}

func loadSupervisors(dataDir string) ([]SupervisorData, error) {
	var allSupervisors []SupervisorData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "supervisors") {
			var file SupervisorsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allSupervisors = append(allSupervisors, file.Supervisors...)
		}
		return nil
	})

	return allSupervisors, err
}

func loadExams(dataDir string) ([]ExamData, error) {
	var allExams []ExamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "exams") {
			var file ExamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allExams = append(allExams, file.Exams...)
		}
		return nil
	})

	return allExams, err
}

// createSupervisor inserts the supervisor and their availability windows
// unless a supervisor with the same email already exists.
func createSupervisor(db *gorm.DB, data SupervisorData) (bool, error) {
	var existing models.Supervisor
	err := db.Where("email = ?", data.Email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	status := models.SupervisorStatusAvailable
	if data.Status != "" {
		status = models.SupervisorStatus(data.Status)
		if !status.IsValid() {
			return false, fmt.Errorf("invalid status %q", data.Status)
		}
	}

	maxLoad := data.MaxLoad
	if maxLoad < 1 {
		maxLoad = 10
	}

	supervisor := models.Supervisor{
		FullName:    data.FullName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		Department:  data.Department,
		Status:      status,
		MaxLoad:     maxLoad,
	}

	for _, w := range data.Windows {
		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			return false, fmt.Errorf("invalid day_of_week %d", w.DayOfWeek)
		}
		supervisor.AvailabilityWindows = append(supervisor.AvailabilityWindows, models.AvailabilityWindow{
			DayOfWeek:   w.DayOfWeek,
			StartTime:   w.StartTime,
			EndTime:     w.EndTime,
			IsPreferred: w.IsPreferred,
		})
	}

	if err := db.Create(&supervisor).Error; err != nil {
		return false, err
	}

	return true, nil
}

// createExam inserts the exam and its sessions unless an exam with the same
// name already exists. Returns whether the exam was created and how many
// sessions came with it.
func createExam(db *gorm.DB, data ExamData) (bool, int, error) {
	var existing models.Exam
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return false, 0, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, 0, err
	}

	required := data.RequiredSupervisors
	if required < 1 {
		required = 1
	}

	exam := models.Exam{
		Name:                data.Name,
		Subject:             data.Subject,
		AcademicLevel:       data.AcademicLevel,
		RequiredSupervisors: required,
	}

	for _, s := range data.Sessions {
		start, err := time.Parse(time.RFC3339, s.StartTime)
		if err != nil {
			return false, 0, fmt.Errorf("invalid session start_time %q: %w", s.StartTime, err)
		}
		end, err := time.Parse(time.RFC3339, s.EndTime)
		if err != nil {
			return false, 0, fmt.Errorf("invalid session end_time %q: %w", s.EndTime, err)
		}
		if !end.After(start) {
			return false, 0, fmt.Errorf("session end_time %q is not after start_time %q", s.EndTime, s.StartTime)
		}
		exam.Sessions = append(exam.Sessions, models.ExamSession{
			Room:          s.Room,
			StartTime:     start,
			EndTime:       end,
			RequiredCount: s.RequiredCount,
		})
	}

	if err := db.Create(&exam).Error; err != nil {
		return false, 0, err
	}

	return true, len(exam.Sessions), nil
}
