package handlers

import (
	"net/http"

	apperrors "exam-scheduler-backend/internal/errors"
	"exam-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExamHandler handles HTTP requests for exam operations
type ExamHandler struct {
	examService    service.ExamServiceInterface
	sessionService service.ExamSessionServiceInterface
}

// NewExamHandler creates a new exam handler
func NewExamHandler(examService service.ExamServiceInterface, sessionService service.ExamSessionServiceInterface) *ExamHandler {
	return &ExamHandler{
		examService:    examService,
		sessionService: sessionService,
	}
}

// CreateExam handles POST /exams
// @Summary Create a new exam
// @Description Create a new exam with the provided details
// @Tags exams
// @Accept json
// @Produce json
// @Param exam body service.CreateExamRequest true "Exam data"
// @Success 201 {object} service.ExamResponse "Successfully created exam"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Exam already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /exams [post]
func (h *ExamHandler) CreateExam(c *gin.Context) {
	var req service.CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exam, err := h.examService.CreateExam(&req)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if isValidationFailure(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, exam)
}

// GetExam handles GET /exams/:id
// @Summary Get exam by ID
// @Description Get a specific exam by its UUID
// @Tags exams
// @Accept json
// @Produce json
// @Param id path string true "Exam ID (UUID)"
// @Success 200 {object} service.ExamResponse "Successfully retrieved exam"
// @Failure 400 {object} map[string]interface{} "Invalid exam ID"
// @Failure 404 {object} map[string]interface{} "Exam not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /exams/{id} [get]
func (h *ExamHandler) GetExam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exam ID"})
		return
	}

	exam, err := h.examService.GetExamByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, exam)
}

// ListExams handles GET /exams
// @Summary List all exams
// @Description Get all exams with pagination support
// @Tags exams
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of items" default(50)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.ExamListResponse "Successfully retrieved exams"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /exams [get]
func (h *ExamHandler) ListExams(c *gin.Context) {
	limit, offset := parsePagination(c)

	resp, err := h.examService.ListExams(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetExamSessions handles GET /exams/:id/sessions
// @Summary List sessions for an exam
// @Description Get all scheduled sessions that belong to an exam
// @Tags exams
// @Accept json
// @Produce json
// @Param id path string true "Exam ID (UUID)"
// @Param limit query int false "Maximum number of items" default(50)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.ExamSessionListResponse "Successfully retrieved sessions"
// @Failure 400 {object} map[string]interface{} "Invalid exam ID"
// @Failure 404 {object} map[string]interface{} "Exam not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /exams/{id}/sessions [get]
func (h *ExamHandler) GetExamSessions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exam ID"})
		return
	}

	limit, offset := parsePagination(c)

	resp, err := h.sessionService.GetSessionsByExam(id, limit, offset)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateExam handles PUT /exams/:id
// @Summary Update an exam
// @Description Update exam details by UUID
// @Tags exams
// @Accept json
// @Produce json
// @Param id path string true "Exam ID (UUID)"
// @Param exam body service.UpdateExamRequest true "Exam data"
// @Success 200 {object} service.ExamResponse "Successfully updated exam"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Exam not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /exams/{id} [put]
func (h *ExamHandler) UpdateExam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exam ID"})
		return
	}

	var req service.UpdateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exam, err := h.examService.UpdateExam(id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if isValidationFailure(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, exam)
}

// DeleteExam handles DELETE /exams/:id
// @Summary Delete an exam
// @Description Delete an exam and its sessions
// @Tags exams
// @Accept json
// @Produce json
// @Param id path string true "Exam ID (UUID)"
// @Success 204 "Successfully deleted exam"
// @Failure 400 {object} map[string]interface{} "Invalid exam ID"
// @Failure 404 {object} map[string]interface{} "Exam not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /exams/{id} [delete]
func (h *ExamHandler) DeleteExam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exam ID"})
		return
	}

	if err := h.examService.DeleteExam(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
