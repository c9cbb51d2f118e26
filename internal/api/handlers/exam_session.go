package handlers

import (
	"errors"
	"net/http"

	apperrors "exam-scheduler-backend/internal/errors"
	"exam-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExamSessionHandler handles HTTP requests for exam session operations,
// including automatic supervisor assignment and suggestions
type ExamSessionHandler struct {
	sessionService    service.ExamSessionServiceInterface
	assignmentService service.AssignmentServiceInterface
	autoAssignService service.AutoAssignServiceInterface
	suggestionService service.SuggestionServiceInterface
}

// NewExamSessionHandler creates a new exam session handler
func NewExamSessionHandler(
	sessionService service.ExamSessionServiceInterface,
	assignmentService service.AssignmentServiceInterface,
	autoAssignService service.AutoAssignServiceInterface,
	suggestionService service.SuggestionServiceInterface,
) *ExamSessionHandler {
	return &ExamSessionHandler{
		sessionService:    sessionService,
		assignmentService: assignmentService,
		autoAssignService: autoAssignService,
		suggestionService: suggestionService,
	}
}

// CreateSession handles POST /exam-sessions
// @Summary Create a new exam session
// @Description Schedule a new session for an exam
// @Tags exam-sessions
// @Accept json
// @Produce json
// @Param session body service.CreateExamSessionRequest true "Session data"
// @Success 201 {object} service.ExamSessionResponse "Successfully created session"
// @Failure 400 {object} map[string]interface{} "Invalid request body or time range"
// @Failure 404 {object} map[string]interface{} "Exam not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /exam-sessions [post]
func (h *ExamSessionHandler) CreateSession(c *gin.Context) {
	var req service.CreateExamSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessionService.CreateSession(&req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidTimeRange) || isValidationFailure(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSession handles GET /exam-sessions/:id
// @Summary Get exam session by ID
// @Description Get a specific exam session by its UUID
// @Tags exam-sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.ExamSessionResponse "Successfully retrieved session"
// @Failure 400 {object} map[string]interface{} "Invalid session ID"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /exam-sessions/{id} [get]
func (h *ExamSessionHandler) GetSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	session, err := h.sessionService.GetSessionByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

// ListSessions handles GET /exam-sessions
// @Summary List all exam sessions
// @Description Get all exam sessions with pagination support
// @Tags exam-sessions
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of items" default(50)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.ExamSessionListResponse "Successfully retrieved sessions"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /exam-sessions [get]
func (h *ExamSessionHandler) ListSessions(c *gin.Context) {
	limit, offset := parsePagination(c)

	resp, err := h.sessionService.ListSessions(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateSession handles PUT /exam-sessions/:id
// @Summary Update an exam session
// @Description Update session details by UUID
// @Tags exam-sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param session body service.UpdateExamSessionRequest true "Session data"
// @Success 200 {object} service.ExamSessionResponse "Successfully updated session"
// @Failure 400 {object} map[string]interface{} "Invalid request or time range"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /exam-sessions/{id} [put]
func (h *ExamSessionHandler) UpdateSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	var req service.UpdateExamSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessionService.UpdateSession(id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidTimeRange) || isValidationFailure(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

// DeleteSession handles DELETE /exam-sessions/:id
// @Summary Delete an exam session
// @Description Delete an exam session and its assignments
// @Tags exam-sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 204 "Successfully deleted session"
// @Failure 400 {object} map[string]interface{} "Invalid session ID"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /exam-sessions/{id} [delete]
func (h *ExamSessionHandler) DeleteSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	if err := h.sessionService.DeleteSession(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetSessionAssignments handles GET /exam-sessions/:id/assignments
// @Summary List assignments for a session
// @Description Get all supervisor assignments that belong to an exam session
// @Tags exam-sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {array} service.AssignmentResponse "Successfully retrieved assignments"
// @Failure 400 {object} map[string]interface{} "Invalid session ID"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /exam-sessions/{id}/assignments [get]
func (h *ExamSessionHandler) GetSessionAssignments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	assignments, err := h.assignmentService.GetBySession(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// AutoAssignRequest optionally overrides the session's required count
type AutoAssignRequest struct {
	RequiredCount int `json:"required_count,omitempty"`
}

// AutoAssign handles POST /exam-sessions/:id/auto-assign
// @Summary Auto-assign supervisors to a session
// @Description Fill the session's supervisor slots with the least-loaded available candidates. Nothing is written when there are fewer candidates than required.
// @Tags exam-sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param request body AutoAssignRequest false "Optional required count override"
// @Success 200 {object} service.AutoAssignResult "Session fully assigned"
// @Failure 400 {object} map[string]interface{} "Invalid session ID or time range"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Failure 409 {object} map[string]interface{} "Not enough available candidates"
// @Failure 500 {object} map[string]interface{} "Assignment write failure"
// @Router /exam-sessions/{id}/auto-assign [post]
func (h *ExamSessionHandler) AutoAssign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	var req AutoAssignRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := h.autoAssignService.AutoAssign(id, req.RequiredCount)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsInsufficientCandidates(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "result": result})
			return
		}
		if errors.Is(err, apperrors.ErrSupervisorAlreadyAssigned) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "result": result})
			return
		}
		if apperrors.IsPersistence(err) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "result": result})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSuggestions handles GET /exam-sessions/:id/suggestions
// @Summary Suggest supervisors for a session
// @Description Get a ranked, scored list of available supervisors for the session window
// @Tags exam-sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.SuggestionResult "Successfully retrieved suggestions"
// @Failure 400 {object} map[string]interface{} "Invalid session ID"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /exam-sessions/{id}/suggestions [get]
func (h *ExamSessionHandler) GetSuggestions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	result, err := h.suggestionService.Suggest(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
