package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"exam-scheduler-backend/internal/database/models"
	apperrors "exam-scheduler-backend/internal/errors"
	"exam-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SupervisorHandler handles HTTP requests for supervisor operations
type SupervisorHandler struct {
	supervisorService service.SupervisorServiceInterface
	assignmentService service.AssignmentServiceInterface
}

// NewSupervisorHandler creates a new supervisor handler
func NewSupervisorHandler(supervisorService service.SupervisorServiceInterface, assignmentService service.AssignmentServiceInterface) *SupervisorHandler {
	return &SupervisorHandler{
		supervisorService: supervisorService,
		assignmentService: assignmentService,
	}
}

// parsePagination reads limit/offset query parameters with sane bounds
func parsePagination(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	if limit < 1 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}

// isValidationFailure reports whether the service rejected the request body
func isValidationFailure(err error) bool {
	return apperrors.IsValidation(err) ||
		strings.Contains(err.Error(), "validation failed")
}

// CreateSupervisor handles POST /supervisors
// @Summary Create a new supervisor
// @Description Create a new supervisor with optional availability windows
// @Tags supervisors
// @Accept json
// @Produce json
// @Param supervisor body service.CreateSupervisorRequest true "Supervisor data"
// @Success 201 {object} service.SupervisorResponse "Successfully created supervisor"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Supervisor already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /supervisors [post]
func (h *SupervisorHandler) CreateSupervisor(c *gin.Context) {
	var req service.CreateSupervisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supervisor, err := h.supervisorService.CreateSupervisor(&req)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if isValidationFailure(err) ||
			errors.Is(err, apperrors.ErrInvalidStatus) ||
			errors.Is(err, apperrors.ErrInvalidAvailabilityDay) ||
			errors.Is(err, apperrors.ErrInvalidAvailabilityTimes) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, supervisor)
}

// GetSupervisor handles GET /supervisors/:id
// @Summary Get supervisor by ID
// @Description Get a specific supervisor with availability windows by UUID
// @Tags supervisors
// @Accept json
// @Produce json
// @Param id path string true "Supervisor ID (UUID)"
// @Success 200 {object} service.SupervisorResponse "Successfully retrieved supervisor"
// @Failure 400 {object} map[string]interface{} "Invalid supervisor ID"
// @Failure 404 {object} map[string]interface{} "Supervisor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /supervisors/{id} [get]
func (h *SupervisorHandler) GetSupervisor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supervisor ID"})
		return
	}

	supervisor, err := h.supervisorService.GetSupervisorByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, supervisor)
}

// ListSupervisors handles GET /supervisors
// @Summary List all supervisors
// @Description Get all supervisors with pagination support
// @Tags supervisors
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of items" default(50)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.SupervisorListResponse "Successfully retrieved supervisors"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /supervisors [get]
func (h *SupervisorHandler) ListSupervisors(c *gin.Context) {
	limit, offset := parsePagination(c)

	resp, err := h.supervisorService.ListSupervisors(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateSupervisor handles PUT /supervisors/:id
// @Summary Update a supervisor
// @Description Update supervisor details by UUID
// @Tags supervisors
// @Accept json
// @Produce json
// @Param id path string true "Supervisor ID (UUID)"
// @Param supervisor body service.UpdateSupervisorRequest true "Supervisor data"
// @Success 200 {object} service.SupervisorResponse "Successfully updated supervisor"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Supervisor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /supervisors/{id} [put]
func (h *SupervisorHandler) UpdateSupervisor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supervisor ID"})
		return
	}

	var req service.UpdateSupervisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supervisor, err := h.supervisorService.UpdateSupervisor(id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if isValidationFailure(err) || errors.Is(err, apperrors.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, supervisor)
}

// SetStatusRequest carries the target status for a supervisor
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetSupervisorStatus handles PATCH /supervisors/:id/status
// @Summary Set supervisor status
// @Description Change a supervisor's availability status (available, unavailable, on_leave)
// @Tags supervisors
// @Accept json
// @Produce json
// @Param id path string true "Supervisor ID (UUID)"
// @Param status body SetStatusRequest true "Target status"
// @Success 200 {object} service.SupervisorResponse "Successfully updated status"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "Supervisor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /supervisors/{id}/status [patch]
func (h *SupervisorHandler) SetSupervisorStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supervisor ID"})
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supervisor, err := h.supervisorService.SetStatus(id, models.SupervisorStatus(req.Status))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, supervisor)
}

// SetAvailabilityWindowsRequest carries the full replacement window set
type SetAvailabilityWindowsRequest struct {
	Windows []service.AvailabilityWindowInput `json:"availability_windows" binding:"required"`
}

// SetAvailabilityWindows handles PUT /supervisors/:id/availability-windows
// @Summary Replace availability windows
// @Description Replace the supervisor's full set of recurring weekly availability windows
// @Tags supervisors
// @Accept json
// @Produce json
// @Param id path string true "Supervisor ID (UUID)"
// @Param windows body SetAvailabilityWindowsRequest true "Availability windows"
// @Success 200 {object} service.SupervisorResponse "Successfully replaced windows"
// @Failure 400 {object} map[string]interface{} "Invalid window definition"
// @Failure 404 {object} map[string]interface{} "Supervisor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /supervisors/{id}/availability-windows [put]
func (h *SupervisorHandler) SetAvailabilityWindows(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supervisor ID"})
		return
	}

	var req SetAvailabilityWindowsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supervisor, err := h.supervisorService.SetAvailabilityWindows(id, req.Windows)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidAvailabilityDay) ||
			errors.Is(err, apperrors.ErrInvalidAvailabilityTimes) ||
			isValidationFailure(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, supervisor)
}

// GetSupervisorAssignments handles GET /supervisors/:id/assignments
// @Summary List assignments for a supervisor
// @Description Get all assignments that belong to a supervisor
// @Tags supervisors
// @Accept json
// @Produce json
// @Param id path string true "Supervisor ID (UUID)"
// @Success 200 {array} service.AssignmentResponse "Successfully retrieved assignments"
// @Failure 400 {object} map[string]interface{} "Invalid supervisor ID"
// @Failure 404 {object} map[string]interface{} "Supervisor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /supervisors/{id}/assignments [get]
func (h *SupervisorHandler) GetSupervisorAssignments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supervisor ID"})
		return
	}

	assignments, err := h.assignmentService.GetBySupervisor(id)
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

// DeleteSupervisor handles DELETE /supervisors/:id
// @Summary Delete a supervisor
// @Description Delete a supervisor and their availability windows
// @Tags supervisors
// @Accept json
// @Produce json
// @Param id path string true "Supervisor ID (UUID)"
// @Success 204 "Successfully deleted supervisor"
// @Failure 400 {object} map[string]interface{} "Invalid supervisor ID"
// @Failure 404 {object} map[string]interface{} "Supervisor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /supervisors/{id} [delete]
func (h *SupervisorHandler) DeleteSupervisor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supervisor ID"})
		return
	}

	if err := h.supervisorService.DeleteSupervisor(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
