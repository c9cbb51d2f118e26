package handlers

import (
	"errors"
	"net/http"

	apperrors "exam-scheduler-backend/internal/errors"
	"exam-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentHandler handles HTTP requests for assignment lifecycle operations
type AssignmentHandler struct {
	assignmentService service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// GetAssignment handles GET /assignments/:id
// @Summary Get assignment by ID
// @Description Get a specific assignment by its UUID
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} service.AssignmentResponse "Successfully retrieved assignment"
// @Failure 400 {object} map[string]interface{} "Invalid assignment ID"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /assignments/{id} [get]
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return
	}

	assignment, err := h.assignmentService.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// ConfirmAssignment handles POST /assignments/:id/confirm
// @Summary Confirm an assignment
// @Description Mark an assigned supervisor as confirmed for the session
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} service.AssignmentResponse "Successfully confirmed assignment"
// @Failure 400 {object} map[string]interface{} "Invalid assignment ID"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 409 {object} map[string]interface{} "Assignment is not in a confirmable state"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /assignments/{id}/confirm [post]
func (h *AssignmentHandler) ConfirmAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return
	}

	assignment, err := h.assignmentService.Confirm(id)
	if err != nil {
		h.respondLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// DeclineAssignment handles POST /assignments/:id/decline
// @Summary Decline an assignment
// @Description Mark an assignment as declined and release the supervisor's load
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} service.AssignmentResponse "Successfully declined assignment"
// @Failure 400 {object} map[string]interface{} "Invalid assignment ID"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 409 {object} map[string]interface{} "Assignment is not active"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /assignments/{id}/decline [post]
func (h *AssignmentHandler) DeclineAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return
	}

	assignment, err := h.assignmentService.Decline(id)
	if err != nil {
		h.respondLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// ReplaceAssignment handles POST /assignments/:id/replace
// @Summary Replace an assignment
// @Description Mark an assignment as replaced and release the supervisor's load
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} service.AssignmentResponse "Successfully replaced assignment"
// @Failure 400 {object} map[string]interface{} "Invalid assignment ID"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 409 {object} map[string]interface{} "Assignment is not active"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /assignments/{id}/replace [post]
func (h *AssignmentHandler) ReplaceAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return
	}

	assignment, err := h.assignmentService.Replace(id)
	if err != nil {
		h.respondLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// DeleteAssignment handles DELETE /assignments/:id
// @Summary Remove an assignment
// @Description Delete an assignment, releasing the supervisor's load when it was active
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 204 "Successfully removed assignment"
// @Failure 400 {object} map[string]interface{} "Invalid assignment ID"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /assignments/{id} [delete]
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return
	}

	if err := h.assignmentService.Unassign(id); err != nil {
		h.respondLifecycleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AssignmentHandler) respondLifecycleError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidStatusTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConcurrencyConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
