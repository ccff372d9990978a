package handlers

import (
	"errors"
	"net/http"

	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RosterHandler handles HTTP requests for shift assignment
type RosterHandler struct {
	service service.RosterServiceInterface
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(service service.RosterServiceInterface) *RosterHandler {
	return &RosterHandler{service: service}
}

// AssignShift handles POST /api/v1/shifts
// @Summary Assign an employee to a slot
// @Description Fill one (business, day, shift time) slot with an employee after availability and conflict checks
// @Tags roster
// @Accept json
// @Produce json
// @Param shift body service.AssignShiftRequest true "Assignment data"
// @Success 201 {object} service.ShiftResponse "Successfully assigned shift"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Employee or business not found"
// @Failure 409 {object} map[string]interface{} "Past slot, employee unavailable or double-booked"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /shifts [post]
func (h *RosterHandler) AssignShift(c *gin.Context) {
	var req service.AssignShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	shift, err := h.service.Assign(&req)
	if err != nil {
		respondRosterError(c, err, "Failed to assign shift")
		return
	}

	c.JSON(http.StatusCreated, shift)
}

// RemoveShift handles DELETE /api/v1/shifts
// @Summary Remove an employee from a slot
// @Description Empty one (business, day, shift time) slot; removing an empty slot is a no-op
// @Tags roster
// @Accept json
// @Produce json
// @Param shift body service.RemoveShiftRequest true "Removal data"
// @Success 200 {object} service.RemoveShiftResponse "Slot emptied or already empty"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "Slot is in the past"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /shifts [delete]
func (h *RosterHandler) RemoveShift(c *gin.Context) {
	var req service.RemoveShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.Remove(&req)
	if err != nil {
		respondRosterError(c, err, "Failed to remove shift")
		return
	}

	c.JSON(http.StatusOK, result)
}

// EditShiftTime handles PUT /api/v1/shifts/times
// @Summary Edit a shift's start and end times
// @Description Update the times of a filled slot; editing a morning shift moves the linked afternoon start
// @Tags roster
// @Accept json
// @Produce json
// @Param shift body service.EditShiftTimeRequest true "Time edit data"
// @Success 200 {object} service.EditShiftTimeResponse "Successfully updated times"
// @Failure 400 {object} map[string]interface{} "Invalid request or time range"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Failure 409 {object} map[string]interface{} "Slot is in the past"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /shifts/times [put]
func (h *RosterHandler) EditShiftTime(c *gin.Context) {
	var req service.EditShiftTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.EditTime(&req)
	if err != nil {
		respondRosterError(c, err, "Failed to update shift times")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBoard handles GET /api/v1/businesses/:id/board
// @Summary Get a business's roster board
// @Description Get every slot of the business's week with its assignment, if any
// @Tags roster
// @Accept json
// @Produce json
// @Param id path string true "Business ID (UUID)"
// @Success 200 {object} service.RosterBoardResponse "Successfully retrieved board"
// @Failure 400 {object} map[string]interface{} "Invalid business ID"
// @Failure 404 {object} map[string]interface{} "Business not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /businesses/{id}/board [get]
func (h *RosterHandler) GetBoard(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID: invalid UUID format"})
		return
	}

	board, err := h.service.Board(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get roster board", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, board)
}

// GetWeeklySchedule handles GET /api/v1/employees/:id/schedule
// @Summary Get an employee's weekly schedule
// @Description Get the employee's live shifts sorted Monday to Sunday with derived totals
// @Tags roster
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} service.WeeklyScheduleResponse "Successfully retrieved schedule"
// @Failure 400 {object} map[string]interface{} "Invalid employee ID"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employees/{id}/schedule [get]
func (h *RosterHandler) GetWeeklySchedule(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID: invalid UUID format"})
		return
	}

	schedule, err := h.service.WeeklySchedule(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get schedule", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// ClearBusinessRoster handles DELETE /api/v1/businesses/:id/shifts
// @Summary Clear a business's live roster
// @Description Delete every live shift at the business; archived reports are not affected
// @Tags roster
// @Accept json
// @Produce json
// @Param id path string true "Business ID (UUID)"
// @Success 200 {object} service.ClearRosterResponse "Roster cleared"
// @Failure 400 {object} map[string]interface{} "Invalid business ID"
// @Failure 404 {object} map[string]interface{} "Business not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /businesses/{id}/shifts [delete]
func (h *RosterHandler) ClearBusinessRoster(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID: invalid UUID format"})
		return
	}

	result, err := h.service.ClearBusiness(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear roster", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ClearOrganizationRosters handles DELETE /api/v1/organizations/:id/shifts
// @Summary Clear every live roster in an organization
// @Description Delete every live shift across the organization's businesses; archived reports are not affected
// @Tags roster
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.ClearRosterResponse "Rosters cleared"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /organizations/{id}/shifts [delete]
func (h *RosterHandler) ClearOrganizationRosters(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	result, err := h.service.ClearOrganization(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear rosters", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func respondRosterError(c *gin.Context, err error, fallback string) {
	var rangeErr *apperrors.InvalidRangeError
	switch {
	case apperrors.IsSchedulingConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &rangeErr),
		errors.Is(err, apperrors.ErrInvalidDayOfWeek),
		errors.Is(err, apperrors.ErrInvalidShiftTime),
		errors.Is(err, apperrors.ErrInvalidClockTime),
		errors.Is(err, apperrors.ErrOrganizationScope):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
