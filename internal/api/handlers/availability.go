package handlers

import (
	"errors"
	"net/http"

	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AvailabilityHandler handles HTTP requests for worker availability
type AvailabilityHandler struct {
	service service.AvailabilityServiceInterface
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(service service.AvailabilityServiceInterface) *AvailabilityHandler {
	return &AvailabilityHandler{service: service}
}

// SetAvailability handles PUT /api/v1/employees/:id/availability
// @Summary Set availability for one slot
// @Description Mark one (day, shift time) tuple available or unavailable for an employee
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Param availability body service.SetAvailabilityRequest true "Availability data"
// @Success 204 "Availability saved"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 409 {object} map[string]interface{} "Availability editing is locked"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employees/{id}/availability [put]
func (h *AvailabilityHandler) SetAvailability(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID: invalid UUID format"})
		return
	}

	var req service.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Set(id, &req); err != nil {
		respondAvailabilityError(c, err, "Failed to save availability")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAvailability handles GET /api/v1/employees/:id/availability
// @Summary Get an employee's weekly availability grid
// @Description Get the full weekly availability grid; slots without an explicit entry are available
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} service.AvailabilityGridResponse "Successfully retrieved availability"
// @Failure 400 {object} map[string]interface{} "Invalid employee ID"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employees/{id}/availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID: invalid UUID format"})
		return
	}

	grid, err := h.service.GetWeek(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get availability", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, grid)
}

// ResetAvailability handles DELETE /api/v1/employees/:id/availability
// @Summary Reset an employee's availability
// @Description Delete all stored availability entries, reverting the week to available-by-default
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 204 "Availability reset"
// @Failure 400 {object} map[string]interface{} "Invalid employee ID"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 409 {object} map[string]interface{} "Availability editing is locked"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employees/{id}/availability [delete]
func (h *AvailabilityHandler) ResetAvailability(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID: invalid UUID format"})
		return
	}

	if err := h.service.Reset(id); err != nil {
		respondAvailabilityError(c, err, "Failed to reset availability")
		return
	}

	c.Status(http.StatusNoContent)
}

func respondAvailabilityError(c *gin.Context, err error, fallback string) {
	var lockedErr *apperrors.LockedWindowError
	switch {
	case errors.As(err, &lockedErr):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidDayOfWeek) || errors.Is(err, apperrors.ErrInvalidShiftTime):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
