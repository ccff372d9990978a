package handlers

import (
	"errors"
	"net/http"

	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BusinessHandler handles HTTP requests for business locations
type BusinessHandler struct {
	service service.BusinessServiceInterface
}

// NewBusinessHandler creates a new business handler
func NewBusinessHandler(service service.BusinessServiceInterface) *BusinessHandler {
	return &BusinessHandler{service: service}
}

// CreateBusiness handles POST /api/v1/businesses
// @Summary Create a new business location
// @Description Create a new business location within an organization
// @Tags businesses
// @Accept json
// @Produce json
// @Param business body service.CreateBusinessRequest true "Business data"
// @Success 201 {object} service.BusinessResponse "Successfully created business"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 409 {object} map[string]interface{} "Business name already taken in the organization"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /businesses [post]
func (h *BusinessHandler) CreateBusiness(c *gin.Context) {
	var req service.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	business, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrBusinessExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create business", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, business)
}

// GetBusiness handles GET /api/v1/businesses/:id
// @Summary Get business by ID
// @Description Get a specific business location by its UUID
// @Tags businesses
// @Accept json
// @Produce json
// @Param id path string true "Business ID (UUID)"
// @Success 200 {object} service.BusinessResponse "Successfully retrieved business"
// @Failure 400 {object} map[string]interface{} "Invalid business ID"
// @Failure 404 {object} map[string]interface{} "Business not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /businesses/{id} [get]
func (h *BusinessHandler) GetBusiness(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID: invalid UUID format"})
		return
	}

	business, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get business", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, business)
}

// GetBusinessesByOrganization handles GET /api/v1/organizations/:id/businesses
// @Summary List businesses of an organization
// @Description Get all business locations belonging to an organization
// @Tags businesses
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.BusinessListResponse "Successfully retrieved businesses"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /organizations/{id}/businesses [get]
func (h *BusinessHandler) GetBusinessesByOrganization(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	businesses, err := h.service.GetByOrganization(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list businesses", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, businesses)
}

// DeleteBusiness handles DELETE /api/v1/businesses/:id
// @Summary Delete business
// @Description Delete a business location by ID
// @Tags businesses
// @Accept json
// @Produce json
// @Param id path string true "Business ID (UUID)"
// @Success 204 "Successfully deleted business"
// @Failure 400 {object} map[string]interface{} "Invalid business ID"
// @Failure 404 {object} map[string]interface{} "Business not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /businesses/{id} [delete]
func (h *BusinessHandler) DeleteBusiness(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete business", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
