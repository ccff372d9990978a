package handlers

import (
	"errors"
	"net/http"
	"time"

	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/schedule"
	"roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler handles HTTP requests for weekly reports and archiving
type ReportHandler struct {
	reports service.ReportServiceInterface
	archive service.ArchiveServiceInterface
	clock   schedule.Clock
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports service.ReportServiceInterface, archive service.ArchiveServiceInterface, clock schedule.Clock) *ReportHandler {
	return &ReportHandler{reports: reports, archive: archive, clock: clock}
}

// GetWeeklyReport handles GET /api/v1/businesses/:id/reports
// @Summary Get a business's report for one week
// @Description Get per-employee hours for a week; the current week is computed live, past weeks come from the archive
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Business ID (UUID)"
// @Param week_start query string false "Week start date (YYYY-MM-DD, must be a Monday); defaults to the current week"
// @Success 200 {object} service.WeekReportResponse "Successfully retrieved report"
// @Failure 400 {object} map[string]interface{} "Invalid business ID or week start"
// @Failure 404 {object} map[string]interface{} "Business not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /businesses/{id}/reports [get]
func (h *ReportHandler) GetWeeklyReport(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID: invalid UUID format"})
		return
	}

	var weekStart time.Time
	if raw := c.Query("week_start"); raw != "" {
		weekStart, err = time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week_start, expected YYYY-MM-DD"})
			return
		}
	} else {
		weekStart = schedule.WeekStartFor(h.clock.Now())
	}

	report, err := h.reports.ReportForWeek(id, weekStart)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidWeekStart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get report", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// ListWeeks handles GET /api/v1/businesses/:id/weeks
// @Summary List reportable weeks for a business
// @Description Get the current week plus every archived week, newest first
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Business ID (UUID)"
// @Success 200 {object} service.WeekListResponse "Successfully retrieved weeks"
// @Failure 400 {object} map[string]interface{} "Invalid business ID"
// @Failure 404 {object} map[string]interface{} "Business not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /businesses/{id}/weeks [get]
func (h *ReportHandler) ListWeeks(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID: invalid UUID format"})
		return
	}

	weeks, err := h.reports.ListWeeks(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list weeks", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, weeks)
}

// TriggerArchive handles POST /api/v1/reports/archive
// @Summary Run the weekly archive
// @Description Archive live shifts into frozen weekly reports; force=true archives the current week immediately
// @Tags reports
// @Accept json
// @Produce json
// @Param force query bool false "Archive the current week regardless of day" default(false)
// @Success 200 {object} service.ArchiveResponse "Archive outcome"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reports/archive [post]
func (h *ReportHandler) TriggerArchive(c *gin.Context) {
	var (
		result *service.ArchiveResponse
		err    error
	)
	if c.Query("force") == "true" {
		result, err = h.archive.ForceArchive()
	} else {
		result, err = h.archive.ArchiveIfDue()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
