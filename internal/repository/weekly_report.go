package repository

import (
	"time"

	"roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeeklyReportRepository handles database operations for archived weekly reports
type WeeklyReportRepository struct {
	db *gorm.DB
}

// NewWeeklyReportRepository creates a new weekly report repository
func NewWeeklyReportRepository(db *gorm.DB) *WeeklyReportRepository {
	return &WeeklyReportRepository{db: db}
}

// Create inserts one immutable report row. A unique violation on
// (employee_id, business_id, week_start) means the week was already archived;
// the archive job treats that as a silent no-op via IsUniqueViolation.
func (r *WeeklyReportRepository) Create(report *models.WeeklyReport) error {
	return r.db.Create(report).Error
}

// GetByBusinessAndWeek returns the archived rows for one business and week,
// ordered by the frozen employee name
func (r *WeeklyReportRepository) GetByBusinessAndWeek(businessID uuid.UUID, weekStart time.Time) ([]models.WeeklyReport, error) {
	var reports []models.WeeklyReport
	err := r.db.Where("business_id = ? AND week_start = ?", businessID, weekStart).
		Order("employee_name ASC").
		Find(&reports).Error
	return reports, err
}

// WeekSummary aggregates one archived week for the weeks listing
type WeekSummary struct {
	WeekStart     time.Time `json:"week_start"`
	WeekEnd       time.Time `json:"week_end"`
	EmployeeCount int64     `json:"employee_count"`
	TotalShifts   int64     `json:"total_shifts"`
}

// ListWeeks returns per-week summaries for a business, newest first
func (r *WeeklyReportRepository) ListWeeks(businessID uuid.UUID) ([]WeekSummary, error) {
	var summaries []WeekSummary
	err := r.db.Model(&models.WeeklyReport{}).
		Select("week_start, week_end, COUNT(*) AS employee_count, COALESCE(SUM(shift_count), 0) AS total_shifts").
		Where("business_id = ?", businessID).
		Group("week_start, week_end").
		Order("week_start DESC").
		Scan(&summaries).Error
	return summaries, err
}
