package repository

import (
	"errors"

	"roster-backend/internal/database/models"

	"gorm.io/gorm"
)

// ArchiveRunRepository persists the archive job's once-per-day idempotence key
type ArchiveRunRepository struct {
	db *gorm.DB
}

// NewArchiveRunRepository creates a new archive run repository
func NewArchiveRunRepository(db *gorm.DB) *ArchiveRunRepository {
	return &ArchiveRunRepository{db: db}
}

// Create records a run for its date. A unique violation means another process
// recorded the same day first; callers treat that as already-run.
func (r *ArchiveRunRepository) Create(run *models.ArchiveRun) error {
	return r.db.Create(run).Error
}

// HasRunOn reports whether the job already ran on the given date ("2006-01-02")
func (r *ArchiveRunRepository) HasRunOn(runDate string) (bool, error) {
	var run models.ArchiveRun
	err := r.db.Where("run_date = ?", runDate).First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
