package models

import "time"

// ArchiveRun records that the weekly archive job ran on a given calendar day.
// The unique run_date is the job's once-per-day idempotence key; it is persisted
// so overlapping processes share it.
type ArchiveRun struct {
	BaseModel
	RunDate       string    `json:"run_date" gorm:"type:varchar(10);not null;uniqueIndex" validate:"required"`
	WeekStart     time.Time `json:"week_start" gorm:"type:date;not null"`
	ArchivedCount int       `json:"archived_count" gorm:"not null;default:0"`
}

// TableName returns the table name for ArchiveRun
func (ArchiveRun) TableName() string {
	return "archive_runs"
}
