package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WeeklyReport is the immutable archive of one employee's hours at one business
// for one week. EmployeeName and the shifts snapshot are frozen at archive time
// so reports stay stable even if the live employee record changes later. Only
// the archive job writes these rows; the unique index on
// (employee_id, business_id, week_start) makes re-archiving a no-op.
type WeeklyReport struct {
	BaseModel
	EmployeeID   uuid.UUID       `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_weekly_reports_key" validate:"required"`
	EmployeeName string          `json:"employee_name" gorm:"not null;size:200" validate:"required"`
	BusinessID   uuid.UUID       `json:"business_id" gorm:"type:uuid;not null;uniqueIndex:idx_weekly_reports_key;index" validate:"required"`
	WeekStart    time.Time       `json:"week_start" gorm:"type:date;not null;uniqueIndex:idx_weekly_reports_key" validate:"required"`
	WeekEnd      time.Time       `json:"week_end" gorm:"type:date;not null" validate:"required"`
	TotalHours   float64         `json:"total_hours" gorm:"not null;default:0"`
	ShiftCount   int             `json:"shift_count" gorm:"not null;default:0"`
	WorkingDays  json.RawMessage `json:"working_days" gorm:"type:jsonb"`
	Shifts       json.RawMessage `json:"shifts" gorm:"type:jsonb"`
}

// TableName returns the table name for WeeklyReport
func (WeeklyReport) TableName() string {
	return "weekly_reports"
}

// ArchivedShift is one entry of the shifts snapshot stored on a WeeklyReport
type ArchivedShift struct {
	DayOfWeek   DayOfWeek `json:"day_of_week"`
	ShiftTime   ShiftTime `json:"shift_time"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	HoursWorked float64   `json:"hours_worked"`
}
