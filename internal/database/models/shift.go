package models

import "github.com/google/uuid"

// Shift assigns one employee to one slot at one business. The unique index on
// (organization_id, employee_id, day_of_week, shift_time) is the authoritative
// double-booking guard; the conflict detector's pre-flight check is advisory.
// Start and end times are wall-clock "HH:MM" strings; shifts never span midnight.
type Shift struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_shifts_booking" validate:"required"`
	EmployeeID     uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_shifts_booking;index" validate:"required"`
	BusinessID     uuid.UUID `json:"business_id" gorm:"type:uuid;not null;index" validate:"required"`
	DayOfWeek      DayOfWeek `json:"day_of_week" gorm:"type:varchar(3);not null;uniqueIndex:idx_shifts_booking" validate:"required"`
	ShiftTime      ShiftTime `json:"shift_time" gorm:"type:varchar(20);not null;uniqueIndex:idx_shifts_booking" validate:"required"`
	StartTime      string    `json:"start_time" gorm:"type:varchar(5);not null" validate:"required"`
	EndTime        string    `json:"end_time" gorm:"type:varchar(5);not null" validate:"required"`
	HoursWorked    float64   `json:"hours_worked" gorm:"not null;default:0"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Employee     Employee     `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Business     Business     `json:"business,omitempty" gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}
