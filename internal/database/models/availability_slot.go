package models

import "github.com/google/uuid"

// AvailabilitySlot records an employee's declared availability for one
// day/shift tuple. Absence of a row means available (default-available policy),
// so rows mostly exist to record unavailability.
type AvailabilitySlot struct {
	BaseModel
	EmployeeID  uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_availability_tuple" validate:"required"`
	DayOfWeek   DayOfWeek `json:"day_of_week" gorm:"type:varchar(3);not null;uniqueIndex:idx_availability_tuple" validate:"required"`
	ShiftTime   ShiftTime `json:"shift_time" gorm:"type:varchar(20);not null;uniqueIndex:idx_availability_tuple" validate:"required"`
	IsAvailable bool      `json:"is_available" gorm:"not null;default:true"`

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AvailabilitySlot
func (AvailabilitySlot) TableName() string {
	return "availability_slots"
}
