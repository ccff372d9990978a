package models

import "github.com/google/uuid"

// Employee represents a worker owned by an organization
type Employee struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string     `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Email          string     `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	SystemRole     SystemRole `json:"system_role" gorm:"type:varchar(20);not null;default:'worker'" validate:"required"`

	// Relationships
	Organization Organization       `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Availability []AvailabilitySlot `json:"availability,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Shifts       []Shift            `json:"shifts,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
