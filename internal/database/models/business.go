package models

import "github.com/google/uuid"

// Business represents one location belonging to an organization. Created by an
// admin, never auto-deleted.
type Business struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_businesses_org_name" validate:"required"`
	Name           string    `json:"name" gorm:"not null;size:100;uniqueIndex:idx_businesses_org_name" validate:"required,min=1,max=100"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Shifts       []Shift      `json:"shifts,omitempty" gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Business
func (Business) TableName() string {
	return "businesses"
}
