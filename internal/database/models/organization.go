package models

// Organization represents the tenant boundary. Conflict and availability checks
// are always scoped to one organization.
type Organization struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`

	// Relationships
	Businesses []Business `json:"businesses,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Employees  []Employee `json:"employees,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
