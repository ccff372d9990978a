package testutils

import (
	"time"

	"roster-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test Organization " + uuid.New().String()[:8],
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// BusinessFactory provides methods to create test Business data
type BusinessFactory struct{}

// NewBusinessFactory creates a new BusinessFactory
func NewBusinessFactory() *BusinessFactory {
	return &BusinessFactory{}
}

// Create creates a test Business with default values
func (f *BusinessFactory) Create() *models.Business {
	id := uuid.New()
	return &models.Business{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Name:           "Test Business " + id.String()[:8],
	}
}

// WithOrganization sets the organization ID for the business
func (f *BusinessFactory) WithOrganization(orgID uuid.UUID) *models.Business {
	business := f.Create()
	business.OrganizationID = orgID
	return business
}

// WithName sets a custom name for the business
func (f *BusinessFactory) WithName(name string) *models.Business {
	business := f.Create()
	business.Name = name
	return business
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values
func (f *EmployeeFactory) Create() *models.Employee {
	id := uuid.New()
	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Name:           "Jane Worker",
		Email:          "jane." + id.String()[:8] + "@test.com",
		SystemRole:     models.RoleWorker,
	}
}

// WithOrganization sets the organization ID for the employee
func (f *EmployeeFactory) WithOrganization(orgID uuid.UUID) *models.Employee {
	employee := f.Create()
	employee.OrganizationID = orgID
	return employee
}

// WithName sets a custom name for the employee
func (f *EmployeeFactory) WithName(name string) *models.Employee {
	employee := f.Create()
	employee.Name = name
	return employee
}

// WithRole sets a custom system role for the employee
func (f *EmployeeFactory) WithRole(role models.SystemRole) *models.Employee {
	employee := f.Create()
	employee.SystemRole = role
	return employee
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a test morning Shift with canonical times
func (f *ShiftFactory) Create() *models.Shift {
	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		EmployeeID:     uuid.New(),
		BusinessID:     uuid.New(),
		DayOfWeek:      models.DayMonday,
		ShiftTime:      models.ShiftMorning,
		StartTime:      "08:00",
		EndTime:        "14:00",
		HoursWorked:    6,
	}
}

// ForSlot pins the shift to a specific day and shift time
func (f *ShiftFactory) ForSlot(day models.DayOfWeek, shiftTime models.ShiftTime) *models.Shift {
	shift := f.Create()
	shift.DayOfWeek = day
	shift.ShiftTime = shiftTime
	if shiftTime == models.ShiftAfternoon {
		shift.StartTime = "14:00"
		shift.EndTime = "23:00"
		shift.HoursWorked = 9
	}
	return shift
}

// AvailabilitySlotFactory provides methods to create test AvailabilitySlot data
type AvailabilitySlotFactory struct{}

// NewAvailabilitySlotFactory creates a new AvailabilitySlotFactory
func NewAvailabilitySlotFactory() *AvailabilitySlotFactory {
	return &AvailabilitySlotFactory{}
}

// Create creates a test AvailabilitySlot marked unavailable, since absent rows
// already mean available
func (f *AvailabilitySlotFactory) Create() *models.AvailabilitySlot {
	return &models.AvailabilitySlot{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID:  uuid.New(),
		DayOfWeek:   models.DayMonday,
		ShiftTime:   models.ShiftMorning,
		IsAvailable: false,
	}
}

// ForEmployee pins the slot to an employee
func (f *AvailabilitySlotFactory) ForEmployee(employeeID uuid.UUID) *models.AvailabilitySlot {
	slot := f.Create()
	slot.EmployeeID = employeeID
	return slot
}
