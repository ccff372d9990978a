package service

import (
	"time"

	"roster-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the contract for organization operations
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	List(page, pageSize int) (*OrganizationListResponse, error)
}

// BusinessServiceInterface defines the contract for business location operations
type BusinessServiceInterface interface {
	Create(req *CreateBusinessRequest) (*BusinessResponse, error)
	GetByID(id uuid.UUID) (*BusinessResponse, error)
	GetByOrganization(organizationID uuid.UUID) (*BusinessListResponse, error)
	Delete(id uuid.UUID) error
}

// EmployeeServiceInterface defines the contract for employee operations
type EmployeeServiceInterface interface {
	Create(req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetByID(id uuid.UUID) (*EmployeeResponse, error)
	GetByOrganization(organizationID uuid.UUID, role models.SystemRole) (*EmployeeListResponse, error)
	Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	Delete(id uuid.UUID) error
}

// AvailabilityServiceInterface defines the contract for availability operations
type AvailabilityServiceInterface interface {
	Set(employeeID uuid.UUID, req *SetAvailabilityRequest) error
	Reset(employeeID uuid.UUID) error
	GetWeek(employeeID uuid.UUID) (*AvailabilityGridResponse, error)
}

// RosterServiceInterface defines the contract for roster assignment operations
type RosterServiceInterface interface {
	Assign(req *AssignShiftRequest) (*ShiftResponse, error)
	Remove(req *RemoveShiftRequest) (*RemoveShiftResponse, error)
	EditTime(req *EditShiftTimeRequest) (*EditShiftTimeResponse, error)
	Board(businessID uuid.UUID) (*RosterBoardResponse, error)
	WeeklySchedule(employeeID uuid.UUID) (*WeeklyScheduleResponse, error)
	ClearBusiness(businessID uuid.UUID) (*ClearRosterResponse, error)
	ClearOrganization(organizationID uuid.UUID) (*ClearRosterResponse, error)
}

// ArchiveServiceInterface defines the contract for the weekly archive job
type ArchiveServiceInterface interface {
	ArchiveIfDue() (*ArchiveResponse, error)
	ForceArchive() (*ArchiveResponse, error)
}

// ReportServiceInterface defines the contract for weekly report queries
type ReportServiceInterface interface {
	ReportForWeek(businessID uuid.UUID, weekStart time.Time) (*WeekReportResponse, error)
	ListWeeks(businessID uuid.UUID) (*WeekListResponse, error)
}
