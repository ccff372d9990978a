package service

import (
	"errors"
	"fmt"

	"roster-backend/internal/database/models"
	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeService handles business logic for employees
type EmployeeService struct {
	repo      *repository.EmployeeRepository
	orgRepo   *repository.OrganizationRepository
	validator *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo *repository.EmployeeRepository, orgRepo *repository.OrganizationRepository, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{repo: repo, orgRepo: orgRepo, validator: validator}
}

// CreateEmployeeRequest represents the request to create an employee
type CreateEmployeeRequest struct {
	OrganizationID uuid.UUID         `json:"organization_id" validate:"required"`
	Name           string            `json:"name" validate:"required,min=1,max=200"`
	Email          string            `json:"email" validate:"omitempty,email,max=255"`
	SystemRole     models.SystemRole `json:"system_role" validate:"required"`
}

// UpdateEmployeeRequest represents the request to update an employee
type UpdateEmployeeRequest struct {
	Name       *string            `json:"name,omitempty"`
	Email      *string            `json:"email,omitempty"`
	SystemRole *models.SystemRole `json:"system_role,omitempty"`
}

// EmployeeResponse represents the response for employee operations
type EmployeeResponse struct {
	ID             uuid.UUID         `json:"id"`
	OrganizationID uuid.UUID         `json:"organization_id"`
	Name           string            `json:"name"`
	Email          string            `json:"email,omitempty"`
	SystemRole     models.SystemRole `json:"system_role"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
}

// EmployeeListResponse represents a list of employees
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int                `json:"total"`
}

// Create creates a new employee
func (s *EmployeeService) Create(req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.SystemRole.IsValid() {
		return nil, apperrors.NewValidationError("system_role", "must be worker or admin")
	}

	if _, err := s.orgRepo.GetByID(req.OrganizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to verify organization: %w", err)
	}

	employee := &models.Employee{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Email:          req.Email,
		SystemRole:     req.SystemRole,
	}
	if err := s.repo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return s.toResponse(employee), nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return s.toResponse(employee), nil
}

// GetByOrganization retrieves employees for an organization, optionally
// filtered by role (the roster board lists workers only)
func (s *EmployeeService) GetByOrganization(organizationID uuid.UUID, role models.SystemRole) (*EmployeeListResponse, error) {
	if role != "" && !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be worker or admin")
	}

	if _, err := s.orgRepo.GetByID(organizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to verify organization: %w", err)
	}

	employees, err := s.repo.GetByOrganizationID(organizationID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]EmployeeResponse, len(employees))
	for i, employee := range employees {
		responses[i] = *s.toResponse(&employee)
	}

	return &EmployeeListResponse{Employees: responses, Total: len(responses)}, nil
}

// Update updates an employee
func (s *EmployeeService) Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.SystemRole != nil {
		if !req.SystemRole.IsValid() {
			return nil, apperrors.NewValidationError("system_role", "must be worker or admin")
		}
		employee.SystemRole = *req.SystemRole
	}

	if err := s.repo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.toResponse(employee), nil
}

// Delete deletes an employee
func (s *EmployeeService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

func (s *EmployeeService) toResponse(employee *models.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:             employee.ID,
		OrganizationID: employee.OrganizationID,
		Name:           employee.Name,
		Email:          employee.Email,
		SystemRole:     employee.SystemRole,
		CreatedAt:      employee.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      employee.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
