package repository

import (
	"roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByOrganizationID retrieves employees for an organization ordered by name.
// When role is non-empty only employees with that role are returned; the roster
// board uses this to list workers without admins.
func (r *EmployeeRepository) GetByOrganizationID(organizationID uuid.UUID, role models.SystemRole) ([]models.Employee, error) {
	var employees []models.Employee
	query := r.db.Where("organization_id = ?", organizationID)
	if role != "" {
		query = query.Where("system_role = ?", role)
	}
	err := query.Order("name ASC").Find(&employees).Error
	return employees, err
}

// Update updates an employee
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

// Delete deletes an employee
func (r *EmployeeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Employee{}, "id = ?", id).Error
}
