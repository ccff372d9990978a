package repository

import (
	"errors"

	"roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository handles database operations for shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create inserts a new shift. The unique index on (organization_id,
// employee_id, day_of_week, shift_time) rejects a double booking that slipped
// past the pre-flight check; callers detect that with IsUniqueViolation.
func (r *ShiftRepository) Create(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

// GetByID retrieves a shift by ID
func (r *ShiftRepository) GetByID(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// FindBooking returns the shift holding (organization, employee, day, shift
// time), or nil when the slot is free anywhere in the organization. The busy
// business is preloaded for conflict messages.
func (r *ShiftRepository) FindBooking(organizationID, employeeID uuid.UUID, day models.DayOfWeek, shiftTime models.ShiftTime) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.Preload("Business").
		Where("organization_id = ? AND employee_id = ? AND day_of_week = ? AND shift_time = ?",
			organizationID, employeeID, day, shiftTime).
		First(&shift).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shift, nil
}

// FindSlot returns the shift occupying one (business, day, shift time) slot, or
// nil when the slot is empty
func (r *ShiftRepository) FindSlot(businessID uuid.UUID, day models.DayOfWeek, shiftTime models.ShiftTime) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.Where("business_id = ? AND day_of_week = ? AND shift_time = ?", businessID, day, shiftTime).
		First(&shift).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shift, nil
}

// GetByBusinessID returns all live shifts at a business with employees preloaded
func (r *ShiftRepository) GetByBusinessID(businessID uuid.UUID) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.Preload("Employee").Where("business_id = ?", businessID).Find(&shifts).Error
	return shifts, err
}

// GetByEmployeeID returns all live shifts for an employee with businesses preloaded
func (r *ShiftRepository) GetByEmployeeID(employeeID uuid.UUID) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.Preload("Business").Where("employee_id = ?", employeeID).Find(&shifts).Error
	return shifts, err
}

// GetAll returns every live shift, with employees preloaded, for archiving
func (r *ShiftRepository) GetAll() ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.Preload("Employee").Find(&shifts).Error
	return shifts, err
}

// UpdateAll saves one or more shifts in a single transaction. A time edit that
// cascades into the linked afternoon shift persists both rows or neither.
func (r *ShiftRepository) UpdateAll(shifts ...*models.Shift) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, shift := range shifts {
			if err := tx.Save(shift).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the shift matching the full slot identity. Deleting an absent
// shift is not an error; RowsAffected tells the caller whether anything existed.
func (r *ShiftRepository) Delete(employeeID, businessID uuid.UUID, day models.DayOfWeek, shiftTime models.ShiftTime) (int64, error) {
	result := r.db.Where("employee_id = ? AND business_id = ? AND day_of_week = ? AND shift_time = ?",
		employeeID, businessID, day, shiftTime).
		Delete(&models.Shift{})
	return result.RowsAffected, result.Error
}

// DeleteByBusinessID clears all live shifts at one business (manual roster reset)
func (r *ShiftRepository) DeleteByBusinessID(businessID uuid.UUID) (int64, error) {
	result := r.db.Where("business_id = ?", businessID).Delete(&models.Shift{})
	return result.RowsAffected, result.Error
}

// DeleteByOrganizationID clears all live shifts across an organization
func (r *ShiftRepository) DeleteByOrganizationID(organizationID uuid.UUID) (int64, error) {
	result := r.db.Where("organization_id = ?", organizationID).Delete(&models.Shift{})
	return result.RowsAffected, result.Error
}
