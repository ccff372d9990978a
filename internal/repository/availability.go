package repository

import (
	"errors"

	"roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AvailabilityRepository handles database operations for availability slots
type AvailabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository creates a new availability repository
func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// Upsert writes one availability tuple, keyed by (employee_id, day_of_week,
// shift_time). Upserts are idempotent per key; last write wins.
func (r *AvailabilityRepository) Upsert(slot *models.AvailabilitySlot) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "employee_id"},
			{Name: "day_of_week"},
			{Name: "shift_time"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"is_available", "updated_at"}),
	}).Create(slot).Error
}

// Get returns the availability for one tuple, defaulting to available when no
// row exists
func (r *AvailabilityRepository) Get(employeeID uuid.UUID, day models.DayOfWeek, shift models.ShiftTime) (bool, error) {
	var slot models.AvailabilitySlot
	err := r.db.Where("employee_id = ? AND day_of_week = ? AND shift_time = ?", employeeID, day, shift).
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, nil
		}
		return false, err
	}
	return slot.IsAvailable, nil
}

// GetByEmployeeID returns all stored availability rows for an employee
func (r *AvailabilityRepository) GetByEmployeeID(employeeID uuid.UUID) ([]models.AvailabilitySlot, error) {
	var slots []models.AvailabilitySlot
	err := r.db.Where("employee_id = ?", employeeID).Find(&slots).Error
	return slots, err
}

// DeleteByEmployeeID removes all of an employee's availability rows, reverting
// everything to available-by-default
func (r *AvailabilityRepository) DeleteByEmployeeID(employeeID uuid.UUID) error {
	return r.db.Where("employee_id = ?", employeeID).Delete(&models.AvailabilitySlot{}).Error
}
