package service

import (
	"fmt"

	"roster-backend/internal/database/models"
	"roster-backend/internal/repository"

	"github.com/google/uuid"
)

// ConflictDetector answers whether an employee is already working a given
// day/shift anywhere in the organization. The check is advisory pre-flight;
// the unique index on shifts is the authoritative guard, so a race lost at
// write time must be handled the same way as a detected conflict.
type ConflictDetector struct {
	shiftRepo *repository.ShiftRepository
}

// NewConflictDetector creates a new conflict detector
func NewConflictDetector(shiftRepo *repository.ShiftRepository) *ConflictDetector {
	return &ConflictDetector{shiftRepo: shiftRepo}
}

// Check returns the shift already holding (employee, day, shift time) anywhere
// in the organization, with its business preloaded, or nil when the slot is
// free. A booking at the assignment's own target business is not a conflict,
// it is an idempotent re-assign; the caller decides based on the business.
func (d *ConflictDetector) Check(
	organizationID, employeeID uuid.UUID,
	day models.DayOfWeek,
	shiftTime models.ShiftTime,
) (*models.Shift, error) {
	existing, err := d.shiftRepo.FindBooking(organizationID, employeeID, day, shiftTime)
	if err != nil {
		return nil, fmt.Errorf("failed to check for conflicts: %w", err)
	}
	return existing, nil
}
