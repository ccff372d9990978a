package service

import (
	"errors"
	"fmt"

	"roster-backend/internal/database/models"
	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/repository"
	"roster-backend/internal/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityService handles worker-declared availability. Writes are gated by
// the lock window: nothing may change from Saturday night through the Sunday
// scheduling day. Availability never cascades into shifts; reconciling an
// already-assigned worker who later marks unavailable is the admin's call.
type AvailabilityService struct {
	repo         *repository.AvailabilityRepository
	employeeRepo *repository.EmployeeRepository
	policy       *schedule.Policy
	clock        schedule.Clock
	validator    *validator.Validate
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(
	repo *repository.AvailabilityRepository,
	employeeRepo *repository.EmployeeRepository,
	policy *schedule.Policy,
	clock schedule.Clock,
	validator *validator.Validate,
) *AvailabilityService {
	return &AvailabilityService{
		repo:         repo,
		employeeRepo: employeeRepo,
		policy:       policy,
		clock:        clock,
		validator:    validator,
	}
}

// SetAvailabilityRequest represents the request to set one availability tuple
type SetAvailabilityRequest struct {
	DayOfWeek   models.DayOfWeek `json:"day_of_week" validate:"required"`
	ShiftTime   models.ShiftTime `json:"shift_time" validate:"required"`
	IsAvailable *bool            `json:"is_available" validate:"required"`
}

// AvailabilityGridResponse is an employee's full weekly availability grid.
// Tuples without a stored row report the default of available.
type AvailabilityGridResponse struct {
	EmployeeID uuid.UUID                                      `json:"employee_id"`
	Grid       map[models.DayOfWeek]map[models.ShiftTime]bool `json:"grid"`
}

// checkWindow rejects writes during the lock window. The predicates are
// evaluated at call time, never cached.
func (s *AvailabilityService) checkWindow() error {
	now := s.clock.Now()
	if s.policy.IsAvailabilityLocked(now) {
		return &apperrors.LockedWindowError{Reason: "Saturday night lock"}
	}
	if schedule.IsSchedulingDay(now) {
		return &apperrors.LockedWindowError{Reason: "Sunday is the scheduling day"}
	}
	return nil
}

// Set upserts one availability tuple for an employee
func (s *AvailabilityService) Set(employeeID uuid.UUID, req *SetAvailabilityRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if !req.DayOfWeek.IsValid() {
		return apperrors.ErrInvalidDayOfWeek
	}
	if !req.ShiftTime.IsValid() {
		return apperrors.ErrInvalidShiftTime
	}

	if err := s.checkWindow(); err != nil {
		return err
	}

	if _, err := s.employeeRepo.GetByID(employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to verify employee: %w", err)
	}

	slot := &models.AvailabilitySlot{
		EmployeeID:  employeeID,
		DayOfWeek:   req.DayOfWeek,
		ShiftTime:   req.ShiftTime,
		IsAvailable: *req.IsAvailable,
	}
	if err := s.repo.Upsert(slot); err != nil {
		return fmt.Errorf("failed to save availability: %w", err)
	}

	return nil
}

// Reset deletes all of an employee's availability rows, reverting the whole
// week to available-by-default
func (s *AvailabilityService) Reset(employeeID uuid.UUID) error {
	if err := s.checkWindow(); err != nil {
		return err
	}

	if _, err := s.employeeRepo.GetByID(employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to verify employee: %w", err)
	}

	if err := s.repo.DeleteByEmployeeID(employeeID); err != nil {
		return fmt.Errorf("failed to reset availability: %w", err)
	}

	return nil
}

// Get returns the availability for one tuple, true when no row exists
func (s *AvailabilityService) Get(employeeID uuid.UUID, day models.DayOfWeek, shift models.ShiftTime) (bool, error) {
	if !day.IsValid() {
		return false, apperrors.ErrInvalidDayOfWeek
	}
	if !shift.IsValid() {
		return false, apperrors.ErrInvalidShiftTime
	}

	available, err := s.repo.Get(employeeID, day, shift)
	if err != nil {
		return false, fmt.Errorf("failed to get availability: %w", err)
	}
	return available, nil
}

// GetWeek returns an employee's full availability grid
func (s *AvailabilityService) GetWeek(employeeID uuid.UUID) (*AvailabilityGridResponse, error) {
	if _, err := s.employeeRepo.GetByID(employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}

	slots, err := s.repo.GetByEmployeeID(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}

	grid := make(map[models.DayOfWeek]map[models.ShiftTime]bool, len(models.WeekDays))
	for _, day := range models.WeekDays {
		grid[day] = map[models.ShiftTime]bool{
			models.ShiftMorning:   true,
			models.ShiftAfternoon: true,
		}
	}
	for _, slot := range slots {
		grid[slot.DayOfWeek][slot.ShiftTime] = slot.IsAvailable
	}

	return &AvailabilityGridResponse{EmployeeID: employeeID, Grid: grid}, nil
}
