package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// PastSlotError rejects mutations of a slot whose canonical time has elapsed
type PastSlotError struct {
	Day       string
	ShiftTime string
}

func (e *PastSlotError) Error() string {
	return fmt.Sprintf("%s %s shift is in the past and can no longer be changed", e.Day, e.ShiftTime)
}

// Is enables errors.Is() comparison for PastSlotError
func (e *PastSlotError) Is(target error) bool {
	_, ok := target.(*PastSlotError)
	return ok
}

// UnavailableError rejects an assignment the employee has declared unavailability for
type UnavailableError struct {
	EmployeeName string
	Day          string
	ShiftTime    string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s is unavailable for the %s %s shift", e.EmployeeName, e.Day, e.ShiftTime)
}

// Is enables errors.Is() comparison for UnavailableError
func (e *UnavailableError) Is(target error) bool {
	_, ok := target.(*UnavailableError)
	return ok
}

// DoubleBookedError rejects an assignment because the employee already holds the
// same day/shift somewhere in the organization. BusinessName is the busy location
// when it is known (pre-flight detection); it is empty when the conflict was only
// caught by the storage uniqueness constraint.
type DoubleBookedError struct {
	EmployeeName string
	BusinessName string
	Day          string
	ShiftTime    string
}

func (e *DoubleBookedError) Error() string {
	if e.BusinessName != "" {
		return fmt.Sprintf("%s is already working at %q on %s %s", e.EmployeeName, e.BusinessName, e.Day, e.ShiftTime)
	}
	return fmt.Sprintf("%s is already booked on %s %s", e.EmployeeName, e.Day, e.ShiftTime)
}

// Is enables errors.Is() comparison for DoubleBookedError
func (e *DoubleBookedError) Is(target error) bool {
	_, ok := target.(*DoubleBookedError)
	return ok
}

// LockedWindowError rejects availability edits during the Saturday-night lock and
// the Sunday scheduling day
type LockedWindowError struct {
	Reason string
}

func (e *LockedWindowError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("availability editing is locked (%s); editing resumes Monday", e.Reason)
	}
	return "availability editing is locked; editing resumes Monday"
}

// Is enables errors.Is() comparison for LockedWindowError
func (e *LockedWindowError) Is(target error) bool {
	_, ok := target.(*LockedWindowError)
	return ok
}

// InvalidRangeError rejects a shift time edit whose end is not after its start
type InvalidRangeError struct {
	StartTime string
	EndTime   string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("end time %s must be after start time %s", e.EndTime, e.StartTime)
}

// Is enables errors.Is() comparison for InvalidRangeError
func (e *InvalidRangeError) Is(target error) bool {
	_, ok := target.(*InvalidRangeError)
	return ok
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrBusinessNotFound     = &NotFoundError{Entity: "business"}
	ErrEmployeeNotFound     = &NotFoundError{Entity: "employee"}
	ErrShiftNotFound        = &NotFoundError{Entity: "shift"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this name"}
	ErrBusinessExists     = &AlreadyExistsError{Entity: "business", Context: "with this name in the organization"}
)

// Business Logic Errors
var (
	ErrInvalidDayOfWeek   = errors.New("invalid day of week")
	ErrInvalidShiftTime   = errors.New("invalid shift time")
	ErrOrganizationScope  = errors.New("employee and business belong to different organizations")
	ErrInvalidClockTime   = errors.New("invalid clock time, expected HH:MM")
	ErrInvalidWeekStart   = errors.New("week start must be a Monday")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsSchedulingConflict reports whether an error is one of the expected,
// recoverable scheduling rejections (past slot, unavailable, double-booked,
// locked window)
func IsSchedulingConflict(err error) bool {
	var pastErr *PastSlotError
	var unavailableErr *UnavailableError
	var bookedErr *DoubleBookedError
	var lockedErr *LockedWindowError
	return errors.As(err, &pastErr) ||
		errors.As(err, &unavailableErr) ||
		errors.As(err, &bookedErr) ||
		errors.As(err, &lockedErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
