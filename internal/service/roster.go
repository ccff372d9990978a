package service

import (
	"errors"
	"fmt"
	"sort"

	"roster-backend/internal/database/models"
	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/repository"
	"roster-backend/internal/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RosterService orchestrates slot assignment, removal and time edits. A slot
// moves Empty -> Filled on assign, Filled -> Empty on remove, and Filled ->
// Filled on a time edit; only the archive-and-reset flow clears a whole week.
// No caller-visible state changes unless the corresponding write succeeded.
type RosterService struct {
	shiftRepo        *repository.ShiftRepository
	employeeRepo     *repository.EmployeeRepository
	businessRepo     *repository.BusinessRepository
	organizationRepo *repository.OrganizationRepository
	availability     *AvailabilityService
	conflicts        *ConflictDetector
	policy           *schedule.Policy
	clock            schedule.Clock
	validator        *validator.Validate
}

// NewRosterService creates a new roster service
func NewRosterService(
	shiftRepo *repository.ShiftRepository,
	employeeRepo *repository.EmployeeRepository,
	businessRepo *repository.BusinessRepository,
	organizationRepo *repository.OrganizationRepository,
	availability *AvailabilityService,
	conflicts *ConflictDetector,
	policy *schedule.Policy,
	clock schedule.Clock,
	validator *validator.Validate,
) *RosterService {
	return &RosterService{
		shiftRepo:        shiftRepo,
		employeeRepo:     employeeRepo,
		businessRepo:     businessRepo,
		organizationRepo: organizationRepo,
		availability:     availability,
		conflicts:        conflicts,
		policy:           policy,
		clock:            clock,
		validator:        validator,
	}
}

// AssignShiftRequest represents the intent to fill one slot. Start and end
// times are optional; the shift's canonical window applies when both are empty.
type AssignShiftRequest struct {
	EmployeeID uuid.UUID        `json:"employee_id" validate:"required"`
	BusinessID uuid.UUID        `json:"business_id" validate:"required"`
	DayOfWeek  models.DayOfWeek `json:"day_of_week" validate:"required"`
	ShiftTime  models.ShiftTime `json:"shift_time" validate:"required"`
	StartTime  string           `json:"start_time,omitempty"`
	EndTime    string           `json:"end_time,omitempty"`
}

// RemoveShiftRequest represents the intent to empty one slot
type RemoveShiftRequest struct {
	EmployeeID uuid.UUID        `json:"employee_id" validate:"required"`
	BusinessID uuid.UUID        `json:"business_id" validate:"required"`
	DayOfWeek  models.DayOfWeek `json:"day_of_week" validate:"required"`
	ShiftTime  models.ShiftTime `json:"shift_time" validate:"required"`
}

// EditShiftTimeRequest represents a time edit for a filled slot. AutoLink nil
// falls back to the policy default; the link only ever runs morning to
// afternoon.
type EditShiftTimeRequest struct {
	BusinessID uuid.UUID        `json:"business_id" validate:"required"`
	DayOfWeek  models.DayOfWeek `json:"day_of_week" validate:"required"`
	ShiftTime  models.ShiftTime `json:"shift_time" validate:"required"`
	StartTime  string           `json:"start_time" validate:"required"`
	EndTime    string           `json:"end_time" validate:"required"`
	AutoLink   *bool            `json:"auto_link_afternoon,omitempty"`
}

// ShiftResponse represents one persisted shift
type ShiftResponse struct {
	ID           uuid.UUID        `json:"id"`
	EmployeeID   uuid.UUID        `json:"employee_id"`
	EmployeeName string           `json:"employee_name,omitempty"`
	BusinessID   uuid.UUID        `json:"business_id"`
	BusinessName string           `json:"business_name,omitempty"`
	DayOfWeek    models.DayOfWeek `json:"day_of_week"`
	ShiftTime    models.ShiftTime `json:"shift_time"`
	StartTime    string           `json:"start_time"`
	EndTime      string           `json:"end_time"`
	HoursWorked  float64          `json:"hours_worked"`
}

// EditShiftTimeResponse carries the edited shift plus the afternoon shift when
// the auto-link cascade touched it
type EditShiftTimeResponse struct {
	Shift           ShiftResponse  `json:"shift"`
	LinkedAfternoon *ShiftResponse `json:"linked_afternoon,omitempty"`
}

// RemoveShiftResponse reports whether a shift actually existed; removing an
// empty slot is a no-op, not an error
type RemoveShiftResponse struct {
	Removed bool `json:"removed"`
}

// RosterBoardResponse maps every slot of a business's week to its assignment
type RosterBoardResponse struct {
	BusinessID uuid.UUID      `json:"business_id"`
	Slots      []SlotResponse `json:"slots"`
}

// SlotResponse is one (day, shift time) cell of the roster board
type SlotResponse struct {
	DayOfWeek models.DayOfWeek `json:"day_of_week"`
	ShiftTime models.ShiftTime `json:"shift_time"`
	Shift     *ShiftResponse   `json:"shift,omitempty"`
}

// WeeklyScheduleResponse is one employee's live week with derived totals
type WeeklyScheduleResponse struct {
	EmployeeID  uuid.UUID       `json:"employee_id"`
	Shifts      []ShiftResponse `json:"shifts"`
	TotalHours  float64         `json:"total_hours"`
	ShiftCount  int             `json:"shift_count"`
	WorkingDays int             `json:"working_days"`
}

// ClearRosterResponse reports how many live shifts a reset removed
type ClearRosterResponse struct {
	Cleared int64 `json:"cleared"`
}

// Assign fills a slot after passing the past-slot, availability and conflict
// gates. The insert is the authority: a unique violation from a race lost to a
// concurrent assign surfaces as the same double-booked rejection, with nothing
// applied.
func (s *RosterService) Assign(req *AssignShiftRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.DayOfWeek.IsValid() {
		return nil, apperrors.ErrInvalidDayOfWeek
	}
	if !req.ShiftTime.IsValid() {
		return nil, apperrors.ErrInvalidShiftTime
	}

	business, err := s.businessRepo.GetByID(req.BusinessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to verify business: %w", err)
	}

	employee, err := s.employeeRepo.GetByID(req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}
	if employee.OrganizationID != business.OrganizationID {
		return nil, apperrors.ErrOrganizationScope
	}

	if s.policy.IsSlotInPast(req.DayOfWeek, req.ShiftTime, s.clock.Now()) {
		return nil, &apperrors.PastSlotError{Day: string(req.DayOfWeek), ShiftTime: string(req.ShiftTime)}
	}

	available, err := s.availability.Get(req.EmployeeID, req.DayOfWeek, req.ShiftTime)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, &apperrors.UnavailableError{
			EmployeeName: employee.Name,
			Day:          string(req.DayOfWeek),
			ShiftTime:    string(req.ShiftTime),
		}
	}

	existing, err := s.conflicts.Check(business.OrganizationID, req.EmployeeID, req.DayOfWeek, req.ShiftTime)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.BusinessID == req.BusinessID {
			// Re-assigning an already-held slot at the same business is
			// idempotent.
			resp := s.toResponse(existing)
			resp.EmployeeName = employee.Name
			resp.BusinessName = business.Name
			return resp, nil
		}
		return nil, &apperrors.DoubleBookedError{
			EmployeeName: employee.Name,
			BusinessName: existing.Business.Name,
			Day:          string(req.DayOfWeek),
			ShiftTime:    string(req.ShiftTime),
		}
	}

	startTime, endTime, hours, err := s.resolveTimes(req.ShiftTime, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	shift := &models.Shift{
		OrganizationID: business.OrganizationID,
		EmployeeID:     req.EmployeeID,
		BusinessID:     req.BusinessID,
		DayOfWeek:      req.DayOfWeek,
		ShiftTime:      req.ShiftTime,
		StartTime:      startTime,
		EndTime:        endTime,
		HoursWorked:    hours,
	}
	if err := s.shiftRepo.Create(shift); err != nil {
		if repository.IsUniqueViolation(err) {
			// Race lost to a concurrent assign; report it exactly like a
			// pre-flight conflict, naming the winner when it is visible.
			booked := &apperrors.DoubleBookedError{
				EmployeeName: employee.Name,
				Day:          string(req.DayOfWeek),
				ShiftTime:    string(req.ShiftTime),
			}
			if winner, findErr := s.shiftRepo.FindBooking(business.OrganizationID, req.EmployeeID, req.DayOfWeek, req.ShiftTime); findErr == nil && winner != nil {
				booked.BusinessName = winner.Business.Name
			}
			return nil, booked
		}
		return nil, fmt.Errorf("failed to save shift: %w", err)
	}

	resp := s.toResponse(shift)
	resp.EmployeeName = employee.Name
	resp.BusinessName = business.Name
	return resp, nil
}

// Remove empties a slot. Removing an already-empty slot succeeds with
// Removed=false.
func (s *RosterService) Remove(req *RemoveShiftRequest) (*RemoveShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.DayOfWeek.IsValid() {
		return nil, apperrors.ErrInvalidDayOfWeek
	}
	if !req.ShiftTime.IsValid() {
		return nil, apperrors.ErrInvalidShiftTime
	}

	if s.policy.IsSlotInPast(req.DayOfWeek, req.ShiftTime, s.clock.Now()) {
		return nil, &apperrors.PastSlotError{Day: string(req.DayOfWeek), ShiftTime: string(req.ShiftTime)}
	}

	affected, err := s.shiftRepo.Delete(req.EmployeeID, req.BusinessID, req.DayOfWeek, req.ShiftTime)
	if err != nil {
		return nil, fmt.Errorf("failed to remove shift: %w", err)
	}

	return &RemoveShiftResponse{Removed: affected > 0}, nil
}

// EditTime updates a filled slot's start/end and recomputes its hours. When the
// slot is a morning shift and linking is enabled, the afternoon shift of the
// same business/day gets its start moved to one minute past the new morning end
// and its own hours recomputed against its unchanged end time. Editing an
// afternoon shift never touches the morning.
func (s *RosterService) EditTime(req *EditShiftTimeRequest) (*EditShiftTimeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.DayOfWeek.IsValid() {
		return nil, apperrors.ErrInvalidDayOfWeek
	}
	if !req.ShiftTime.IsValid() {
		return nil, apperrors.ErrInvalidShiftTime
	}

	if s.policy.IsSlotInPast(req.DayOfWeek, req.ShiftTime, s.clock.Now()) {
		return nil, &apperrors.PastSlotError{Day: string(req.DayOfWeek), ShiftTime: string(req.ShiftTime)}
	}

	start, err := schedule.ParseClockTime(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := schedule.ParseClockTime(req.EndTime)
	if err != nil {
		return nil, err
	}
	if schedule.ElapsedMinutes(start, end) <= 0 {
		return nil, &apperrors.InvalidRangeError{StartTime: req.StartTime, EndTime: req.EndTime}
	}

	shift, err := s.shiftRepo.FindSlot(req.BusinessID, req.DayOfWeek, req.ShiftTime)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift: %w", err)
	}
	if shift == nil {
		return nil, apperrors.ErrShiftNotFound
	}

	shift.StartTime = start.String()
	shift.EndTime = end.String()
	shift.HoursWorked = schedule.HoursBetween(start, end)
	changed := []*models.Shift{shift}

	autoLink := s.policy.AutoLinkDefault
	if req.AutoLink != nil {
		autoLink = *req.AutoLink
	}
	var afternoon *models.Shift
	if req.ShiftTime == models.ShiftMorning && autoLink {
		afternoon, err = s.linkAfternoon(req.BusinessID, req.DayOfWeek, end)
		if err != nil {
			return nil, err
		}
		if afternoon != nil {
			changed = append(changed, afternoon)
		}
	}

	// Both the edit and its cascade land in one transaction; a failed link
	// must not leave a half-applied morning edit behind.
	if err := s.shiftRepo.UpdateAll(changed...); err != nil {
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}

	resp := &EditShiftTimeResponse{Shift: *s.toResponse(shift)}
	if afternoon != nil {
		resp.LinkedAfternoon = s.toResponse(afternoon)
	}
	return resp, nil
}

// linkAfternoon computes the cascade onto the afternoon shift: start moves to
// one minute past the morning end, hours recompute against its unchanged end.
// One-directional, nil when no afternoon shift exists; the caller persists.
func (s *RosterService) linkAfternoon(businessID uuid.UUID, day models.DayOfWeek, morningEnd schedule.ClockTime) (*models.Shift, error) {
	afternoon, err := s.shiftRepo.FindSlot(businessID, day, models.ShiftAfternoon)
	if err != nil {
		return nil, fmt.Errorf("failed to load afternoon shift: %w", err)
	}
	if afternoon == nil {
		return nil, nil
	}

	newStart := schedule.AddMinute(morningEnd)
	afternoonEnd, err := schedule.ParseClockTime(afternoon.EndTime)
	if err != nil {
		return nil, fmt.Errorf("afternoon shift has corrupt end time: %w", err)
	}

	afternoon.StartTime = newStart.String()
	afternoon.HoursWorked = schedule.HoursBetween(newStart, afternoonEnd)
	return afternoon, nil
}

// Board returns every slot of a business's week with its assignment, if any
func (s *RosterService) Board(businessID uuid.UUID) (*RosterBoardResponse, error) {
	if _, err := s.businessRepo.GetByID(businessID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to verify business: %w", err)
	}

	shifts, err := s.shiftRepo.GetByBusinessID(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts: %w", err)
	}

	filled := make(map[models.DayOfWeek]map[models.ShiftTime]*models.Shift)
	for i := range shifts {
		shift := &shifts[i]
		if filled[shift.DayOfWeek] == nil {
			filled[shift.DayOfWeek] = make(map[models.ShiftTime]*models.Shift)
		}
		filled[shift.DayOfWeek][shift.ShiftTime] = shift
	}

	board := &RosterBoardResponse{BusinessID: businessID}
	for _, day := range models.WeekDays {
		for _, shiftTime := range models.ShiftTimes {
			slot := SlotResponse{DayOfWeek: day, ShiftTime: shiftTime}
			if shift := filled[day][shiftTime]; shift != nil {
				resp := s.toResponse(shift)
				resp.EmployeeName = shift.Employee.Name
				slot.Shift = resp
			}
			board.Slots = append(board.Slots, slot)
		}
	}

	return board, nil
}

// WeeklySchedule returns an employee's live shifts sorted Monday to Sunday with
// morning before afternoon, plus derived totals
func (s *RosterService) WeeklySchedule(employeeID uuid.UUID) (*WeeklyScheduleResponse, error) {
	if _, err := s.employeeRepo.GetByID(employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}

	shifts, err := s.shiftRepo.GetByEmployeeID(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts: %w", err)
	}

	sort.Slice(shifts, func(i, j int) bool {
		di, dj := shifts[i].DayOfWeek.Index(), shifts[j].DayOfWeek.Index()
		if di != dj {
			return di < dj
		}
		return shifts[i].ShiftTime == models.ShiftMorning && shifts[j].ShiftTime != models.ShiftMorning
	})

	resp := &WeeklyScheduleResponse{EmployeeID: employeeID}
	days := make(map[models.DayOfWeek]bool)
	for i := range shifts {
		shift := &shifts[i]
		sr := s.toResponse(shift)
		sr.BusinessName = shift.Business.Name
		resp.Shifts = append(resp.Shifts, *sr)
		resp.TotalHours += sr.HoursWorked
		days[shift.DayOfWeek] = true
	}
	resp.ShiftCount = len(resp.Shifts)
	resp.WorkingDays = len(days)

	return resp, nil
}

// ClearBusiness deletes all live shifts at one business. Archived reports are
// untouched; archiving and clearing are deliberately decoupled.
func (s *RosterService) ClearBusiness(businessID uuid.UUID) (*ClearRosterResponse, error) {
	if _, err := s.businessRepo.GetByID(businessID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to verify business: %w", err)
	}

	cleared, err := s.shiftRepo.DeleteByBusinessID(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to clear roster: %w", err)
	}

	return &ClearRosterResponse{Cleared: cleared}, nil
}

// ClearOrganization deletes all live shifts across every business in the
// organization
func (s *RosterService) ClearOrganization(organizationID uuid.UUID) (*ClearRosterResponse, error) {
	if _, err := s.organizationRepo.GetByID(organizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to verify organization: %w", err)
	}

	cleared, err := s.shiftRepo.DeleteByOrganizationID(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to clear rosters: %w", err)
	}

	return &ClearRosterResponse{Cleared: cleared}, nil
}

// resolveTimes picks explicit times when both were supplied, the canonical
// window otherwise, and computes hours
func (s *RosterService) resolveTimes(shiftTime models.ShiftTime, startTime, endTime string) (string, string, float64, error) {
	if startTime == "" || endTime == "" {
		window := s.policy.Window(shiftTime)
		startTime, endTime = window.Start, window.End
	}

	start, err := schedule.ParseClockTime(startTime)
	if err != nil {
		return "", "", 0, err
	}
	end, err := schedule.ParseClockTime(endTime)
	if err != nil {
		return "", "", 0, err
	}
	if schedule.ElapsedMinutes(start, end) <= 0 {
		return "", "", 0, &apperrors.InvalidRangeError{StartTime: startTime, EndTime: endTime}
	}

	return start.String(), end.String(), schedule.HoursBetween(start, end), nil
}

func (s *RosterService) toResponse(shift *models.Shift) *ShiftResponse {
	return &ShiftResponse{
		ID:          shift.ID,
		EmployeeID:  shift.EmployeeID,
		BusinessID:  shift.BusinessID,
		DayOfWeek:   shift.DayOfWeek,
		ShiftTime:   shift.ShiftTime,
		StartTime:   shift.StartTime,
		EndTime:     shift.EndTime,
		HoursWorked: shift.HoursWorked,
	}
}
