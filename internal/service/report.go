package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"roster-backend/internal/database/models"
	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/repository"
	"roster-backend/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportService serves per-week hour reports. The current week is aggregated
// live from the roster; past weeks come verbatim from the frozen archive rows,
// so a report re-fetched later is byte-for-byte what was archived.
type ReportService struct {
	reportRepo   *repository.WeeklyReportRepository
	shiftRepo    *repository.ShiftRepository
	businessRepo *repository.BusinessRepository
	clock        schedule.Clock
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo *repository.WeeklyReportRepository,
	shiftRepo *repository.ShiftRepository,
	businessRepo *repository.BusinessRepository,
	clock schedule.Clock,
) *ReportService {
	return &ReportService{
		reportRepo:   reportRepo,
		shiftRepo:    shiftRepo,
		businessRepo: businessRepo,
		clock:        clock,
	}
}

// ReportEntry is one employee's line in a weekly report
type ReportEntry struct {
	EmployeeID   uuid.UUID              `json:"employee_id"`
	EmployeeName string                 `json:"employee_name"`
	TotalHours   float64                `json:"total_hours"`
	ShiftCount   int                    `json:"shift_count"`
	WorkingDays  []models.DayOfWeek     `json:"working_days"`
	Shifts       []models.ArchivedShift `json:"shifts"`
}

// WeekReportResponse is the full report for one business and week
type WeekReportResponse struct {
	BusinessID uuid.UUID     `json:"business_id"`
	WeekStart  time.Time     `json:"week_start"`
	WeekEnd    time.Time     `json:"week_end"`
	Label      string        `json:"label"`
	IsCurrent  bool          `json:"is_current"`
	Entries    []ReportEntry `json:"entries"`
}

// WeekListEntry is one selectable week in the weeks listing
type WeekListEntry struct {
	WeekStart     time.Time `json:"week_start"`
	WeekEnd       time.Time `json:"week_end"`
	Label         string    `json:"label"`
	IsCurrent     bool      `json:"is_current"`
	EmployeeCount int64     `json:"employee_count"`
	TotalShifts   int64     `json:"total_shifts"`
}

// WeekListResponse lists the weeks a report exists for, current week first
type WeekListResponse struct {
	BusinessID uuid.UUID       `json:"business_id"`
	Weeks      []WeekListEntry `json:"weeks"`
}

// ReportForWeek returns the report for one business and week. The week start
// must be a Monday. The current week aggregates live shifts with hours
// recomputed from the stored times; any other week reads the archive.
func (s *ReportService) ReportForWeek(businessID uuid.UUID, weekStart time.Time) (*WeekReportResponse, error) {
	if weekStart.Weekday() != time.Monday {
		return nil, apperrors.ErrInvalidWeekStart
	}

	if _, err := s.businessRepo.GetByID(businessID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to verify business: %w", err)
	}

	current := schedule.CurrentWeekStart(s.clock)
	isCurrent := sameDate(weekStart, current)

	resp := &WeekReportResponse{
		BusinessID: businessID,
		WeekStart:  weekStart,
		WeekEnd:    schedule.WeekEnd(weekStart),
		Label:      schedule.FormatWeekRange(weekStart, isCurrent),
		IsCurrent:  isCurrent,
	}

	if isCurrent {
		entries, err := s.liveEntries(businessID)
		if err != nil {
			return nil, err
		}
		resp.Entries = entries
		return resp, nil
	}

	// Zero archived rows is a valid empty week, not an error; the business may
	// simply have had no shifts when the organization's archive ran.
	reports, err := s.reportRepo.GetByBusinessAndWeek(businessID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load archived reports: %w", err)
	}

	for _, report := range reports {
		entry, err := archivedEntry(&report)
		if err != nil {
			return nil, err
		}
		resp.Entries = append(resp.Entries, entry)
	}
	return resp, nil
}

// ListWeeks returns the current week plus every archived week, newest first
func (s *ReportService) ListWeeks(businessID uuid.UUID) (*WeekListResponse, error) {
	if _, err := s.businessRepo.GetByID(businessID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to verify business: %w", err)
	}

	current := schedule.CurrentWeekStart(s.clock)

	shifts, err := s.shiftRepo.GetByBusinessID(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts: %w", err)
	}
	employees := make(map[uuid.UUID]bool)
	for _, shift := range shifts {
		employees[shift.EmployeeID] = true
	}

	resp := &WeekListResponse{BusinessID: businessID}
	resp.Weeks = append(resp.Weeks, WeekListEntry{
		WeekStart:     current,
		WeekEnd:       schedule.WeekEnd(current),
		Label:         schedule.FormatWeekRange(current, true),
		IsCurrent:     true,
		EmployeeCount: int64(len(employees)),
		TotalShifts:   int64(len(shifts)),
	})

	summaries, err := s.reportRepo.ListWeeks(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived weeks: %w", err)
	}
	for _, summary := range summaries {
		if sameDate(summary.WeekStart, current) {
			continue
		}
		resp.Weeks = append(resp.Weeks, WeekListEntry{
			WeekStart:     summary.WeekStart,
			WeekEnd:       summary.WeekEnd,
			Label:         schedule.FormatWeekRange(summary.WeekStart, false),
			EmployeeCount: summary.EmployeeCount,
			TotalShifts:   summary.TotalShifts,
		})
	}

	return resp, nil
}

// liveEntries aggregates the business's live shifts per employee, sorted by
// employee name to match the archived ordering
func (s *ReportService) liveEntries(businessID uuid.UUID) ([]ReportEntry, error) {
	shifts, err := s.shiftRepo.GetByBusinessID(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts: %w", err)
	}

	type accumulator struct {
		entry ReportEntry
		days  map[models.DayOfWeek]bool
	}
	byEmployee := make(map[uuid.UUID]*accumulator)
	for i := range shifts {
		shift := &shifts[i]
		acc := byEmployee[shift.EmployeeID]
		if acc == nil {
			acc = &accumulator{
				entry: ReportEntry{
					EmployeeID:   shift.EmployeeID,
					EmployeeName: shift.Employee.Name,
				},
				days: make(map[models.DayOfWeek]bool),
			}
			byEmployee[shift.EmployeeID] = acc
		}

		hours, err := schedule.HoursBetweenStrings(shift.StartTime, shift.EndTime)
		if err != nil {
			hours = shift.HoursWorked
		}
		acc.entry.TotalHours += hours
		acc.entry.ShiftCount++
		acc.days[shift.DayOfWeek] = true
		acc.entry.Shifts = append(acc.entry.Shifts, models.ArchivedShift{
			DayOfWeek:   shift.DayOfWeek,
			ShiftTime:   shift.ShiftTime,
			StartTime:   shift.StartTime,
			EndTime:     shift.EndTime,
			HoursWorked: hours,
		})
	}

	entries := make([]ReportEntry, 0, len(byEmployee))
	for _, acc := range byEmployee {
		for _, day := range models.WeekDays {
			if acc.days[day] {
				acc.entry.WorkingDays = append(acc.entry.WorkingDays, day)
			}
		}
		entries = append(entries, acc.entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].EmployeeName < entries[j].EmployeeName
	})

	return entries, nil
}

// archivedEntry decodes one frozen report row
func archivedEntry(report *models.WeeklyReport) (ReportEntry, error) {
	entry := ReportEntry{
		EmployeeID:   report.EmployeeID,
		EmployeeName: report.EmployeeName,
		TotalHours:   report.TotalHours,
		ShiftCount:   report.ShiftCount,
	}
	if len(report.WorkingDays) > 0 {
		if err := json.Unmarshal(report.WorkingDays, &entry.WorkingDays); err != nil {
			return entry, fmt.Errorf("failed to decode working days: %w", err)
		}
	}
	if len(report.Shifts) > 0 {
		if err := json.Unmarshal(report.Shifts, &entry.Shifts); err != nil {
			return entry, fmt.Errorf("failed to decode shift snapshot: %w", err)
		}
	}
	return entry, nil
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
