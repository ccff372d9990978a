package service

import (
	"encoding/json"
	"fmt"
	"time"

	"roster-backend/internal/database/models"
	"roster-backend/internal/logger"
	"roster-backend/internal/repository"
	"roster-backend/internal/schedule"
)

// ArchiveService snapshots live shifts into immutable weekly reports. The
// due-triggered path runs on Monday (archiving last week) or late Sunday
// (archiving the closing week) and uses a persisted once-per-day key so
// restarts and overlapping processes never archive twice. Archiving never
// clears the live roster; clearing is a separate manual action.
type ArchiveService struct {
	shiftRepo  *repository.ShiftRepository
	reportRepo *repository.WeeklyReportRepository
	runRepo    *repository.ArchiveRunRepository
	policy     *schedule.Policy
	clock      schedule.Clock
	log        *logger.Logger
}

// NewArchiveService creates a new archive service
func NewArchiveService(
	shiftRepo *repository.ShiftRepository,
	reportRepo *repository.WeeklyReportRepository,
	runRepo *repository.ArchiveRunRepository,
	policy *schedule.Policy,
	clock schedule.Clock,
	log *logger.Logger,
) *ArchiveService {
	return &ArchiveService{
		shiftRepo:  shiftRepo,
		reportRepo: reportRepo,
		runRepo:    runRepo,
		policy:     policy,
		clock:      clock,
		log:        log,
	}
}

// ArchiveResponse reports the outcome of an archive pass
type ArchiveResponse struct {
	Ran           bool      `json:"ran"`
	WeekStart     time.Time `json:"week_start,omitempty"`
	WeekEnd       time.Time `json:"week_end,omitempty"`
	ArchivedCount int       `json:"archived_count"`
}

// ArchiveIfDue archives when the clock says an archive window is open and no
// run was recorded today. Monday archives the week that just ended; Sunday at
// or past the lock hour archives the closing week early so late-Sunday edits
// cannot outrun the snapshot.
func (s *ArchiveService) ArchiveIfDue() (*ArchiveResponse, error) {
	now := s.clock.Now()

	var weekStart time.Time
	switch {
	case now.Weekday() == time.Monday:
		weekStart = schedule.WeekStartFor(now).AddDate(0, 0, -7)
	case now.Weekday() == time.Sunday && now.Hour() >= s.policy.LockHour:
		weekStart = schedule.WeekStartFor(now)
	default:
		return &ArchiveResponse{Ran: false}, nil
	}

	runDate := now.Format("2006-01-02")
	done, err := s.runRepo.HasRunOn(runDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check archive run: %w", err)
	}
	if done {
		return &ArchiveResponse{Ran: false}, nil
	}

	count, err := s.archiveWeek(weekStart)
	if err != nil {
		return nil, err
	}

	run := &models.ArchiveRun{RunDate: runDate, WeekStart: weekStart, ArchivedCount: count}
	if err := s.runRepo.Create(run); err != nil {
		if !repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("failed to record archive run: %w", err)
		}
	}

	s.log.WithFields(map[string]interface{}{
		"week_start":     weekStart.Format("2006-01-02"),
		"archived_count": count,
	}).Info("weekly archive completed")

	return &ArchiveResponse{
		Ran:           true,
		WeekStart:     weekStart,
		WeekEnd:       schedule.WeekEnd(weekStart),
		ArchivedCount: count,
	}, nil
}

// ForceArchive archives the current week immediately, bypassing the day guard
// and the once-per-day key. The unique index on the report rows still makes a
// repeat force a no-op.
func (s *ArchiveService) ForceArchive() (*ArchiveResponse, error) {
	weekStart := schedule.CurrentWeekStart(s.clock)
	count, err := s.archiveWeek(weekStart)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"week_start":     weekStart.Format("2006-01-02"),
		"archived_count": count,
	}).Info("forced archive completed")

	return &ArchiveResponse{
		Ran:           true,
		WeekStart:     weekStart,
		WeekEnd:       schedule.WeekEnd(weekStart),
		ArchivedCount: count,
	}, nil
}

// archiveWeek groups every live shift by (employee, business) and writes one
// frozen report row per group. The employee name is copied into the row so
// later renames never alter an archived report. Rows that already exist are
// skipped silently.
func (s *ArchiveService) archiveWeek(weekStart time.Time) (int, error) {
	shifts, err := s.shiftRepo.GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to load shifts for archiving: %w", err)
	}

	type groupKey struct {
		employeeID string
		businessID string
	}
	groups := make(map[groupKey][]*models.Shift)
	var order []groupKey
	for i := range shifts {
		shift := &shifts[i]
		key := groupKey{employeeID: shift.EmployeeID.String(), businessID: shift.BusinessID.String()}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], shift)
	}

	archived := 0
	for _, key := range order {
		group := groups[key]
		report, err := s.buildReport(group, weekStart)
		if err != nil {
			return archived, err
		}
		if err := s.reportRepo.Create(report); err != nil {
			if repository.IsUniqueViolation(err) {
				continue
			}
			return archived, fmt.Errorf("failed to save weekly report: %w", err)
		}
		archived++
	}

	return archived, nil
}

func (s *ArchiveService) buildReport(group []*models.Shift, weekStart time.Time) (*models.WeeklyReport, error) {
	first := group[0]

	var totalHours float64
	days := make(map[models.DayOfWeek]bool)
	snapshots := make([]models.ArchivedShift, 0, len(group))
	for _, shift := range group {
		totalHours += shift.HoursWorked
		days[shift.DayOfWeek] = true
		snapshots = append(snapshots, models.ArchivedShift{
			DayOfWeek:   shift.DayOfWeek,
			ShiftTime:   shift.ShiftTime,
			StartTime:   shift.StartTime,
			EndTime:     shift.EndTime,
			HoursWorked: shift.HoursWorked,
		})
	}

	workingDays := make([]models.DayOfWeek, 0, len(days))
	for _, day := range models.WeekDays {
		if days[day] {
			workingDays = append(workingDays, day)
		}
	}

	daysJSON, err := json.Marshal(workingDays)
	if err != nil {
		return nil, fmt.Errorf("failed to encode working days: %w", err)
	}
	shiftsJSON, err := json.Marshal(snapshots)
	if err != nil {
		return nil, fmt.Errorf("failed to encode shift snapshot: %w", err)
	}

	return &models.WeeklyReport{
		EmployeeID:   first.EmployeeID,
		EmployeeName: first.Employee.Name,
		BusinessID:   first.BusinessID,
		WeekStart:    weekStart,
		WeekEnd:      schedule.WeekEnd(weekStart),
		TotalHours:   totalHours,
		ShiftCount:   len(group),
		WorkingDays:  daysJSON,
		Shifts:       shiftsJSON,
	}, nil
}
