package schedule

import (
	"fmt"
	"time"

	"roster-backend/internal/database/models"
)

// All week calculations use Monday as the start of the week.

// WeekStartFor returns Monday 00:00:00 of the week containing t.
// Sunday maps back 6 days, not forward.
func WeekStartFor(t time.Time) time.Time {
	daysFromMonday := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		daysFromMonday = 6
	}
	monday := t.AddDate(0, 0, -daysFromMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

// CurrentWeekStart returns Monday 00:00:00 of the week containing now
func CurrentWeekStart(clock Clock) time.Time {
	return WeekStartFor(clock.Now())
}

// WeekEnd returns the Sunday of the week beginning at weekStart
func WeekEnd(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 6)
}

// DateForDay returns the calendar date of the given weekday within the current week
func DateForDay(clock Clock, day models.DayOfWeek) time.Time {
	idx := day.Index()
	if idx < 0 {
		idx = 0
	}
	return CurrentWeekStart(clock).AddDate(0, 0, idx)
}

// todayIndex maps now's weekday onto the roster index, Monday=0 through Sunday=6
func todayIndex(now time.Time) int {
	idx := int(now.Weekday()) - 1
	if now.Weekday() == time.Sunday {
		idx = 6
	}
	return idx
}

// IsSlotInPast reports whether the slot's canonical time has already elapsed this
// week. The check uses the shift's canonical start, not any edited start time, so
// editing a slot's times never retroactively changes whether it is past. Weekdays
// after today are never past.
func (p *Policy) IsSlotInPast(day models.DayOfWeek, shift models.ShiftTime, now time.Time) bool {
	dayIdx := day.Index()
	if dayIdx < 0 {
		return false
	}

	today := todayIndex(now)
	if dayIdx < today {
		return true
	}
	if dayIdx > today {
		return false
	}

	start, err := ParseClockTime(p.CanonicalStart(shift))
	if err != nil {
		return false
	}
	nowMinutes := now.Hour()*60 + now.Minute()
	return nowMinutes >= start.Minutes()
}

// IsAvailabilityLocked reports whether now falls inside the Saturday-night lock
// window during which workers cannot edit availability
func (p *Policy) IsAvailabilityLocked(now time.Time) bool {
	return now.Weekday() == time.Saturday && now.Hour() >= p.LockHour
}

// IsSchedulingDay reports whether now is Sunday, the admin's exclusive
// scheduling window
func IsSchedulingDay(now time.Time) bool {
	return now.Weekday() == time.Sunday
}

// FormatWeekRange renders a week label like "Feb 3 - Feb 9, 2026 (Current)"
func FormatWeekRange(weekStart time.Time, isCurrent bool) string {
	end := WeekEnd(weekStart)
	label := fmt.Sprintf("%s - %s, %d", weekStart.Format("Jan 2"), end.Format("Jan 2"), weekStart.Year())
	if isCurrent {
		label += " (Current)"
	}
	return label
}
