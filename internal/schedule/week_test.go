package schedule

import (
	"testing"
	"time"

	"roster-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

// The test week: Monday 2026-02-02 through Sunday 2026-02-08.
func date(day int, hour, minute int) time.Time {
	return time.Date(2026, time.February, day, hour, minute, 0, 0, time.UTC)
}

func TestWeekStartFor(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"monday maps to itself", date(2, 9, 0), date(2, 0, 0)},
		{"wednesday maps back two days", date(4, 15, 30), date(2, 0, 0)},
		{"saturday maps back five days", date(7, 23, 59), date(2, 0, 0)},
		{"sunday maps back six days, not forward", date(8, 12, 0), date(2, 0, 0)},
		{"next monday starts a new week", date(9, 0, 1), date(9, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStartFor(tt.now))
		})
	}
}

func TestWeekEnd(t *testing.T) {
	assert.Equal(t, date(8, 0, 0), WeekEnd(date(2, 0, 0)))
}

func TestDateForDay(t *testing.T) {
	clock := FixedClock(date(4, 10, 0))

	assert.Equal(t, date(2, 0, 0), DateForDay(clock, models.DayMonday))
	assert.Equal(t, date(5, 0, 0), DateForDay(clock, models.DayThursday))
	assert.Equal(t, date(8, 0, 0), DateForDay(clock, models.DaySunday))
}

func TestIsSlotInPast(t *testing.T) {
	policy := DefaultPolicy()
	// Wednesday 10:00
	now := date(4, 10, 0)

	tests := []struct {
		name  string
		day   models.DayOfWeek
		shift models.ShiftTime
		want  bool
	}{
		{"earlier weekday is past", models.DayMonday, models.ShiftAfternoon, true},
		{"yesterday is past", models.DayTuesday, models.ShiftMorning, true},
		{"today after canonical morning start is past", models.DayWednesday, models.ShiftMorning, true},
		{"today before canonical afternoon start is not past", models.DayWednesday, models.ShiftAfternoon, false},
		{"later weekday is never past", models.DayThursday, models.ShiftMorning, false},
		{"sunday is never past midweek", models.DaySunday, models.ShiftAfternoon, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.IsSlotInPast(tt.day, tt.shift, now))
		})
	}
}

func TestIsSlotInPastAtExactCanonicalStart(t *testing.T) {
	policy := DefaultPolicy()

	// 08:00 sharp on the same day counts as past
	assert.True(t, policy.IsSlotInPast(models.DayWednesday, models.ShiftMorning, date(4, 8, 0)))
	// One minute before it does not
	assert.False(t, policy.IsSlotInPast(models.DayWednesday, models.ShiftMorning, date(4, 7, 59)))
	// Afternoon boundary at 14:00
	assert.True(t, policy.IsSlotInPast(models.DayWednesday, models.ShiftAfternoon, date(4, 14, 0)))
}

func TestIsAvailabilityLocked(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"saturday before lock hour", date(7, 22, 59), false},
		{"saturday at lock hour", date(7, 23, 0), true},
		{"saturday late night", date(7, 23, 30), true},
		{"friday at lock hour is not locked", date(6, 23, 30), false},
		{"monday just after midnight is not locked", date(9, 0, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.IsAvailabilityLocked(tt.now))
		})
	}
}

func TestIsSchedulingDay(t *testing.T) {
	assert.True(t, IsSchedulingDay(date(8, 0, 0)))
	assert.True(t, IsSchedulingDay(date(8, 23, 59)))
	assert.False(t, IsSchedulingDay(date(7, 23, 59)))
	assert.False(t, IsSchedulingDay(date(9, 0, 0)))
}

func TestFormatWeekRange(t *testing.T) {
	assert.Equal(t, "Feb 2 - Feb 8, 2026 (Current)", FormatWeekRange(date(2, 0, 0), true))
	assert.Equal(t, "Feb 2 - Feb 8, 2026", FormatWeekRange(date(2, 0, 0), false))
}
