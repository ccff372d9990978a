package schedule

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "roster-backend/internal/errors"
)

// ClockTime is a wall-clock "HH:MM" value within a single day
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses an "HH:MM" string
func ParseClockTime(value string) (ClockTime, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidClockTime, value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidClockTime, value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidClockTime, value)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidClockTime, value)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// Minutes returns the minute offset from midnight
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// String renders the zero-padded "HH:MM" form
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ElapsedMinutes computes end minus start using hour/minute subtraction with a
// 60-minute borrow. Shifts never span midnight, so a non-positive result means
// the range is invalid rather than a day wrap.
func ElapsedMinutes(start, end ClockTime) int {
	hours := end.Hour - start.Hour
	minutes := end.Minute - start.Minute
	if minutes < 0 {
		hours--
		minutes += 60
	}
	return hours*60 + minutes
}

// HoursBetween converts the elapsed minutes between start and end to fractional hours
func HoursBetween(start, end ClockTime) float64 {
	return float64(ElapsedMinutes(start, end)) / 60.0
}

// HoursBetweenStrings parses two "HH:MM" values and returns the fractional hours
// between them
func HoursBetweenStrings(start, end string) (float64, error) {
	s, err := ParseClockTime(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClockTime(end)
	if err != nil {
		return 0, err
	}
	return HoursBetween(s, e), nil
}

// AddMinute returns the clock time one minute later. Used to derive a linked
// afternoon start from a morning end.
func AddMinute(c ClockTime) ClockTime {
	minute := c.Minute + 1
	hour := c.Hour
	if minute >= 60 {
		minute = 0
		hour++
	}
	return ClockTime{Hour: hour, Minute: minute}
}
