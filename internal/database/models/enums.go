package models

// DayOfWeek identifies a weekday in the roster grid. Weeks start on Monday.
type DayOfWeek string

const (
	DayMonday    DayOfWeek = "Mon"
	DayTuesday   DayOfWeek = "Tue"
	DayWednesday DayOfWeek = "Wed"
	DayThursday  DayOfWeek = "Thu"
	DayFriday    DayOfWeek = "Fri"
	DaySaturday  DayOfWeek = "Sat"
	DaySunday    DayOfWeek = "Sun"
)

// WeekDays lists the days in roster order, Monday first
var WeekDays = []DayOfWeek{
	DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday, DaySunday,
}

// IsValid returns true for a known day value
func (d DayOfWeek) IsValid() bool {
	switch d {
	case DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday, DaySunday:
		return true
	}
	return false
}

// Index returns the roster-order index, Monday=0 through Sunday=6, or -1 for an
// unknown value
func (d DayOfWeek) Index() int {
	for i, day := range WeekDays {
		if day == d {
			return i
		}
	}
	return -1
}

// ShiftTime identifies which of the two daily slots a shift occupies
type ShiftTime string

const (
	ShiftMorning   ShiftTime = "morning"
	ShiftAfternoon ShiftTime = "afternoon"
)

// ShiftTimes lists the slots in display order, morning first
var ShiftTimes = []ShiftTime{ShiftMorning, ShiftAfternoon}

// IsValid returns true for a known shift time value
func (s ShiftTime) IsValid() bool {
	return s == ShiftMorning || s == ShiftAfternoon
}

// SystemRole represents the capability role of an employee
type SystemRole string

const (
	RoleWorker SystemRole = "worker"
	RoleAdmin  SystemRole = "admin"
)

// IsValid returns true for a known role value
func (r SystemRole) IsValid() bool {
	return r == RoleWorker || r == RoleAdmin
}
