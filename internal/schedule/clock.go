package schedule

import "time"

// Clock supplies wall-clock time. The engine re-evaluates every time predicate at
// call time, so injecting a Clock is all tests need to pin the calendar.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock
type SystemClock struct{}

// Now returns the current local time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a plain function to the Clock interface
type ClockFunc func() time.Time

// Now invokes the wrapped function
func (f ClockFunc) Now() time.Time {
	return f()
}

// FixedClock always reports the same instant
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
