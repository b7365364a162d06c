package todo

import "time"

// Clock supplies the current time to the store.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls fn.
func (fn ClockFunc) Now() time.Time {
	return fn()
}
