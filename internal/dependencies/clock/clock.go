// Package clock abstracts the wall clock so time-dependent logic (token
// expiry, the duplicate-score window, timestamps) can be tested
// deterministically.
package clock

import "time"

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current system time
func (c *RealClock) Now() time.Time {
	return time.Now()
}
