// Package clock supplies the instants stamped into equipment documents
package clock

import "time"

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to Clock
type Func func() time.Time

// Now calls f
func (f Func) Now() time.Time {
	return f()
}

// New returns the system clock
func New() Clock {
	return Func(time.Now)
}

// Fixed always reports At
type Fixed struct {
	At time.Time
}

// Now returns At
func (c *Fixed) Now() time.Time {
	return c.At
}

// UnixMilli returns the clock's current time as epoch milliseconds, the unit of every
// createdAt and updatedAt field
func UnixMilli(c Clock) int64 {
	return c.Now().UnixMilli()
}
