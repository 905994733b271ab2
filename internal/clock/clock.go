// Package clock supplies the time source used to stamp backup files.
package clock

import (
	"strconv"
	"time"
)

// Clock returns the current time. Production code uses RealClock; tests pin
// backup names with FakeClock.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// Now returns the current system time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Stamp returns the millisecond Unix timestamp used as a backup suffix.
func Stamp(c Clock) string {
	return strconv.FormatInt(c.Now().UnixMilli(), 10)
}

// FakeClock implements Clock with a fixed time for testing.
type FakeClock struct {
	current time.Time
}

// NewFakeClock creates a new FakeClock pinned at t.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

// Now returns the pinned time.
func (c *FakeClock) Now() time.Time {
	return c.current
}

// Advance moves the pinned time forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
