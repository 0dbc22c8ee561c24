package timeutil

import "time"

// Clock abstracts the current time so date parsing and timestamps are testable.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock in UTC.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns the same instant. Useful for parsing relative
// input deterministically in tests.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }
