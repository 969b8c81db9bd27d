// Package clock supplies the current time to code that stamps cards and
// exports, so tests can pin issue and expiry dates.
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=clockmock github.com/KirkDiggler/cardgen/internal/pkg/clock Clock

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// Real reads the system clock
type Real struct{}

// Now returns time.Now
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns the system clock
func New() Clock {
	return &Real{}
}

// Fixed always reports the same instant. The render command uses it when a
// card date is pinned on the command line.
type Fixed struct {
	At time.Time
}

// Now returns the pinned instant
func (c *Fixed) Now() time.Time {
	return c.At
}
