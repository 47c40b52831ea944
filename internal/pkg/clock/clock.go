// Package clock provides time and timer scheduling for the application
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=clockmock github.com/Eliolocin/GengoTavern-sub001/internal/pkg/clock Clock

// Timer is a cancellable scheduled callback.
type Timer interface {
	// Stop cancels the timer. It reports whether the call prevented the
	// callback from running.
	Stop() bool
}

// Clock provides time functionality and deferred execution
type Clock interface {
	// Now returns the current time
	Now() time.Time

	// AfterFunc schedules f to run in its own goroutine once d has elapsed
	AfterFunc(d time.Duration, f func()) Timer
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f on a runtime timer
func (c *Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}
