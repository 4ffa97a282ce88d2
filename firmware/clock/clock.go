// Package clock provides the elapsed-time source used by the control loop. Timestamps are
// durations since boot, like millis() on other platforms.
package clock

import "time"

// Clock returns the monotonic time elapsed since it was started
type Clock interface {
	Now() time.Duration
}

// Monotonic measures elapsed time with the runtime's monotonic clock
type Monotonic struct {
	start time.Time
}

// NewMonotonic starts a clock at zero
func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

func (m *Monotonic) Now() time.Duration {
	return time.Since(m.start)
}

// Fake is a manually advanced Clock for simulated-time tests and tools
type Fake struct {
	now time.Duration
}

func (f *Fake) Now() time.Duration {
	return f.now
}

// Advance moves the clock forward. Negative values are ignored so the clock never runs backwards
func (f *Fake) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	f.now += d
}

// Set jumps to an absolute time if it is not earlier than the current time
func (f *Fake) Set(now time.Duration) {
	if now < f.now {
		return
	}
	f.now = now
}
