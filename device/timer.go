package device

import "github.com/sarchlab/lampsim/sim"

// A DeadlineTimer is a Timer that measures expiry against a virtual clock.
// A timer that has never been armed reports not expired.
type DeadlineTimer struct {
	timeTeller sim.TimeTeller
	deadline   sim.VTimeInSec
	armed      bool
}

// NewDeadlineTimer creates a DeadlineTimer that reads the current time from
// the given TimeTeller.
func NewDeadlineTimer(timeTeller sim.TimeTeller) *DeadlineTimer {
	t := new(DeadlineTimer)
	t.timeTeller = timeTeller
	return t
}

// Arm starts the timer. The timer expires once the duration has elapsed on
// the underlying clock.
func (t *DeadlineTimer) Arm(duration sim.VTimeInSec) {
	t.deadline = t.timeTeller.CurrentTime() + duration
	t.armed = true
}

// Expired returns true if the armed duration has elapsed.
func (t *DeadlineTimer) Expired() bool {
	if !t.armed {
		return false
	}

	return t.timeTeller.CurrentTime() >= t.deadline
}
