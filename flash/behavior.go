// Package flash implements a polled button-flash behavior. While the button
// is held, the light blinks with a configurable half-period; on release the
// light goes off. The behavior never blocks: all waiting is expressed as a
// resting state, and a cooperative executive drives it by calling Poll once
// per frame.
package flash

import (
	"log"

	"github.com/sarchlab/lampsim/device"
	"github.com/sarchlab/lampsim/sim"
)

// DefaultPeriod is the blink half-period used when none is configured. A
// full on/off cycle takes twice this long.
const DefaultPeriod sim.VTimeInSec = 1.0

// HookPosStateTransition is a hook position that triggers after the behavior
// applies a transition. The hook item is a TransitionInfo.
var HookPosStateTransition = &sim.HookPos{Name: "StateTransition"}

// TransitionInfo describes one applied transition.
type TransitionInfo struct {
	From State
	To   State

	// Light is the state commanded during the transition. It is only
	// meaningful when LightChanged is true.
	Light        device.Light
	LightChanged bool
}

// A Behavior is the button-flash state machine. It owns nothing but its
// current state; the IO port and the timer are borrowed for the behavior's
// whole life and must not be shared with another caller.
type Behavior struct {
	sim.HookableBase

	name   string
	io     device.IO
	timer  device.Timer
	period sim.VTimeInSec
	state  State
}

var _ sim.Ticker = (*Behavior)(nil)
var _ sim.Named = (*Behavior)(nil)

// NewBehavior creates a Behavior in the Idle state and commands the light
// off, so the output is defined before the first poll.
func NewBehavior(
	name string,
	io device.IO,
	timer device.Timer,
) *Behavior {
	b := new(Behavior)
	b.name = name
	b.io = io
	b.timer = timer
	b.period = DefaultPeriod
	b.state = StateIdle

	b.io.SetLight(device.LightOff)

	return b
}

// WithPeriod sets the blink half-period. The period takes effect the next
// time the timer is armed.
func (b *Behavior) WithPeriod(period sim.VTimeInSec) *Behavior {
	if period <= 0 {
		log.Panic("blink period must be positive")
	}

	b.period = period

	return b
}

// Name returns the name of the behavior.
func (b *Behavior) Name() string {
	return b.name
}

// State returns the current resting state, for observability and tests.
func (b *Behavior) State() State {
	return b.state
}

// Period returns the configured blink half-period.
func (b *Behavior) Period() sim.VTimeInSec {
	return b.period
}

// Poll evaluates the transition table for the current state and applies the
// transition that fires, if any, repeating until the state settles. It
// returns true if at least one transition was applied.
//
// Poll never blocks and never loops on external state. The repeat exists so
// that cascading transitions resolve within one call: a release collapses
// through JustReleased to Idle before Poll returns, and a press is reflected
// in the light output within the same call that observed it. The iteration
// count is capped by the state count, so even a contradictory port (pressed
// and released both true) cannot make Poll spin.
func (b *Behavior) Poll() bool {
	worked := false

	for i := 0; i < numStates; i++ {
		if !b.step() {
			break
		}
		worked = true
	}

	return worked
}

// Tick lets the behavior run under a sim.TickingComponent.
func (b *Behavior) Tick() bool {
	return b.Poll()
}

// step evaluates the transition table once. Within a blinking state the
// release check comes before the expiry check, so "stop blinking" always
// wins over "keep blinking".
func (b *Behavior) step() bool {
	switch b.state {
	case StateIdle:
		if b.io.ButtonPressed() {
			b.io.SetLight(device.LightOn)
			b.timer.Arm(b.period)
			b.applyTransition(StateBlinkOn, device.LightOn, true)
			return true
		}
	case StateBlinkOn:
		if b.io.ButtonReleased() {
			b.applyTransition(StateJustReleased, device.LightOff, false)
			return true
		}
		if b.timer.Expired() {
			b.io.SetLight(device.LightOff)
			b.timer.Arm(b.period)
			b.applyTransition(StateBlinkOff, device.LightOff, true)
			return true
		}
	case StateBlinkOff:
		if b.io.ButtonReleased() {
			b.applyTransition(StateJustReleased, device.LightOff, false)
			return true
		}
		if b.timer.Expired() {
			b.io.SetLight(device.LightOn)
			b.timer.Arm(b.period)
			b.applyTransition(StateBlinkOn, device.LightOn, true)
			return true
		}
	case StateJustReleased:
		b.io.SetLight(device.LightOff)
		b.applyTransition(StateIdle, device.LightOff, true)
		return true
	}

	return false
}

func (b *Behavior) applyTransition(
	to State,
	light device.Light,
	lightChanged bool,
) {
	from := b.state
	b.state = to

	if b.NumHooks() == 0 {
		return
	}

	b.InvokeHook(sim.HookCtx{
		Domain: b,
		Pos:    HookPosStateTransition,
		Item: TransitionInfo{
			From:         from,
			To:           to,
			Light:        light,
			LightChanged: lightChanged,
		},
	})
}
