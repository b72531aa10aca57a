// Package device defines the capability surfaces that polled behaviors
// consume. A behavior only sees an IO port and a Timer; any concrete
// implementation, simulated or real, is interchangeable.
package device

import "github.com/sarchlab/lampsim/sim"

// Light represents the state of a light being on or off.
type Light int

// The possible states of a light.
const (
	LightOff Light = iota
	LightOn
)

// Toggle returns the opposite state of the light.
func (l Light) Toggle() Light {
	if l == LightOn {
		return LightOff
	}
	return LightOn
}

func (l Light) String() string {
	if l == LightOn {
		return "On"
	}
	return "Off"
}

// IO is the capability surface of a device with one button and one light.
//
// ButtonPressed and ButtonReleased are independent queries, but a correct IO
// implementation must keep them logical complements in steady state. A
// behavior that reads them does not detect or report a violation; it resolves
// any contradiction through its own evaluation order.
type IO interface {
	// SetLight commands the light to the given state.
	SetLight(state Light)

	// ButtonPressed returns true if the button is currently pressed.
	ButtonPressed() bool

	// ButtonReleased returns true if the button is currently released.
	ButtonReleased() bool
}

// Timer is a deadline that can be armed with a duration and polled for
// expiry. Immediately after Arm, Expired returns false; once the duration
// has elapsed it returns true and keeps returning true until the next Arm.
type Timer interface {
	// Arm starts the timer with the given duration.
	Arm(duration sim.VTimeInSec)

	// Expired returns true if the armed duration has elapsed.
	Expired() bool
}
