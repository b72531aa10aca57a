package device

import "github.com/sarchlab/lampsim/sim"

// FakeIO is an IO implementation for tests and simulated runs. The button
// state is set directly and held until changed; light commands are recorded.
type FakeIO struct {
	pressed     bool
	light       Light
	lightWrites []Light
}

// NewFakeIO creates a FakeIO with the button released and the light off.
func NewFakeIO() *FakeIO {
	return &FakeIO{}
}

// SetLight records the light command.
func (io *FakeIO) SetLight(state Light) {
	io.light = state
	io.lightWrites = append(io.lightWrites, state)
}

// ButtonPressed returns the held button state.
func (io *FakeIO) ButtonPressed() bool {
	return io.pressed
}

// ButtonReleased returns the complement of the held button state.
func (io *FakeIO) ButtonReleased() bool {
	return !io.pressed
}

// PressButton holds the button down until ReleaseButton is called.
func (io *FakeIO) PressButton() {
	io.pressed = true
}

// ReleaseButton releases the button.
func (io *FakeIO) ReleaseButton() {
	io.pressed = false
}

// Light returns the last commanded light state.
func (io *FakeIO) Light() Light {
	return io.light
}

// LightWrites returns every light command received, in order.
func (io *FakeIO) LightWrites() []Light {
	return io.lightWrites
}

// FakeTimer is a Timer whose expiry is set directly by the test.
type FakeTimer struct {
	expired   bool
	armedWith []sim.VTimeInSec
}

// NewFakeTimer creates a FakeTimer that is not expired.
func NewFakeTimer() *FakeTimer {
	return &FakeTimer{}
}

// Arm records the duration and clears the expired flag.
func (t *FakeTimer) Arm(duration sim.VTimeInSec) {
	t.armedWith = append(t.armedWith, duration)
	t.expired = false
}

// Expired returns the test-controlled expiry flag.
func (t *FakeTimer) Expired() bool {
	return t.expired
}

// Expire marks the timer as expired. The flag holds until the next Arm.
func (t *FakeTimer) Expire() {
	t.expired = true
}

// ArmedWith returns every duration the timer was armed with, in order.
func (t *FakeTimer) ArmedWith() []sim.VTimeInSec {
	return t.armedWith
}
