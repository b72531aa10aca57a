package device_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/lampsim/device"
	"github.com/sarchlab/lampsim/sim"
)

var _ = Describe("FakeIO", func() {
	var io *device.FakeIO

	BeforeEach(func() {
		io = device.NewFakeIO()
	})

	It("should keep pressed and released complementary", func() {
		Expect(io.ButtonPressed()).To(BeFalse())
		Expect(io.ButtonReleased()).To(BeTrue())

		io.PressButton()
		Expect(io.ButtonPressed()).To(BeTrue())
		Expect(io.ButtonReleased()).To(BeFalse())

		io.ReleaseButton()
		Expect(io.ButtonPressed()).To(BeFalse())
		Expect(io.ButtonReleased()).To(BeTrue())
	})

	It("should record light commands in order", func() {
		io.SetLight(device.LightOn)
		io.SetLight(device.LightOff)

		Expect(io.Light()).To(Equal(device.LightOff))
		Expect(io.LightWrites()).To(Equal(
			[]device.Light{device.LightOn, device.LightOff}))
	})
})

var _ = Describe("FakeTimer", func() {
	var timer *device.FakeTimer

	BeforeEach(func() {
		timer = device.NewFakeTimer()
	})

	It("should hold expiry until re-armed", func() {
		Expect(timer.Expired()).To(BeFalse())

		timer.Expire()
		Expect(timer.Expired()).To(BeTrue())
		Expect(timer.Expired()).To(BeTrue())

		timer.Arm(1.0)
		Expect(timer.Expired()).To(BeFalse())
		Expect(timer.ArmedWith()).To(Equal([]sim.VTimeInSec{1.0}))
	})
})

var _ = Describe("Light", func() {
	It("should toggle", func() {
		Expect(device.LightOn.Toggle()).To(Equal(device.LightOff))
		Expect(device.LightOff.Toggle()).To(Equal(device.LightOn))
	})
})
