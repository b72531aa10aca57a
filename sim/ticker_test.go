package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Ticking Component", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *MockEngine
		ticker   *MockTicker
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewMockEngine(mockCtrl)
		ticker = NewMockTicker(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	Context("progress driven", func() {
		var tc *TickingComponent

		BeforeEach(func() {
			tc = NewTickingComponent("TC", engine, 1, ticker)
		})

		It("should tick again when the ticker makes progress", func() {
			engine.EXPECT().CurrentTime().Return(VTimeInSec(10)).AnyTimes()
			engine.EXPECT().Schedule(gomock.Any()).
				Do(func(e TickEvent) {
					Expect(e.Time()).To(Equal(VTimeInSec(11)))
				})
			ticker.EXPECT().Tick().Return(true)

			_ = tc.Handle(MakeTickEvent(tc, 10))
		})

		It("should not double schedule a tick in the same cycle", func() {
			engine.EXPECT().CurrentTime().Return(VTimeInSec(10)).AnyTimes()
			engine.EXPECT().Schedule(gomock.Any()).
				Do(func(e TickEvent) {
					Expect(e.Time()).To(Equal(VTimeInSec(11)))
				})

			ticker.EXPECT().Tick().Return(true)
			_ = tc.Handle(MakeTickEvent(tc, 10))

			ticker.EXPECT().Tick().Return(true)
			_ = tc.Handle(MakeTickEvent(tc, 10))
		})

		It("should stop ticking if no progress is made", func() {
			engine.EXPECT().CurrentTime().Return(VTimeInSec(10)).AnyTimes()
			ticker.EXPECT().Tick().Return(false)

			_ = tc.Handle(MakeTickEvent(tc, 10))
		})
	})

	Context("free running", func() {
		var tc *TickingComponent

		BeforeEach(func() {
			tc = NewFreeRunningTickingComponent("TC", engine, 1, ticker)
		})

		It("should tick again even without progress", func() {
			engine.EXPECT().CurrentTime().Return(VTimeInSec(10)).AnyTimes()
			engine.EXPECT().Schedule(gomock.Any()).
				Do(func(e TickEvent) {
					Expect(e.Time()).To(Equal(VTimeInSec(11)))
				})
			ticker.EXPECT().Tick().Return(false)

			_ = tc.Handle(MakeTickEvent(tc, 10))
		})

		It("should stop rescheduling after StopFreeRunning", func() {
			engine.EXPECT().CurrentTime().Return(VTimeInSec(10)).AnyTimes()
			ticker.EXPECT().Tick().Return(true)

			tc.StopFreeRunning()
			_ = tc.Handle(MakeTickEvent(tc, 10))
		})
	})
})
