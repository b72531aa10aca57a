package monitoring

import (
	"net/http/httptest"

	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/lampsim/sim"
)

type sampleComponent struct {
	*sim.ComponentBase
}

func (c *sampleComponent) Handle(_ sim.Event) error {
	return nil
}

type sampleTickingComponent struct {
	*sim.ComponentBase

	tickedNow bool
}

func (c *sampleTickingComponent) Handle(_ sim.Event) error {
	return nil
}

func (c *sampleTickingComponent) TickNow() {
	c.tickedNow = true
}

type stubEngine struct {
	sim.HookableBase

	now    sim.VTimeInSec
	paused bool
}

func (e *stubEngine) CurrentTime() sim.VTimeInSec            { return e.now }
func (e *stubEngine) Schedule(_ sim.Event)                   {}
func (e *stubEngine) Run() error                             { return nil }
func (e *stubEngine) Pause()                                 { e.paused = true }
func (e *stubEngine) Continue()                              { e.paused = false }
func (e *stubEngine) RegisterSimulationEndHandler(
	_ sim.SimulationEndHandler) {
}
func (e *stubEngine) Finished() {}

var _ = Describe("Monitor", func() {
	var (
		m      *Monitor
		engine *stubEngine
	)

	BeforeEach(func() {
		m = NewMonitor()
		engine = &stubEngine{now: 2.5}
		m.RegisterEngine(engine)
	})

	It("should list registered components", func() {
		m.RegisterComponent(&sampleComponent{
			ComponentBase: sim.NewComponentBase("CompA"),
		})
		m.RegisterComponent(&sampleComponent{
			ComponentBase: sim.NewComponentBase("CompB"),
		})

		rec := httptest.NewRecorder()
		m.listComponents(rec, nil)

		Expect(rec.Body.String()).To(Equal(`["CompA","CompB"]`))
	})

	It("should report the current time", func() {
		rec := httptest.NewRecorder()
		m.now(rec, nil)

		Expect(rec.Body.String()).To(Equal(`{"now":2.5000000000}`))
	})

	It("should pause and continue the engine", func() {
		rec := httptest.NewRecorder()
		m.pauseEngine(rec, nil)
		Expect(engine.paused).To(BeTrue())

		rec = httptest.NewRecorder()
		m.continueEngine(rec, nil)
		Expect(engine.paused).To(BeFalse())
	})

	It("should 404 on unknown components", func() {
		rec := httptest.NewRecorder()

		comp := m.findComponentOr404(rec, "Nope")

		Expect(comp).To(BeNil())
		Expect(rec.Code).To(Equal(404))
	})

	It("should trigger a tick on ticking components", func() {
		c := &sampleTickingComponent{
			ComponentBase: sim.NewComponentBase("Ticker"),
		}
		m.RegisterComponent(c)

		req := httptest.NewRequest("GET", "/api/tick/Ticker", nil)
		req = mux.SetURLVars(req, map[string]string{"name": "Ticker"})
		rec := httptest.NewRecorder()

		m.tick(rec, req)

		Expect(rec.Code).To(Equal(200))
		Expect(c.tickedNow).To(BeTrue())
	})

	It("should reject ticks on components that do not tick", func() {
		m.RegisterComponent(&sampleComponent{
			ComponentBase: sim.NewComponentBase("Plain"),
		})

		req := httptest.NewRequest("GET", "/api/tick/Plain", nil)
		req = mux.SetURLVars(req, map[string]string{"name": "Plain"})
		rec := httptest.NewRecorder()

		m.tick(rec, req)

		Expect(rec.Code).To(Equal(405))
	})

	It("should use a random port when the configured one is privileged",
		func() {
			m.WithPortNumber(80)

			Expect(m.portNumber).To(Equal(0))
		})
})
