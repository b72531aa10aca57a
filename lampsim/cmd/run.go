package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sarchlab/lampsim/device"
	"github.com/sarchlab/lampsim/flash"
	"github.com/sarchlab/lampsim/sim"
	"github.com/sarchlab/lampsim/simulation"
)

var runFlags = struct {
	period      float64
	pressAt     float64
	holdFor     float64
	freq        float64
	monitor     bool
	monitorPort int
	output      string
}{}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scripted button-flash session in virtual time.",
	Long: `Run presses the simulated button at a given time, holds it for ` +
		`a given duration, and lets the button-flash behavior blink the ` +
		`light until the release. The session is fully deterministic and ` +
		`leaves a state-transition trace in the output database.`,
	Run: func(cmd *cobra.Command, args []string) {
		runSession()
	},
}

func init() {
	runCmd.Flags().Float64Var(&runFlags.period, "period", 1.0,
		"blink half-period in virtual seconds")
	runCmd.Flags().Float64Var(&runFlags.pressAt, "press-at", 0.25,
		"virtual time at which the button is pressed")
	runCmd.Flags().Float64Var(&runFlags.holdFor, "hold-for", 3.0,
		"how long the button is held, in virtual seconds")
	runCmd.Flags().Float64Var(&runFlags.freq, "freq", 10,
		"polling frequency of the frame executive, in Hz")
	runCmd.Flags().BoolVar(&runFlags.monitor, "monitor", false,
		"start the monitoring server")
	runCmd.Flags().IntVar(&runFlags.monitorPort, "monitor-port",
		envInt("LAMPSIM_MONITOR_PORT", 0),
		"port for the monitoring server, 0 picks a random port")
	runCmd.Flags().StringVar(&runFlags.output, "output",
		os.Getenv("LAMPSIM_OUTPUT"),
		"name of the output trace database")

	rootCmd.AddCommand(runCmd)
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring %s=%q: %s\n", key, v, err)
		return fallback
	}

	return n
}

type pressEvent struct {
	*sim.EventBase
}

type releaseEvent struct {
	*sim.EventBase
}

type stopEvent struct {
	*sim.EventBase
}

// buttonScript stands in for the outside world: it flips the fake button at
// the scripted times and stops the executive once the session is over.
type buttonScript struct {
	io   *device.FakeIO
	comp *sim.TickingComponent
}

func (s *buttonScript) Handle(e sim.Event) error {
	switch e.(type) {
	case pressEvent:
		s.io.PressButton()
	case releaseEvent:
		s.io.ReleaseButton()
	case stopEvent:
		s.comp.StopFreeRunning()
	}

	return nil
}

func runSession() {
	builder := simulation.MakeBuilder()
	if !runFlags.monitor {
		builder = builder.WithoutMonitoring()
	} else if runFlags.monitorPort > 0 {
		builder = builder.WithMonitorPort(runFlags.monitorPort)
	}
	if runFlags.output != "" {
		builder = builder.WithOutputFileName(runFlags.output)
	}

	s := builder.Build()
	engine := s.GetEngine()

	io := device.NewFakeIO()
	timer := device.NewDeadlineTimer(engine)
	behavior := flash.NewBehavior("Flasher", io, timer).
		WithPeriod(sim.VTimeInSec(runFlags.period))
	behavior.AcceptHook(s.GetStateTracer())

	comp := sim.NewFreeRunningTickingComponent(
		"Flasher.Comp", engine, sim.Freq(runFlags.freq)*sim.Hz, behavior)
	s.RegisterComponent(comp)
	comp.TickLater()

	script := &buttonScript{io: io, comp: comp}
	releaseAt := runFlags.pressAt + runFlags.holdFor
	stopAt := releaseAt + runFlags.period

	engine.Schedule(pressEvent{
		sim.NewEventBase(sim.VTimeInSec(runFlags.pressAt), script)})
	engine.Schedule(releaseEvent{
		sim.NewEventBase(sim.VTimeInSec(releaseAt), script)})
	engine.Schedule(stopEvent{
		sim.NewEventBase(sim.VTimeInSec(stopAt), script)})

	err := engine.Run()
	if err != nil {
		panic(err)
	}

	fmt.Printf("Session finished at %.2f virtual seconds\n",
		float64(engine.CurrentTime()))
	fmt.Printf("Final state: %s, light: %s\n",
		behavior.State(), io.Light())
	fmt.Printf("Transitions recorded: %d\n",
		s.GetStateTracer().NumTransitions())

	s.Terminate()
}
