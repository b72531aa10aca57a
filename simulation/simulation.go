// Package simulation assembles an engine, a data recorder, a monitor, and
// the simulated components into one runnable unit.
package simulation

import (
	"github.com/sarchlab/lampsim/datarecording"
	"github.com/sarchlab/lampsim/monitoring"
	"github.com/sarchlab/lampsim/sim"
	"github.com/sarchlab/lampsim/tracing"
)

// A Simulation provides the services required to define a simulation.
type Simulation struct {
	id string

	engine       sim.Engine
	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor
	stateTracer  *tracing.StateTracer

	components    []sim.Component
	compNameIndex map[string]int
}

// ID returns the unique ID of the simulation run.
func (s *Simulation) ID() string {
	return s.id
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation) GetEngine() sim.Engine {
	return s.engine
}

// GetDataRecorder returns the data recorder used in the simulation.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor used in the simulation. It is nil when
// monitoring is disabled.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// GetStateTracer returns the tracer that records behavior state transitions.
func (s *Simulation) GetStateTracer() *tracing.StateTracer {
	return s.stateTracer
}

// RegisterComponent registers a component with the simulation.
func (s *Simulation) RegisterComponent(c sim.Component) {
	compName := c.Name()
	if _, exists := s.compNameIndex[compName]; exists {
		panic("component " + compName + " already registered")
	}

	s.components = append(s.components, c)
	s.compNameIndex[compName] = len(s.components) - 1

	if s.monitor != nil {
		s.monitor.RegisterComponent(c)
	}
}

// GetComponentByName returns the component with the given name.
func (s *Simulation) GetComponentByName(name string) sim.Component {
	return s.components[s.compNameIndex[name]]
}

// Components returns all the registered components.
func (s *Simulation) Components() []sim.Component {
	return s.components
}

// Terminate terminates the simulation, flushing and closing the data
// recorder.
func (s *Simulation) Terminate() {
	s.dataRecorder.Close()
}
