// Package tracing records behavior state transitions through the
// datarecording backend, so a run leaves a queryable trace of every
// transition with its virtual time.
package tracing

import (
	"github.com/sarchlab/lampsim/datarecording"
	"github.com/sarchlab/lampsim/flash"
	"github.com/sarchlab/lampsim/sim"
)

type transitionTableEntry struct {
	Time     float64
	Behavior string
	From     string
	To       string
	Light    string
}

// A StateTracer is a hook that stores behavior state transitions into a
// database. Attach it to a flash.Behavior with AcceptHook.
type StateTracer struct {
	timeTeller sim.TimeTeller
	backend    datarecording.DataRecorder

	tableName string
	count     int
}

// NewStateTracer creates a StateTracer that timestamps transitions with the
// given TimeTeller and stores them through the given backend.
func NewStateTracer(
	timeTeller sim.TimeTeller,
	backend datarecording.DataRecorder,
) *StateTracer {
	t := &StateTracer{
		timeTeller: timeTeller,
		backend:    backend,
		tableName:  "state_transitions",
	}

	t.backend.CreateTable(t.tableName, transitionTableEntry{})

	return t
}

// Func records the transition if the hook is triggered at the transition
// position.
func (t *StateTracer) Func(ctx sim.HookCtx) {
	if ctx.Pos != flash.HookPosStateTransition {
		return
	}

	info, ok := ctx.Item.(flash.TransitionInfo)
	if !ok {
		return
	}

	name := ""
	if named, ok := ctx.Domain.(sim.Named); ok {
		name = named.Name()
	}

	light := ""
	if info.LightChanged {
		light = info.Light.String()
	}

	t.backend.InsertData(t.tableName, transitionTableEntry{
		Time:     float64(t.timeTeller.CurrentTime()),
		Behavior: name,
		From:     info.From.String(),
		To:       info.To.String(),
		Light:    light,
	})
	t.count++
}

// NumTransitions returns the number of transitions recorded so far.
func (t *StateTracer) NumTransitions() int {
	return t.count
}
