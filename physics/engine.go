package physics

import (
	"time"

	"github.com/jakecoffman/cp"
)

const (
	DefaultGravity = 1000.0
	DefaultDelta   = time.Second / 60
)

// Timing tracks simulated time.
type Timing struct {
	Steps     uint64
	Timestamp time.Duration
}

// Engine steps a World and notifies listeners around each step.
type Engine struct {
	world  *World
	delta  time.Duration
	timing Timing
	events listeners
	runner *Runner
}

type EngineOption func(*Engine)

// WithGravity sets the world gravity in px/s², Y-down.
func WithGravity(g cp.Vector) EngineOption {
	return func(e *Engine) {
		e.world.SetGravity(g)
	}
}

// WithDelta sets the fixed step used by Step and by the engine's runner.
func WithDelta(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.delta = d
		}
	}
}

func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		world: NewWorld(cp.Vector{X: 0, Y: DefaultGravity}),
		delta: DefaultDelta,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) World() *World {
	if e == nil {
		return nil
	}
	return e.world
}

// Space returns the underlying Chipmunk space.
func (e *Engine) Space() *cp.Space {
	return e.world.Space()
}

func (e *Engine) Delta() time.Duration {
	return e.delta
}

func (e *Engine) Timing() Timing {
	return e.timing
}

// On subscribes h to the named event. Handlers run in subscription order.
func (e *Engine) On(name EventName, h Handler) {
	e.events.on(name, h)
}

// Update advances the simulation by delta and fires the before/after events
// around the step.
func (e *Engine) Update(delta time.Duration) {
	if e == nil || e.world == nil {
		return
	}
	step := e.timing.Steps + 1
	e.events.emit(Event{Name: EventBeforeUpdate, Step: step, Delta: delta, Timestamp: e.timing.Timestamp})

	e.world.step(delta.Seconds())
	e.timing.Steps = step
	e.timing.Timestamp += delta

	e.events.emit(Event{Name: EventAfterUpdate, Step: step, Delta: delta, Timestamp: e.timing.Timestamp})
}

// Step advances the simulation by the engine's fixed delta.
func (e *Engine) Step() {
	e.Update(e.delta)
}

// Run starts the engine's runner, creating it on first use. The runner only
// advances when ticked by the host loop.
func (e *Engine) Run() *Runner {
	if e.runner == nil {
		e.runner = NewRunner(e, e.delta)
	}
	e.runner.Start()
	return e.runner
}

// Runner returns the runner created by Run, if any.
func (e *Engine) Runner() *Runner {
	return e.runner
}
