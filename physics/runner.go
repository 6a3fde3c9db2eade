package physics

import "time"

// maxSubSteps bounds catch-up work after a long stall (window drag, breakpoint).
const maxSubSteps = 5

// Runner advances an Engine in fixed deltas based on elapsed wall time. It
// has no timer of its own: the host event loop calls Tick once per frame.
type Runner struct {
	engine  *Engine
	delta   time.Duration
	now     func() time.Time
	last    time.Time
	acc     time.Duration
	running bool
}

func NewRunner(engine *Engine, delta time.Duration) *Runner {
	if delta <= 0 {
		delta = DefaultDelta
	}
	return &Runner{engine: engine, delta: delta, now: time.Now}
}

// SetClock replaces the wall clock.
func (r *Runner) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	r.now = now
}

func (r *Runner) Start() {
	if r.running {
		return
	}
	r.running = true
	r.last = r.now()
	r.acc = 0
}

func (r *Runner) Stop() {
	r.running = false
}

func (r *Runner) Running() bool {
	return r != nil && r.running
}

// Tick performs as many fixed steps as the elapsed time allows and returns
// the number of steps taken.
func (r *Runner) Tick() int {
	if r == nil || !r.running || r.engine == nil {
		return 0
	}
	now := r.now()
	r.acc += now.Sub(r.last)
	r.last = now

	steps := 0
	for r.acc >= r.delta && steps < maxSubSteps {
		r.engine.Update(r.delta)
		r.acc -= r.delta
		steps++
	}
	if steps == maxSubSteps {
		r.acc = 0
	}
	return steps
}
