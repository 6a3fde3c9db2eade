package physics

import "github.com/jakecoffman/cp"

const defaultIterations = 20

// World owns the Chipmunk space and every body registered with it.
type World struct {
	space   *cp.Space
	gravity cp.Vector
	bodies  []*Body
}

// NewWorld creates a world with the given gravity (Y-down, px/s²).
func NewWorld(gravity cp.Vector) *World {
	space := cp.NewSpace()
	space.Iterations = defaultIterations
	space.SetGravity(gravity)
	return &World{space: space, gravity: gravity}
}

// AddBody registers a body with the world. Registering the same body twice
// lists it twice but adds it to the space once.
func (w *World) AddBody(b *Body) {
	if w == nil || b == nil {
		return
	}
	w.bodies = append(w.bodies, b)
	if b.world == w {
		return
	}
	b.world = w
	b.integrateWith(w)
	w.space.AddBody(b.body)
	w.space.AddShape(b.shape)
}

// Bodies returns the registered bodies in registration order.
func (w *World) Bodies() []*Body {
	if w == nil {
		return nil
	}
	bodies := make([]*Body, 0, len(w.bodies))
	return append(bodies, w.bodies...)
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

func (w *World) Gravity() cp.Vector {
	return w.gravity
}

func (w *World) SetGravity(g cp.Vector) {
	w.gravity = g
	w.space.SetGravity(g)
}

func (w *World) step(dt float64) {
	w.space.Step(dt)
}
