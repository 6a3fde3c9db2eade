package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	DefaultDensity  = 0.001
	DefaultFriction = 0.1
)

// BodyOptions configures a body at creation. Zero Density or Friction select
// the defaults.
type BodyOptions struct {
	IsStatic    bool
	Angle       float64
	Density     float64
	Friction    float64
	Restitution float64
}

func (o BodyOptions) withDefaults() BodyOptions {
	if o.Density <= 0 {
		o.Density = DefaultDensity
	}
	if o.Friction <= 0 {
		o.Friction = DefaultFriction
	}
	return o
}

// Body is a rigid body and its single collision shape.
type Body struct {
	body  *cp.Body
	shape *cp.Shape
	world *World
}

// NewRectangle creates a box body centred on (x, y).
func NewRectangle(x, y, width, height float64, opts BodyOptions) *Body {
	opts = opts.withDefaults()

	var body *cp.Body
	if opts.IsStatic {
		body = cp.NewStaticBody()
	} else {
		mass := opts.Density * width * height
		body = cp.NewBody(mass, cp.MomentForBox(mass, width, height))
	}
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetAngle(opts.Angle)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(opts.Friction)
	shape.SetElasticity(opts.Restitution)

	return &Body{body: body, shape: shape}
}

// NewCircle creates a circle body centred on (x, y).
func NewCircle(x, y, radius float64, opts BodyOptions) *Body {
	opts = opts.withDefaults()

	var body *cp.Body
	if opts.IsStatic {
		body = cp.NewStaticBody()
	} else {
		mass := opts.Density * math.Pi * radius * radius
		body = cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	}
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetAngle(opts.Angle)

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(opts.Friction)
	shape.SetElasticity(opts.Restitution)

	return &Body{body: body, shape: shape}
}

func (b *Body) Position() cp.Vector {
	return b.body.Position()
}

func (b *Body) Angle() float64 {
	return b.body.Angle()
}

func (b *Body) Velocity() cp.Vector {
	return b.body.Velocity()
}

// IsStatic reports whether the body is excluded from integration.
func (b *Body) IsStatic() bool {
	return b.body.GetType() == cp.BODY_STATIC
}

// CP returns the underlying Chipmunk body.
func (b *Body) CP() *cp.Body {
	return b.body
}

func (b *Body) Shape() *cp.Shape {
	return b.shape
}

// integrateWith makes a dynamic body integrate velocity before position, so
// a body at rest moves on its first step. Gravity is read from w at step time
// and the space's own velocity pass becomes a no-op.
func (b *Body) integrateWith(w *World) {
	if b.IsStatic() {
		return
	}
	b.body.SetPositionUpdateFunc(func(body *cp.Body, dt float64) {
		cp.BodyUpdateVelocity(body, w.gravity, 1, dt)
		cp.BodyUpdatePosition(body, dt)
	})
	b.body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {})
}
