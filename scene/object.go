package scene

import (
	"image/color"

	"github.com/milk9111/physbox/gfx"
	"github.com/milk9111/physbox/physics"
)

const defaultDotRadius = 2

// debugFill marks the pivot and the local axis of a shape.
var debugFill = color.Black

const debugAlpha = 0.2

// GameObject pairs a physics body with the graphics node that shows it.
type GameObject interface {
	Body() *physics.Body
	Graphics() *gfx.Graphics
	// Update copies the body's position and angle onto the graphics node.
	Update()
}

// GraphicsOptions describes how a shape is filled.
type GraphicsOptions struct {
	Color color.Color
	// Alpha of the fill; zero means opaque.
	Alpha float64
	// DotRadius of the debug pivot marker; zero means 2.
	DotRadius float64
	// Debug overlays the pivot marker and an axis line.
	Debug bool
}

func (o GraphicsOptions) alpha() float64 {
	if o.Alpha == 0 {
		return 1
	}
	return o.Alpha
}

func (o GraphicsOptions) dotRadius() float64 {
	if o.DotRadius == 0 {
		return defaultDotRadius
	}
	return o.DotRadius
}

func (o GraphicsOptions) color() color.Color {
	if o.Color == nil {
		return color.White
	}
	return o.Color
}

// object holds the two handles every shape variant carries.
type object struct {
	body     *physics.Body
	graphics *gfx.Graphics
}

func (o *object) Body() *physics.Body {
	return o.body
}

func (o *object) Graphics() *gfx.Graphics {
	return o.graphics
}

func (o *object) Update() {
	o.syncPosition()
	o.graphics.Rotation = o.body.Angle()
}

func (o *object) syncPosition() {
	p := o.body.Position()
	o.graphics.Position.Set(p.X, p.Y)
}
