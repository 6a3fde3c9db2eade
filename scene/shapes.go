package scene

import (
	"github.com/milk9111/physbox/gfx"
	"github.com/milk9111/physbox/physics"
)

// Box is a rectangle centred on its body.
type Box struct {
	object
	width  float64
	height float64
}

// NewBox creates a width×height box centred on (x, y). The graphics pivot is
// the box centre so that it rotates with the body.
func NewBox(x, y, width, height float64, gopts GraphicsOptions, bopts physics.BodyOptions) *Box {
	b := &Box{
		object: object{
			body:     physics.NewRectangle(x, y, width, height, bopts),
			graphics: gfx.NewGraphics(),
		},
		width:  width,
		height: height,
	}
	b.draw(gopts)
	return b
}

func (b *Box) Width() float64  { return b.width }
func (b *Box) Height() float64 { return b.height }

func (b *Box) draw(opts GraphicsOptions) {
	g := b.graphics
	g.BeginFill(opts.color(), opts.alpha())
	g.DrawRect(0, 0, b.width, b.height)
	g.EndFill()
	if opts.Debug {
		b.drawDebug(opts)
	}
	g.Pivot.Set(b.width/2, b.height/2)
	b.syncPosition()
}

// drawDebug marks the pivot and a line from it to the top edge.
func (b *Box) drawDebug(opts GraphicsOptions) {
	g := b.graphics
	g.BeginFill(debugFill, debugAlpha)
	g.DrawCircle(b.width/2, b.height/2, opts.dotRadius())
	g.DrawRect(b.width/2, 0, 1, b.height/2)
	g.EndFill()
}

// Circle is a disc centred on its body.
type Circle struct {
	object
	radius float64
}

// NewCircle creates a circle of radius centred on (x, y). The shape is drawn
// around the local origin, so the pivot stays at (0, 0).
func NewCircle(x, y, radius float64, gopts GraphicsOptions, bopts physics.BodyOptions) *Circle {
	c := &Circle{
		object: object{
			body:     physics.NewCircle(x, y, radius, bopts),
			graphics: gfx.NewGraphics(),
		},
		radius: radius,
	}
	c.draw(gopts)
	return c
}

func (c *Circle) Radius() float64 { return c.radius }

func (c *Circle) draw(opts GraphicsOptions) {
	g := c.graphics
	g.BeginFill(opts.color(), opts.alpha())
	g.DrawCircle(0, 0, c.radius)
	g.EndFill()
	if opts.Debug {
		c.drawDebug(opts)
	}
	c.syncPosition()
}

func (c *Circle) drawDebug(opts GraphicsOptions) {
	g := c.graphics
	g.BeginFill(debugFill, debugAlpha)
	g.DrawCircle(0, 0, opts.dotRadius())
	g.DrawRect(0, -c.radius, 2, c.radius)
	g.EndFill()
}
