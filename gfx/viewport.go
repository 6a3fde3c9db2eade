package gfx

import "math"

type ViewportOptions struct {
	ScreenWidth  float64
	ScreenHeight float64
	WorldWidth   float64
	WorldHeight  float64
	// Clamp keeps the view inside the world when the world is larger than
	// the screen.
	Clamp bool
}

type FollowOptions struct {
	// Radius is the dead zone around the view centre inside which the target
	// may move without moving the view. Zero snaps the view to the target.
	Radius float64
}

// Viewport is a container that acts as a camera over a larger world. Its
// children are in world coordinates.
type Viewport struct {
	Container

	opts   ViewportOptions
	target *Graphics
	follow FollowOptions

	// view centre in world coordinates
	centerX float64
	centerY float64
}

func NewViewport(opts ViewportOptions) *Viewport {
	v := &Viewport{opts: opts}
	v.MoveCenter(opts.ScreenWidth/2, opts.ScreenHeight/2)
	return v
}

func (v *Viewport) ScreenWidth() float64  { return v.opts.ScreenWidth }
func (v *Viewport) ScreenHeight() float64 { return v.opts.ScreenHeight }
func (v *Viewport) WorldWidth() float64   { return v.opts.WorldWidth }
func (v *Viewport) WorldHeight() float64  { return v.opts.WorldHeight }

// Follow makes Update track target. A nil target stops following.
func (v *Viewport) Follow(target *Graphics, opts FollowOptions) {
	v.target = target
	v.follow = opts
}

func (v *Viewport) Target() *Graphics {
	return v.target
}

// Update moves the view the least distance needed to bring the followed
// target back inside the dead zone.
func (v *Viewport) Update() {
	if v == nil || v.target == nil {
		return
	}
	tx := v.target.Position.X
	ty := v.target.Position.Y
	if r := v.follow.Radius; r > 0 {
		dx := tx - v.centerX
		dy := ty - v.centerY
		if math.Hypot(dx, dy) <= r {
			return
		}
		angle := math.Atan2(dy, dx)
		tx -= math.Cos(angle) * r
		ty -= math.Sin(angle) * r
	}
	v.MoveCenter(tx, ty)
}

// MoveCenter centres the view on (x, y), subject to clamping.
func (v *Viewport) MoveCenter(x, y float64) {
	if v.opts.Clamp {
		x = clampAxis(x, v.opts.ScreenWidth, v.opts.WorldWidth)
		y = clampAxis(y, v.opts.ScreenHeight, v.opts.WorldHeight)
	}
	v.centerX = x
	v.centerY = y
	v.Position.Set(-v.Left(), -v.Top())
}

func (v *Viewport) Center() Point {
	return Point{X: v.centerX, Y: v.centerY}
}

// Left is the world X at the screen's left edge.
func (v *Viewport) Left() float64 {
	return v.centerX - v.opts.ScreenWidth/2
}

// Top is the world Y at the screen's top edge.
func (v *Viewport) Top() float64 {
	return v.centerY - v.opts.ScreenHeight/2
}

func clampAxis(c, screen, world float64) float64 {
	if world <= 0 {
		return c
	}
	if world <= screen {
		return world / 2
	}
	half := screen / 2
	if c < half {
		return half
	}
	if c > world-half {
		return world - half
	}
	return c
}
