package gfx

import "image/color"

type ShapeKind int

const (
	ShapeRect ShapeKind = iota + 1
	ShapeCircle
)

// Shape is one filled primitive in a Graphics node's local space.
type Shape struct {
	Kind ShapeKind
	Fill color.NRGBA
	// Rect: X, Y is the top-left corner. Circle: X, Y is the centre.
	X, Y          float64
	Width, Height float64
	Radius        float64
}

// Graphics records filled rectangles and circles. Shapes drawn outside a
// BeginFill/EndFill pair are not recorded.
type Graphics struct {
	Transform
	shapes  []Shape
	fill    color.NRGBA
	filling bool
}

func NewGraphics() *Graphics {
	return &Graphics{}
}

func (g *Graphics) Local() *Transform {
	return &g.Transform
}

func (g *Graphics) Children() []Node {
	return nil
}

// BeginFill sets the fill for subsequent shapes. alpha multiplies the
// colour's own alpha.
func (g *Graphics) BeginFill(c color.Color, alpha float64) *Graphics {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*clamp01(alpha) + 0.5)
	g.fill = n
	g.filling = true
	return g
}

func (g *Graphics) EndFill() *Graphics {
	g.filling = false
	return g
}

func (g *Graphics) DrawRect(x, y, width, height float64) *Graphics {
	if g.filling {
		g.shapes = append(g.shapes, Shape{Kind: ShapeRect, Fill: g.fill, X: x, Y: y, Width: width, Height: height})
	}
	return g
}

func (g *Graphics) DrawCircle(x, y, radius float64) *Graphics {
	if g.filling {
		g.shapes = append(g.shapes, Shape{Kind: ShapeCircle, Fill: g.fill, X: x, Y: y, Radius: radius})
	}
	return g
}

// Clear drops every recorded shape.
func (g *Graphics) Clear() *Graphics {
	g.shapes = nil
	g.filling = false
	return g
}

func (g *Graphics) Shapes() []Shape {
	return g.shapes
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
