package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/physbox/gfx"
)

const (
	minCircleSegments = 16
	maxCircleSegments = 64
)

// Renderer draws a gfx scene graph with ebiten.
type Renderer struct {
	whiteImage *ebiten.Image
	vertices   []ebiten.Vertex
	indices    []uint16
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw clears screen to the application background and draws the stage.
func (r *Renderer) Draw(screen *ebiten.Image, app *gfx.Application) {
	if r == nil || screen == nil || app == nil {
		return
	}
	screen.Fill(app.Background)
	r.drawNode(screen, app.Stage, ebiten.GeoM{})
}

func (r *Renderer) drawNode(dst *ebiten.Image, n gfx.Node, parent ebiten.GeoM) {
	geo := NodeGeoM(n.Local())
	geo.Concat(parent)

	if g, ok := n.(*gfx.Graphics); ok {
		for _, s := range g.Shapes() {
			r.fillShape(dst, s, geo)
		}
	}
	for _, child := range n.Children() {
		r.drawNode(dst, child, geo)
	}
}

// NodeGeoM maps a node's local space into its parent: the pivot moves to the
// origin, the node rotates, then moves to its position.
func NodeGeoM(t *gfx.Transform) ebiten.GeoM {
	var geo ebiten.GeoM
	geo.Translate(-t.Pivot.X, -t.Pivot.Y)
	geo.Rotate(t.Rotation)
	geo.Translate(t.Position.X, t.Position.Y)
	return geo
}

// ShapeOutline returns the polygon for s in its local space.
func ShapeOutline(s gfx.Shape) []gfx.Point {
	switch s.Kind {
	case gfx.ShapeRect:
		return []gfx.Point{
			{X: s.X, Y: s.Y},
			{X: s.X + s.Width, Y: s.Y},
			{X: s.X + s.Width, Y: s.Y + s.Height},
			{X: s.X, Y: s.Y + s.Height},
		}
	case gfx.ShapeCircle:
		n := int(s.Radius)
		if n < minCircleSegments {
			n = minCircleSegments
		}
		if n > maxCircleSegments {
			n = maxCircleSegments
		}
		pts := make([]gfx.Point, 0, n)
		for i := 0; i < n; i++ {
			a := 2 * math.Pi * float64(i) / float64(n)
			pts = append(pts, gfx.Point{X: s.X + math.Cos(a)*s.Radius, Y: s.Y + math.Sin(a)*s.Radius})
		}
		return pts
	}
	return nil
}

func (r *Renderer) fillShape(dst *ebiten.Image, s gfx.Shape, geo ebiten.GeoM) {
	pts := ShapeOutline(s)
	if len(pts) < 3 || s.Fill.A == 0 {
		return
	}

	var path vector.Path
	for i, p := range pts {
		x, y := geo.Apply(p.X, p.Y)
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
			continue
		}
		path.LineTo(float32(x), float32(y))
	}
	path.Close()

	r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	cr, cg, cb, ca := straight(s.Fill)
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = cr
		r.vertices[i].ColorG = cg
		r.vertices[i].ColorB = cb
		r.vertices[i].ColorA = ca
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(r.vertices, r.indices, r.white(), op)
}

func (r *Renderer) white() *ebiten.Image {
	if r.whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return r.whiteImage
}

func straight(c color.NRGBA) (r, g, b, a float32) {
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff
}
