package gfx

import (
	"image/color"
	"math"
	"testing"
)

func TestGraphicsRecordsFilledShapes(t *testing.T) {
	g := NewGraphics()
	g.DrawRect(0, 0, 5, 5)
	g.BeginFill(color.RGBA{R: 0xff, A: 0xff}, 1)
	g.DrawRect(0, 0, 30, 20)
	g.EndFill()
	g.BeginFill(color.Black, 0.2)
	g.DrawCircle(15, 10, 2)
	g.EndFill()
	g.DrawCircle(0, 0, 9)

	shapes := g.Shapes()
	if len(shapes) != 2 {
		t.Fatalf("expected 2 shapes, got %d", len(shapes))
	}
	if shapes[0].Kind != ShapeRect || shapes[0].Width != 30 || shapes[0].Height != 20 {
		t.Fatalf("unexpected rect %+v", shapes[0])
	}
	if shapes[0].Fill != (color.NRGBA{R: 0xff, A: 0xff}) {
		t.Fatalf("unexpected rect fill %+v", shapes[0].Fill)
	}
	if shapes[1].Kind != ShapeCircle || shapes[1].Radius != 2 || shapes[1].X != 15 || shapes[1].Y != 10 {
		t.Fatalf("unexpected circle %+v", shapes[1])
	}
	if shapes[1].Fill.A != 51 {
		t.Fatalf("expected alpha 51, got %d", shapes[1].Fill.A)
	}

	g.Clear()
	if len(g.Shapes()) != 0 {
		t.Fatalf("expected no shapes after Clear")
	}
}

func TestContainerAddChild(t *testing.T) {
	c := NewContainer()
	a := NewGraphics()
	b := NewGraphics()
	c.AddChild(a)
	c.AddChild(nil)
	c.AddChild(b)
	children := c.Children()
	if len(children) != 2 || children[0] != a || children[1] != b {
		t.Fatalf("expected children [a b], got %v", children)
	}
}

func TestTickerOrder(t *testing.T) {
	app := NewApplication(640, 480, ApplicationOptions{})
	var got []int
	app.Ticker.Add(func() { got = append(got, 1) })
	app.Ticker.Add(nil)
	app.Ticker.Add(func() { got = append(got, 2) })
	app.Ticker.Tick()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected [1 2], got %v", got)
	}
	if app.Width() != 640 || app.Height() != 480 {
		t.Fatalf("unexpected app size %vx%v", app.Width(), app.Height())
	}
	if app.Background == nil {
		t.Fatalf("expected default background")
	}
}

func TestViewportFollow(t *testing.T) {
	cases := []struct {
		name       string
		radius     float64
		target     Point
		wantCenter Point
	}{
		{"snap_without_radius", 0, Point{X: 700, Y: 900}, Point{X: 700, Y: 900}},
		{"inside_dead_zone", 150, Point{X: 600, Y: 500}, Point{X: 500, Y: 500}},
		{"outside_dead_zone_x", 150, Point{X: 800, Y: 500}, Point{X: 650, Y: 500}},
		{"outside_dead_zone_y", 100, Point{X: 500, Y: 200}, Point{X: 500, Y: 300}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := NewViewport(ViewportOptions{ScreenWidth: 200, ScreenHeight: 200, WorldWidth: 2000, WorldHeight: 2000})
			v.MoveCenter(500, 500)
			target := NewGraphics()
			target.Position = c.target
			v.Follow(target, FollowOptions{Radius: c.radius})
			v.Update()

			got := v.Center()
			if math.Abs(got.X-c.wantCenter.X) > 1e-9 || math.Abs(got.Y-c.wantCenter.Y) > 1e-9 {
				t.Fatalf("expected centre %+v, got %+v", c.wantCenter, got)
			}
			if v.Position.X != -v.Left() || v.Position.Y != -v.Top() {
				t.Fatalf("container offset %+v does not match view", v.Position)
			}
		})
	}
}

func TestViewportClamp(t *testing.T) {
	v := NewViewport(ViewportOptions{ScreenWidth: 640, ScreenHeight: 480, WorldWidth: 2000, WorldHeight: 2000, Clamp: true})
	v.MoveCenter(0, 5000)
	if got := v.Center(); got.X != 320 || got.Y != 1760 {
		t.Fatalf("expected clamped centre (320, 1760), got %+v", got)
	}
	if v.Left() != 0 || v.Top() != 1520 {
		t.Fatalf("expected view at (0, 1520), got (%v, %v)", v.Left(), v.Top())
	}

	small := NewViewport(ViewportOptions{ScreenWidth: 640, ScreenHeight: 480, WorldWidth: 640, WorldHeight: 480, Clamp: true})
	small.MoveCenter(1000, 1000)
	if got := small.Center(); got.X != 320 || got.Y != 240 {
		t.Fatalf("expected centred view, got %+v", got)
	}
}

func TestViewportNoTarget(t *testing.T) {
	v := NewViewport(ViewportOptions{ScreenWidth: 100, ScreenHeight: 100})
	v.Update()
	if got := v.Center(); got.X != 50 || got.Y != 50 {
		t.Fatalf("expected initial centre (50, 50), got %+v", got)
	}
}
