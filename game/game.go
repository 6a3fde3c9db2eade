package game

import (
	"context"
	"image/color"
	"log"
	"math"

	"github.com/milk9111/physbox/config"
	"github.com/milk9111/physbox/gfx"
	"github.com/milk9111/physbox/layout"
	"github.com/milk9111/physbox/physics"
	"github.com/milk9111/physbox/scene"
)

var (
	colorGround = color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
	colorRed    = color.RGBA{R: 0xff, A: 0xff}
	colorBlue   = color.RGBA{B: 0xff, A: 0xff}
	colorGreen  = color.RGBA{G: 0xff, A: 0xff}
)

// Game owns the simulation, the camera and the scene for one run.
type Game struct {
	app      *gfx.Application
	engine   *physics.Engine
	cfg      config.Config
	viewport *gfx.Viewport
	scene    *scene.Scene
	target   scene.GameObject
	debug    *physics.DebugView
	started  bool

	layout *layout.Spec
}

type Option func(*Game)

// WithLayout replaces the built-in arrangement. A script left on the spec
// is run when the objects are built.
func WithLayout(spec layout.Spec) Option {
	return func(g *Game) {
		g.layout = &spec
	}
}

// NewGame builds the camera, the scene and the initial objects. app and
// engine are created by the caller.
func NewGame(app *gfx.Application, engine *physics.Engine, cfg config.Config, opts ...Option) *Game {
	g := &Game{
		app:    app,
		engine: engine,
		cfg:    cfg,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.viewport = gfx.NewViewport(gfx.ViewportOptions{
		ScreenWidth:  cfg.Viewport.Width,
		ScreenHeight: cfg.Viewport.Height,
		WorldWidth:   cfg.Canvas.Width,
		WorldHeight:  cfg.Canvas.Height,
		Clamp:        true,
	})
	app.Stage.AddChild(g.viewport)
	app.Ticker.Add(g.viewport.Update)

	g.scene = scene.NewScene(engine.World(), &g.viewport.Container)
	g.buildWorld()
	return g
}

func (g *Game) buildWorld() {
	objs, target := g.initialObjects()
	if target != nil {
		g.viewport.Follow(target.Graphics(), gfx.FollowOptions{Radius: g.cfg.FollowRadius})
	}
	g.target = target
	g.scene.Add(objs...)
}

func (g *Game) initialObjects() ([]scene.GameObject, scene.GameObject) {
	if g.layout != nil {
		objs, target, err := g.buildLayout(*g.layout)
		if err == nil {
			return objs, target
		}
		log.Printf("game: layout %s: %v; using the default arrangement", g.layout.Name, err)
	}
	return DefaultLayout(g.cfg)
}

// buildLayout runs the layout's script, if it still has one, and builds the
// objects.
func (g *Game) buildLayout(spec layout.Spec) ([]scene.GameObject, scene.GameObject, error) {
	spec, err := layout.Expand(context.Background(), spec, g.cfg.Canvas.Width, g.cfg.Canvas.Height)
	if err != nil {
		return nil, nil, err
	}
	return layout.Build(spec, g.cfg.Debug)
}

// DefaultLayout is the stock arrangement: a static ground, three dynamic
// boxes, two static tilted boxes and a dynamic circle the camera follows.
func DefaultLayout(cfg config.Config) (objs []scene.GameObject, target scene.GameObject) {
	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	opts := func(c color.Color) scene.GraphicsOptions {
		return scene.GraphicsOptions{Color: c, Debug: cfg.Debug}
	}

	ground := scene.NewBox(w/2, h-100, w, 10, opts(colorGround), physics.BodyOptions{IsStatic: true})
	box1 := scene.NewBox(215, 0, 30, 20, opts(colorRed), physics.BodyOptions{})
	box2 := scene.NewBox(255, 0, 30, 20, opts(colorBlue), physics.BodyOptions{})
	box3 := scene.NewBox(220, 200, 80, 80, opts(colorGreen), physics.BodyOptions{Angle: math.Pi / 6})
	box4 := scene.NewBox(300, 10, 100, 100, opts(colorGround), physics.BodyOptions{Angle: math.Pi / 16, IsStatic: true})
	box5 := scene.NewBox(190, h/2, 100, 100, opts(colorGround), physics.BodyOptions{Angle: math.Pi / 16, IsStatic: true})
	circle := scene.NewCircle(240, 10, 50, opts(colorBlue), physics.BodyOptions{})

	return []scene.GameObject{ground, box1, box2, box3, box4, box5, circle}, circle
}

// Start hooks the scene to the engine's post-step event and starts the
// engine's runner. From here on the runner decides when to step.
func (g *Game) Start() {
	if g.started {
		return
	}
	g.engine.On(physics.EventAfterUpdate, func(physics.Event) { g.Update() })
	g.engine.Run()
	g.started = true
}

// DebugRender attaches a raw view of the physics bodies. It does not touch
// the primary render path.
func (g *Game) DebugRender() *physics.DebugView {
	if g.debug == nil {
		g.debug = physics.NewDebugView(g.engine, g.cfg.Canvas.Width, g.cfg.Canvas.Height)
	}
	return g.debug
}

// Update syncs the scene with the latest physics state.
func (g *Game) Update() {
	g.scene.Update()
}

func (g *Game) App() *gfx.Application         { return g.app }
func (g *Game) Engine() *physics.Engine       { return g.engine }
func (g *Game) Config() config.Config         { return g.cfg }
func (g *Game) Scene() *scene.Scene           { return g.scene }
func (g *Game) Viewport() *gfx.Viewport       { return g.viewport }
func (g *Game) Target() scene.GameObject      { return g.target }
func (g *Game) DebugView() *physics.DebugView { return g.debug }
func (g *Game) Started() bool                 { return g.started }
