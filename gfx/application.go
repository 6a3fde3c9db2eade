package gfx

import "image/color"

type ApplicationOptions struct {
	Background color.Color
}

// Application owns the root of the scene graph and a per-frame ticker.
type Application struct {
	Stage      *Container
	Ticker     *Ticker
	Background color.Color

	width  float64
	height float64
}

func NewApplication(width, height float64, opts ApplicationOptions) *Application {
	bg := opts.Background
	if bg == nil {
		bg = color.Black
	}
	return &Application{
		Stage:      NewContainer(),
		Ticker:     &Ticker{},
		Background: bg,
		width:      width,
		height:     height,
	}
}

func (a *Application) Width() float64 {
	return a.width
}

func (a *Application) Height() float64 {
	return a.height
}

// Ticker calls its listeners once per rendered frame.
type Ticker struct {
	listeners []func()
}

func (t *Ticker) Add(fn func()) {
	if fn == nil {
		return
	}
	t.listeners = append(t.listeners, fn)
}

func (t *Ticker) Tick() {
	if t == nil {
		return
	}
	for _, fn := range t.listeners {
		fn()
	}
}
