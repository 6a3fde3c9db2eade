package physics

import "github.com/jakecoffman/cp"

// DebugView draws the raw bodies of an engine with Chipmunk's own debug
// drawing, independently of any scene graph.
type DebugView struct {
	engine *Engine
	Width  float64
	Height float64
}

func NewDebugView(engine *Engine, width, height float64) *DebugView {
	return &DebugView{engine: engine, Width: width, Height: height}
}

// Draw walks every shape, constraint and contact of the space into d.
func (v *DebugView) Draw(d cp.Drawer) {
	if v == nil || v.engine == nil || d == nil {
		return
	}
	cp.DrawSpace(v.engine.Space(), d)
}
