// Package gfx is a small retained scene graph: containers and filled
// graphics nodes with a position, pivot and rotation. It holds no renderer
// state; package render draws it.
package gfx

type Point struct {
	X float64
	Y float64
}

func (p *Point) Set(x, y float64) {
	p.X = x
	p.Y = y
}

// Transform places a node in its parent. The local point Pivot lands on
// Position, and the node rotates about it.
type Transform struct {
	Position Point
	Pivot    Point
	Rotation float64
}

// Node is anything that can live in the scene graph.
type Node interface {
	Local() *Transform
	Children() []Node
}

// Container groups child nodes under a shared transform.
type Container struct {
	Transform
	children []Node
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Local() *Transform {
	return &c.Transform
}

// AddChild appends n. Children draw in insertion order.
func (c *Container) AddChild(n Node) {
	if c == nil || n == nil {
		return
	}
	c.children = append(c.children, n)
}

func (c *Container) Children() []Node {
	if c == nil {
		return nil
	}
	return c.children
}
