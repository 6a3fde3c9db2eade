package scene

import (
	"github.com/milk9111/physbox/gfx"
	"github.com/milk9111/physbox/physics"
)

// Scene registers game objects with a physics world and a render container,
// and keeps the graphics of the dynamic ones in step with their bodies.
type Scene struct {
	world     *physics.World
	container *gfx.Container

	objects []GameObject
	live    []GameObject
}

func NewScene(world *physics.World, container *gfx.Container) *Scene {
	return &Scene{world: world, container: container}
}

// AddGameObject registers obj. An object whose body is static when added is
// never updated. Adding the same object twice registers it twice.
func (s *Scene) AddGameObject(obj GameObject) {
	s.world.AddBody(obj.Body())
	s.container.AddChild(obj.Graphics())
	s.objects = append(s.objects, obj)
	if !obj.Body().IsStatic() {
		s.live = append(s.live, obj)
	}
}

// Add registers objs in order.
func (s *Scene) Add(objs ...GameObject) {
	for _, obj := range objs {
		s.AddGameObject(obj)
	}
}

// Update syncs every live object, in insertion order.
func (s *Scene) Update() {
	for _, obj := range s.live {
		obj.Update()
	}
}

// Objects returns every registered object in insertion order.
func (s *Scene) Objects() []GameObject {
	objs := make([]GameObject, 0, len(s.objects))
	return append(objs, s.objects...)
}

// LiveObjects returns the objects Update visits.
func (s *Scene) LiveObjects() []GameObject {
	objs := make([]GameObject, 0, len(s.live))
	return append(objs, s.live...)
}
