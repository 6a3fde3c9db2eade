package layout

import (
	"fmt"
	"math"

	"github.com/milk9111/physbox/physics"
	"github.com/milk9111/physbox/scene"
)

// Build creates the game objects of spec in order. target is the first
// object marked follow, or nil.
func Build(spec Spec, debug bool) (objs []scene.GameObject, target scene.GameObject, err error) {
	objs = make([]scene.GameObject, 0, len(spec.Objects))
	for i, o := range spec.Objects {
		obj, err := buildObject(o, debug)
		if err != nil {
			return nil, nil, fmt.Errorf("layout: %s: objects[%d]: %w", spec.Name, i, err)
		}
		objs = append(objs, obj)
		if o.Follow && target == nil {
			target = obj
		}
	}
	return objs, target, nil
}

func buildObject(o ObjectSpec, debug bool) (scene.GameObject, error) {
	c, err := ParseColor(o.Color)
	if err != nil {
		return nil, err
	}
	gopts := scene.GraphicsOptions{Color: c, Alpha: o.Alpha, Debug: debug}
	bopts := physics.BodyOptions{IsStatic: o.Static, Angle: o.AngleDeg * math.Pi / 180}

	switch o.Kind {
	case KindBox:
		return scene.NewBox(o.X, o.Y, o.Width, o.Height, gopts, bopts), nil
	case KindCircle:
		return scene.NewCircle(o.X, o.Y, o.Radius, gopts, bopts), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", o.Kind)
	}
}
