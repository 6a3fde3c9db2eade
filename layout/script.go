package layout

import (
	"context"
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"gopkg.in/yaml.v3"
)

const scriptTimeout = 2 * time.Second

// Expand runs the layout's script, if any, and returns a spec whose Objects
// include the scripted ones. The script sees canvas_width and canvas_height
// and appends maps with ObjectSpec keys to objects.
func Expand(ctx context.Context, spec Spec, canvasW, canvasH float64) (Spec, error) {
	if spec.Script == "" {
		return spec, nil
	}
	src, err := loadScript(spec.dir, spec.Script)
	if err != nil {
		return Spec{}, fmt.Errorf("layout: load script %s: %w", spec.Script, err)
	}
	scripted, err := runScript(ctx, src, canvasW, canvasH)
	if err != nil {
		return Spec{}, fmt.Errorf("layout: run script %s: %w", spec.Script, err)
	}

	out := spec
	out.Objects = append(append([]ObjectSpec(nil), spec.Objects...), scripted...)
	out.Script = ""
	return out, nil
}

func runScript(ctx context.Context, src []byte, canvasW, canvasH float64) ([]ObjectSpec, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	_ = script.Add("canvas_width", canvasW)
	_ = script.Add("canvas_height", canvasH)
	_ = script.Add("objects", []interface{}{})

	ctx, cancel := context.WithTimeout(ctx, scriptTimeout)
	defer cancel()
	compiled, err := script.RunContext(ctx)
	if err != nil {
		return nil, err
	}

	raw := compiled.Get("objects").Array()
	objs := make([]ObjectSpec, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("objects[%d]: want map, got %T", i, item)
		}
		obj, err := decodeObject(m)
		if err != nil {
			return nil, fmt.Errorf("objects[%d]: %w", i, err)
		}
		objs = append(objs, obj)
	}
	return objs, nil
}

// decodeObject maps a script value onto ObjectSpec through its YAML tags.
func decodeObject(m map[string]interface{}) (ObjectSpec, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return ObjectSpec{}, err
	}
	var obj ObjectSpec
	if err := yaml.Unmarshal(data, &obj); err != nil {
		return ObjectSpec{}, err
	}
	return obj, nil
}
