package layout

import (
	"context"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/physbox/scene"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#ff0000", want: color.NRGBA{R: 0xff, A: 0xff}},
		{in: "0x0000FF", want: color.NRGBA{B: 0xff, A: 0xff}},
		{in: "steelblue", want: color.NRGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}},
		{in: " Tomato ", want: color.NRGBA{R: 0xff, G: 0x63, B: 0x47, A: 0xff}},
		{in: "", wantErr: true},
		{in: "#fff", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "notacolor", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseColor(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}

func TestLoadEmbeddedSandbox(t *testing.T) {
	spec, err := Load("sandbox")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if spec.Name != "sandbox" || len(spec.Objects) != 7 {
		t.Fatalf("expected 7 objects in sandbox, got %d", len(spec.Objects))
	}

	objs, target, err := Build(spec, false)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(objs) != 7 {
		t.Fatalf("expected 7 objects, got %d", len(objs))
	}
	circle, ok := target.(*scene.Circle)
	if !ok || circle != objs[6] {
		t.Fatalf("expected the circle to be the follow target, got %T", target)
	}
	if circle.Radius() != 50 {
		t.Fatalf("expected radius 50, got %v", circle.Radius())
	}

	statics := 0
	for _, o := range objs {
		if o.Body().IsStatic() {
			statics++
		}
	}
	if statics != 3 {
		t.Fatalf("expected 3 static objects, got %d", statics)
	}
	if got := objs[3].Body().Angle(); math.Abs(got-math.Pi/6) > 1e-12 {
		t.Fatalf("expected box3 angle pi/6, got %v", got)
	}
}

func TestExpandEmbeddedPyramid(t *testing.T) {
	spec, err := Load("pyramid.yaml")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	expanded, err := Expand(context.Background(), spec, 640, 480)
	if err != nil {
		t.Fatalf("expand failed: %v", err)
	}
	// 2 static entries plus 1+2+...+6 scripted boxes
	if len(expanded.Objects) != 2+21 {
		t.Fatalf("expected 23 objects, got %d", len(expanded.Objects))
	}
	if expanded.Script != "" {
		t.Fatalf("expected script consumed")
	}
	if len(spec.Objects) != 2 {
		t.Fatalf("expand must not modify the input spec")
	}
	top := expanded.Objects[2]
	if top.Kind != KindBox || top.X != 320 || top.Width != 30 || top.Color != "steelblue" {
		t.Fatalf("unexpected top box %+v", top)
	}
	if _, _, err := Build(expanded, true); err != nil {
		t.Fatalf("build failed: %v", err)
	}
}

func TestExpandDiskScript(t *testing.T) {
	dir := t.TempDir()
	layoutPath := filepath.Join(dir, "row.yaml")
	writeFile(t, layoutPath, "name: row\nscript: row.tengo\n")
	writeFile(t, filepath.Join(dir, "row.tengo"), `
for i := 0; i < 3; i++ {
	objects = append(objects, {kind: "circle", x: 10 + i * 20, y: canvas_height / 2, radius: 5, color: "#00ff00", follow: i == 1})
}
`)

	spec, err := Load(layoutPath)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	expanded, err := Expand(context.Background(), spec, 100, 300)
	if err != nil {
		t.Fatalf("expand failed: %v", err)
	}
	if len(expanded.Objects) != 3 {
		t.Fatalf("expected 3 objects, got %d", len(expanded.Objects))
	}
	for i, o := range expanded.Objects {
		if o.X != float64(10+i*20) || o.Y != 150 {
			t.Fatalf("object %d: unexpected position (%v, %v)", i, o.X, o.Y)
		}
	}

	objs, target, err := Build(expanded, false)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if target != objs[1] {
		t.Fatalf("expected second circle to be the target")
	}
}

func TestExpandScriptErrors(t *testing.T) {
	cases := []struct {
		name   string
		script string
	}{
		{"syntax", "objects = append(objects, {"},
		{"not_a_map", "objects = [1, 2]"},
		{"runaway", "for {}"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, "bad.tengo"), c.script)
			spec := Spec{Name: "bad", Script: "bad.tengo", dir: dir}
			ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
			defer cancel()
			if _, err := Expand(ctx, spec, 640, 480); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		obj  ObjectSpec
	}{
		{"unknown_kind", ObjectSpec{Kind: "triangle", Color: "red"}},
		{"bad_color", ObjectSpec{Kind: KindBox, Width: 1, Height: 1, Color: "#12"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, _, err := Build(Spec{Name: "x", Objects: []ObjectSpec{c.obj}}, false); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("does-not-exist"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestEmbedded(t *testing.T) {
	names := Embedded()
	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	if !found["sandbox.yaml"] || !found["pyramid.yaml"] {
		t.Fatalf("expected embedded layouts, got %v", names)
	}
}

func TestIsWatchedFile(t *testing.T) {
	cases := map[string]bool{
		"layouts/sandbox.yaml": true,
		"physbox.YML":          true,
		"scripts/p.tengo":      true,
		"main.go":              false,
		"notes":                false,
	}
	for path, want := range cases {
		if got := isWatchedFile(path); got != want {
			t.Fatalf("%s: expected %v, got %v", path, want, got)
		}
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	target := filepath.Join(dir, "scene.yaml")
	writeFile(t, filepath.Join(dir, "ignored.txt"), "x")
	writeFile(t, target, "name: scene\n")

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("expected %s, got %s", target, name)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
