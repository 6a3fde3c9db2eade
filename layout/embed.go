package layout

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed layouts/*.yaml layouts/scripts/*.tengo
var layoutsFS embed.FS

// Load reads a layout from disk, falling back to the embedded layouts.
func Load(name string) (Spec, error) {
	data, dir, err := readLayout(name)
	if err != nil {
		return Spec{}, fmt.Errorf("layout: load %s: %w", name, err)
	}
	spec, err := Parse(data)
	if err != nil {
		return Spec{}, fmt.Errorf("layout: load %s: %w", name, err)
	}
	spec.dir = dir
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	return spec, nil
}

// Embedded lists the built-in layout names.
func Embedded() []string {
	entries, err := layoutsFS.ReadDir("layouts")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names
}

func readLayout(name string) ([]byte, string, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, filepath.Dir(name), nil
	}
	data, err := layoutsFS.ReadFile(embeddedPath(name))
	return data, "", err
}

// loadScript resolves name next to the layout file first, then in the
// embedded scripts.
func loadScript(dir, name string) ([]byte, error) {
	if dir != "" {
		if data, err := os.ReadFile(filepath.Join(dir, name)); err == nil {
			return data, nil
		}
	}
	return layoutsFS.ReadFile(embeddedScriptPath(name))
}

func embeddedPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "layouts/")
	if path.Ext(s) == "" {
		s += ".yaml"
	}
	return path.Join("layouts", s)
}

func embeddedScriptPath(name string) string {
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "layouts/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}
	return path.Join("layouts", "scripts", s)
}
