package layout

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const (
	KindBox    = "box"
	KindCircle = "circle"
)

// Spec is a declarative scene layout.
type Spec struct {
	Name    string       `yaml:"name"`
	Objects []ObjectSpec `yaml:"objects"`
	// Script names a tengo script whose objects are appended after Objects.
	Script string `yaml:"script"`

	dir string
}

// ObjectSpec describes one box or circle. Positions are body centres.
type ObjectSpec struct {
	Kind     string  `yaml:"kind"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Width    float64 `yaml:"width,omitempty"`
	Height   float64 `yaml:"height,omitempty"`
	Radius   float64 `yaml:"radius,omitempty"`
	Color    string  `yaml:"color"`
	Alpha    float64 `yaml:"alpha,omitempty"`
	Static   bool    `yaml:"static,omitempty"`
	AngleDeg float64 `yaml:"angle_deg,omitempty"`
	// Follow marks the camera target. The first marked object wins.
	Follow bool `yaml:"follow,omitempty"`
}

func Parse(data []byte) (Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("layout: unmarshal: %w", err)
	}
	return spec, nil
}

// ParseColor accepts "#rrggbb", "0xrrggbb" or an SVG colour name.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("layout: empty color")
	}
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}

	hex := s
	switch {
	case strings.HasPrefix(hex, "#"):
		hex = hex[1:]
	case strings.HasPrefix(hex, "0x"):
		hex = hex[2:]
	default:
		return color.NRGBA{}, fmt.Errorf("layout: unknown color %q", s)
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("layout: color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("layout: color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
