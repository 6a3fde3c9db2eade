package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCanvasWidth  = 640
	DefaultCanvasHeight = 480
	DefaultFPS          = 60
	DefaultGravity      = 1000.0
	DefaultFollowRadius = 150.0
	DefaultBackground   = "#222222"
)

// Size is a width/height pair in pixels.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Config is the process-wide configuration. It is built once before the game
// is constructed and passed in by value.
type Config struct {
	// Canvas is the size of the simulated world.
	Canvas Size `yaml:"canvas"`
	// Viewport is the visible camera window; it may be smaller than Canvas.
	Viewport Size `yaml:"viewport"`
	// FPS is the target frame rate. The physics runner steps at 1/FPS.
	FPS          int     `yaml:"fps"`
	Gravity      float64 `yaml:"gravity"`
	FollowRadius float64 `yaml:"follow_radius"`
	Background   string  `yaml:"background"`
	Debug        bool    `yaml:"debug"`
	DebugRender  bool    `yaml:"debug_render"`
	// Layout names a layout file; empty selects the built-in arrangement.
	Layout string `yaml:"layout"`
}

func Default() Config {
	return Config{
		Canvas:       Size{Width: DefaultCanvasWidth, Height: DefaultCanvasHeight},
		Viewport:     Size{Width: DefaultCanvasWidth, Height: DefaultCanvasHeight},
		FPS:          DefaultFPS,
		Gravity:      DefaultGravity,
		FollowRadius: DefaultFollowRadius,
		Background:   DefaultBackground,
		Debug:        true,
	}
}

// Load reads a YAML config file over the defaults. A viewport left unset
// follows the canvas size.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	cfg.Viewport = Size{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if cfg.Viewport.Width == 0 {
		cfg.Viewport.Width = cfg.Canvas.Width
	}
	if cfg.Viewport.Height == 0 {
		cfg.Viewport.Height = cfg.Canvas.Height
	}
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultFPS
	}
	return cfg, nil
}

func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// StepDelta is the fixed physics step derived from FPS.
func (c Config) StepDelta() time.Duration {
	fps := c.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}
