package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/physbox/config"
	"github.com/milk9111/physbox/game"
	"github.com/milk9111/physbox/gfx"
	"github.com/milk9111/physbox/layout"
	"github.com/milk9111/physbox/physics"
)

type runOptions struct {
	configPath string
	layoutName string
	watch      bool

	debug          bool
	debugSet       bool
	debugRender    bool
	debugRenderSet bool
}

func (o runOptions) loadConfig() (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if o.layoutName != "" {
		cfg.Layout = o.layoutName
	}
	if o.debugSet {
		cfg.Debug = o.debug
	}
	if o.debugRenderSet {
		cfg.DebugRender = o.debugRender
	}
	return cfg, nil
}

// watchDirs lists the directories holding on-disk config and layout files.
func (o runOptions) watchDirs(cfg config.Config) []string {
	seen := map[string]bool{}
	var dirs []string
	for _, p := range []string{o.configPath, cfg.Layout} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			continue
		}
		dir := filepath.Dir(p)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// bootstrap builds a fresh application, engine and game from scratch and
// starts the game. Nothing is shared with any earlier instance.
func bootstrap(opts runOptions) (*game.Game, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, err
	}

	var gameOpts []game.Option
	if cfg.Layout != "" {
		spec, err := layout.Load(cfg.Layout)
		if err != nil {
			return nil, err
		}
		spec, err = layout.Expand(context.Background(), spec, cfg.Canvas.Width, cfg.Canvas.Height)
		if err != nil {
			return nil, err
		}
		if _, _, err := layout.Build(spec, cfg.Debug); err != nil {
			return nil, err
		}
		gameOpts = append(gameOpts, game.WithLayout(spec))
	}

	bg, err := layout.ParseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("config: background: %w", err)
	}

	app := gfx.NewApplication(cfg.Viewport.Width, cfg.Viewport.Height, gfx.ApplicationOptions{Background: bg})
	engine := physics.NewEngine(
		physics.WithGravity(cp.Vector{X: 0, Y: cfg.Gravity}),
		physics.WithDelta(cfg.StepDelta()),
	)

	g := game.NewGame(app, engine, cfg, gameOpts...)
	g.Start()
	if cfg.DebugRender {
		g.DebugRender()
	}
	log.Printf("physbox: started %d objects (%d live), canvas %vx%v, viewport %vx%v",
		len(g.Scene().Objects()), len(g.Scene().LiveObjects()),
		cfg.Canvas.Width, cfg.Canvas.Height, cfg.Viewport.Width, cfg.Viewport.Height)
	return g, nil
}
