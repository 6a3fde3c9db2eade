package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "physbox.yaml")
	if err := os.WriteFile(path, []byte("canvas:\n  width: 800\n  height: 600\ndebug: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cases := []struct {
		name      string
		opts      runOptions
		wantDebug bool
		wantRaw   bool
		wantW     float64
	}{
		{name: "defaults", opts: runOptions{}, wantDebug: true, wantW: 640},
		{name: "file", opts: runOptions{configPath: path}, wantDebug: true, wantW: 800},
		{name: "debug_flag_wins", opts: runOptions{configPath: path, debugSet: true}, wantDebug: false, wantW: 800},
		{name: "unchanged_flag_ignored", opts: runOptions{configPath: path, debug: false}, wantDebug: true, wantW: 800},
		{name: "debug_render", opts: runOptions{debugRender: true, debugRenderSet: true}, wantDebug: true, wantRaw: true, wantW: 640},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := c.opts.loadConfig()
			if err != nil {
				t.Fatalf("loadConfig: %v", err)
			}
			if cfg.Debug != c.wantDebug {
				t.Fatalf("expected debug %v, got %v", c.wantDebug, cfg.Debug)
			}
			if cfg.DebugRender != c.wantRaw {
				t.Fatalf("expected debug render %v, got %v", c.wantRaw, cfg.DebugRender)
			}
			if cfg.Canvas.Width != c.wantW {
				t.Fatalf("expected canvas width %v, got %v", c.wantW, cfg.Canvas.Width)
			}
		})
	}

	if _, err := (runOptions{configPath: filepath.Join(dir, "missing.yaml")}).loadConfig(); err == nil {
		t.Fatalf("expected error for a missing config file")
	}
}

func TestWatchDirs(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "physbox.yaml")
	layoutPath := filepath.Join(dir, "level.yaml")
	for _, p := range []string{cfgPath, layoutPath} {
		if err := os.WriteFile(p, []byte("{}\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}

	opts := runOptions{configPath: cfgPath}
	cfg, err := opts.loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	cfg.Layout = layoutPath

	dirs := opts.watchDirs(cfg)
	if len(dirs) != 1 || dirs[0] != dir {
		t.Fatalf("expected [%s], got %v", dir, dirs)
	}

	cfg.Layout = "sandbox"
	if got := (runOptions{}).watchDirs(cfg); len(got) != 0 {
		t.Fatalf("expected no dirs for an embedded layout, got %v", got)
	}
}

func TestBootstrap(t *testing.T) {
	g, err := bootstrap(runOptions{})
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if !g.Started() {
		t.Fatalf("expected game to be started")
	}
	if !g.Engine().Runner().Running() {
		t.Fatalf("expected runner to be running")
	}
	if got := len(g.Scene().Objects()); got != 7 {
		t.Fatalf("expected 7 objects, got %d", got)
	}
	if g.DebugView() != nil {
		t.Fatalf("expected no debug view by default")
	}

	g, err = bootstrap(runOptions{layoutName: "pyramid", debugRender: true, debugRenderSet: true})
	if err != nil {
		t.Fatalf("bootstrap pyramid: %v", err)
	}
	if got := len(g.Scene().Objects()); got != 23 {
		t.Fatalf("expected 23 objects, got %d", got)
	}
	if g.DebugView() == nil {
		t.Fatalf("expected debug view")
	}

	if _, err := bootstrap(runOptions{layoutName: "no-such-layout"}); err == nil {
		t.Fatalf("expected error for an unknown layout")
	}
}

func TestRunTrace(t *testing.T) {
	g, err := bootstrap(runOptions{})
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	var out bytes.Buffer
	if err := runTrace(&out, g, 30); err != nil {
		t.Fatalf("runTrace: %v", err)
	}
	if g.Engine().Runner().Running() {
		t.Fatalf("expected runner to be stopped while tracing")
	}
	if got := g.Engine().Timing().Steps; got != 30 {
		t.Fatalf("expected 30 steps, got %d", got)
	}
	if !strings.Contains(out.String(), "physbox trace") {
		t.Fatalf("expected summary in output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "vy=") {
		t.Fatalf("expected body velocities in output:\n%s", out.String())
	}

	if err := runTrace(&out, g, 0); err == nil {
		t.Fatalf("expected error for zero steps")
	}
}

func TestTraceCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"trace", "--steps", "10", "--layout", "sandbox"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("trace: %v", err)
	}
	if !strings.Contains(out.String(), "over 10 steps") {
		t.Fatalf("expected graph caption in output:\n%s", out.String())
	}
}
