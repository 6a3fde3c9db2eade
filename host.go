package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/physbox/game"
	"github.com/milk9111/physbox/layout"
	"github.com/milk9111/physbox/render"
)

// Host is the ebiten.Game that drives one game instance. On reload it
// bootstraps a new instance and drops the old one.
type Host struct {
	opts     runOptions
	game     *game.Game
	renderer *render.Renderer
	overlay  *render.DebugOverlay
	watcher  *layout.Watcher

	paused  bool
	pauseUI *ebitenui.UI
	reload  bool
}

func newHost(opts runOptions) (*Host, error) {
	g, err := bootstrap(opts)
	if err != nil {
		return nil, err
	}

	h := &Host{
		opts:     opts,
		game:     g,
		renderer: render.NewRenderer(),
		overlay:  render.NewDebugOverlay(),
	}
	h.pauseUI = NewPauseUI(h)

	if opts.watch {
		dirs := opts.watchDirs(g.Config())
		if len(dirs) == 0 {
			log.Printf("watch: no on-disk config or layout to watch")
		} else if w, err := layout.NewWatcher(dirs...); err != nil {
			log.Printf("watch: %v", err)
		} else {
			h.watcher = w
		}
	}
	return h, nil
}

func (h *Host) Close() {
	if h.watcher != nil {
		_ = h.watcher.Close()
	}
}

func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.setPaused(!h.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		h.reload = true
	}
	h.drainWatcher()

	if h.reload {
		h.reload = false
		h.reloadGame()
	}

	if h.paused {
		h.pauseUI.Update()
		return nil
	}

	h.game.Engine().Runner().Tick()
	h.game.App().Ticker.Tick()
	return nil
}

func (h *Host) drainWatcher() {
	if h.watcher == nil {
		return
	}
	for {
		select {
		case path := <-h.watcher.Events:
			log.Printf("watch: %s changed", path)
			h.reload = true
		case err := <-h.watcher.Errors:
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (h *Host) reloadGame() {
	g, err := bootstrap(h.opts)
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	h.game = g
	if h.paused {
		g.Engine().Runner().Stop()
	}
}

func (h *Host) setPaused(paused bool) {
	h.paused = paused
	runner := h.game.Engine().Runner()
	if paused {
		runner.Stop()
		return
	}
	runner.Start()
}

func (h *Host) Draw(screen *ebiten.Image) {
	h.renderer.Draw(screen, h.game.App())
	if view := h.game.DebugView(); view != nil {
		h.overlay.Draw(screen, view)
	}

	timing := h.game.Engine().Timing()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  TPS: %.1f  steps: %d  objects: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), timing.Steps, len(h.game.Scene().Objects())))

	if h.paused {
		h.pauseUI.Draw(screen)
	}
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := h.game.Config()
	return int(cfg.Viewport.Width), int(cfg.Viewport.Height)
}
