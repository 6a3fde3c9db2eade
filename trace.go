package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/milk9111/physbox/game"
	"github.com/milk9111/physbox/scene"
	"github.com/spf13/cobra"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(1, 2)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

func newTraceCmd(opts *runOptions) *cobra.Command {
	var steps int
	var debug bool

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Step the simulation headless and plot the followed body's height",
		RunE: func(cmd *cobra.Command, args []string) error {
			o := *opts
			o.debug = debug
			o.debugSet = cmd.Flags().Changed("debug")
			o.watch = false

			g, err := bootstrap(o)
			if err != nil {
				return err
			}
			return runTrace(cmd.OutOrStdout(), g, steps)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 240, "number of fixed steps to run")
	cmd.Flags().BoolVar(&debug, "debug", false, "build objects with debug overlays")
	return cmd
}

// traceSubject is the followed object, or the first live one.
func traceSubject(g *game.Game) scene.GameObject {
	if g.Target() != nil {
		return g.Target()
	}
	if live := g.Scene().LiveObjects(); len(live) > 0 {
		return live[0]
	}
	return nil
}

func runTrace(w io.Writer, g *game.Game, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("trace: steps must be positive, got %d", steps)
	}
	subject := traceSubject(g)
	if subject == nil {
		return fmt.Errorf("trace: no dynamic objects in the scene")
	}

	// The window loop never runs here, so the engine is stepped directly.
	g.Engine().Runner().Stop()

	cfg := g.Config()
	heights := make([]float64, 0, steps)
	for i := 0; i < steps; i++ {
		g.Engine().Step()
		heights = append(heights, cfg.Canvas.Height-subject.Body().Position().Y)
	}

	graph := asciigraph.Plot(heights,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("height above canvas bottom over %d steps", steps)),
	)
	fmt.Fprintln(w, graph)
	fmt.Fprintln(w, panelStyle.Render(summary(g)))
	return nil
}

func summary(g *game.Game) string {
	var b strings.Builder
	timing := g.Engine().Timing()
	b.WriteString(titleStyle.Render("physbox trace"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("steps %d, simulated %v", timing.Steps, timing.Timestamp)))
	b.WriteString("\n\n")

	for i, obj := range g.Scene().Objects() {
		body := obj.Body()
		kind := "dynamic"
		if body.IsStatic() {
			kind = "static"
		}
		pos := body.Position()
		marker := " "
		if obj == g.Target() {
			marker = "*"
		}
		vel := body.Velocity()
		fmt.Fprintf(&b, "%s %2d %-7s x=%8.2f y=%8.2f angle=%6.3f vx=%8.2f vy=%8.2f\n",
			marker, i, kind, pos.X, pos.Y, body.Angle(), vel.X, vel.Y)
	}
	return strings.TrimRight(b.String(), "\n")
}
