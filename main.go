package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	rootCmd := &cobra.Command{
		Use:   "physbox",
		Short: "2-D physics sandbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.debugSet = cmd.Flags().Changed("debug")
			opts.debugRenderSet = cmd.Flags().Changed("debug-render")
			return runWindow(*opts)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.layoutName, "layout", "", "layout file or built-in layout name")
	rootCmd.Flags().BoolVar(&opts.debug, "debug", false, "draw pivot markers and axis lines")
	rootCmd.Flags().BoolVar(&opts.debugRender, "debug-render", false, "show the raw physics debug view")
	rootCmd.Flags().BoolVar(&opts.watch, "watch", false, "reload when the config or layout file changes")

	rootCmd.AddCommand(newTraceCmd(opts))
	return rootCmd
}

func runWindow(opts runOptions) error {
	host, err := newHost(opts)
	if err != nil {
		return err
	}
	defer host.Close()

	cfg := host.game.Config()
	ebiten.SetWindowSize(int(cfg.Viewport.Width), int(cfg.Viewport.Height))
	ebiten.SetWindowTitle("physbox")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)

	return ebiten.RunGame(host)
}
