// Example runs the mui demo windows on either backend.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run with the OpenGL backend
//	go run ./example/ --backend ebiten --theme gta.toml -v
//
// The demo shows the two starter windows ("Basic Window" and
// "Popup Dialog") and adds a widget gallery and a stats window.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/mui"
	"github.com/go-theft-auto/mui/theme"
)

const (
	windowWidth  = 1000
	windowHeight = 640
	windowTitle  = "mui example"
)

type config struct {
	backend string
	theme   string
	verbose bool
}

func main() {
	var cfg config

	rootCmd := &cobra.Command{
		Use:   "example",
		Short: "Run the mui demo",
		Example: `  # OpenGL + GLFW
  example

  # Ebitengine with a theme file and debug logging
  example --backend ebiten --theme gta.toml -v`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}

	rootCmd.Flags().StringVarP(&cfg.backend, "backend", "b", "opengl", "Renderer backend: opengl or ebiten")
	rootCmd.Flags().StringVarP(&cfg.theme, "theme", "t", "", "TOML theme file")
	rootCmd.Flags().BoolVarP(&cfg.verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	mui.SetVerbose(cfg.verbose)
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      mui.LogLevel(),
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(log)
	mui.SetLogger(log.With("component", "mui"))

	style := mui.GTAStyle()
	if cfg.theme != "" {
		var err error
		if style, err = theme.Load(cfg.theme); err != nil {
			return err
		}
		log.Info("theme loaded", "path", cfg.theme)
	}

	d := newDemo(log)
	switch cfg.backend {
	case "opengl", "gl":
		return runGLFW(d, style)
	case "ebiten":
		return runEbiten(d, style)
	default:
		return fmt.Errorf("unknown backend %q (want opengl or ebiten)", cfg.backend)
	}
}
