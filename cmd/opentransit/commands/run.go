package commands

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/opentransit/engine"
)

func newRunCommand() *cobra.Command {
	var (
		metricsAddr string
		showFPS     bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window and run the demo scene",
		Long: `Open a window and run the demo scene: a shuttle train running along a
track, laid out relative to the window so it follows resizes.

Press Escape or send an interrupt to quit.`,
		Example: `  # Run with defaults
  opentransit run

  # Run from a config file and expose frame metrics
  opentransit run --config run.yaml --metrics-addr :9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if debug {
				cfg.Debug = true
			}
			if showFPS {
				cfg.ShowFPS = true
			}
			if metricsAddr != "" {
				cfg.Metrics = true
			}

			g := engine.NewGame(cfg,
				engine.WithContext(cmd.Context()),
				engine.WithLogger(log.Logger),
			)
			if err := buildDemoScene(g); err != nil {
				return err
			}

			if metricsAddr != "" {
				stop := serveMetrics(metricsAddr, g.Metrics())
				defer stop()
			}

			return engine.Run(g)
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	cmd.Flags().BoolVar(&showFPS, "fps", false, "show the FPS counter")

	return cmd
}

// serveMetrics exposes m on addr until the returned function is called.
func serveMetrics(addr string, m *engine.FrameMetrics) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Str("addr", addr).Msg("Metrics server failed")
		}
	}()
	log.Info().Str("addr", addr).Msg("Serving metrics")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}
}
