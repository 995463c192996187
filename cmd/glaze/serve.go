package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/glazeui/glaze/pkg/observe"
	"github.com/glazeui/glaze/pkg/server"
	"github.com/glazeui/glaze/pkg/toast"
)

func serveCmd() *cobra.Command {
	var (
		addr     string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Glaze demo server",
		Long: `Start an HTTP server with the demo page at /, the presentation
WebSocket at /ws, health at /healthz, and Prometheus metrics at /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: parseLevel(logLevel),
			}))
			slog.SetDefault(logger)

			reg := prometheus.NewRegistry()

			// Composition root: one controller per process, injected
			// everywhere instead of living in a package global.
			ctrl := toast.NewController(
				toast.WithLogger(logger),
				toast.WithObserver(toast.Observers(
					observe.NewMetrics(observe.WithRegistry(reg)),
					observe.NewTracing(),
				)),
			)

			srv := server.New(ctrl, &server.Config{
				Address:        addr,
				MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			})

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			select {
			case err := <-errCh:
				return err
			case sig := <-stop:
				logger.Info("shutting down", "signal", sig.String())
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8490", "Listen address")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	return cmd
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
