package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ncobase/dashboard/config"
	"github.com/ncobase/dashboard/internal/server"
	"github.com/ncobase/dashboard/logging/logger"
	"github.com/ncobase/dashboard/logging/observes"
	"github.com/ncobase/dashboard/version"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	return cmd
}

func serve(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	info := version.GetVersionInfo()

	l, cleanupLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer cleanupLogger()
	l.SetVersion(info.Version)

	if cfg.Observes != nil {
		if err := observes.NewSentry(cfg.Observes.Sentry, cfg.AppName, info.Version); err != nil {
			l.Warnf(parent, "sentry disabled: %v", err)
		}
		shutdownTracer, err := observes.NewTracer(cfg.Observes.Tracer, info.Version)
		if err != nil {
			l.Warnf(parent, "tracing disabled: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdownTracer(ctx); err != nil {
					l.Warnf(ctx, "tracer shutdown: %v", err)
				}
			}()
		}
	}

	s, cleanup, err := server.New(cfg, l)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	l.Infof(ctx, "%s %s listening on %s", cfg.AppName, info.Version, s.Addr())
	return s.Run(ctx)
}
