// Package main is the entry point for the ghostlygrid command.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/samdwyer/ghostlygrid/internal/env"
	"github.com/samdwyer/ghostlygrid/internal/logging"
	"github.com/samdwyer/ghostlygrid/internal/telemetry"
)

func main() {
	// Not fatal: variables may be set directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env file not loaded")
	}
	logging.ConfigureRuntime()

	if err := run(context.Background(), os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("ghostlygrid")
		os.Exit(1)
	}
}

// run executes the command line and flushes telemetry before returning.
func run(ctx context.Context, args []string) error {
	if shutdown := setupTelemetry(ctx); shutdown != nil {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("telemetry shutdown")
			}
		}()
	}

	root := newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	flags := &envFlags{}
	root := &cobra.Command{
		Use:           "ghostlygrid",
		Short:         "Ghostly Grid is a grid world where an agent escapes through a door while two ghosts wander.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags.bind(root)

	root.AddCommand(
		newRunCmd(flags),
		newPlayCmd(flags),
		newFrameCmd(flags),
		newEnvsCmd(),
	)
	return root
}

// setupTelemetry exports traces only when an OTLP endpoint is configured.
func setupTelemetry(ctx context.Context) func(context.Context) error {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return nil
	}
	shutdown, err := telemetry.Setup(ctx, env.ID)
	if err != nil {
		log.Warn().Err(err).Msg("telemetry setup failed, running without observability")
		return nil
	}
	return shutdown
}
