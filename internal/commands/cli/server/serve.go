// Package server provides the serve CLI command.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/andrei-cloud/cryptoproc/internal/config"
	"github.com/andrei-cloud/cryptoproc/internal/logging"
	"github.com/andrei-cloud/cryptoproc/internal/processor"
	"github.com/andrei-cloud/cryptoproc/internal/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Process requests from standard input",
		Long: `Process JSON requests from standard input until end of input.
This is also what the root command does when run without a subcommand.`,
		Args: cobra.NoArgs,
		RunE: RunServe,
	}
}

// RunServe runs the request loop on the command's input and output streams.
func RunServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Get()

	// Initialize logger using config values (with CLI flags overriding config via viper).
	v := config.GetViper()
	logging.InitLogger(cmd.ErrOrStderr(), v.GetString("log.level"), v.GetString("log.format"))

	srv := server.NewServer(
		cmd.InOrStdin(),
		cmd.OutOrStdout(),
		processor.NewDispatcher(),
		server.WithBufferSize(cfg.IO.BufferSize),
		server.WithMaxReadErrors(cfg.IO.MaxReadErrors),
	)

	// Stop waits for a response being written, so the caller never sees
	// a partial line after the exit.
	stopChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(stopChan)
		close(done)
	}()
	go func() {
		select {
		case sig := <-stopChan:
			log.Info().Msgf("signal %v received, shutting down", sig)
			srv.Stop()
			os.Exit(0)
		case <-done:
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := srv.Serve(ctx); err != nil {
		return fmt.Errorf("request loop stopped: %w", err)
	}

	return nil
}
