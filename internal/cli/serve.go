package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bobmcallan/cookengine/internal/common"
	"github.com/bobmcallan/cookengine/internal/server"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(g, "")
			if err != nil {
				return err
			}

			common.PrintBanner(cmd.OutOrStdout(), a.Config, a.Catalog.Len(), a.Logger)

			srv := server.NewServer(a)
			errCh := make(chan error, 1)
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			a.Logger.Info().
				Str("url", "http://"+srv.Addr()).
				Msg("Server ready")

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-sigChan:
				a.Logger.Info().Msg("Shutdown signal received")
			case err, ok := <-errCh:
				if ok && err != nil {
					a.Logger.Error().Err(err).Msg("HTTP server failed")
					return err
				}
			}

			common.PrintShutdownBanner(cmd.OutOrStdout(), a.Logger)

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				a.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
				return err
			}

			a.Logger.Info().Msg("Server stopped")
			return nil
		},
	}
}
