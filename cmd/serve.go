package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/hance08/bills/internal/app"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type serveFlags struct {
	Listen string
}

func NewServeCmd(migrations fs.FS) *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local bills backend",
		Long: `Run the bills backend on a local sqlite database.

The client commands talk to it through server.base_url.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.Listen != "" {
				cfg.Server.Listen = flags.Listen
			}
			return runServe(cmd.Context(), migrations)
		},
	}

	cmd.Flags().StringVarP(&flags.Listen, "listen", "l", "", "Address to listen on (default from server.listen)")

	return cmd
}

func runServe(ctx context.Context, migrations fs.FS) error {
	srv, cleanup, err := app.NewServer(cfg, logger, migrations)
	if err != nil {
		return err
	}
	defer cleanup()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	dbPath, _ := app.DatabasePath(cfg)
	pterm.Info.Printf("Serving on http://%s (database: %s)\n", cfg.Server.Listen, dbPath)
	logger.Info("server started", logger.Args("listen", cfg.Server.Listen))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
