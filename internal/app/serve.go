package app

import (
	"fmt"
	"io/fs"
	"net/http"
	"path/filepath"
	"time"

	"github.com/hance08/bills/internal/config"
	"github.com/hance08/bills/internal/server"
	"github.com/hance08/bills/internal/store"
	"github.com/pterm/pterm"
)

// NewServer opens the database and returns the HTTP server of the local
// backend, along with a cleanup that closes the database.
func NewServer(cfg *config.Config, logger *pterm.Logger, migrationFS fs.FS) (*http.Server, func(), error) {
	dbPath, err := DatabasePath(cfg)
	if err != nil {
		return nil, nil, err
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			logger.Error("error closing database", logger.Args("error", err))
		}
	}

	srv := &http.Server{
		Addr: cfg.Server.Listen,
		Handler: server.NewRouter(dbStore, server.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			Logger:         logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return srv, cleanup, nil
}

// DatabasePath resolves database.path, defaulting to bills.db in the data
// directory.
func DatabasePath(cfg *config.Config) (string, error) {
	if cfg.Database.Path != "" {
		return expandPath(cfg.Database.Path)
	}

	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "bills.db"), nil
}
