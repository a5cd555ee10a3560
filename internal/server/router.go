package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hance08/bills/internal/service"
	"github.com/hance08/bills/internal/store"
	"github.com/pterm/pterm"
)

type Options struct {
	AllowedOrigins []string
	Logger         *pterm.Logger
}

// NewRouter builds the HTTP API served by `bills serve`.
func NewRouter(repo store.Repository, opts Options) http.Handler {
	base := opts.Logger
	if base == nil {
		base = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	logger := slog.New(pterm.NewSlogHandler(base))

	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLoggingMiddleware(logger))
	r.Use(recoveryLoggingMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	h := &handler{svc: service.NewService(repo)}

	r.Get("/health", h.health)

	r.Route("/account", func(r chi.Router) {
		r.Get("/", h.listAccounts)
		r.Post("/", h.createAccount)
		r.Delete("/", h.deleteAccount)
		r.Get("/{id}", h.getAccount)
	})

	r.Route("/transaction", func(r chi.Router) {
		r.Get("/", h.listTransactions)
		r.Post("/", h.createTransaction)
		r.Delete("/", h.deleteTransaction)
	})

	return r
}
