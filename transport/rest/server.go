package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - /ping, /game, /games, /games/{id}, and the WebSocket gateway on /ws.
func NewRouter(logger *slog.Logger, session sessionDep, results resultsDep, resultsLimit int64, ws http.Handler) http.Handler {
	h := &handlers{
		logger:       logger.With("component", "rest"),
		session:      session,
		results:      results,
		resultsLimit: resultsLimit,
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/ping", h.PingHandler)
	router.Get("/game", h.GameHandler)

	router.Route("/games", func(r chi.Router) {
		r.Use(middleware.Logger)
		r.Get("/", h.GamesHandler)
		r.Get("/{id}", h.GameByIDHandler)
	})

	router.Handle("/ws", ws)

	return router
}

// Start - serves handler on port until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	stop := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	})
	defer stop()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
