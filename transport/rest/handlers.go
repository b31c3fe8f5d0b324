package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/goban-backend/internal/entity"
	"github.com/rocketscienceinc/goban-backend/internal/repository"
)

type sessionDep interface {
	Snapshot() entity.Snapshot
	Players() int
}

type resultsDep interface {
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
	ListFinished(ctx context.Context, limit int64) ([]entity.GameRecord, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

// gameResponse is the live game plus how many connections currently hold a seat.
type gameResponse struct {
	entity.Snapshot
	Connected int `json:"connected"`
}

type handlers struct {
	logger       *slog.Logger
	session      sessionDep
	results      resultsDep
	resultsLimit int64
}

// GameHandler - the live game of this process.
func (that *handlers) GameHandler(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, gameResponse{
		Snapshot:  that.session.Snapshot(),
		Connected: that.session.Players(),
	})
}

// GamesHandler lists archived games, newest first. ?limit= is capped by the configured limit.
func (that *handlers) GamesHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GamesHandler")

	limit := that.resultsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive number"})
			return
		}

		limit = min(parsed, that.resultsLimit)
	}

	records, err := that.results.ListFinished(r.Context(), limit)
	if err != nil {
		log.Error("failed to list games", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list games"})
		return
	}

	that.writeJSON(w, http.StatusOK, records)
}

func (that *handlers) GameByIDHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GameByIDHandler")

	id := chi.URLParam(r, "id")

	record, err := that.results.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrGameNotFound) {
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	if err != nil {
		log.Error("failed to get game", "gameID", id, "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to get game"})
		return
	}

	that.writeJSON(w, http.StatusOK, record)
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
