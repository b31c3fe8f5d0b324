package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/goban-backend/internal/entity"
	"github.com/rocketscienceinc/goban-backend/internal/repository"
	mockedRest "github.com/rocketscienceinc/goban-backend/mocks/rest"
	"github.com/rocketscienceinc/goban-backend/transport/rest"
)

const resultsLimit = 20

func newRouter(t *testing.T) (http.Handler, *mockedRest.MocksessionDep, *mockedRest.MockresultsDep) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	session := mockedRest.NewMocksessionDep(t)
	results := mockedRest.NewMockresultsDep(t)

	ws := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	return rest.NewRouter(logger, session, results, resultsLimit, ws), session, results
}

func serve(handler http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestPingHandler(t *testing.T) {
	// Given
	router, _, _ := newRouter(t)

	// When
	rec := serve(router, "/ping")

	// Then
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestGameHandler(t *testing.T) {
	// Given
	router, session, _ := newRouter(t)
	session.EXPECT().Snapshot().Return(entity.Snapshot{
		ID:       "live",
		Status:   entity.StatusOngoing,
		Size:     9,
		Komi:     7.5,
		Turn:     entity.White,
		LastMove: &entity.Move{
			Color: entity.Black, X: 2, Y: 3, PlayerID: "p1", Kind: entity.Place,
		},
	}).Once()
	session.EXPECT().Players().Return(1).Once()

	// When
	rec := serve(router, "/game")

	// Then
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "live", body["id"])
	assert.Equal(t, entity.StatusOngoing, body["status"])
	assert.InDelta(t, 9, body["size"], 0)
	assert.Equal(t, "WHITE", body["turn"])
	assert.InDelta(t, 1, body["connected"], 0)
	assert.Equal(t, map[string]any{
		"color": "BLACK", "x": 2.0, "y": 3.0, "player_id": "p1", "kind": "PLACE",
	}, body["last_move"])
}

func TestGamesHandler(t *testing.T) {
	records := []entity.GameRecord{
		{ID: "second", Size: 9, Result: entity.GameResult{Winner: entity.Black, Reason: entity.ReasonResignation}},
		{ID: "first", Size: 19, Result: entity.GameResult{Winner: entity.White, Reason: entity.ReasonScore}},
	}

	t.Run("Default limit", func(t *testing.T) {
		// Given
		router, _, results := newRouter(t)
		results.EXPECT().ListFinished(mock.Anything, int64(resultsLimit)).Return(records, nil).Once()

		// When
		rec := serve(router, "/games")

		// Then
		require.Equal(t, http.StatusOK, rec.Code)

		var body []entity.GameRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 2)
		assert.Equal(t, "second", body[0].ID)
		assert.Equal(t, entity.Black, body[0].Result.Winner)
	})

	t.Run("Limit below the cap", func(t *testing.T) {
		// Given
		router, _, results := newRouter(t)
		results.EXPECT().ListFinished(mock.Anything, int64(5)).Return(records[:1], nil).Once()

		// When
		rec := serve(router, "/games?limit=5")

		// Then
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Limit above the cap", func(t *testing.T) {
		// Given
		router, _, results := newRouter(t)
		results.EXPECT().ListFinished(mock.Anything, int64(resultsLimit)).Return(nil, nil).Once()

		// When
		rec := serve(router, "/games?limit=500")

		// Then
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Bad limit", func(t *testing.T) {
		for _, raw := range []string{"abc", "0", "-3"} {
			// Given
			router, _, _ := newRouter(t)

			// When
			rec := serve(router, "/games?limit="+raw)

			// Then
			assert.Equal(t, http.StatusBadRequest, rec.Code, raw)
			assert.Contains(t, rec.Body.String(), "limit must be a positive number")
		}
	})

	t.Run("Storage failure", func(t *testing.T) {
		// Given
		router, _, results := newRouter(t)
		results.EXPECT().ListFinished(mock.Anything, int64(resultsLimit)).
			Return(nil, errors.New("connection refused")).Once()

		// When
		rec := serve(router, "/games")

		// Then
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestGameByIDHandler(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		// Given
		router, _, results := newRouter(t)
		results.EXPECT().GetByID(mock.Anything, "abc").
			RunAndReturn(func(_ context.Context, id string) (*entity.GameRecord, error) {
				return &entity.GameRecord{ID: id, Size: 9, MoveCount: 12}, nil
			}).Once()

		// When
		rec := serve(router, "/games/abc")

		// Then
		require.Equal(t, http.StatusOK, rec.Code)

		var body entity.GameRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "abc", body.ID)
		assert.Equal(t, 12, body.MoveCount)
	})

	t.Run("Not found", func(t *testing.T) {
		// Given
		router, _, results := newRouter(t)
		results.EXPECT().GetByID(mock.Anything, "missing").Return(nil, repository.ErrGameNotFound).Once()

		// When
		rec := serve(router, "/games/missing")

		// Then
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), repository.ErrGameNotFound.Error())
	})

	t.Run("Storage failure", func(t *testing.T) {
		// Given
		router, _, results := newRouter(t)
		results.EXPECT().GetByID(mock.Anything, "abc").Return(nil, errors.New("timeout")).Once()

		// When
		rec := serve(router, "/games/abc")

		// Then
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestWebSocketRoute(t *testing.T) {
	// Given
	router, _, _ := newRouter(t)

	// When
	rec := serve(router, "/ws")

	// Then
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
