package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/goban-backend/internal/entity"
	"github.com/rocketscienceinc/goban-backend/testing/suite"
)

func finishedGame(id string, winner entity.Color) entity.GameRecord {
	return entity.GameRecord{
		ID:        id,
		Size:      9,
		Komi:      7.5,
		Rows:      []string{"B........", ".........", ".........", ".........", ".........", ".........", ".........", ".........", "........W"},
		MoveCount: 2,
		Captures:  entity.Captures{ByBlack: 1},
		Result: entity.GameResult{
			BlackScore: 1,
			WhiteScore: 7.5,
			Winner:     winner,
			Margin:     6.5,
			Reason:     entity.ReasonScore,
		},
		EndedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestGameRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a finished game
	record := finishedGame("123", entity.White)

	// When: Save is called
	err := gameRepo.Save(ctx, record)

	// Then: no error should be returned, and the game is listed
	require.NoError(t, err)

	ids, err := st.Storage.LRange(ctx, finishedKey, 0, -1).Result()
	require.NoError(t, err)
	assert.Equal(t, []string{"123"}, ids)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: an archived game
		record := finishedGame("123", entity.Black)
		require.NoError(t, gameRepo.Save(ctx, record))

		// When: GetByID is called with its ID
		retrieved, err := gameRepo.GetByID(ctx, record.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		assert.Equal(t, record, *retrieved)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// When: GetByID is called with non-existent ID
		retrieved, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Empty(t, retrieved.ID)
	})
}

func TestGameRepository_ListFinished(t *testing.T) {
	t.Run("Newest first, up to the limit", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: three archived games
		for _, id := range []string{"first", "second", "third"} {
			require.NoError(t, gameRepo.Save(ctx, finishedGame(id, entity.White)))
		}

		// When: the two latest are listed
		records, err := gameRepo.ListFinished(ctx, 2)

		// Then: they come newest first
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "third", records[0].ID)
		assert.Equal(t, "second", records[1].ID)
	})

	t.Run("Saving twice lists once", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		require.NoError(t, gameRepo.Save(ctx, finishedGame("same", entity.White)))
		require.NoError(t, gameRepo.Save(ctx, finishedGame("same", entity.Black)))

		records, err := gameRepo.ListFinished(ctx, 10)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, entity.Black, records[0].Result.Winner)
	})

	t.Run("Missing records are skipped", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		require.NoError(t, gameRepo.Save(ctx, finishedGame("kept", entity.White)))
		require.NoError(t, gameRepo.Save(ctx, finishedGame("gone", entity.White)))
		require.NoError(t, st.Storage.Del(ctx, gameKeyPrefix+"gone").Err())

		records, err := gameRepo.ListFinished(ctx, 10)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "kept", records[0].ID)
	})

	t.Run("Empty archive", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		records, err := gameRepo.ListFinished(ctx, 10)

		require.NoError(t, err)
		assert.Empty(t, records)

		records, err = gameRepo.ListFinished(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
