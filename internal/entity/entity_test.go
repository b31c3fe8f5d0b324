package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/goban-backend/internal/entity"
)

func TestColor_Opposite(t *testing.T) {
	assert.Equal(t, entity.White, entity.Black.Opposite())
	assert.Equal(t, entity.Black, entity.White.Opposite())
	assert.Equal(t, entity.Empty, entity.Empty.Opposite())
}

func TestColor_IsStone(t *testing.T) {
	assert.True(t, entity.Black.IsStone())
	assert.True(t, entity.White.IsStone())
	assert.False(t, entity.Empty.IsStone())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  entity.Color
	}{
		{input: "BLACK", want: entity.Black},
		{input: "white", want: entity.White},
		{input: " Black ", want: entity.Black},
		{input: "empty", want: entity.Empty},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			color, err := entity.ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, color)
		})
	}

	t.Run("Unknown", func(t *testing.T) {
		_, err := entity.ParseColor("RED")
		assert.ErrorIs(t, err, entity.ErrUnknownColor)
	})
}

func TestColor_JSON(t *testing.T) {
	// Given
	player := entity.Player{ID: "p1", Color: entity.White}

	// When
	data, err := json.Marshal(player)
	require.NoError(t, err)

	// Then
	assert.JSONEq(t, `{"id":"p1","color":"WHITE"}`, string(data))

	var decoded entity.Player
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, player, decoded)

	assert.Error(t, json.Unmarshal([]byte(`{"color":"GREEN"}`), &decoded))
}

func TestMoveConstructors(t *testing.T) {
	place := entity.NewPlaceMove(entity.Black, 3, 4, "p1")
	assert.Equal(t, entity.Place, place.Kind)
	assert.Equal(t, entity.Point{X: 3, Y: 4}, place.Point())

	pass := entity.NewPassMove(entity.White, "p2")
	assert.Equal(t, entity.Pass, pass.Kind)
	assert.Equal(t, entity.NoCoordinate, pass.X)
	assert.Equal(t, entity.NoCoordinate, pass.Y)

	resign := entity.NewResignMove(entity.Black, "p1")
	assert.Equal(t, entity.Resign, resign.Kind)
	assert.Equal(t, "p1", resign.PlayerID)
	assert.Equal(t, "RESIGN", resign.Kind.String())
}

func TestMove_JSON(t *testing.T) {
	// Given
	move := entity.NewPassMove(entity.White, "p2")

	// When
	data, err := json.Marshal(move)
	require.NoError(t, err)

	// Then
	assert.JSONEq(t, `{"color":"WHITE","x":-1,"y":-1,"player_id":"p2","kind":"PASS"}`, string(data))

	var decoded entity.Move
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, move, decoded)

	err = json.Unmarshal([]byte(`{"kind":"JUMP"}`), &decoded)
	assert.ErrorIs(t, err, entity.ErrUnknownMoveKind)
}

func TestSnapshot_Status(t *testing.T) {
	tests := []struct {
		status   string
		waiting  bool
		ongoing  bool
		finished bool
	}{
		{status: entity.StatusWaiting, waiting: true},
		{status: entity.StatusOngoing, ongoing: true},
		{status: entity.StatusFinished, finished: true},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			snapshot := entity.Snapshot{Status: tt.status}

			assert.Equal(t, tt.finished, entity.Snapshot{Status: tt.status}.IsFinished())
			assert.Equal(t, tt.waiting, snapshot.IsWaiting())
			assert.Equal(t, tt.ongoing, snapshot.IsOngoing())
			assert.Equal(t, tt.finished, snapshot.IsFinished())
		})
	}
}

func TestGameResult_String(t *testing.T) {
	result := entity.GameResult{
		BlackScore: 25,
		WhiteScore: 7.5,
		Winner:     entity.Black,
		Margin:     17.5,
		Reason:     entity.ReasonScore,
	}

	assert.Equal(t, "BLACK won with the difference 17.5 points (Black: 25.0, White: 7.5)", result.String())
}

func TestGameEvent_String(t *testing.T) {
	assert.Equal(t, "GAME_STARTED", entity.GameStarted.String())
	assert.Equal(t, "MOVE_PLAYED", entity.MovePlayed.String())
	assert.Equal(t, "GAME_ENDED", entity.GameEnded.String())
	assert.Equal(t, "INVALID_MOVE", entity.InvalidMove.String())
}
