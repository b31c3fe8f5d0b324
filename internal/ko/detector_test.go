package ko

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/goban-backend/internal/board"
	"github.com/rocketscienceinc/goban-backend/internal/entity"
)

type step struct {
	color entity.Color
	x, y  int
}

// play applies steps the way the game does: check, place, then remember the board from before.
func play(t *testing.T, detector *Detector, b *board.Board, steps ...step) {
	t.Helper()

	for _, s := range steps {
		require.False(t, detector.IsViolation(b, s.x, s.y, s.color), "unexpected ko at (%d, %d)", s.x, s.y)

		before := b.Clone()
		require.True(t, b.PlaceStone(s.color, s.x, s.y), "placing %s at (%d, %d)", s.color, s.x, s.y)
		detector.Update(before)
	}
}

// koShape builds the classic ko on a 9x9 board and ends with black taking the white stone at (1,1).
func koShape(t *testing.T, detector *Detector) *board.Board {
	t.Helper()

	b := board.New(9)
	play(t, detector, b,
		step{entity.Black, 0, 1},
		step{entity.White, 0, 2},
		step{entity.Black, 2, 1},
		step{entity.White, 2, 2},
		step{entity.Black, 1, 0},
		step{entity.White, 1, 1},
		step{entity.Black, 4, 4},
		step{entity.White, 1, 3},
		step{entity.Black, 1, 2},
	)

	require.Equal(t, entity.Empty, b.At(1, 1), "black should have captured (1,1)")

	return b
}

func TestDetector_IsViolation(t *testing.T) {
	t.Run("First move is never a violation", func(t *testing.T) {
		// Given: a fresh detector
		detector := NewDetector()

		// Then: nothing on an empty board is ko
		assert.False(t, detector.IsViolation(board.New(9), 4, 4, entity.Black))
	})

	t.Run("Immediate recapture is a violation", func(t *testing.T) {
		// Given: black has just taken the ko
		detector := NewDetector()
		b := koShape(t, detector)
		before := b.Clone()

		// When: white retakes at once
		violation := detector.IsViolation(b, 1, 1, entity.White)

		// Then: the move is flagged and the board is untouched
		assert.True(t, violation)
		assert.True(t, before.Equal(b))
	})

	t.Run("Recapture is legal after an intervening exchange", func(t *testing.T) {
		// Given: black has taken the ko and both players then played elsewhere
		detector := NewDetector()
		b := koShape(t, detector)
		play(t, detector, b,
			step{entity.White, 7, 7},
			step{entity.Black, 6, 6},
		)

		// When: white retakes
		violation := detector.IsViolation(b, 1, 1, entity.White)

		// Then: it is allowed
		assert.False(t, violation)
		assert.True(t, b.PlaceStone(entity.White, 1, 1))
		assert.Equal(t, entity.Empty, b.At(1, 2))
	})

	t.Run("Illegal placement is not a violation", func(t *testing.T) {
		detector := NewDetector()
		b := koShape(t, detector)

		assert.False(t, detector.IsViolation(b, 0, 1, entity.White), "occupied")
		assert.False(t, detector.IsViolation(b, 9, 9, entity.White), "outside")
	})

	t.Run("Reset forgets the snapshot", func(t *testing.T) {
		detector := NewDetector()
		b := koShape(t, detector)

		detector.Reset()

		assert.False(t, detector.IsViolation(b, 1, 1, entity.White))
	})
}

func TestDetector_Update_StoresCopy(t *testing.T) {
	// Given: a detector remembering an empty board
	detector := NewDetector()
	b := board.New(5)
	detector.Update(b)

	// When: the original board is changed afterwards
	require.True(t, b.PlaceStone(entity.Black, 2, 2))

	// Then: the remembered board is still empty
	assert.Equal(t, 0, detector.previous.Count(entity.Black))
}
