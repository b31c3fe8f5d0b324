// Package ko implements the simple (one-ply) ko rule.
package ko

import (
	"github.com/rocketscienceinc/goban-backend/internal/board"
	"github.com/rocketscienceinc/goban-backend/internal/entity"
)

// Detector remembers the board as it was before the last successful placement.
// It only catches immediate recapture, not longer repetition cycles.
type Detector struct {
	previous *board.Board
}

func NewDetector() *Detector {
	return &Detector{}
}

// IsViolation reports whether placing color at (x, y) on current would recreate the remembered board.
// An illegal placement is not a ko violation, the board rules report it.
func (that *Detector) IsViolation(current *board.Board, x, y int, color entity.Color) bool {
	if that.previous == nil {
		return false
	}

	next := current.Clone()
	if !next.PlaceStone(color, x, y) {
		return false
	}

	return next.Equal(that.previous)
}

// Update - remembers boardBefore, the position right before the move that just succeeded.
func (that *Detector) Update(boardBefore *board.Board) {
	that.previous = boardBefore.Clone()
}

func (that *Detector) Reset() {
	that.previous = nil
}
