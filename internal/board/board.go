// Package board holds the grid of intersections and the capture rules of Go.
package board

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rocketscienceinc/goban-backend/internal/apperror"
	"github.com/rocketscienceinc/goban-backend/internal/entity"
)

// Board is a square grid of intersections. The zero value is not usable, use New.
type Board struct {
	size  int
	cells []entity.Color
}

// New - creates an empty board of side size.
func New(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]entity.Color, size*size),
	}
}

func (that *Board) Size() int {
	return that.size
}

// At returns the color at (x, y). The point must be inside the board.
func (that *Board) At(x, y int) entity.Color {
	return that.cells[that.index(x, y)]
}

// IsInside - checks whether (x, y) lies on the board.
func (that *Board) IsInside(x, y int) bool {
	return x >= 0 && x < that.size && y >= 0 && y < that.size
}

// Neighbors returns the orthogonal neighbors of p that lie on the board.
func (that *Board) Neighbors(p entity.Point) []entity.Point {
	result := make([]entity.Point, 0, 4)

	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		nx, ny := p.X+d[0], p.Y+d[1]
		if that.IsInside(nx, ny) {
			result = append(result, entity.Point{X: nx, Y: ny})
		}
	}

	return result
}

// PlaceStone puts a stone of color at (x, y), removing captured enemy groups.
// It returns false and leaves the board untouched when the point is outside the board,
// occupied, or the placement would be suicide.
func (that *Board) PlaceStone(color entity.Color, x, y int) bool {
	_, err := that.Play(color, x, y)
	return err == nil
}

// Play is PlaceStone that also reports what it removed and why a placement was refused.
// Enemy groups left without liberties are removed before the suicide check, so a move that
// captures is legal even if it looked like self-capture.
func (that *Board) Play(color entity.Color, x, y int) ([]entity.Point, error) {
	if !color.IsStone() {
		return nil, fmt.Errorf("%w: cannot place %s", apperror.ErrInvalidMove, color)
	}

	if !that.IsInside(x, y) {
		return nil, fmt.Errorf("%w: %w: (%d, %d)", apperror.ErrInvalidMove, apperror.ErrOutOfBounds, x, y)
	}

	if that.At(x, y) != entity.Empty {
		return nil, fmt.Errorf("%w: %w: (%d, %d)", apperror.ErrInvalidMove, apperror.ErrOccupied, x, y)
	}

	placed := entity.Point{X: x, Y: y}
	that.set(placed, color)

	var captured []entity.Point

	for _, n := range that.Neighbors(placed) {
		if that.At(n.X, n.Y) != color.Opposite() {
			continue
		}

		enemy := that.Group(n)
		if enemy.LibertyCount() == 0 {
			that.remove(enemy)
			captured = append(captured, enemy.Stones...)
		}
	}

	// nothing was captured if we get here with zero liberties
	if own := that.Group(placed); own.LibertyCount() == 0 {
		that.set(placed, entity.Empty)
		return nil, fmt.Errorf("%w: %w: (%d, %d)", apperror.ErrInvalidMove, apperror.ErrSuicide, x, y)
	}

	return captured, nil
}

// CapturedStones previews which stones a placement would capture without changing the board.
// An illegal placement captures nothing.
func (that *Board) CapturedStones(color entity.Color, x, y int) []entity.Point {
	preview := that.Clone()

	captured, err := preview.Play(color, x, y)
	if err != nil {
		return nil
	}

	return captured
}

// Clone returns a deep copy.
func (that *Board) Clone() *Board {
	return &Board{
		size:  that.size,
		cells: slices.Clone(that.cells),
	}
}

// Equal reports whether both boards have the same size and the same color on every intersection.
func (that *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}

	return that.size == other.size && slices.Equal(that.cells, other.cells)
}

// Rows renders the board one string per row, 'B' and 'W' for stones and '.' for empty points.
func (that *Board) Rows() []string {
	rows := make([]string, that.size)

	var row strings.Builder
	for y := 0; y < that.size; y++ {
		row.Reset()
		for x := 0; x < that.size; x++ {
			row.WriteByte(Symbol(that.At(x, y)))
		}
		rows[y] = row.String()
	}

	return rows
}

// Symbol is the one-character marker of a color.
func Symbol(color entity.Color) byte {
	switch color {
	case entity.Black:
		return 'B'
	case entity.White:
		return 'W'
	default:
		return '.'
	}
}

func (that *Board) String() string {
	return strings.Join(that.Rows(), "\n")
}

func (that *Board) index(x, y int) int {
	return y*that.size + x
}

func (that *Board) set(p entity.Point, color entity.Color) {
	that.cells[that.index(p.X, p.Y)] = color
}

func (that *Board) remove(group Group) {
	for _, p := range group.Stones {
		that.set(p, entity.Empty)
	}
}
