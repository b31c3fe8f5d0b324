// Package scoring counts territory and turns a final position into a GameResult.
package scoring

import (
	"github.com/rocketscienceinc/goban-backend/internal/board"
	"github.com/rocketscienceinc/goban-backend/internal/entity"
)

// Territory is the number of empty points owned by each color.
type Territory struct {
	Black int
	White int
}

// Of returns the territory of color. Empty owns nothing.
func (that Territory) Of(color entity.Color) int {
	switch color {
	case entity.Black:
		return that.Black
	case entity.White:
		return that.White
	default:
		return 0
	}
}

// CalculateTerritory flood-fills every empty region once. A region bordered by stones of a single
// color belongs to that color; a region touching both colors, or none, is neutral.
func CalculateTerritory(b *board.Board) Territory {
	var territory Territory

	size := b.Size()
	visited := make([]bool, size*size)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if visited[y*size+x] || b.At(x, y) != entity.Empty {
				continue
			}

			region, owner := fillRegion(b, entity.Point{X: x, Y: y}, visited)

			switch owner {
			case entity.Black:
				territory.Black += region
			case entity.White:
				territory.White += region
			}
		}
	}

	return territory
}

// fillRegion marks the empty region around start as visited and returns its size and owner.
// The owner is Empty when the region is neutral.
func fillRegion(b *board.Board, start entity.Point, visited []bool) (int, entity.Color) {
	size := b.Size()
	visited[start.Y*size+start.X] = true

	region := 0
	touchBlack, touchWhite := false, false
	queue := []entity.Point{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		region++

		for _, n := range b.Neighbors(current) {
			switch b.At(n.X, n.Y) {
			case entity.Black:
				touchBlack = true
			case entity.White:
				touchWhite = true
			default:
				if !visited[n.Y*size+n.X] {
					visited[n.Y*size+n.X] = true
					queue = append(queue, n)
				}
			}
		}
	}

	switch {
	case touchBlack && !touchWhite:
		return region, entity.Black
	case touchWhite && !touchBlack:
		return region, entity.White
	default:
		return region, entity.Empty
	}
}
