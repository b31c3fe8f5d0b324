package board

import "github.com/rocketscienceinc/goban-backend/internal/entity"

// Group is a maximal set of same-colored, orthogonally connected points and the empty points around it.
// It is a snapshot: any change to the board invalidates it.
type Group struct {
	Color     entity.Color
	Stones    []entity.Point
	Liberties []entity.Point
}

func (that Group) Size() int {
	return len(that.Stones)
}

func (that Group) LibertyCount() int {
	return len(that.Liberties)
}

// Group walks breadth-first from seed over points of the seed's color.
func (that *Board) Group(seed entity.Point) Group {
	color := that.At(seed.X, seed.Y)

	group := Group{Color: color}

	visited := map[entity.Point]struct{}{seed: {}}
	liberties := make(map[entity.Point]struct{})
	queue := []entity.Point{seed}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		group.Stones = append(group.Stones, current)

		for _, n := range that.Neighbors(current) {
			neighborColor := that.At(n.X, n.Y)

			if neighborColor == entity.Empty && color != entity.Empty {
				if _, seen := liberties[n]; !seen {
					liberties[n] = struct{}{}
					group.Liberties = append(group.Liberties, n)
				}
				continue
			}

			if neighborColor != color {
				continue
			}

			if _, seen := visited[n]; seen {
				continue
			}

			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}

	return group
}

// CountLiberties counts the distinct empty points next to any stone of group on the current board.
func (that *Board) CountLiberties(group Group) int {
	liberties := make(map[entity.Point]struct{})

	for _, stone := range group.Stones {
		for _, n := range that.Neighbors(stone) {
			if that.At(n.X, n.Y) == entity.Empty {
				liberties[n] = struct{}{}
			}
		}
	}

	return len(liberties)
}
