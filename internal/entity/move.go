package entity

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMoveKind = errors.New("unknown move kind")

// MoveKind tells the state machine how to apply a move.
type MoveKind uint8

const (
	Place MoveKind = iota
	Pass
	Resign
)

// NoCoordinate is the sentinel coordinate carried by moves that do not touch the board.
const NoCoordinate = -1

func (that MoveKind) String() string {
	switch that {
	case Place:
		return "PLACE"
	case Pass:
		return "PASS"
	case Resign:
		return "RESIGN"
	default:
		return "UNKNOWN"
	}
}

func (that MoveKind) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *MoveKind) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "PLACE":
		*that = Place
	case "PASS":
		*that = Pass
	case "RESIGN":
		*that = Resign
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMoveKind, text)
	}

	return nil
}

type Move struct {
	Color    Color    `json:"color"`
	X        int      `json:"x"`
	Y        int      `json:"y"`
	PlayerID string   `json:"player_id"`
	Kind     MoveKind `json:"kind"`
}

func NewPlaceMove(color Color, x, y int, playerID string) Move {
	return Move{Color: color, X: x, Y: y, PlayerID: playerID, Kind: Place}
}

func NewPassMove(color Color, playerID string) Move {
	return Move{Color: color, X: NoCoordinate, Y: NoCoordinate, PlayerID: playerID, Kind: Pass}
}

func NewResignMove(color Color, playerID string) Move {
	return Move{Color: color, X: NoCoordinate, Y: NoCoordinate, PlayerID: playerID, Kind: Resign}
}

func (that Move) Point() Point {
	return Point{X: that.X, Y: that.Y}
}
