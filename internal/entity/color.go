package entity

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownColor = errors.New("unknown color")

// Color is the content of a board intersection.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

const (
	colorEmpty = "EMPTY"
	colorBlack = "BLACK"
	colorWhite = "WHITE"
)

// Opposite maps Black to White and back. Empty stays Empty.
func (that Color) Opposite() Color {
	switch that {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (that Color) IsStone() bool {
	return that == Black || that == White
}

func (that Color) String() string {
	switch that {
	case Black:
		return colorBlack
	case White:
		return colorWhite
	default:
		return colorEmpty
	}
}

func (that Color) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Color) UnmarshalText(text []byte) error {
	color, err := ParseColor(string(text))
	if err != nil {
		return err
	}

	*that = color

	return nil
}

// ParseColor - parses a stone color, case-insensitive.
func ParseColor(value string) (Color, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case colorBlack:
		return Black, nil
	case colorWhite:
		return White, nil
	case colorEmpty:
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownColor, value)
	}
}

// Point is an intersection on the board.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (that Point) String() string {
	return fmt.Sprintf("(%d, %d)", that.X, that.Y)
}
