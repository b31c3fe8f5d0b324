// Package protocol is the line-oriented text protocol spoken between players and the server.
package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/goban-backend/internal/apperror"
	"github.com/rocketscienceinc/goban-backend/internal/entity"
)

// CommandType identifies a client command.
type CommandType uint8

const (
	Move CommandType = iota + 1
	Pass
	Resign
	Disconnect
)

const (
	keywordMove       = "MOVE"
	keywordPass       = "PASS"
	keywordResign     = "RESIGN"
	keywordDisconnect = "DISCONNECT"

	moveArgs = 3
)

func (that CommandType) String() string {
	switch that {
	case Move:
		return keywordMove
	case Pass:
		return keywordPass
	case Resign:
		return keywordResign
	case Disconnect:
		return keywordDisconnect
	default:
		return "UNKNOWN"
	}
}

// Command is a decoded client line. X, Y and Color are set for Move only.
type Command struct {
	Type  CommandType
	X     int
	Y     int
	Color entity.Color
}

// ParseCommand decodes one line. Keywords and colors are case-insensitive, tokens are separated by any whitespace.
func ParseCommand(line string) (Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", apperror.ErrUnknownCommand)
	}

	keyword, args := strings.ToUpper(tokens[0]), tokens[1:]

	switch keyword {
	case keywordMove:
		return parseMove(args)
	case keywordPass:
		return simple(Pass, args)
	case keywordResign:
		return simple(Resign, args)
	case keywordDisconnect:
		return simple(Disconnect, args)
	default:
		return Command{}, fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, tokens[0])
	}
}

func parseMove(args []string) (Command, error) {
	if len(args) != moveArgs {
		return Command{}, fmt.Errorf("%w: usage %s <x> <y> <BLACK|WHITE>", apperror.ErrMalformedCommand, keywordMove)
	}

	x, err := strconv.Atoi(args[0])
	if err != nil {
		return Command{}, fmt.Errorf("%w: x %q is not a number", apperror.ErrMalformedCommand, args[0])
	}

	y, err := strconv.Atoi(args[1])
	if err != nil {
		return Command{}, fmt.Errorf("%w: y %q is not a number", apperror.ErrMalformedCommand, args[1])
	}

	color, err := entity.ParseColor(args[2])
	if err != nil || !color.IsStone() {
		return Command{}, fmt.Errorf("%w: color %q", apperror.ErrMalformedCommand, args[2])
	}

	return Command{Type: Move, X: x, Y: y, Color: color}, nil
}

func simple(commandType CommandType, args []string) (Command, error) {
	if len(args) != 0 {
		return Command{}, fmt.Errorf("%w: %s takes no arguments", apperror.ErrMalformedCommand, commandType)
	}

	return Command{Type: commandType}, nil
}

// ToMove turns a game command into the move the sender submits as color.
// Pass and Resign carry the sender's color, Move keeps the color it names.
func (that Command) ToMove(playerID string, color entity.Color) (entity.Move, bool) {
	switch that.Type {
	case Move:
		return entity.NewPlaceMove(that.Color, that.X, that.Y, playerID), true
	case Pass:
		return entity.NewPassMove(color, playerID), true
	case Resign:
		return entity.NewResignMove(color, playerID), true
	default:
		return entity.Move{}, false
	}
}
