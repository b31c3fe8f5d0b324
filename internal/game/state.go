package game

import (
	"fmt"

	"github.com/rocketscienceinc/goban-backend/internal/apperror"
	"github.com/rocketscienceinc/goban-backend/internal/entity"
)

// State is the lifecycle stage of a game.
type State uint8

const (
	WaitingForPlayers State = iota
	InProgress
	Ended
)

func (that State) String() string {
	switch that {
	case WaitingForPlayers:
		return "WAITING_FOR_PLAYERS"
	case InProgress:
		return "IN_PROGRESS"
	case Ended:
		return "ENDED"
	default:
		return "UNKNOWN"
	}
}

// Status maps the state onto the status strings used by snapshots and the archive.
func (that State) Status() string {
	switch that {
	case InProgress:
		return entity.StatusOngoing
	case Ended:
		return entity.StatusFinished
	default:
		return entity.StatusWaiting
	}
}

type moveHandler func(game *Game, move entity.Move) error

// transitions is the dispatch table keyed by state and move kind.
var transitions = map[State]map[entity.MoveKind]moveHandler{
	WaitingForPlayers: {
		entity.Place:  rejectNotStarted,
		entity.Pass:   rejectNotStarted,
		entity.Resign: rejectNotStarted,
	},
	InProgress: {
		entity.Place:  checked((*Game).place),
		entity.Pass:   checked((*Game).pass),
		entity.Resign: checked((*Game).resign),
	},
	Ended: {
		entity.Place:  rejectFinished,
		entity.Pass:   rejectFinished,
		entity.Resign: rejectFinished,
	},
}

func rejectNotStarted(_ *Game, _ entity.Move) error {
	return apperror.ErrGameNotStarted
}

func rejectFinished(_ *Game, _ entity.Move) error {
	return apperror.ErrGameFinished
}

// checked runs the checks shared by every move of a game in progress: the player is registered,
// owns the color it plays and it is that color's turn.
func checked(next moveHandler) moveHandler {
	return func(game *Game, move entity.Move) error {
		player, ok := game.player(move.PlayerID)
		if !ok {
			return fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, move.PlayerID)
		}

		if move.Color != game.turn {
			return apperror.ErrNotYourTurn
		}

		if move.Color != player.Color {
			return fmt.Errorf("%w: %s plays %s", apperror.ErrWrongColor, player.Color, move.Color)
		}

		return next(game, move)
	}
}
