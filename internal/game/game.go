// Package game is the turn-based state machine of a single Go game.
package game

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/goban-backend/internal/apperror"
	"github.com/rocketscienceinc/goban-backend/internal/board"
	"github.com/rocketscienceinc/goban-backend/internal/entity"
	"github.com/rocketscienceinc/goban-backend/internal/ko"
	"github.com/rocketscienceinc/goban-backend/internal/scoring"
)

const (
	MinBoardSize     = 5
	MaxBoardSize     = 21
	DefaultBoardSize = 19

	requiredPlayers = 2
	passesToEnd     = 2
)

// Game is not safe for concurrent use; the owner serializes access.
type Game struct {
	id         string
	board      *board.Board
	ko         *ko.Detector
	calculator *scoring.Calculator
	events     Bus

	state     State
	players   []entity.Player
	turn      entity.Color
	passes    int
	captures  entity.Captures
	moveCount int
	lastMove  *entity.Move
	result    *entity.GameResult
}

// New - creates a game waiting for two players on an empty board of side size.
func New(id string, size int, komi float64) (*Game, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", apperror.ErrInvalidBoardSize, size, MinBoardSize, MaxBoardSize)
	}

	return &Game{
		id:         id,
		board:      board.New(size),
		ko:         ko.NewDetector(),
		calculator: scoring.NewCalculator(komi),
		state:      WaitingForPlayers,
		turn:       entity.Black,
	}, nil
}

// Subscribe - registers handler for every event published from now on.
func (that *Game) Subscribe(handler Handler) {
	that.events.Subscribe(handler)
}

// AddPlayer registers a player with the color it was assigned.
// The second registration starts the game and publishes GameStarted.
func (that *Game) AddPlayer(player entity.Player) error {
	switch that.state {
	case InProgress:
		return apperror.ErrGameAlreadyStarted
	case Ended:
		return apperror.ErrGameFinished
	}

	if _, ok := that.player(player.ID); ok {
		return fmt.Errorf("%w: player %q already joined", apperror.ErrGameAlreadyStarted, player.ID)
	}

	if !player.Color.IsStone() {
		return fmt.Errorf("%w: cannot play %s", apperror.ErrWrongColor, player.Color)
	}

	for _, registered := range that.players {
		if registered.Color == player.Color {
			return fmt.Errorf("%w: %s is taken", apperror.ErrWrongColor, player.Color)
		}
	}

	that.players = append(that.players, player)

	if len(that.players) == requiredPlayers {
		that.start()
	}

	return nil
}

// MakeMove applies move or rejects it without changing anything.
// A rejection publishes InvalidMove before the error is returned.
func (that *Game) MakeMove(move entity.Move) error {
	handler, ok := transitions[that.state][move.Kind]
	if !ok {
		handler = func(*Game, entity.Move) error {
			return fmt.Errorf("%w: unknown move kind %s", apperror.ErrInvalidMove, move.Kind)
		}
	}

	if err := handler(that, move); err != nil {
		that.events.Publish(entity.InvalidMove)
		return err
	}

	return nil
}

// Leave - removes a player. A player leaving a game in progress hands the win to the opponent.
func (that *Game) Leave(playerID string) error {
	player, ok := that.player(playerID)
	if !ok {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, playerID)
	}

	switch that.state {
	case WaitingForPlayers:
		that.players = slices.DeleteFunc(that.players, func(p entity.Player) bool {
			return p.ID == playerID
		})
	case InProgress:
		that.finish(player.Color.Opposite(), entity.ReasonAbandonment)
	}

	return nil
}

func (that *Game) ID() string {
	return that.id
}

func (that *Game) State() State {
	return that.state
}

func (that *Game) Size() int {
	return that.board.Size()
}

func (that *Game) Komi() float64 {
	return that.calculator.Komi()
}

// Turn returns the color expected to move next.
func (that *Game) Turn() entity.Color {
	return that.turn
}

func (that *Game) Captures() entity.Captures {
	return that.captures
}

// Board returns a copy of the current position.
func (that *Game) Board() *board.Board {
	return that.board.Clone()
}

// Result returns the final result once the game has ended.
func (that *Game) Result() (entity.GameResult, bool) {
	if that.result == nil {
		return entity.GameResult{}, false
	}

	return *that.result, true
}

// Players returns the registered players in join order.
func (that *Game) Players() []entity.Player {
	return slices.Clone(that.players)
}

func (that *Game) Snapshot() entity.Snapshot {
	snapshot := entity.Snapshot{
		ID:        that.id,
		Status:    that.state.Status(),
		Size:      that.board.Size(),
		Komi:      that.calculator.Komi(),
		Rows:      that.board.Rows(),
		Turn:      that.turn,
		Captures:  that.captures,
		Players:   that.Players(),
		MoveCount: that.moveCount,
	}

	if that.lastMove != nil {
		lastMove := *that.lastMove
		snapshot.LastMove = &lastMove
	}

	if that.result != nil {
		result := *that.result
		snapshot.Result = &result
	}

	return snapshot
}

// Record is the archive entry of an ended game.
func (that *Game) Record() (entity.GameRecord, bool) {
	if that.result == nil {
		return entity.GameRecord{}, false
	}

	return entity.GameRecord{
		ID:        that.id,
		Size:      that.board.Size(),
		Komi:      that.calculator.Komi(),
		Rows:      that.board.Rows(),
		MoveCount: that.moveCount,
		Captures:  that.captures,
		Result:    *that.result,
	}, true
}

func (that *Game) start() {
	that.state = InProgress
	that.turn = entity.Black
	that.passes = 0
	that.ko.Reset()

	that.events.Publish(entity.GameStarted)
}

func (that *Game) place(move entity.Move) error {
	before := that.board.Clone()

	if that.ko.IsViolation(that.board, move.X, move.Y, move.Color) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrKoViolation, move.X, move.Y)
	}

	captured, err := that.board.Play(move.Color, move.X, move.Y)
	if err != nil {
		return err
	}

	that.ko.Update(before)
	that.addCaptures(move.Color, len(captured))
	that.passes = 0
	that.record(move)
	that.turn = that.turn.Opposite()

	that.events.Publish(entity.MovePlayed)

	return nil
}

func (that *Game) pass(move entity.Move) error {
	that.passes++
	that.record(move)
	that.turn = that.turn.Opposite()

	that.events.Publish(entity.MovePlayed)

	if that.passes >= passesToEnd {
		that.finish(entity.Empty, entity.ReasonScore)
	}

	return nil
}

func (that *Game) resign(move entity.Move) error {
	that.record(move)

	that.events.Publish(entity.MovePlayed)

	that.finish(move.Color.Opposite(), entity.ReasonResignation)

	return nil
}

// finish ends the game. With an Empty winner the score decides, otherwise winner takes the game
// and the board score is kept for information.
func (that *Game) finish(winner entity.Color, reason entity.ResultReason) {
	result := that.calculator.Score(that.board, that.captures.ByBlack, that.captures.ByWhite)
	if winner.IsStone() {
		result.Winner = winner
		result.Reason = reason
	}

	that.result = &result
	that.state = Ended

	that.events.Publish(entity.GameEnded)
}

func (that *Game) addCaptures(color entity.Color, count int) {
	switch color {
	case entity.Black:
		that.captures.ByBlack += count
	case entity.White:
		that.captures.ByWhite += count
	}
}

func (that *Game) record(move entity.Move) {
	that.moveCount++
	that.lastMove = &move
}

func (that *Game) player(id string) (entity.Player, bool) {
	for _, player := range that.players {
		if player.ID == id {
			return player, true
		}
	}

	return entity.Player{}, false
}
