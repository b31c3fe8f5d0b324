package apperror

import "errors"

// rule violations.
var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrOutOfBounds   = errors.New("point is outside the board")
	ErrOccupied      = errors.New("intersection is already occupied")
	ErrSuicide       = errors.New("suicide is not allowed")
	ErrKoViolation   = errors.New("move violates the ko rule")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrUnknownPlayer = errors.New("player not recognized")
	ErrWrongColor    = errors.New("color does not belong to player")
)

// lifecycle errors.
var (
	ErrGameNotStarted     = errors.New("game has not started yet")
	ErrGameAlreadyStarted = errors.New("game already started")
	ErrGameFinished       = errors.New("game is already finished")
	ErrSessionFull        = errors.New("session is full")
	ErrInvalidBoardSize   = errors.New("board size is out of range")
)

// protocol errors.
var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMalformedCommand = errors.New("malformed command")
)
