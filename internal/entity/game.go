package entity

import (
	"fmt"
	"time"
)

const (
	StatusWaiting  = "waiting"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// GameEvent is a notification tag published by the game state machine.
type GameEvent uint8

const (
	GameStarted GameEvent = iota
	MovePlayed
	GameEnded
	InvalidMove
)

func (that GameEvent) String() string {
	switch that {
	case GameStarted:
		return "GAME_STARTED"
	case MovePlayed:
		return "MOVE_PLAYED"
	case GameEnded:
		return "GAME_ENDED"
	case InvalidMove:
		return "INVALID_MOVE"
	default:
		return "UNKNOWN"
	}
}

func (that GameEvent) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

// ResultReason tells how the game was decided.
type ResultReason string

const (
	ReasonScore       ResultReason = "score"
	ReasonResignation ResultReason = "resignation"
	ReasonAbandonment ResultReason = "abandonment"
)

type GameResult struct {
	BlackScore float64      `json:"black_score"`
	WhiteScore float64      `json:"white_score"`
	Winner     Color        `json:"winner"`
	Margin     float64      `json:"margin"`
	Reason     ResultReason `json:"reason"`
}

func (that GameResult) String() string {
	return fmt.Sprintf("%s won with the difference %.1f points (Black: %.1f, White: %.1f)",
		that.Winner, that.Margin, that.BlackScore, that.WhiteScore)
}

// Captures counts enemy stones removed from the board by each color's placements.
type Captures struct {
	ByBlack int `json:"by_black"`
	ByWhite int `json:"by_white"`
}

// Snapshot is a read-only copy of a session's game, safe to hand out of the session lock.
type Snapshot struct {
	ID        string      `json:"id"`
	Status    string      `json:"status"`
	Size      int         `json:"size"`
	Komi      float64     `json:"komi"`
	Rows      []string    `json:"rows"`
	Turn      Color       `json:"turn"`
	Captures  Captures    `json:"captures"`
	Players   []Player    `json:"players,omitempty"`
	MoveCount int         `json:"move_count"`
	LastMove  *Move       `json:"last_move,omitempty"`
	Result    *GameResult `json:"result,omitempty"`
}

func (that Snapshot) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that Snapshot) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that Snapshot) IsWaiting() bool {
	return that.Status == StatusWaiting
}

// GameRecord is what gets archived once a game ends.
type GameRecord struct {
	ID        string     `json:"id"`
	Size      int        `json:"size"`
	Komi      float64    `json:"komi"`
	Rows      []string   `json:"rows"`
	MoveCount int        `json:"move_count"`
	Captures  Captures   `json:"captures"`
	Result    GameResult `json:"result"`
	EndedAt   time.Time  `json:"ended_at"`
}
