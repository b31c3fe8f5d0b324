// Package session binds up to two player connections to one game and speaks the line protocol with them.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/goban-backend/internal/apperror"
	"github.com/rocketscienceinc/goban-backend/internal/entity"
	"github.com/rocketscienceinc/goban-backend/internal/game"
	"github.com/rocketscienceinc/goban-backend/internal/protocol"
)

const (
	capacity       = 2
	archiveTimeout = 5 * time.Second
)

// Conn is the outbound side of one player connection.
type Conn interface {
	// Send writes lines in order. An error is only fatal to this connection.
	Send(lines ...string) error
}

type archiveDep interface {
	Save(ctx context.Context, record entity.GameRecord) error
}

type seat struct {
	conn  Conn
	color entity.Color
}

type commandHandler func(playerID string, seat *seat, command protocol.Command) (done bool)

// Session serializes join, move handling and broadcast of one game.
// Every game event is broadcast while the lock of the call that caused it is still held.
type Session struct {
	logger  *slog.Logger
	game    *game.Game
	archive archiveDep

	mutex    sync.Mutex
	seats    map[string]*seat
	order    []string
	handlers map[protocol.CommandType]commandHandler

	// pending is a finished game waiting to be archived once the lock is released.
	pending *entity.GameRecord

	now func() time.Time
}

// New - creates a session around a game that has not started. archive may be nil.
func New(logger *slog.Logger, g *game.Game, archive archiveDep) *Session {
	session := &Session{
		logger:   logger.With("component", "session", "gameID", g.ID()),
		game:     g,
		archive:  archive,
		seats:    make(map[string]*seat, capacity),
		handlers: make(map[protocol.CommandType]commandHandler),
		now:      time.Now,
	}

	session.handlers[protocol.Move] = session.handleMove
	session.handlers[protocol.Pass] = session.handleMove
	session.handlers[protocol.Resign] = session.handleMove
	session.handlers[protocol.Disconnect] = session.handleDisconnect

	g.Subscribe(session.onGameEvent)

	return session
}

// Join registers conn as a player. The player gets its id and the board size, then its color while a seat is
// free. When the game refuses the player the error is sent to conn, the registration is dropped and returned.
func (that *Session) Join(conn Conn) (string, error) {
	log := that.logger.With("method", "Join")

	that.mutex.Lock()
	defer that.unlock()

	playerID := uuid.NewString()
	log = log.With("playerID", playerID)

	if err := conn.Send(protocol.Connected(playerID), protocol.BoardSize(that.game.Size())); err != nil {
		return "", fmt.Errorf("failed to greet player: %w", err)
	}

	color, free := that.freeColor()
	if free {
		if err := conn.Send(protocol.Color(color)); err != nil {
			return "", fmt.Errorf("failed to send color: %w", err)
		}
	}

	that.seats[playerID] = &seat{conn: conn, color: color}
	that.order = append(that.order, playerID)

	if err := that.game.AddPlayer(entity.Player{ID: playerID, Color: color}); err != nil {
		log.Info("player refused", "error", err)

		that.drop(playerID)

		if sendErr := conn.Send(protocol.Error(err)); sendErr != nil {
			log.Warn("failed to send error", "error", sendErr)
		}

		if !free {
			return "", fmt.Errorf("%w: %w", apperror.ErrSessionFull, err)
		}

		return "", fmt.Errorf("failed to join game: %w", err)
	}

	log.Info("player joined", "color", color)

	return playerID, nil
}

// Handle decodes one line from playerID and applies it. It reports true once the player is done with the session.
func (that *Session) Handle(playerID, line string) bool {
	log := that.logger.With("method", "Handle", "playerID", playerID)

	that.mutex.Lock()
	defer that.unlock()

	current, ok := that.seats[playerID]
	if !ok {
		log.Warn("line from unregistered player")
		return true
	}

	command, err := protocol.ParseCommand(line)
	if err != nil {
		that.reject(playerID, current, err)
		return false
	}

	handler, ok := that.handlers[command.Type]
	if !ok {
		that.reject(playerID, current, fmt.Errorf("%w: %s", apperror.ErrUnknownCommand, command.Type))
		return false
	}

	return handler(playerID, current, command)
}

// Leave releases the player's seat. It is safe to call more than once.
func (that *Session) Leave(playerID string) {
	that.mutex.Lock()
	defer that.unlock()

	that.leave(playerID)
}

// Snapshot returns the game as it is between two moves.
func (that *Session) Snapshot() entity.Snapshot {
	that.mutex.Lock()
	defer that.mutex.Unlock()

	return that.game.Snapshot()
}

// Players returns how many connections hold a seat.
func (that *Session) Players() int {
	that.mutex.Lock()
	defer that.mutex.Unlock()

	return len(that.seats)
}

func (that *Session) handleMove(playerID string, current *seat, command protocol.Command) bool {
	move, ok := command.ToMove(playerID, current.color)
	if !ok {
		that.reject(playerID, current, fmt.Errorf("%w: %s", apperror.ErrUnknownCommand, command.Type))
		return false
	}

	if err := that.game.MakeMove(move); err != nil {
		that.reject(playerID, current, err)
	}

	return false
}

func (that *Session) handleDisconnect(playerID string, _ *seat, _ protocol.Command) bool {
	that.leave(playerID)

	return true
}

func (that *Session) leave(playerID string) {
	log := that.logger.With("method", "leave", "playerID", playerID)

	if _, ok := that.seats[playerID]; !ok {
		return
	}

	// the seat goes first so the leaver gets no broadcast of its own departure
	that.drop(playerID)

	if err := that.game.Leave(playerID); err != nil {
		log.Debug("game did not know the player", "error", err)
	}

	log.Info("player left")
}

func (that *Session) drop(playerID string) {
	delete(that.seats, playerID)
	that.order = slices.DeleteFunc(that.order, func(id string) bool {
		return id == playerID
	})
}

// reject answers the originator only.
func (that *Session) reject(playerID string, current *seat, err error) {
	log := that.logger.With("method", "reject", "playerID", playerID)

	log.Debug("command rejected", "error", err)

	if sendErr := current.conn.Send(protocol.Error(err)); sendErr != nil {
		log.Warn("failed to send error", "error", sendErr)
	}
}

// freeColor - black for the first seat, white for the second.
func (that *Session) freeColor() (entity.Color, bool) {
	if len(that.seats) >= capacity {
		return entity.Empty, false
	}

	taken := make(map[entity.Color]bool, capacity)
	for _, s := range that.seats {
		taken[s.color] = true
	}

	if !taken[entity.Black] {
		return entity.Black, true
	}

	return entity.White, true
}
