package session

import (
	"context"

	"github.com/rocketscienceinc/goban-backend/internal/entity"
	"github.com/rocketscienceinc/goban-backend/internal/protocol"
)

// onGameEvent runs inside the game call, so the session lock is held.
func (that *Session) onGameEvent(event entity.GameEvent) {
	switch event {
	case entity.GameStarted, entity.MovePlayed:
		that.broadcast(that.stateLines(event)...)
	case entity.GameEnded:
		lines := that.stateLines(event)

		if result, ok := that.game.Result(); ok {
			lines = append(lines, protocol.Result(result))
			that.logger.Info("game ended", "result", result.String(), "reason", result.Reason)
		}

		that.broadcast(lines...)
		that.archiveGame()
	case entity.InvalidMove:
		// the originator gets ERROR from reject
	}
}

// stateLines - board dump, captures, turn and the event tag, in that order.
func (that *Session) stateLines(event entity.GameEvent) []string {
	lines := protocol.BoardDump(that.game.Board().Rows())

	return append(lines,
		protocol.Captured(that.game.Captures()),
		protocol.Turn(that.game.Turn()),
		protocol.Event(event),
	)
}

func (that *Session) broadcast(lines ...string) {
	log := that.logger.With("method", "broadcast")

	for _, playerID := range that.order {
		if err := that.seats[playerID].conn.Send(lines...); err != nil {
			log.Warn("failed to send to player", "playerID", playerID, "error", err)
		}
	}
}

// archiveGame stashes the record of the finished game. It is saved by unlock, outside the lock.
func (that *Session) archiveGame() {
	if that.archive == nil {
		return
	}

	record, ok := that.game.Record()
	if !ok {
		return
	}

	record.EndedAt = that.now().UTC()
	that.pending = &record
}

// unlock releases the session lock, then archives a game that ended while it was held.
func (that *Session) unlock() {
	record := that.pending
	that.pending = nil
	that.mutex.Unlock()

	if record != nil {
		that.save(*record)
	}
}

func (that *Session) save(record entity.GameRecord) {
	log := that.logger.With("method", "save", "gameID", record.ID)

	ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
	defer cancel()

	if err := that.archive.Save(ctx, record); err != nil {
		log.Error("failed to archive game", "error", err)
		return
	}

	log.Info("game archived")
}
