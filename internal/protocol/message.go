package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/goban-backend/internal/entity"
)

// Server message keywords.
const (
	MessageConnected = "CONNECTED"
	MessageBoardSize = "BOARDSIZE"
	MessageColor     = "COLOR"
	MessageCaptured  = "CAPTURED"
	MessageTurn      = "TURN"
	MessageEvent     = "EVENT"
	MessageResult    = "RESULT"
	MessageError     = "ERROR"
)

func Connected(playerID string) string {
	return MessageConnected + " " + playerID
}

func BoardSize(size int) string {
	return MessageBoardSize + " " + strconv.Itoa(size)
}

func Color(color entity.Color) string {
	return MessageColor + " " + color.String()
}

func Captured(captures entity.Captures) string {
	return fmt.Sprintf("%s %d %d", MessageCaptured, captures.ByBlack, captures.ByWhite)
}

func Turn(color entity.Color) string {
	return MessageTurn + " " + color.String()
}

func Event(event entity.GameEvent) string {
	return MessageEvent + " " + event.String()
}

// Result - RESULT <winner> <blackScore> <whiteScore> <margin>, scores with one decimal.
func Result(result entity.GameResult) string {
	return fmt.Sprintf("%s %s %.1f %.1f %.1f",
		MessageResult, result.Winner, result.BlackScore, result.WhiteScore, result.Margin)
}

func Error(err error) string {
	return MessageError + " " + err.Error()
}

// BoardDump renders rows (one string of 'B', 'W' and '.' per board row) as the header line of column
// indices, one line per row prefixed by its index, and a terminating blank line.
func BoardDump(rows []string) []string {
	lines := make([]string, 0, len(rows)+2)

	var line strings.Builder

	line.WriteString("   ")
	for x := range rows {
		fmt.Fprintf(&line, " %2d", x)
	}
	lines = append(lines, line.String())

	for y, row := range rows {
		line.Reset()
		fmt.Fprintf(&line, "%2d ", y)
		for i := 0; i < len(row); i++ {
			fmt.Fprintf(&line, "  %c", row[i])
		}
		lines = append(lines, line.String())
	}

	return append(lines, "")
}
