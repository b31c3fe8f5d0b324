// Package websocket carries the line protocol over WebSocket, one text frame per line.
package websocket

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/goban-backend/internal/session"
)

const (
	readBufferSize  = 1024
	writeBufferSize = 1024
	maxMessageSize  = 512
)

type sessionDep interface {
	Join(conn session.Conn) (string, error)
	Handle(playerID, line string) bool
	Leave(playerID string)
}

type Server struct {
	logger       *slog.Logger
	session      sessionDep
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
	idleTimeout  time.Duration
}

func New(logger *slog.Logger, session sessionDep, writeTimeout, idleTimeout time.Duration) *Server {
	return &Server{
		logger:  logger.With("component", "websocket"),
		session: session,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  readBufferSize,
			WriteBufferSize: writeBufferSize,
			CheckOrigin:     func(_ *http.Request) bool { return true },
		},
		writeTimeout: writeTimeout,
		idleTimeout:  idleTimeout,
	}
}

// ServeHTTP - upgrades the request and plays the session over the socket until either side stops.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP", "remote", req.RemoteAddr)

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	playerID, err := that.session.Join(&connection{conn: conn, writeTimeout: that.writeTimeout})
	if err != nil {
		log.Info("connection refused", "error", err)
		that.closeWith(conn, websocket.ClosePolicyViolation, err.Error())
		return
	}

	log = log.With("playerID", playerID)
	log.Info("WebSocket connection established")

	defer that.session.Leave(playerID)

	for {
		if that.idleTimeout > 0 {
			if err = conn.SetReadDeadline(time.Now().Add(that.idleTimeout)); err != nil {
				log.Error("failed to set read deadline", "error", err)
				return
			}
		}

		messageType, payload, readErr := conn.ReadMessage()
		if readErr != nil {
			log.Info("player disconnected", "reason", readErr)
			return
		}

		if messageType != websocket.TextMessage {
			continue
		}

		if that.session.Handle(playerID, strings.TrimRight(string(payload), "\r\n")) {
			that.closeWith(conn, websocket.CloseNormalClosure, "bye")
			log.Info("player left")
			return
		}
	}
}

func (that *Server) closeWith(conn *websocket.Conn, code int, text string) {
	message := websocket.FormatCloseMessage(code, text)
	deadline := time.Now().Add(time.Second)

	if err := conn.WriteControl(websocket.CloseMessage, message, deadline); err != nil {
		that.logger.Debug("failed to send close frame", "error", err)
	}
}

// connection sends each protocol line as its own text frame.
type connection struct {
	conn         *websocket.Conn
	writeTimeout time.Duration

	mutex sync.Mutex
}

func (that *connection) Send(lines ...string) error {
	that.mutex.Lock()
	defer that.mutex.Unlock()

	if that.writeTimeout > 0 {
		if err := that.conn.SetWriteDeadline(time.Now().Add(that.writeTimeout)); err != nil {
			return fmt.Errorf("failed to set write deadline: %w", err)
		}
	}

	for _, line := range lines {
		if err := that.conn.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
			return fmt.Errorf("failed to write message: %w", err)
		}
	}

	return nil
}
