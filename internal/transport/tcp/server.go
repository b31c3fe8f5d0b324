// Package tcp serves the line protocol over plain TCP, one goroutine per connection.
package tcp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/rocketscienceinc/goban-backend/internal/session"
)

type sessionDep interface {
	Join(conn session.Conn) (string, error)
	Handle(playerID, line string) bool
	Leave(playerID string)
}

type Server struct {
	logger       *slog.Logger
	session      sessionDep
	writeTimeout time.Duration
	idleTimeout  time.Duration

	connections      map[net.Conn]struct{}
	connectionsMutex sync.Mutex
	wg               sync.WaitGroup
}

func New(logger *slog.Logger, session sessionDep, writeTimeout, idleTimeout time.Duration) *Server {
	return &Server{
		logger:       logger.With("component", "tcp"),
		session:      session,
		writeTimeout: writeTimeout,
		idleTimeout:  idleTimeout,
		connections:  make(map[net.Conn]struct{}),
	}
}

// Start - listens on port and serves until ctx is canceled. Failing to bind is returned at once.
func (that *Server) Start(ctx context.Context, port string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", port, err)
	}

	return that.Serve(ctx, listener)
}

// Serve accepts connections from listener until ctx is canceled, then closes every open connection
// and waits for their workers.
func (that *Server) Serve(ctx context.Context, listener net.Listener) error {
	log := that.logger.With("method", "Serve", "addr", listener.Addr().String())

	stop := context.AfterFunc(ctx, func() {
		_ = listener.Close()
		that.closeAll()
	})
	defer stop()

	log.Info("accepting connections")

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				that.wg.Wait()
				log.Info("server stopped")
				return nil
			}

			return fmt.Errorf("failed to accept connection: %w", err)
		}

		if !that.track(ctx, conn) {
			_ = conn.Close()
			continue
		}

		that.wg.Add(1)

		go that.handleConnection(conn)
	}
}

func (that *Server) handleConnection(conn net.Conn) {
	log := that.logger.With("method", "handleConnection", "remote", conn.RemoteAddr().String())

	defer that.wg.Done()
	defer that.untrack(conn)

	playerID, err := that.session.Join(newConnection(conn, that.writeTimeout))
	if err != nil {
		log.Info("connection refused", "error", err)
		return
	}

	log = log.With("playerID", playerID)
	log.Info("player connected")

	defer that.session.Leave(playerID)

	reader := bufio.NewReader(conn)

	for {
		if that.idleTimeout > 0 {
			if err = conn.SetReadDeadline(time.Now().Add(that.idleTimeout)); err != nil {
				log.Error("failed to set read deadline", "error", err)
				return
			}
		}

		line, readErr := reader.ReadString('\n')
		if readErr != nil {
			if line != "" {
				that.session.Handle(playerID, strings.TrimRight(line, "\r\n"))
			}

			log.Info("player disconnected", "reason", readErr)
			return
		}

		if that.session.Handle(playerID, strings.TrimRight(line, "\r\n")) {
			log.Info("player left")
			return
		}
	}
}

// track refuses connections accepted after shutdown began.
func (that *Server) track(ctx context.Context, conn net.Conn) bool {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	if ctx.Err() != nil {
		return false
	}

	that.connections[conn] = struct{}{}

	return true
}

func (that *Server) untrack(conn net.Conn) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	if err := conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		that.logger.Debug("failed to close connection", "error", err)
	}

	delete(that.connections, conn)
}

func (that *Server) closeAll() {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	for conn := range that.connections {
		_ = conn.Close()
	}
}
