package tcp

import (
	"bufio"
	"fmt"
	"net"
	"sync"
	"time"
)

// connection writes protocol lines to one client. Writes are serialized and bounded by writeTimeout.
type connection struct {
	conn         net.Conn
	writer       *bufio.Writer
	writeTimeout time.Duration

	mutex sync.Mutex
}

func newConnection(conn net.Conn, writeTimeout time.Duration) *connection {
	return &connection{
		conn:         conn,
		writer:       bufio.NewWriter(conn),
		writeTimeout: writeTimeout,
	}
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
		if _, err := that.writer.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write line: %w", err)
		}
	}

	if err := that.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush lines: %w", err)
	}

	return nil
}
