package tcp

import (
	"io"
	"net"
	"time"

	"github.com/indigo-web/fileserve/internal/timer"
)

// Client wraps the connection, arming the deadlines before every operation.
type Client interface {
	// Read reads the next chunk of data. The returned slice is valid until the next call.
	Read() ([]byte, error)
	// Writer arms the write deadline for the whole response and returns the connection
	// to write it into.
	Writer() (io.Writer, error)
	// Conn unwraps the underlying connection.
	Conn() net.Conn
	// Remote returns the remote address of the connection.
	Remote() net.Addr
	Close() error
}

type client struct {
	conn         net.Conn
	buff         []byte
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewClient(conn net.Conn, readTimeout, writeTimeout time.Duration, buff []byte) Client {
	return &client{
		conn:         conn,
		buff:         buff,
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
	}
}

func (c *client) Read() ([]byte, error) {
	if err := c.conn.SetReadDeadline(timer.Now().Add(c.readTimeout)); err != nil {
		return nil, err
	}

	n, err := c.conn.Read(c.buff)
	return c.buff[:n], err
}

func (c *client) Writer() (io.Writer, error) {
	if err := c.conn.SetWriteDeadline(timer.Now().Add(c.writeTimeout)); err != nil {
		return nil, err
	}

	return c.conn, nil
}

func (c *client) Conn() net.Conn {
	return c.conn
}

func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

func (c *client) Close() error {
	return c.conn.Close()
}
