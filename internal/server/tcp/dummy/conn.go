// Package dummy provides in-memory connections for tests.
package dummy

import (
	"bytes"
	"io"
	"net"
	"sync"
	"time"
)

// Conn is a net.Conn reading the preset data chunk by chunk and recording everything
// written into it.
type Conn struct {
	mu       sync.Mutex
	chunks   [][]byte
	written  bytes.Buffer
	closed   bool
	remote   net.Addr
	readErr  error
	writeErr error
}

// NewConn returns a connection reading the chunks one per Read call, followed by io.EOF.
func NewConn(chunks ...[]byte) *Conn {
	return &Conn{
		chunks: chunks,
		remote: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 31337},
	}
}

// NewConnString is NewConn for a single string chunk.
func NewConnString(data string) *Conn {
	return NewConn([]byte(data))
}

// WithReadError replaces io.EOF after the last chunk by the error.
func (c *Conn) WithReadError(err error) *Conn {
	c.readErr = err
	return c
}

// WithWriteError makes every write fail with the error.
func (c *Conn) WithWriteError(err error) *Conn {
	c.writeErr = err
	return c
}

// WithRemote sets the remote address.
func (c *Conn) WithRemote(addr net.Addr) *Conn {
	c.remote = addr
	return c
}

func (c *Conn) Read(b []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, net.ErrClosed
	}

	if len(c.chunks) == 0 {
		if c.readErr != nil {
			return 0, c.readErr
		}

		return 0, io.EOF
	}

	n := copy(b, c.chunks[0])
	if c.chunks[0] = c.chunks[0][n:]; len(c.chunks[0]) == 0 {
		c.chunks = c.chunks[1:]
	}

	return n, nil
}

func (c *Conn) Write(b []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, net.ErrClosed
	}

	if c.writeErr != nil {
		return 0, c.writeErr
	}

	return c.written.Write(b)
}

// Written returns everything written into the connection so far.
func (c *Conn) Written() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	return bytes.Clone(c.written.Bytes())
}

// Closed reports whether Close was called.
func (c *Conn) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closed
}

func (c *Conn) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	return nil
}

func (c *Conn) LocalAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080}
}

func (c *Conn) RemoteAddr() net.Addr {
	return c.remote
}

func (*Conn) SetDeadline(time.Time) error {
	return nil
}

func (*Conn) SetReadDeadline(time.Time) error {
	return nil
}

func (*Conn) SetWriteDeadline(time.Time) error {
	return nil
}
