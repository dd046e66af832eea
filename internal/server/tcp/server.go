package tcp

import (
	"errors"
	"net"
	"sync"
	"sync/atomic"
)

// ErrStopped is returned by Start when the server was stopped on purpose.
var ErrStopped = errors.New("server stopped")

// Server is an accept loop running every connection in its own goroutine.
type Server struct {
	sock    net.Listener
	wg      sync.WaitGroup
	stopped atomic.Bool
	mu      sync.Mutex
	conns   map[net.Conn]struct{}
}

func NewServer(sock net.Listener) *Server {
	return &Server{
		sock:  sock,
		conns: make(map[net.Conn]struct{}),
	}
}

// Addr returns the address the server listens on.
func (s *Server) Addr() net.Addr {
	return s.sock.Addr()
}

// Start blocks on accepting new connections. The connection is closed once the callback
// returns. When the listener fails or is closed, Start waits for the running connections
// to end and returns ErrStopped if the shutdown was requested.
func (s *Server) Start(onConn func(net.Conn)) error {
	for {
		conn, err := s.sock.Accept()
		if err != nil {
			s.wg.Wait()

			if s.stopped.Load() {
				return ErrStopped
			}

			return err
		}

		s.track(conn)
		s.wg.Add(1)
		go s.serve(conn, onConn)
	}
}

func (s *Server) serve(conn net.Conn, onConn func(net.Conn)) {
	defer s.wg.Done()
	defer s.untrack(conn)
	defer conn.Close()

	onConn(conn)
}

func (s *Server) track(conn net.Conn) {
	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}

func (s *Server) stopListener() error {
	if s.stopped.Swap(true) {
		return nil
	}

	return s.sock.Close()
}

// Stop shuts the listener and ALL the connections down.
func (s *Server) Stop() error {
	err := s.stopListener()

	s.mu.Lock()
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()

	return err
}

// GracefulShutdown stops the listener, leaving all the connections free to end their
// lives peacefully.
func (s *Server) GracefulShutdown() error {
	return s.stopListener()
}

// Wait blocks until all the running connections are done.
func (s *Server) Wait() {
	s.wg.Wait()
}
