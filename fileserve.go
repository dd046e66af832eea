// Package fileserve is an HTTP/1.x static file server. Every connection carries exactly one
// request, the connection is closed right after the response.
package fileserve

import (
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/indigo-web/fileserve/config"
	httpserver "github.com/indigo-web/fileserve/internal/server/http"
	"github.com/indigo-web/fileserve/internal/server/tcp"
	"github.com/indigo-web/fileserve/internal/strutil"
	"github.com/indigo-web/fileserve/logging"
	"github.com/indigo-web/fileserve/router"
	"github.com/indigo-web/fileserve/router/static"
)

// ErrNotRunning is returned when stopping an app which doesn't serve.
var ErrNotRunning = errors.New("app isn't running")

type App struct {
	cfg    *config.Config
	log    logging.Logger
	hooks  hooks
	mu     sync.Mutex
	server *tcp.Server
}

// New returns a new App. A nil config means config.Default(), a nil logger discards
// everything.
func New(cfg *config.Config, log logging.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}

	if log == nil {
		log = logging.Nop()
	}

	return &App{
		cfg: cfg,
		log: log,
	}
}

// NotifyOnStart calls the callback with the bound address as soon as the listener is ready.
func (a *App) NotifyOnStart(cb func(addr net.Addr)) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback once the server is down and all the connections are
// closed.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve binds the configured address and serves until the app is stopped, which results
// in a nil error. If nil is passed instead of a router, the files of the configured root
// directory are served.
func (a *App) Serve(r router.Router) error {
	if r == nil {
		handler, err := static.New(a.cfg.Root, a.cfg.IndexFiles, a.log.Named("static"))
		if err != nil {
			return err
		}

		r = handler
	}

	sock, err := tcp.Listen(strutil.NormalizeAddress(a.cfg.Addr), a.cfg.NET.ReusePort)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	server := tcp.NewServer(sock)
	a.mu.Lock()
	a.server = server
	a.mu.Unlock()

	dispatcher := httpserver.NewServer(a.cfg, r, a.log.Named("dispatcher"))
	log := a.log.Named("server")
	log.Printf("listening on http://%s", strutil.BindAddress(server.Addr()))
	if a.hooks.OnStart != nil {
		a.hooks.OnStart(server.Addr())
	}

	err = server.Start(func(conn net.Conn) {
		dispatcher.Serve(conn)
	})

	a.mu.Lock()
	a.server = nil
	a.mu.Unlock()

	if a.hooks.OnStop != nil {
		a.hooks.OnStop()
	}

	if errors.Is(err, tcp.ErrStopped) {
		log.Printf("stopped")
		return nil
	}

	log.Errorf("accept loop failed: %v", err)
	return err
}

// Stop closes the listener and interrupts all the connections. Serve returns once they
// are done.
func (a *App) Stop() error {
	server := a.running()
	if server == nil {
		return ErrNotRunning
	}

	return server.Stop()
}

// GracefulStop closes the listener, letting the running connections finish. Serve returns
// once they are done.
func (a *App) GracefulStop() error {
	server := a.running()
	if server == nil {
		return ErrNotRunning
	}

	return server.GracefulShutdown()
}

func (a *App) running() *tcp.Server {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.server
}

type hooks struct {
	OnStart func(net.Addr)
	OnStop  func()
}
