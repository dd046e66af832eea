//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package tcp

import (
	"net"

	"github.com/valyala/tcplisten"
)

// Listen binds the address. With reusePort set, SO_REUSEPORT is enabled, so multiple
// processes may serve the same port.
func Listen(addr string, reusePort bool) (net.Listener, error) {
	if !reusePort {
		return listenPlain(addr)
	}

	cfg := &tcplisten.Config{ReusePort: true}

	return cfg.NewListener(network(addr), addr)
}
