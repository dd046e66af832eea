//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package tcp

import (
	"net"
)

// Listen binds the address. SO_REUSEPORT isn't supported on this platform, so reusePort
// is ignored.
func Listen(addr string, _ bool) (net.Listener, error) {
	return listenPlain(addr)
}
