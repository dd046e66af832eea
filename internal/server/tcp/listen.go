package tcp

import (
	"net"
	"strings"
)

// network picks the address family of the address, as the reuseport listener can't serve
// both of them with a single socket.
func network(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err == nil && strings.Contains(host, ":") {
		return "tcp6"
	}

	return "tcp4"
}

func listenPlain(addr string) (net.Listener, error) {
	return net.Listen("tcp", addr)
}
