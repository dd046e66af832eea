package strutil

import (
	"net"
	"strconv"
)

const loopback = "127.0.0.1"

// BindAddress renders the listener's address the way a browser can open it: wildcard
// addresses are replaced by the IPv4 loopback.
func BindAddress(addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok && (tcp.IP == nil || tcp.IP.IsUnspecified()) {
		return net.JoinHostPort(loopback, strconv.Itoa(tcp.Port))
	}

	return Address(addr)
}

// Address renders the address as host:port, bracketing IPv6 hosts.
func Address(addr net.Addr) string {
	if addr == nil {
		return "<unknown>"
	}

	tcp, ok := addr.(*net.TCPAddr)
	if !ok {
		return addr.String()
	}

	return net.JoinHostPort(tcp.IP.String(), strconv.Itoa(tcp.Port))
}

// NormalizeAddress prepends the wildcard host to a port-only address.
func NormalizeAddress(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "0.0.0.0" + addr
	}

	return addr
}
