package address

import (
	"net"
	"strconv"
)

const DefaultHost = "0.0.0.0"

// Join builds the host:port pair. Empty host is treated as DefaultHost.
func Join(host string, port uint16) string {
	if len(host) == 0 {
		host = DefaultHost
	}

	return net.JoinHostPort(host, strconv.Itoa(int(port)))
}

// Peer renders the remote address for log messages.
func Peer(addr net.Addr) string {
	if addr == nil {
		return "unknown"
	}

	return addr.String()
}
