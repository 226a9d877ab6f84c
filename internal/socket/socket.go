// Package socket creates listening TCP sockets which can be shared by several
// processes: every socket has SO_REUSEADDR and SO_REUSEPORT set, so the kernel
// balances incoming connections among all the sockets bound to the same address.
package socket

import (
	"fmt"
	"net"
	"strconv"
)

// DefaultBacklog is used when a non-positive backlog is passed.
const DefaultBacklog = 5

// Listen binds a reuse-port TCP socket to host:port and starts listening with the
// given backlog.
func Listen(host string, port uint16, backlog int) (net.Listener, error) {
	if backlog <= 0 {
		backlog = DefaultBacklog
	}

	addr, err := net.ResolveTCPAddr("tcp", net.JoinHostPort(host, strconv.Itoa(int(port))))
	if err != nil {
		return nil, fmt.Errorf("socket: resolve: %w", err)
	}

	l, err := listen(addr, backlog)
	if err != nil {
		return nil, fmt.Errorf("socket: listen %s: %w", addr, err)
	}

	return l, nil
}
