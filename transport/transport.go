package transport

import (
	"net"
)

// Transport is a single accept loop. The lifecycle is Bind, then Listen, which blocks
// until Stop is called or the transport fails, then Close.
type Transport interface {
	Bind(addr string) error
	Listen(cb func(conn net.Conn)) error
	Stop()
	Close()
}
