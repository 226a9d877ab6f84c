//go:build !unix

package socket

import "net"

// listen falls back to a plain listener: neither port reuse nor a custom backlog
// are available, so only a single worker can bind the address.
func listen(addr *net.TCPAddr, _ int) (net.Listener, error) {
	return net.ListenTCP("tcp", addr)
}
