//go:build unix && !linux

package socket

import (
	"context"
	"net"
	"syscall"

	"golang.org/x/sys/unix"
)

// listen leaves the backlog to the platform, as only the Linux implementation
// creates the socket by hand.
func listen(addr *net.TCPAddr, _ int) (net.Listener, error) {
	lc := net.ListenConfig{
		Control: func(_, _ string, rawConn syscall.RawConn) (err error) {
			ctlErr := rawConn.Control(func(fd uintptr) {
				if err = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
					return
				}

				err = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
			})
			if ctlErr != nil {
				return ctlErr
			}

			return err
		},
	}

	return lc.Listen(context.Background(), "tcp", addr.String())
}
