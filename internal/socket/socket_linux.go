package socket

import (
	"net"
	"os"

	"golang.org/x/sys/unix"
)

// listen creates the socket by hand, as the standard library doesn't allow
// choosing the backlog.
func listen(addr *net.TCPAddr, backlog int) (net.Listener, error) {
	family, sa := sockaddr(addr)

	fd, err := unix.Socket(family, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, unix.IPPROTO_TCP)
	if err != nil {
		return nil, os.NewSyscallError("socket", err)
	}

	if err = setup(fd, sa, backlog); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}

	file := os.NewFile(uintptr(fd), "tcp:"+addr.String())
	// FileListener duplicates the descriptor, so the original one is closed in any case
	defer file.Close()

	return net.FileListener(file)
}

func setup(fd int, sa unix.Sockaddr, backlog int) error {
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		return os.NewSyscallError("setsockopt", err)
	}

	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEPORT, 1); err != nil {
		return os.NewSyscallError("setsockopt", err)
	}

	if err := unix.Bind(fd, sa); err != nil {
		return os.NewSyscallError("bind", err)
	}

	if err := unix.Listen(fd, backlog); err != nil {
		return os.NewSyscallError("listen", err)
	}

	return nil
}

func sockaddr(addr *net.TCPAddr) (family int, sa unix.Sockaddr) {
	if ip4 := addr.IP.To4(); ip4 != nil || addr.IP == nil {
		inet4 := &unix.SockaddrInet4{Port: addr.Port}
		copy(inet4.Addr[:], ip4)
		return unix.AF_INET, inet4
	}

	inet6 := &unix.SockaddrInet6{Port: addr.Port}
	copy(inet6.Addr[:], addr.IP.To16())
	if len(addr.Zone) > 0 {
		if iface, err := net.InterfaceByName(addr.Zone); err == nil {
			inet6.ZoneId = uint32(iface.Index)
		}
	}

	return unix.AF_INET6, inet6
}
