package socket

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReusePort(t *testing.T) {
	first, err := Listen("127.0.0.1", 0, 5)
	require.NoError(t, err)
	defer first.Close()

	port := uint16(first.Addr().(*net.TCPAddr).Port)
	second, err := Listen("127.0.0.1", port, 5)
	require.NoError(t, err, "sibling sockets must be able to share the port")
	defer second.Close()

	require.Equal(t, first.Addr().String(), second.Addr().String())
}
