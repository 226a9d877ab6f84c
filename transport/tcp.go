package transport

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/indigo-web/httpd/http/status"
	"github.com/indigo-web/httpd/internal/address"
	"github.com/indigo-web/httpd/internal/socket"
	"github.com/indigo-web/httpd/logging"
)

// acceptRetryDelay is how long to wait before accepting again after a failure, so
// e.g. running out of file descriptors doesn't spin the loop
const acceptRetryDelay = 10 * time.Millisecond

var ErrNotBound = errors.New("transport: not bound")

// TCP accepts connections on a reuse-port socket and runs the callback on every
// one of them in a separate goroutine. The accept loop never waits for callbacks
// to return.
type TCP struct {
	backlog int
	log     logging.Logger
	l       net.Listener
	wg      *sync.WaitGroup
	stop    *atomic.Bool
}

func NewTCP(backlog int, log logging.Logger) *TCP {
	return &TCP{
		backlog: backlog,
		log:     log,
		wg:      new(sync.WaitGroup),
		stop:    new(atomic.Bool),
	}
}

func (t *TCP) Bind(addr string) error {
	host, rawPort, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("transport: bind: %w", err)
	}

	port, err := strconv.ParseUint(rawPort, 10, 16)
	if err != nil {
		return fmt.Errorf("transport: bind: bad port: %w", err)
	}

	t.l, err = socket.Listen(host, uint16(port), t.backlog)
	if err != nil {
		t.log.Errorf("Can not make socket: %s", err)
		return err
	}

	t.log.Infof("Socket listens %s", t.l.Addr())

	return nil
}

// Addr returns the bound address or nil, if the transport isn't bound yet.
func (t *TCP) Addr() net.Addr {
	if t.l == nil {
		return nil
	}

	return t.l.Addr()
}

// Listen runs the accept loop. Failing to accept a connection is logged and the loop
// goes on. It returns status.ErrShutdown once stopped.
func (t *TCP) Listen(cb func(conn net.Conn)) error {
	if t.l == nil {
		return ErrNotBound
	}

	for {
		conn, err := t.l.Accept()
		if err != nil {
			if t.stop.Load() {
				return status.ErrShutdown
			}

			if errors.Is(err, net.ErrClosed) {
				return err
			}

			t.log.Errorf("Can not accept a connection: %s", err)
			time.Sleep(acceptRetryDelay)
			continue
		}

		t.log.Infof("Accepted connection from %s", address.Peer(conn.RemoteAddr()))
		t.wg.Add(1)
		go t.handle(conn, cb)
	}
}

// handle runs the callback, recovering it from panics. The connection is closed
// in any case.
func (t *TCP) handle(conn net.Conn, cb func(conn net.Conn)) {
	defer t.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			t.log.Errorf("Can not handle a request from %s: %v", address.Peer(conn.RemoteAddr()), r)
		}

		_ = conn.Close()
	}()

	cb(conn)
}

// Stop breaks the accept loop. Connections being served at the moment are left
// untouched.
func (t *TCP) Stop() {
	t.stop.Store(true)
	t.Close()
}

func (t *TCP) Close() {
	if t.l != nil {
		_ = t.l.Close()
	}
}

// Wait blocks until every accepted connection is served.
func (t *TCP) Wait() {
	t.wg.Wait()
}
