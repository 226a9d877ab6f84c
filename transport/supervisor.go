package transport

import (
	"errors"
	"net"
	"sync"
	"sync/atomic"

	"github.com/indigo-web/httpd/http/status"
)

// Supervisor runs a number of bound transports at once. Once any of them dies, the rest
// are stopped as well.
type Supervisor struct {
	stopped *atomic.Bool
	once    *sync.Once
	ts      []boundTransport
	stopch  chan struct{}
}

func NewSupervisor() Supervisor {
	return Supervisor{
		stopped: new(atomic.Bool),
		once:    new(sync.Once),
		stopch:  make(chan struct{}),
	}
}

// Add binds the transport. If binding fails, all the already added transports are
// closed and the error is returned.
func (s *Supervisor) Add(addr string, transport Transport, cb func(net.Conn)) error {
	err := transport.Bind(addr)
	if err != nil {
		s.close()
		return err
	}

	s.ts = append(s.ts, boundTransport{
		cb: cb,
		t:  transport,
	})

	return nil
}

// Run blocks until Stop is called or any transport dies. Transports stopped on purpose
// make Run return nil.
func (s *Supervisor) Run() error {
	if len(s.ts) == 0 {
		return nil
	}

	errch := make(chan error)

	for _, t := range s.ts {
		go func(t boundTransport, ch chan<- error) {
			ch <- t.t.Listen(t.cb)
		}(t, errch)
	}

	select {
	case err := <-errch:
		s.stop()
		drain(errch, len(s.ts)-1)

		if errors.Is(err, status.ErrShutdown) {
			return nil
		}

		return err
	case <-s.stopch:
		s.stop()
		drain(errch, len(s.ts))

		return nil
	}
}

// Stop makes Run return. It doesn't block and is safe to be called multiple times,
// even before Run.
func (s *Supervisor) Stop() {
	s.once.Do(func() {
		close(s.stopch)
	})
}

func (s *Supervisor) stop() {
	if s.stopped.Swap(true) {
		return
	}

	for _, t := range s.ts {
		t.t.Stop()
	}

	for _, t := range s.ts {
		t.t.Close()
	}
}

func (s *Supervisor) close() {
	for _, t := range s.ts {
		t.t.Close()
	}
}

type boundTransport struct {
	cb func(conn net.Conn)
	t  Transport
}

func drain(ch <-chan error, n int) {
	for range n {
		<-ch
	}
}
