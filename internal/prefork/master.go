// Package prefork fans the server out to a number of worker processes. Every worker
// binds its own reuse-port socket on the same address, so the kernel balances incoming
// connections between them.
package prefork

import (
	"errors"
	"fmt"
	"sync"

	"github.com/indigo-web/httpd/logging"
)

// ErrWorkersFailed is returned when every worker exited abnormally without being stopped,
// e.g. none of them could bind the address.
var ErrWorkersFailed = errors.New("prefork: all workers failed")

// Master starts the workers and watches them. Workers aren't restarted.
type Master struct {
	workers int
	spawn   Spawner
	log     logging.Logger
	once    *sync.Once
	stopch  chan struct{}
}

func NewMaster(workers int, spawn Spawner, log logging.Logger) *Master {
	return &Master{
		workers: workers,
		spawn:   spawn,
		log:     log,
		once:    new(sync.Once),
		stopch:  make(chan struct{}),
	}
}

type exit struct {
	id, pid, code int
	err           error
}

// Run starts the workers and blocks until all of them exit. If any worker fails to
// start, already started ones are killed and the error is returned. If all the workers
// exit with a non-zero code before Stop is called, ErrWorkersFailed is returned.
func (m *Master) Run() error {
	procs := make([]Process, 0, m.workers)

	for id := 1; id <= m.workers; id++ {
		proc, err := m.spawn(id)
		if err != nil {
			m.log.Errorf("Can not start worker %d: %s", id, err)
			m.killAll(procs)
			for _, p := range procs {
				_, _ = p.Wait()
			}

			return fmt.Errorf("prefork: start worker %d: %w", id, err)
		}

		m.log.Infof("Started worker %d (pid %d)", id, proc.Pid())
		procs = append(procs, proc)
	}

	exits := make(chan exit)
	for i, proc := range procs {
		go watch(i+1, proc, exits)
	}

	var (
		stopch   = m.stopch
		stopping bool
		failed   int
	)

	for alive := len(procs); alive > 0; {
		select {
		case e := <-exits:
			alive--
			switch {
			case e.err != nil:
				failed++
				m.log.Errorf("Worker %d (pid %d) is lost: %s", e.id, e.pid, e.err)
			case e.code != 0:
				failed++
				m.log.Errorf("Worker %d (pid %d) exited with code %d", e.id, e.pid, e.code)
			default:
				m.log.Infof("Worker %d (pid %d) exited with code %d", e.id, e.pid, e.code)
			}
		case <-stopch:
			stopping = true
			m.log.Infof("Killing %d worker(s)", alive)
			m.killAll(procs)
			// nil channel blocks forever, so only exits are awaited from now on
			stopch = nil
		}
	}

	if !stopping && len(procs) > 0 && failed == len(procs) {
		return fmt.Errorf("%w: %d of %d exited abnormally", ErrWorkersFailed, failed, len(procs))
	}

	return nil
}

// Stop kills the workers. It doesn't block and is safe to be called multiple times.
func (m *Master) Stop() {
	m.once.Do(func() {
		close(m.stopch)
	})
}

func (m *Master) killAll(procs []Process) {
	for _, proc := range procs {
		if err := proc.Kill(); err != nil {
			m.log.Debugf("Can not kill pid %d: %s", proc.Pid(), err)
		}
	}
}

func watch(id int, proc Process, exits chan<- exit) {
	code, err := proc.Wait()
	exits <- exit{
		id:   id,
		pid:  proc.Pid(),
		code: code,
		err:  err,
	}
}
