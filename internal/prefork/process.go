package prefork

import (
	"os"
	"strconv"
)

// Marker is the environment variable telling a process it's a worker. Its value is
// the worker id, starting from 1.
const Marker = "HTTPD_WORKER"

// WorkerID returns the id of the current worker. ok is false for the master process.
func WorkerID() (id int, ok bool) {
	raw, found := os.LookupEnv(Marker)
	if !found {
		return 0, false
	}

	id, err := strconv.Atoi(raw)
	return id, err == nil && id > 0
}

// Process is a started worker.
type Process interface {
	Pid() int
	// Wait blocks until the process exits and returns its exit code.
	Wait() (code int, err error)
	Kill() error
}

// Spawner starts the worker with the given id.
type Spawner func(id int) (Process, error)

// Exec returns a spawner re-executing the current binary with the passed arguments. Workers
// inherit the environment and the standard files of the master.
func Exec(args []string) Spawner {
	return func(id int) (Process, error) {
		exe, err := os.Executable()
		if err != nil {
			return nil, err
		}

		proc, err := os.StartProcess(exe, append([]string{exe}, args...), &os.ProcAttr{
			Env:   append(os.Environ(), Marker+"="+strconv.Itoa(id)),
			Files: []*os.File{os.Stdin, os.Stdout, os.Stderr},
		})
		if err != nil {
			return nil, err
		}

		return osProcess{proc}, nil
	}
}

type osProcess struct {
	p *os.Process
}

func (o osProcess) Pid() int {
	return o.p.Pid
}

func (o osProcess) Wait() (int, error) {
	state, err := o.p.Wait()
	if err != nil {
		return -1, err
	}

	return state.ExitCode(), nil
}

func (o osProcess) Kill() error {
	return o.p.Kill()
}
