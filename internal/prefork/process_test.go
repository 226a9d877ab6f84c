package prefork

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMain turns the test binary into a worker, when it's re-executed by Exec. The
// worker exits with its id as the exit code.
func TestMain(m *testing.M) {
	if id, ok := WorkerID(); ok {
		os.Exit(id)
	}

	os.Exit(m.Run())
}

func TestExec(t *testing.T) {
	spawn := Exec([]string{"-test.run=^$"})

	proc, err := spawn(3)
	require.NoError(t, err)
	require.NotZero(t, proc.Pid())

	code, err := proc.Wait()
	require.NoError(t, err)
	require.Equal(t, 3, code)
}
