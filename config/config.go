package config

import (
	"errors"
	"fmt"
	"os"

	json "github.com/json-iterator/go"
)

type (
	Server struct {
		// Host to bind the listening socket to.
		Host string `json:"host"`
		// Port to bind the listening socket to. 0 lets the kernel pick one, which is
		// useful only for tests, as sibling workers would end up on different ports.
		Port uint16 `json:"port" test:"nullable"`
		// Root is the directory static files are served from.
		Root string `json:"root"`
		// MaxBacklog is the length of the kernel queue of not yet accepted connections.
		MaxBacklog int `json:"max_backlog"`
		// Workers is the number of worker processes serving the same address. Values
		// lower than 2 make the server run in the current process.
		Workers int `json:"workers"`
		// Acceptors is the number of accept loops per worker process, each owning its
		// own reuse-port socket.
		Acceptors int `json:"acceptors"`
		// Name is the value of the Server response header.
		Name string `json:"name"`
	}

	NET struct {
		// ReadBufferSize is the size of chunks the request is read by.
		ReadBufferSize int `json:"read_buffer_size"`
		// ReadTimeout limits waiting for the request terminator, e.g. "30s" in the
		// config file. Zero disables the limit,
		// so a client which never completes its request holds its goroutine forever.
		ReadTimeout Duration `json:"read_timeout" test:"nullable"`
	}

	Log struct {
		// File is where log lines are written to. Empty means stdout.
		File string `json:"file" test:"nullable"`
		// Level is one of debug, info or error.
		Level string `json:"level"`
	}
)

// Config holds the runtime settings of the server. It's read once at startup and
// must not be modified afterwards.
//
// Always start from Default() and modify the fields you need, as zero values of
// most of them are invalid.
type Config struct {
	Server Server `json:"server"`
	NET    NET    `json:"net"`
	Log    Log    `json:"log"`
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Server: Server{
			Host:       "127.0.0.1",
			Port:       8080,
			Root:       "httptest",
			MaxBacklog: 5,
			Workers:    4,
			Acceptors:  1,
			Name:       "httpd",
		},
		NET: NET{
			ReadBufferSize: 4096,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads a JSON file on top of the defaults. Fields missing in the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}

	if err = json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

var (
	ErrNoRoot       = errors.New("root directory is not set")
	ErrBadBacklog   = errors.New("max backlog must be positive")
	ErrBadBuffer    = errors.New("read buffer size must be positive")
	ErrBadWorkers   = errors.New("number of workers must be positive")
	ErrBadAcceptors = errors.New("number of acceptors must be positive")
	ErrBadLevel     = errors.New("unknown log level")
)

// Validate reports the first field having an invalid value.
func (c *Config) Validate() error {
	switch {
	case len(c.Server.Root) == 0:
		return ErrNoRoot
	case c.Server.MaxBacklog <= 0:
		return ErrBadBacklog
	case c.Server.Workers <= 0:
		return ErrBadWorkers
	case c.Server.Acceptors <= 0:
		return ErrBadAcceptors
	case c.NET.ReadBufferSize <= 0:
		return ErrBadBuffer
	}

	switch c.Log.Level {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("%w: %q", ErrBadLevel, c.Log.Level)
	}

	return nil
}
