// Package logging provides the sink the server reports its diagnostics to.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

type Level int32

const (
	Debug Level = iota
	Info
	Error
)

func ParseLevel(str string) (Level, error) {
	switch strings.ToLower(str) {
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "error":
		return Error, nil
	}

	return Info, fmt.Errorf("logging: unknown level %q", str)
}

// Letter is how the level is shown in a log line.
func (l Level) Letter() byte {
	switch l {
	case Debug:
		return 'D'
	case Info:
		return 'I'
	default:
		return 'E'
	}
}

// Logger accepts leveled text messages.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

const timeLayout = "2006.01.02 15:04:05"

// Std is the Logger writing through the standard log package. Lines look like
// `[2017.06.30 12:00:01] I message`.
type Std struct {
	level  Level
	out    *log.Logger
	closer io.Closer
}

// New returns a logger writing lines of at least the given level into w.
func New(w io.Writer, level Level) *Std {
	return &Std{
		level: level,
		out:   log.New(&prefixer{w: w}, "", 0),
	}
}

// Open returns a logger writing into the given file or stdout, if the filename is empty.
// Missing parent directories are created.
func Open(filename string, level Level) (*Std, error) {
	if len(filename) == 0 {
		return New(os.Stdout, level), nil
	}

	if dir := filepath.Dir(filename); len(dir) > 0 {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
	}

	fd, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	l := New(fd, level)
	l.closer = fd

	return l, nil
}

func (s *Std) Debugf(format string, v ...any) {
	s.logf(Debug, format, v...)
}

func (s *Std) Infof(format string, v ...any) {
	s.logf(Info, format, v...)
}

func (s *Std) Errorf(format string, v ...any) {
	s.logf(Error, format, v...)
}

// Close closes the underlying file, if it was opened by Open.
func (s *Std) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer.Close()
}

func (s *Std) logf(level Level, format string, v ...any) {
	if level < s.level {
		return
	}

	s.out.Printf("%c "+format, append([]any{level.Letter()}, v...)...)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Debugf(string, ...any) {}
func (Nop) Infof(string, ...any)  {}
func (Nop) Errorf(string, ...any) {}
