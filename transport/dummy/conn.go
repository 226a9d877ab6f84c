package dummy

import (
	"io"
	"net"
	"time"
)

// Conn is a scripted connection: reads are served from Input, writes are accumulated
// in Data, unless WriteErr is set.
type Conn struct {
	Input    []byte
	Data     []byte
	WriteErr error
	Closed   bool
	Deadline time.Time
}

func NewConn(input string) *Conn {
	return &Conn{Input: []byte(input)}
}

func (c *Conn) Read(b []byte) (n int, err error) {
	if len(c.Input) == 0 {
		return 0, io.EOF
	}

	n = copy(b, c.Input)
	c.Input = c.Input[n:]

	return n, nil
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if c.WriteErr != nil {
		return 0, c.WriteErr
	}

	c.Data = append(c.Data, b...)

	return len(b), nil
}

func (c *Conn) Close() error {
	c.Closed = true
	return nil
}

func (c *Conn) LocalAddr() net.Addr {
	return nil
}

func (c *Conn) RemoteAddr() net.Addr {
	return nil
}

func (c *Conn) SetDeadline(t time.Time) error {
	c.Deadline = t
	return nil
}

func (c *Conn) SetReadDeadline(t time.Time) error {
	c.Deadline = t
	return nil
}

func (c *Conn) SetWriteDeadline(time.Time) error {
	return nil
}
