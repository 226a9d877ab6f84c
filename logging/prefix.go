package logging

import (
	"io"
	"time"
)

var now = time.Now

// prefixer stamps every line with the local time in brackets. The standard log
// package can't be told to use a custom date layout, so the stamp is written here.
type prefixer struct {
	w io.Writer
}

func (p *prefixer) Write(b []byte) (int, error) {
	line := make([]byte, 0, len(timeLayout)+3+len(b))
	line = append(line, '[')
	line = now().AppendFormat(line, timeLayout)
	line = append(line, "] "...)
	line = append(line, b...)

	if _, err := p.w.Write(line); err != nil {
		return 0, err
	}

	return len(b), nil
}
