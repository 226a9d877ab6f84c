package http1

import (
	"bytes"
	"io"
)

var terminator = []byte("\r\n\r\n")

// Receive reads the request by chunks of len(chunk) bytes until the terminator (CRLFCRLF)
// is met or the peer closes the connection. Everything before the first terminator is
// returned. In case the peer is gone before sending the terminator, the whole received
// data is returned.
//
// The request isn't limited in size, so a client is able to grow the buffer as much as it
// wants to. A client never sending the terminator blocks the caller until the reader's
// deadline (if any) exceeds.
func Receive(r io.Reader, chunk []byte) ([]byte, error) {
	var request []byte

	for {
		n, err := r.Read(chunk)
		if n > 0 {
			// the terminator may be split among two consecutive chunks
			from := max(0, len(request)-len(terminator)+1)
			request = append(request, chunk[:n]...)

			if i := bytes.Index(request[from:], terminator); i != -1 {
				return request[:from+i], nil
			}
		}

		switch {
		case err == io.EOF:
			return request, nil
		case err != nil:
			return request, err
		case n == 0:
			// a zero-length read is how the peer says goodbye
			return request, nil
		}
	}
}
