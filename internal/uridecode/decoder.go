package uridecode

import (
	"bytes"
	"unicode/utf8"

	"github.com/indigo-web/httpd/http/status"
	"github.com/indigo-web/httpd/internal/hexconv"
)

// Decode normalizes the URI by translating escaped characters into their
// true form. The result must be a valid UTF-8 text, otherwise an error is returned
// as well as for incomplete or non-hexadecimal escape sequences.
func Decode(src, buff []byte) ([]byte, error) {
	for i := bytes.IndexByte(src, '%'); i != -1; i = bytes.IndexByte(src, '%') {
		if i >= len(src)-2 {
			return nil, status.ErrMalformedRequest
		}

		char, ok := hexconv.Byte(src[i+1], src[i+2])
		if !ok {
			return nil, status.ErrMalformedRequest
		}

		buff = append(buff, src[:i]...)
		buff = append(buff, char)
		src = src[i+3:]
	}

	if len(buff) > 0 {
		src = append(buff, src...)
	}

	if !utf8.Valid(src) {
		return nil, status.ErrMalformedRequest
	}

	return src, nil
}
