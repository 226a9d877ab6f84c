package http

import (
	"strconv"

	"github.com/indigo-web/utils/strcomp"
)

const (
	crlf         = "\r\n"
	headerEnd    = "\r\n\r\n"
	preallocResp = 256
)

type Header struct {
	Key, Value string
}

// Response is a rendered response document. Headers are kept in the exact order
// they are going to be serialized in.
type Response struct {
	StatusLine string
	Headers    []Header
	Body       []byte
}

// Header returns the value of the first header with matching (case-insensitively) key.
func (r Response) Header(key string) (value string, found bool) {
	for _, header := range r.Headers {
		if strcomp.EqualFold(header.Key, key) {
			return header.Value, true
		}
	}

	return "", false
}

// ContentLength returns the value of the Content-Length header. Missing or malformed
// value results in -1.
func (r Response) ContentLength() int64 {
	value, found := r.Header("Content-Length")
	if !found {
		return -1
	}

	length, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return -1
	}

	return length
}

// Bytes serializes the document: status line, headers, an empty line and the body.
// Nothing is appended after the body.
func (r Response) Bytes() []byte {
	buff := make([]byte, 0, preallocResp+len(r.Body))
	buff = append(buff, r.StatusLine...)
	buff = append(buff, crlf...)

	for i, header := range r.Headers {
		if i > 0 {
			buff = append(buff, crlf...)
		}

		buff = append(buff, header.Key...)
		buff = append(buff, ": "...)
		buff = append(buff, header.Value...)
	}

	buff = append(buff, headerEnd...)

	return append(buff, r.Body...)
}
