package http1

import (
	"bytes"

	"github.com/indigo-web/httpd/http"
	"github.com/indigo-web/httpd/http/method"
	"github.com/indigo-web/httpd/http/status"
	"github.com/indigo-web/httpd/internal/uridecode"
	"github.com/indigo-web/utils/uf"
)

var (
	crlf = []byte("\r\n")
	sp   = []byte(" ")
)

// Parse extracts method and path out of the request line. Headers, if any, are
// ignored. The method is checked first, so a disallowed method is reported as
// status.ErrMethodNotAllowed no matter what's the path. Any failure of splitting the
// line or decoding the path is status.ErrMalformedRequest. Both errors are answered
// with the same status code.
//
// The returned request is filled as much as possible even if an error occurred.
func Parse(text []byte) (request http.Request, err error) {
	line := text
	if i := bytes.Index(text, crlf); i != -1 {
		line = text[:i]
	}

	token, rest, found := bytes.Cut(line, sp)
	if len(token) == 0 {
		return request, status.ErrMalformedRequest
	}

	request.Token = string(token)
	request.Method = method.Parse(uf.B2S(token))
	if !method.IsAllowed(request.Method) {
		return request, status.ErrMethodNotAllowed
	}

	if !found {
		return request, status.ErrMalformedRequest
	}

	rawPath, _, _ := bytes.Cut(rest, sp)
	rawPath = stripAuthority(rawPath)
	if i := bytes.IndexAny(rawPath, "?#"); i != -1 {
		rawPath = rawPath[:i]
	}

	if len(rawPath) == 0 {
		return request, status.ErrMalformedRequest
	}

	path, err := uridecode.Decode(rawPath, nil)
	if err != nil {
		return request, err
	}

	request.Path = string(path)

	return request, nil
}

// stripAuthority turns an absolute-form URI (http://host/path) into the origin-form.
func stripAuthority(uri []byte) []byte {
	scheme, rest, found := bytes.Cut(uri, []byte("://"))
	if !found || len(scheme) == 0 || bytes.IndexByte(scheme, '/') != -1 {
		// either no scheme at all, or the :// is a part of the path itself
		return uri
	}

	if slash := bytes.IndexByte(rest, '/'); slash != -1 {
		return rest[slash:]
	}

	return []byte("/")
}
