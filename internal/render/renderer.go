package render

import (
	"fmt"
	"os"
	"strconv"

	"github.com/indigo-web/httpd/http"
	"github.com/indigo-web/httpd/http/method"
	"github.com/indigo-web/httpd/http/mime"
	"github.com/indigo-web/httpd/http/status"
	"github.com/indigo-web/httpd/internal/timer"
)

const protocol = "HTTP/1.1"

// Renderer builds complete responses out of targets. It holds no per-request state,
// so a single instance is safely shared among all the connections.
type Renderer struct {
	server string
	date   func() string
}

// New returns a renderer stamping responses with the given Server header value. If date
// is nil, the current time is used for the Date header.
func New(server string, date func() string) *Renderer {
	if date == nil {
		date = timer.Date
	}

	return &Renderer{
		server: server,
		date:   date,
	}
}

// Document builds the response. Only GET requests to existing files have a body. For
// HEAD the file is never read, but its size is still reported by Content-Length.
//
// Codes having no known reason phrase are considered a programming error and panic.
func (r *Renderer) Document(target http.Target) (http.Response, error) {
	reason := status.Text(target.Code)
	if len(reason) == 0 {
		panic(fmt.Sprintf("render: no reason phrase for status code %d", target.Code))
	}

	var (
		length      int64
		contentType = mime.HTML
		body        []byte
	)

	if target.HasFile() {
		contentType = mime.ByFilename(target.File)

		switch target.Method {
		case method.GET:
			content, err := os.ReadFile(target.File)
			if err != nil {
				return http.Response{}, fmt.Errorf("render: %w", err)
			}

			body, length = content, int64(len(content))
		default:
			info, err := os.Stat(target.File)
			if err != nil {
				return http.Response{}, fmt.Errorf("render: %w", err)
			}

			length = info.Size()
		}
	}

	return http.Response{
		StatusLine: protocol + " " + strconv.Itoa(int(target.Code)) + " " + string(reason),
		Headers: []http.Header{
			{Key: "Date", Value: r.date()},
			{Key: "Server", Value: r.server},
			{Key: "Content-Length", Value: strconv.FormatInt(length, 10)},
			{Key: "Content-Type", Value: contentType},
			{Key: "Connection", Value: connection(target.Method)},
		},
		Body: body,
	}, nil
}

// connection advertises keep-alive to HEAD requests only. The connection is closed
// after the response anyway.
func connection(m method.Method) string {
	if m == method.HEAD {
		return "keep-alive"
	}

	return "close"
}
