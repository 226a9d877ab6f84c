package http1

import (
	"testing"

	"github.com/indigo-web/httpd/http/method"
	"github.com/indigo-web/httpd/http/status"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("simple GET", func(t *testing.T) {
		request, err := Parse([]byte("GET /index.html HTTP/1.1\r\nHost: localhost"))
		require.NoError(t, err)
		require.Equal(t, method.GET, request.Method)
		require.Equal(t, "GET", request.Token)
		require.Equal(t, "/index.html", request.Path)
	})

	t.Run("HEAD without headers", func(t *testing.T) {
		request, err := Parse([]byte("HEAD / HTTP/1.1"))
		require.NoError(t, err)
		require.Equal(t, method.HEAD, request.Method)
		require.Equal(t, "/", request.Path)
	})

	t.Run("escaped path", func(t *testing.T) {
		request, err := Parse([]byte("GET /docs/hello%20world.txt HTTP/1.1"))
		require.NoError(t, err)
		require.Equal(t, "/docs/hello world.txt", request.Path)
	})

	t.Run("query and fragment", func(t *testing.T) {
		for _, line := range []string{
			"GET /page.html?arg=value HTTP/1.1",
			"GET /page.html?arg=%zz HTTP/1.1",
			"GET /page.html#section HTTP/1.1",
		} {
			request, err := Parse([]byte(line))
			require.NoError(t, err, line)
			require.Equal(t, "/page.html", request.Path, line)
		}
	})

	t.Run("absolute form", func(t *testing.T) {
		request, err := Parse([]byte("GET http://localhost:8080/docs/readme.txt HTTP/1.1"))
		require.NoError(t, err)
		require.Equal(t, "/docs/readme.txt", request.Path)

		request, err = Parse([]byte("GET http://localhost:8080 HTTP/1.1"))
		require.NoError(t, err)
		require.Equal(t, "/", request.Path)

		request, err = Parse([]byte("GET /weird://name HTTP/1.1"))
		require.NoError(t, err)
		require.Equal(t, "/weird://name", request.Path)
	})

	t.Run("headers are not parsed", func(t *testing.T) {
		request, err := Parse([]byte("GET /a HTTP/1.1\r\nX-Strange header: with spaces"))
		require.NoError(t, err)
		require.Equal(t, "/a", request.Path)
	})

	t.Run("disallowed method", func(t *testing.T) {
		for _, line := range []string{
			"DELETE /index.html HTTP/1.1",
			"POST / HTTP/1.1",
			"BREW /pot HTTP/1.1",
			"get / HTTP/1.1",
		} {
			_, err := Parse([]byte(line))
			require.ErrorIs(t, err, status.ErrMethodNotAllowed, line)
		}
	})

	t.Run("disallowed method with malformed path", func(t *testing.T) {
		_, err := Parse([]byte("DELETE /%zz HTTP/1.1"))
		require.ErrorIs(t, err, status.ErrMethodNotAllowed)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, line := range []string{
			"",
			" / HTTP/1.1",
			"GET",
			"GET ",
			"GET /%2 HTTP/1.1",
			"GET /%ff HTTP/1.1",
		} {
			_, err := Parse([]byte(line))
			require.ErrorIs(t, err, status.ErrMalformedRequest, line)
			require.Equal(t, status.MethodNotAllowed, status.CodeOf(err))
		}
	})
}
