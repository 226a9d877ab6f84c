package httpd

import (
	"bufio"
	"fmt"
	"io"
	"net"
	stdhttp "net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/indigo-web/httpd/config"
	"github.com/indigo-web/httpd/http"
	"github.com/indigo-web/httpd/http/status"
	"github.com/indigo-web/httpd/logging"
	"github.com/stretchr/testify/require"
)

const host = "127.0.0.1"

func newRoot(t *testing.T) string {
	root := t.TempDir()
	write := func(name string, size int, fill string) {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(strings.Repeat(fill, size)), 0o644))
	}

	write("index.html", 200, "i")
	write("docs/readme.txt", 50, "r")
	write("with-index/index.html", 10, "w")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))

	return root
}

func run(t *testing.T, port uint16, root string) {
	cfg := config.Default()
	cfg.Server.Host = host
	cfg.Server.Port = port
	cfg.Server.Root = root
	cfg.Server.Acceptors = 2

	app := New(cfg).Logger(logging.Nop{})
	started, stopped := make(chan struct{}), make(chan struct{})
	app.NotifyOnStart(func() {
		close(started)
	})
	app.NotifyOnStop(func() {
		close(stopped)
	})

	errch := make(chan error, 1)
	go func() {
		errch <- app.Serve(nil)
	}()

	select {
	case <-started:
	case err := <-errch:
		require.FailNow(t, "app didn't start", err)
	case <-time.After(time.Second):
		require.FailNow(t, "app didn't start on time")
	}

	t.Cleanup(func() {
		app.Stop()
		require.NoError(t, <-errch)
		<-stopped
	})
}

func send(t *testing.T, port uint16, request string) string {
	conn, err := net.Dial("tcp", fmt.Sprintf("%s:%d", host, port))
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte(request))
	require.NoError(t, err)
	response, err := io.ReadAll(conn)
	require.NoError(t, err)

	return string(response)
}

func parse(t *testing.T, m, response string) (*stdhttp.Response, string) {
	stdreq, err := stdhttp.NewRequest(m, "/", nil)
	require.NoError(t, err)
	resp, err := stdhttp.ReadResponse(bufio.NewReader(strings.NewReader(response)), stdreq)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return resp, string(body)
}

func TestApp(t *testing.T) {
	const port = 16100
	run(t, port, newRoot(t))

	client := &stdhttp.Client{
		Transport: &stdhttp.Transport{DisableKeepAlives: true},
		Timeout:   time.Second,
	}
	url := fmt.Sprintf("http://%s:%d", host, port)

	get := func(t *testing.T, m, path string) (*stdhttp.Response, string) {
		request, err := stdhttp.NewRequest(m, url+path, nil)
		require.NoError(t, err)
		resp, err := client.Do(request)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())

		return resp, string(body)
	}

	t.Run("GET root", func(t *testing.T) {
		resp, body := get(t, stdhttp.MethodGet, "/")
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		require.Len(t, body, 200)
		require.Equal(t, "text/html", resp.Header.Get("Content-Type"))
	})

	t.Run("GET file", func(t *testing.T) {
		resp, body := get(t, stdhttp.MethodGet, "/docs/readme.txt")
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		require.Equal(t, strings.Repeat("r", 50), body)
		require.Equal(t, int64(50), resp.ContentLength)
		require.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
	})

	t.Run("GET file with query", func(t *testing.T) {
		resp, body := get(t, stdhttp.MethodGet, "/docs/readme.txt?version=2")
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		require.Len(t, body, 50)
	})

	t.Run("HEAD", func(t *testing.T) {
		resp, body := get(t, stdhttp.MethodHead, "/docs/readme.txt")
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		require.Empty(t, body)
		require.Equal(t, int64(50), resp.ContentLength)
	})

	t.Run("directory with index", func(t *testing.T) {
		resp, body := get(t, stdhttp.MethodGet, "/with-index/")
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		require.Equal(t, strings.Repeat("w", 10), body)
	})

	t.Run("directory without index", func(t *testing.T) {
		for _, path := range []string{"/docs/", "/empty/", "/docs"} {
			resp, _ := get(t, stdhttp.MethodGet, path)
			require.Equal(t, stdhttp.StatusForbidden, resp.StatusCode, path)
		}
	})

	t.Run("missing", func(t *testing.T) {
		resp, _ := get(t, stdhttp.MethodGet, "/missing")
		require.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)
	})

	t.Run("not allowed", func(t *testing.T) {
		for _, m := range []string{stdhttp.MethodDelete, stdhttp.MethodPost, stdhttp.MethodPut} {
			resp, body := get(t, m, "/index.html")
			require.Equal(t, stdhttp.StatusMethodNotAllowed, resp.StatusCode, m)
			require.Empty(t, body)
		}
	})

	t.Run("traversal", func(t *testing.T) {
		// net/http client normalizes dot segments, so the raw request is sent
		for _, path := range []string{"/../etc/passwd", "/docs/../index.html", "/%2e%2e/etc/passwd"} {
			resp, _ := parse(t, stdhttp.MethodGet, send(t, port, "GET "+path+" HTTP/1.1\r\n\r\n"))
			require.Equal(t, stdhttp.StatusNotFound, resp.StatusCode, path)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		resp, _ := parse(t, stdhttp.MethodGet, send(t, port, "GARBAGE\r\n\r\n"))
		require.Equal(t, stdhttp.StatusMethodNotAllowed, resp.StatusCode)
	})

	t.Run("instant disconnect", func(t *testing.T) {
		conn, err := net.Dial("tcp", fmt.Sprintf("%s:%d", host, port))
		require.NoError(t, err)
		require.NoError(t, conn.Close())

		resp, _ := get(t, stdhttp.MethodGet, "/")
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	})
}

func TestApp_Concurrency(t *testing.T) {
	const (
		port    = 16101
		clients = 64
	)

	root := t.TempDir()
	for i := range clients {
		content := strings.Repeat(fmt.Sprintf("file %d;", i), 100+i)
		name := filepath.Join(root, fmt.Sprintf("file-%d.txt", i))
		require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
	}

	run(t, port, root)

	var wg sync.WaitGroup
	responses := make([]string, clients)
	for i := range clients {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			conn, err := net.Dial("tcp", fmt.Sprintf("%s:%d", host, port))
			if err != nil {
				return
			}
			defer conn.Close()

			_, _ = fmt.Fprintf(conn, "GET /file-%d.txt HTTP/1.1\r\nHost: localhost\r\n\r\n", i)
			response, _ := io.ReadAll(conn)
			responses[i] = string(response)
		}(i)
	}

	wg.Wait()

	for i, response := range responses {
		resp, body := parse(t, stdhttp.MethodGet, response)
		want := strings.Repeat(fmt.Sprintf("file %d;", i), 100+i)
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode, i)
		require.Equal(t, want, body, i)
		require.Equal(t, int64(len(want)), resp.ContentLength, i)
	}
}

func TestApp_Startup(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		cfg := config.Default()
		cfg.Server.Root = filepath.Join(t.TempDir(), "nope")
		require.Error(t, New(cfg).Serve(nil))
	})

	t.Run("bad host", func(t *testing.T) {
		cfg := config.Default()
		cfg.Server.Host = "definitely.not.a.host.invalid"
		cfg.Server.Root = t.TempDir()
		require.ErrorContains(t, New(cfg).Serve(nil), "httpd: bind")
	})

	t.Run("custom router", func(t *testing.T) {
		const port = 16102
		cfg := config.Default()
		cfg.Server.Host = host
		cfg.Server.Port = port

		app := New(cfg)
		started := make(chan struct{})
		app.NotifyOnStart(func() {
			close(started)
		})

		errch := make(chan error, 1)
		go func() {
			errch <- app.Serve(forbidAll{})
		}()
		<-started

		resp, _ := parse(t, stdhttp.MethodGet, send(t, port, "GET / HTTP/1.1\r\n\r\n"))
		require.Equal(t, stdhttp.StatusForbidden, resp.StatusCode)
		app.Stop()
		require.NoError(t, <-errch)
	})
}

type forbidAll struct{}

func (forbidAll) OnStart() error {
	return nil
}

func (forbidAll) OnRequest(request http.Request) http.Target {
	return http.Reject(request.Method, status.Forbidden)
}

func (forbidAll) OnError(request http.Request, err error) http.Target {
	return http.Reject(request.Method, status.CodeOf(err))
}
