package static

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/indigo-web/httpd/http"
	"github.com/indigo-web/httpd/http/method"
	"github.com/indigo-web/httpd/http/status"
)

const (
	index     = "index.html"
	traversal = "../"
)

var ErrNotADirectory = errors.New("static: root is not a directory")

// Router serves files from the root directory. Directories are served by their
// index.html.
type Router struct {
	root string
}

// New returns a router serving files from the root. A relative root is resolved
// against the current working directory.
func New(root string) *Router {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	return &Router{
		root: withTrailingSep(root),
	}
}

func (r *Router) OnStart() error {
	info, err := os.Stat(r.root)
	if err != nil {
		return fmt.Errorf("static: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, r.root)
	}

	return nil
}

func (r *Router) OnRequest(request http.Request) http.Target {
	file, err := r.Resolve(request.Path)
	if err != nil {
		return http.Reject(request.Method, status.CodeOf(err))
	}

	return http.Serve(request.Method, file)
}

// OnError rejects the request with the code carried by the error. The method is
// dropped, as it's either disallowed or the request couldn't be parsed at all.
func (r *Router) OnError(_ http.Request, err error) http.Target {
	return http.Reject(method.Unknown, status.CodeOf(err))
}

// Resolve maps the decoded request path onto a regular file under the root. Paths
// containing the traversal sequence are rejected before the filesystem is ever
// touched, so it's impossible to probe what exists outside the root.
func (r *Router) Resolve(path string) (string, error) {
	file := r.root + strings.TrimLeft(path, "/")
	// checked before the index lookup, so any ../ is 404 even for a directory without index
	if !isSafe(file) {
		return "", status.ErrNotFound
	}

	if isDir(file) {
		file = withTrailingSep(file) + index
		if !isSafe(file) {
			return "", status.ErrNotFound
		}

		if _, err := os.Stat(file); err != nil {
			return "", status.ErrForbidden
		}
	}

	info, err := os.Stat(file)
	if err != nil || !info.Mode().IsRegular() {
		return "", status.ErrNotFound
	}

	return file, nil
}

// isSafe checks for path traversal. The check is textual, so even a traversal which
// would end up inside the root is rejected.
func isSafe(path string) bool {
	return !strings.Contains(path, traversal)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func withTrailingSep(path string) string {
	if strings.HasSuffix(path, "/") {
		return path
	}

	return path + "/"
}
