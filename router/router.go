package router

import (
	"github.com/indigo-web/httpd/http"
)

// Router decides what is served in response to a request. It is passed into the server
// explicitly and shared by all the connections, so implementations must be safe for
// concurrent use.
type Router interface {
	// OnStart is called once before the server starts accepting connections. An error
	// aborts the startup.
	OnStart() error
	// OnRequest resolves a successfully parsed request.
	OnRequest(request http.Request) http.Target
	// OnError resolves a request which failed to be parsed.
	OnError(request http.Request, err error) http.Target
}
