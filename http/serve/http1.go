package serve

import (
	"net"
	"time"

	"github.com/dchest/uniuri"
	"github.com/dustin/go-humanize"
	"github.com/indigo-web/httpd/config"
	"github.com/indigo-web/httpd/http"
	"github.com/indigo-web/httpd/internal/address"
	"github.com/indigo-web/httpd/internal/parser/http1"
	"github.com/indigo-web/httpd/internal/render"
	"github.com/indigo-web/httpd/internal/timer"
	"github.com/indigo-web/httpd/logging"
	"github.com/indigo-web/httpd/router"
)

// idLength is the length of connection identifiers, marking log lines related to
// the same connection
const idLength = 8

// Handler serves exactly one request per connection. It holds nothing mutable,
// so a single instance is shared by all the connections.
type Handler struct {
	cfg      config.NET
	router   router.Router
	renderer *render.Renderer
	log      logging.Logger
}

func NewHandler(cfg *config.Config, r router.Router, log logging.Logger) *Handler {
	return &Handler{
		cfg:      cfg.NET,
		router:   r,
		renderer: render.New(cfg.Server.Name, nil),
		log:      log,
	}
}

// HTTP1 receives the request, resolves it via the router, writes the response and
// closes the connection. Any I/O failure is logged and results in the connection
// being closed forcibly. The connection is closed in any case, even if a panic occurs.
func (h *Handler) HTTP1(conn net.Conn) {
	var (
		id   = uniuri.NewLen(idLength)
		peer = address.Peer(conn.RemoteAddr())
		ok   bool
	)

	defer func() {
		if !ok {
			abort(conn)
		}

		_ = conn.Close()
	}()

	if h.cfg.ReadTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout.Std())); err != nil {
			h.log.Errorf("%s: %s: set read deadline: %s", id, peer, err)
			return
		}
	}

	raw, err := http1.Receive(conn, make([]byte, h.cfg.ReadBufferSize))
	if err != nil {
		h.log.Errorf("%s: %s: can't receive the request: %s", id, peer, err)
		return
	}

	h.log.Debugf("%s: received %q", id, raw)

	request, target := h.resolve(raw)
	h.log.Debugf("%s: status, method, path: %d, %s, %q", id, target.Code, target.Method, target.File)

	doc, err := h.renderer.Document(target)
	if err != nil {
		h.log.Errorf("%s: %s: can't render the response: %s", id, peer, err)
		return
	}

	h.log.Debugf("%s: response is: %s %v", id, doc.StatusLine, doc.Headers)

	if _, err = conn.Write(doc.Bytes()); err != nil {
		h.log.Errorf("%s: %s: can't send the response: %s", id, peer, err)
		return
	}

	ok = true
	h.log.Infof(
		"%s: %s [%s] \"%s %s\" %d %s",
		id, peer, timer.Date(), request.Token, request.Path, target.Code,
		humanize.Bytes(uint64(max(doc.ContentLength(), 0))),
	)
}

func (h *Handler) resolve(raw []byte) (http.Request, http.Target) {
	request, err := http1.Parse(raw)
	if err != nil {
		return request, h.router.OnError(request, err)
	}

	return request, h.router.OnRequest(request)
}

// abort makes the following Close() reset the connection instead of gracefully
// finishing it, so the client knows the response is broken.
func abort(conn net.Conn) {
	if tcp, isTCP := conn.(*net.TCPConn); isTCP {
		_ = tcp.SetLinger(0)
	}
}
