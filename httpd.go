package httpd

import (
	"fmt"

	"github.com/indigo-web/httpd/config"
	"github.com/indigo-web/httpd/http/serve"
	"github.com/indigo-web/httpd/internal/address"
	"github.com/indigo-web/httpd/logging"
	"github.com/indigo-web/httpd/router"
	"github.com/indigo-web/httpd/router/static"
	"github.com/indigo-web/httpd/transport"
)

// App is the server of a single process. It binds Server.Acceptors reuse-port sockets
// on the same address and serves every accepted connection with a single request.
type App struct {
	cfg   *config.Config
	log   logging.Logger
	hooks hooks
	sup   transport.Supervisor
}

// New returns a new App instance. Nil config is replaced by config.Default().
func New(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}

	return &App{
		cfg: cfg,
		log: logging.Nop{},
		sup: transport.NewSupervisor(),
	}
}

// Logger sets the sink. By default, nothing is logged.
func (a *App) Logger(log logging.Logger) *App {
	a.log = log
	return a
}

// NotifyOnStart calls the callback at the moment, when all the sockets are bound. However,
// it isn't strongly guaranteed that the accept loops are already running
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback at the moment, when all the accept loops are down. Connections
// being served at the moment may still be in progress
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve starts the application and blocks until it's stopped. If nil is passed instead of
// a router, static one over Server.Root is used. Failing to bind the address is fatal.
func (a *App) Serve(r router.Router) error {
	if r == nil {
		r = static.New(a.cfg.Server.Root)
	}

	if err := r.OnStart(); err != nil {
		a.log.Errorf("Can not start the router: %s", err)
		return err
	}

	handler := serve.NewHandler(a.cfg, r, a.log)
	addr := address.Join(a.cfg.Server.Host, a.cfg.Server.Port)

	for range max(a.cfg.Server.Acceptors, 1) {
		tcp := transport.NewTCP(a.cfg.Server.MaxBacklog, a.log)
		if err := a.sup.Add(addr, tcp, handler.HTTP1); err != nil {
			return fmt.Errorf("httpd: bind %s: %w", addr, err)
		}
	}

	callIfNotNil(a.hooks.OnStart)
	err := a.sup.Run()
	callIfNotNil(a.hooks.OnStop)

	return err
}

// Stop stops accepting new connections.
//
// NOTE: the call isn't blocking. So by that, after the method returned, the server
// may still be accepting for a moment
func (a *App) Stop() {
	a.sup.Stop()
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
