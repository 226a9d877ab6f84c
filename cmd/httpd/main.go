// Package main is the httpd command: a static file server on raw stream sockets.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/indigo-web/httpd"
	"github.com/indigo-web/httpd/config"
	"github.com/indigo-web/httpd/internal/prefork"
	"github.com/indigo-web/httpd/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "httpd:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parse(args, os.Stderr)
	if err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.Log.Level)
	log, err := logging.Open(cfg.Log.File, level)
	if err != nil {
		return err
	}
	defer log.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	if id, isWorker := prefork.WorkerID(); isWorker || cfg.Server.Workers < 2 {
		log.Infof("Starting server on %s:%d, worker %d", cfg.Server.Host, cfg.Server.Port, id)
		return serve(cfg, log, signals)
	}

	master := prefork.NewMaster(cfg.Server.Workers, prefork.Exec(args), log)
	go func() {
		<-signals
		master.Stop()
	}()

	log.Infof("Starting %d workers on %s:%d", cfg.Server.Workers, cfg.Server.Host, cfg.Server.Port)
	return master.Run()
}

func serve(cfg *config.Config, log logging.Logger, signals <-chan os.Signal) error {
	app := httpd.New(cfg).Logger(log)
	app.NotifyOnStop(func() {
		log.Infof("Server stopped")
	})

	go func() {
		<-signals
		app.Stop()
	}()

	return app.Serve(nil)
}

// parse builds the config: defaults, then the config file if any, then explicitly
// passed flags.
func parse(args []string, output io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet("httpd", flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		file    = fs.String("config", "", "path to a JSON config file")
		host    = fs.String("host", "", "host to listen on (default 127.0.0.1)")
		port    = fs.Uint("port", 0, "port to listen on (default 8080)")
		workers = fs.Int("workers", 0, "number of worker processes (default 4)")
		root    = fs.String("root", "", "directory to serve files from (default httptest)")
		logfile = fs.String("log", "", "file to write logs to (default stdout)")
		level   = fs.String("level", "", "log level: debug, info or error (default info)")
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := config.Default()
	if len(*file) > 0 {
		var err error
		if cfg, err = config.Load(*file); err != nil {
			return nil, err
		}
	}

	var portErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "host":
			cfg.Server.Host = *host
		case "port":
			if *port > 0xffff {
				portErr = fmt.Errorf("bad port: %d", *port)
			}
			cfg.Server.Port = uint16(*port)
		case "workers":
			cfg.Server.Workers = *workers
		case "root":
			cfg.Server.Root = *root
		case "log":
			cfg.Log.File = *logfile
		case "level":
			cfg.Log.Level = *level
		}
	})

	if portErr != nil {
		return nil, portErr
	}

	return cfg, cfg.Validate()
}
