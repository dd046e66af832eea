package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/indigo-web/fileserve"
	"github.com/indigo-web/fileserve/config"
	"github.com/indigo-web/fileserve/logging"
)

type flags struct {
	config, root, addr, index, logLevel string
	reusePort, jsonLogs                 bool
}

func parseFlags(args []string) (flags, error) {
	var f flags
	set := flag.NewFlagSet("fileserve", flag.ContinueOnError)
	set.StringVar(&f.config, "config", "", "path to a JSON config file")
	set.StringVar(&f.root, "root", "", "directory to serve (overrides the config)")
	set.StringVar(&f.addr, "addr", "", "address to bind, e.g. :8080 (overrides the config)")
	set.StringVar(&f.index, "index", "", "comma-separated index file names (overrides the config)")
	set.StringVar(&f.logLevel, "log-level", "", "trace, debug, info, warn or error (overrides the config)")
	set.BoolVar(&f.reusePort, "reuseport", false, "enable SO_REUSEPORT")
	set.BoolVar(&f.jsonLogs, "json", false, "write logs as JSON lines")

	return f, set.Parse(args)
}

func loadConfig(f flags) (*config.Config, error) {
	cfg := config.Default()
	if len(f.config) > 0 {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return nil, err
		}
	}

	if len(f.root) > 0 {
		cfg.Root = f.root
	}

	if len(f.addr) > 0 {
		cfg.Addr = f.addr
	}

	if len(f.index) > 0 {
		cfg.IndexFiles = cfg.IndexFiles[:0]
		for _, name := range strings.Split(f.index, ",") {
			if name = strings.TrimSpace(name); len(name) > 0 {
				cfg.IndexFiles = append(cfg.IndexFiles, name)
			}
		}
	}

	if len(f.logLevel) > 0 {
		cfg.Log.Level = f.logLevel
	}

	cfg.NET.ReusePort = cfg.NET.ReusePort || f.reusePort
	cfg.Log.Console = cfg.Log.Console && !f.jsonLogs

	return cfg, config.Validate(cfg)
}

func run(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	log, err := logging.Configure(cfg.Log.Level, cfg.Log.Console)
	if err != nil {
		return err
	}

	app := fileserve.New(cfg, log)
	go stopOnSignal(app, log.Named("main"))

	log.Named("main").Printf("serving %s", cfg.Root)
	return app.Serve(nil)
}

// stopOnSignal stops the app gracefully on the first interrupt and immediately on the
// second one.
func stopOnSignal(app *fileserve.App, log logging.Logger) {
	signals := make(chan os.Signal, 2)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	<-signals
	log.Printf("shutting down, waiting for the connections to finish")
	_ = app.GracefulStop()

	<-signals
	log.Printf("forced shutdown")
	_ = app.Stop()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "fileserve:", err)
		os.Exit(1)
	}
}
