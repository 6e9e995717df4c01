package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/Quarmire/chord/chord"
	"github.com/Quarmire/chord/config"
	"github.com/Quarmire/chord/remote"
	"github.com/Quarmire/chord/tui"
	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"go.opentelemetry.io/otel"
)

const usage = `usage: chord [flags] [tui|serve]

  tui    explore a ring in the terminal (default)
  serve  expose a ring over HTTP/JSON and gRPC

flags:
`

type options struct {
	command string
	remote  string
	cfg     *config.Config
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("chord: %v", err)
	}
}

func run(args []string) error {
	opts, err := parseArgs(args, os.Stderr)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(opts.cfg.Log, opts.command == "tui")
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := initTracer(opts.cfg.Tracing, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Error(err, "tracer shutdown")
		}
	}()

	if opts.command == "tui" && opts.remote != "" {
		c, err := remote.Dial(ctx, opts.remote)
		if err != nil {
			return err
		}
		defer c.Close()
		logger.Info("driving remote ring", "addr", opts.remote, "max_id", c.MaxID())
		return tui.Run(ctx, c, logger)
	}

	ring := chord.NewChord(opts.cfg.Ring.MaxID, chord.NewRand(opts.cfg.Ring.Seed), logger.WithName("ring"))
	if err := seedRing(ctx, ring, opts.cfg.Ring.InitialNodes); err != nil {
		return err
	}

	switch opts.command {
	case "tui":
		return tui.Run(ctx, ring, logger)
	case "serve":
		if err := registerRingMetrics(ring); err != nil {
			logger.Error(err, "ring metrics unavailable")
		}

		lis, err := net.Listen("tcp", opts.cfg.Server.Addr)
		if err != nil {
			return fmt.Errorf("listen %s: %w", opts.cfg.Server.Addr, err)
		}
		return serve(ctx, lis, ring, opts.cfg.Server.ShutdownTimeout.Duration, logger)
	}

	return fmt.Errorf("unknown command %q", opts.command)
}

// parseArgs loads the config file and applies any flags given explicitly on top of it.
func parseArgs(args []string, output io.Writer) (*options, error) {
	fs := flag.NewFlagSet("chord", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "path to a TOML config file")
	maxID := fs.Uint64("max-id", 0, "keyspace size")
	seed := fs.Uint64("seed", 0, "seed for node id selection (0 seeds from the clock)")
	initial := fs.Int("initial-nodes", 0, "nodes added at startup")
	remoteAddr := fs.String("remote", "", "drive the ring served at this address instead of a local one (tui)")
	addr := fs.String("addr", "", "listen address (serve)")
	logFile := fs.String("log-file", "", "write logs to this file")
	verbosity := fs.Int("v", 0, "log verbosity")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "max-id":
			cfg.Ring.MaxID = *maxID
		case "seed":
			cfg.Ring.Seed = *seed
		case "initial-nodes":
			cfg.Ring.InitialNodes = *initial
		case "addr":
			cfg.Server.Addr = *addr
		case "log-file":
			cfg.Log.File = *logFile
		case "v":
			cfg.Log.Verbosity = *verbosity
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := &options{command: "tui", remote: *remoteAddr, cfg: cfg}
	switch fs.NArg() {
	case 0:
	case 1:
		opts.command = fs.Arg(0)
	default:
		return nil, fmt.Errorf("too many arguments: %v", fs.Args())
	}

	if opts.command != "tui" && opts.command != "serve" {
		return nil, fmt.Errorf("unknown command %q", opts.command)
	}
	if opts.remote != "" && opts.command != "tui" {
		return nil, errors.New("-remote only applies to tui")
	}

	return opts, nil
}

// newLogger writes to the configured file, or to stderr unless the terminal belongs to the UI.
func newLogger(cfg config.LogConfig, interactive bool) (logr.Logger, func() error, error) {
	var w io.Writer = os.Stderr
	closeLog := func() error { return nil }

	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return logr.Discard(), closeLog, fmt.Errorf("open log file: %w", err)
		}
		w, closeLog = f, f.Close
	case interactive:
		w = io.Discard
	}

	stdr.SetVerbosity(cfg.Verbosity)
	logger := stdr.New(log.New(w, "", log.LstdFlags)).WithName("chord")
	otel.SetLogger(logger)

	return logger, closeLog, nil
}

func seedRing(ctx context.Context, ring chord.Core, n int) error {
	for i := 0; i < n; i++ {
		if _, err := ring.AddNode(ctx); err != nil {
			return fmt.Errorf("add initial node: %w", err)
		}
	}
	return nil
}
