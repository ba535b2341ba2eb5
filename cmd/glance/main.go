// Package main is the entry point for the glance viewer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/glance/internal/app"
	"github.com/dshills/glance/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, exit, code := parseFlags(args, stdout, stderr)
	if exit {
		return code
	}

	// Everything that can fail on bad input fails here, before the
	// terminal switches to raw mode.
	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer application.Close()

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Signals become a posted quit so teardown happens on the loop.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		if _, ok := <-signals; ok {
			application.RequestQuit()
		}
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// parseFlags parses the command line. When exit is true the caller should
// return code without starting a session.
func parseFlags(args []string, stdout, stderr io.Writer) (opts app.Options, exit bool, code int) {
	fs := flag.NewFlagSet("glance", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var showVersion bool
	var showHelp bool
	var noWatch bool

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&noWatch, "no-watch", false, "Do not reload the configuration file on change")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "glance - terminal text viewer\n\n")
		fmt.Fprintf(stderr, "Usage: glance [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys:\n")
		fmt.Fprintf(stderr, "  arrows, w/a/s/d   move\n")
		fmt.Fprintf(stderr, "  PgUp/PgDn         move half a screen\n")
		fmt.Fprintf(stderr, "  Home/End          start/end of line\n")
		fmt.Fprintf(stderr, "  q, Ctrl-Q         quit\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, true, 0
		}
		return opts, true, 2
	}

	if showHelp {
		fs.Usage()
		return opts, true, 0
	}

	if showVersion {
		fmt.Fprintf(stdout, "glance %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return opts, true, 0
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		return opts, true, 1
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.File = fs.Arg(0)
	default:
		fmt.Fprintf(stderr, "Error: expected at most one file, got %d\n", fs.NArg())
		return opts, true, 1
	}

	opts.Version = version
	opts.WatchConfig = !noWatch
	return opts, false, 0
}
