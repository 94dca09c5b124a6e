// Package main is the entry point for the keylink converter.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/keylink/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	ConfigPath  string
	Watch       bool
	Links       bool
	LogLevel    string
	Format      string
	Minify      bool
	Input       string
	ShowVersion bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("keylink", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.BoolVar(&opts.Watch, "watch", false, "Re-run when the configuration file changes")
	fs.BoolVar(&opts.Links, "links", false, "Print the link ranges found in the document")
	fs.StringVar(&opts.Format, "format", "html", "Input format (html, markdown)")
	fs.BoolVar(&opts.Minify, "minify", false, "Minify the rendered HTML")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config")
	fs.BoolVar(&opts.ShowVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "keylink - link-aware HTML round trip\n\n")
		fmt.Fprintf(stderr, "Usage: keylink [options] [file]\n\n")
		fmt.Fprintf(stderr, "Reads HTML from file or stdin, loads it into a link-editing document and\n")
		fmt.Fprintf(stderr, "prints the document rendered back to HTML.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  keylink page.html                   Round trip a file\n")
		fmt.Fprintf(stderr, "  keylink -links < page.html          List links from stdin\n")
		fmt.Fprintf(stderr, "  keylink -format markdown notes.md   Convert Markdown\n")
		fmt.Fprintf(stderr, "  keylink -c keylink.toml -watch x.html  Re-render on config changes\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return opts, errors.New("at most one input file")
	}
	opts.Input = fs.Arg(0)

	switch opts.Format {
	case "html", "markdown":
	default:
		return opts, fmt.Errorf("invalid format %q (must be html or markdown)", opts.Format)
	}
	if opts.LogLevel != "" {
		if _, err := config.ParseLogLevel(opts.LogLevel); err != nil {
			return opts, err
		}
	}
	if opts.Watch && opts.ConfigPath == "" {
		return opts, errors.New("-watch needs -config")
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if opts.ShowVersion {
		fmt.Fprintf(stdout, "keylink %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	var input []byte
	if opts.Input != "" {
		input, err = os.ReadFile(opts.Input)
	} else {
		input, err = io.ReadAll(stdin)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: reading input: %v\n", err)
		return 1
	}

	loader := config.NewLoader(opts.ConfigPath)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load config: %v\n", err)
		return 1
	}

	logger := newLogger(stderr, opts, cfg)
	p := &processor{
		input:    input,
		markdown: opts.Format == "markdown",
		minify:   opts.Minify,
		links:    opts.Links,
		logger:   logger,
	}
	if err := p.Process(cfg, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if !opts.Watch {
		return 0
	}

	logger.Info("watching config", "path", loader.Path())
	err = config.Watch(ctx, loader.Path(), func() {
		cfg, err := loader.Load()
		if err != nil {
			logger.Error("reload failed", "error", err)
			return
		}
		logger.Info("config reloaded")
		if err := p.Process(cfg, stdout); err != nil {
			logger.Error("process failed", "error", err)
		}
	}, config.WithWatchLogger(logger))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newLogger builds a text logger; the flag beats the configured level.
func newLogger(w io.Writer, opts options, cfg *config.Config) *slog.Logger {
	level := cfg.Log.SlogLevel()
	if opts.LogLevel != "" {
		level, _ = config.ParseLogLevel(opts.LogLevel)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
