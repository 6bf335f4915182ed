// Command boxdump prints the record tree of box-structured files such as
// MP4 and DASH segments.
//
// Usage:
//
//	boxdump [flags] <file>...
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/simonhull/boxtree"
	"github.com/simonhull/boxtree/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("boxdump", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "syntax: boxdump [flags] <file>...\n")
		flags.PrintDefaults()
	}

	configPath := flags.StringP("config", "c", "", "TOML config file")
	format := flags.StringP("format", "f", "", "output format: text, yaml or dump")
	heuristic := flags.String("heuristic", "", "subfield heuristic: "+strings.Join(boxtree.Heuristics(), ", "))
	maxDepth := flags.Int("max-depth", 0, "maximum record nesting, 0 for unlimited")
	indent := flags.String("indent", "", "indentation unit for the text format")
	logLevel := flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	showVersion := flags.Bool("version", false, "print version and exit")

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "boxdump %s\n", boxtree.GetVersionInfo())
		return 0
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	cfg, err := loadConfig(flags, *configPath, *format, *heuristic, *maxDepth, *indent, *logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "boxdump: %v\n", err)
		return 2
	}

	logger := newLogger(stderr, cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	opts := []boxtree.Option{
		boxtree.WithHeuristic(cfg.Heuristic),
		boxtree.WithMaxDepth(cfg.MaxDepth),
		boxtree.WithIndent(cfg.Indent),
		boxtree.WithLogger(logger),
	}

	paths := flags.Args()
	start := time.Now()

	logger.Debug().Int("files", len(paths)).Str("heuristic", cfg.Heuristic).Msg("parsing")

	roots, err := boxtree.ParseFiles(ctx, paths, opts...)
	if err != nil {
		logger.Error().Err(err).Msg("parse failed")
		return 1
	}

	for i, root := range roots {
		if len(roots) > 1 {
			fmt.Fprintf(stdout, "==> %s <==\n", paths[i])
		}
		if err := boxtree.Render(stdout, root, cfg.Format, opts...); err != nil {
			logger.Error().Err(err).Str("path", paths[i]).Msg("render failed")
			return 1
		}
	}

	logger.Debug().Dur("elapsed", time.Since(start)).Msg("done")
	return 0
}

// loadConfig layers flags that were set explicitly over the config file,
// which is itself layered over the defaults.
func loadConfig(flags *pflag.FlagSet, path, format, heuristic string, maxDepth int, indent, logLevel string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}

	if flags.Changed("format") {
		f, err := boxtree.ParseOutputFormat(format)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Format = f
	}
	if flags.Changed("heuristic") {
		cfg.Heuristic = heuristic
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = maxDepth
	}
	if flags.Changed("indent") {
		cfg.Indent = indent
	}
	if flags.Changed("log-level") {
		lvl, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return config.Config{}, fmt.Errorf("parse log-level: %w", err)
		}
		cfg.LogLevel = lvl
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}

	output := zerolog.ConsoleWriter{
		Out:        zerolog.SyncWriter(w),
		NoColor:    noColor,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "boxdump").Logger()
}
