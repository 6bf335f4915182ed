// Package config loads boxdump settings from an optional TOML file.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/simonhull/boxtree/internal/fieldtree"
	"github.com/simonhull/boxtree/internal/registry"
	"github.com/simonhull/boxtree/internal/types"
)

// Config holds the settings shared by the CLI and the library options.
type Config struct {
	Heuristic string
	MaxDepth  int
	Format    types.OutputFormat
	Indent    string
	LogLevel  zerolog.Level
}

type fileConfig struct {
	Heuristic string `toml:"heuristic"`
	MaxDepth  int    `toml:"max_depth"`
	Format    string `toml:"format"`
	Indent    string `toml:"indent"`
	LogLevel  string `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Heuristic: fieldtree.DefaultHeuristic,
		MaxDepth:  fieldtree.DefaultMaxDepth,
		Format:    types.FormatText,
		Indent:    fieldtree.DefaultIndent,
		LogLevel:  zerolog.InfoLevel,
	}
}

// Load reads path on top of Default. Keys absent from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("heuristic") {
		cfg.Heuristic = strings.TrimSpace(raw.Heuristic)
	}

	if meta.IsDefined("max_depth") {
		cfg.MaxDepth = raw.MaxDepth
	}

	if meta.IsDefined("format") {
		f, err := types.ParseOutputFormat(raw.Format)
		if err != nil {
			return Config{}, fmt.Errorf("parse format: %w", err)
		}
		cfg.Format = f
	}

	if meta.IsDefined("indent") {
		cfg.Indent = raw.Indent
	}

	if meta.IsDefined("log_level") {
		lvl, err := zerolog.ParseLevel(strings.TrimSpace(raw.LogLevel))
		if err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = lvl
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the heuristic is registered and the depth limit is
// not negative.
func (c Config) Validate() error {
	if _, err := registry.Lookup(c.Heuristic); err != nil {
		return err
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}
