package boxtree

import (
	"github.com/rs/zerolog"

	"github.com/simonhull/boxtree/internal/fieldtree"
	"github.com/simonhull/boxtree/internal/registry"
)

// Option configures parsing and rendering.
//
// Options use the functional options pattern:
//
//	root, err := boxtree.ParseFile("segment.m4s",
//	    boxtree.WithHeuristic("bmff"),
//	    boxtree.WithMaxDepth(32),
//	)
type Option func(*parseOptions)

// parseOptions holds configuration for parsing and rendering.
type parseOptions struct {
	heuristic string         // Registered subfield heuristic name
	maxDepth  int            // Nesting limit (0 = unlimited)
	indent    string         // Per-level indentation of the text format
	logger    zerolog.Logger // Trace output of the tree builder
}

// defaultOptions returns the default configuration.
func defaultOptions() *parseOptions {
	return &parseOptions{
		heuristic: fieldtree.DefaultHeuristic,
		maxDepth:  fieldtree.DefaultMaxDepth,
		indent:    fieldtree.DefaultIndent,
		logger:    zerolog.Nop(),
	}
}

func applyOptions(opts []Option) *parseOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// builder resolves the options into a tree builder.
func (o *parseOptions) builder() (*fieldtree.Builder, error) {
	predicate, err := registry.Lookup(o.heuristic)
	if err != nil {
		return nil, err
	}

	return fieldtree.NewBuilder(
		fieldtree.WithPredicate(predicate),
		fieldtree.WithMaxDepth(o.maxDepth),
		fieldtree.WithLogger(o.logger),
	), nil
}

// WithHeuristic selects the subfield heuristic by name.
//
// "printable" (the default) treats any record-sized head with a printable
// tag as a nested record. "bmff" additionally requires a known ISO-BMFF box
// type, which keeps coincidental payload bytes from being split into records.
// See Heuristics for the registered names.
func WithHeuristic(name string) Option {
	return func(o *parseOptions) {
		o.heuristic = name
	}
}

// WithMaxDepth limits how deeply records may nest.
//
// Parsing fails with a DepthLimitError past the limit. Zero disables the
// limit. Default is 256.
func WithMaxDepth(depth int) Option {
	return func(o *parseOptions) {
		o.maxDepth = depth
	}
}

// WithIndent sets the per-level indentation of the text format.
// Default is a single tab.
func WithIndent(indent string) Option {
	return func(o *parseOptions) {
		o.indent = indent
	}
}

// WithLogger sets a logger that receives Trace events for every parsed
// field and Debug events for malformed records.
func WithLogger(l zerolog.Logger) Option {
	return func(o *parseOptions) {
		o.logger = l
	}
}

// Heuristics returns the names accepted by WithHeuristic.
func Heuristics() []string {
	return registry.Names()
}
