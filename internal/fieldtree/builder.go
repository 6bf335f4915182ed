// Package fieldtree builds, renders and encodes trees of length-prefixed,
// tagged records.
//
// Every record is a 4-byte big-endian length (header included), a 4-byte
// tag and a body. Whether a body holds nested records or opaque payload is
// decided by a Predicate, so no schema of known record types is needed.
package fieldtree

import (
	"github.com/rs/zerolog"

	"github.com/simonhull/boxtree/internal/binary"
	"github.com/simonhull/boxtree/internal/registry"
	"github.com/simonhull/boxtree/internal/types"
)

// DefaultMaxDepth is the nesting limit applied when none is configured.
const DefaultMaxDepth = 256

// Builder turns a View into a Field tree. A Builder holds no parse state and
// may be reused, including from several goroutines.
type Builder struct {
	predicate registry.Predicate
	maxDepth  int
	logger    zerolog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithPredicate sets the subfield heuristic. A nil predicate is ignored.
func WithPredicate(p registry.Predicate) Option {
	return func(b *Builder) {
		if p != nil {
			b.predicate = p
		}
	}
}

// WithMaxDepth limits record nesting. Zero or a negative value disables the limit.
func WithMaxDepth(depth int) Option {
	return func(b *Builder) {
		b.maxDepth = depth
	}
}

// WithLogger sets the logger used to trace tree construction.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// NewBuilder returns a Builder using Plausible and DefaultMaxDepth unless
// overridden by opts.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		predicate: Plausible,
		maxDepth:  DefaultMaxDepth,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build parses v into a Field.
//
// With topmost set, v is the whole input and the result is the synthetic
// root tagged "root". Otherwise v must start with a record header and the
// result is that record; bytes in v past the declared length are ignored.
//
// Any inconsistency aborts the whole parse: Build returns either a complete
// tree or an error, never both.
func (b *Builder) Build(v binary.View, topmost bool) (*types.Field, error) {
	return b.build(v, topmost, 0)
}

func (b *Builder) build(v binary.View, topmost bool, depth int) (*types.Field, error) {
	f := &types.Field{Offset: int64(v.Offset())}
	body := v

	if topmost {
		f.Tag = types.RootTag
	} else {
		if b.maxDepth > 0 && depth > b.maxDepth {
			return nil, &types.DepthLimitError{Offset: f.Offset, Depth: depth, Limit: b.maxDepth}
		}
		if v.Size() < 4 {
			return nil, b.malformed(v, depth, 0, "record too small to hold a length")
		}

		length := binary.Uint32At(v, 0)
		if uint64(v.Size()) < uint64(length) {
			return nil, b.malformed(v, depth, length, "declared length exceeds available bytes")
		}
		if length < types.HeaderSize {
			return nil, b.malformed(v, depth, length, "declared length smaller than record header")
		}

		f.Tag = binary.TagAt(v, 4)
		f.Length = length

		var err error
		if body, err = v.Slice(types.HeaderSize, int(length)-types.HeaderSize); err != nil {
			return nil, err
		}
	}

	b.logger.Trace().
		Str("tag", f.Tag.String()).
		Int64("offset", f.Offset).
		Uint32("length", f.Length).
		Int("depth", depth).
		Msg("field")

	for body.Size() > types.HeaderSize && b.predicate(body) {
		length := int(binary.Uint32At(body, 0))

		sub, err := body.Slice(0, length)
		if err != nil {
			return nil, err
		}

		child, err := b.build(sub, false, depth+1)
		if err != nil {
			return nil, err
		}
		f.Children = append(f.Children, child)

		if body, err = body.Advance(length); err != nil {
			return nil, err
		}
	}

	f.Payload = body.Clone()

	if len(f.Payload) > 0 {
		b.logger.Trace().
			Str("tag", f.Tag.String()).
			Int("offset", body.Offset()).
			Int("bytes", len(f.Payload)).
			Msg("payload")
	}

	return f, nil
}

func (b *Builder) malformed(v binary.View, depth int, length uint32, reason string) error {
	b.logger.Debug().
		Int("offset", v.Offset()).
		Int("depth", depth).
		Uint32("length", length).
		Int("available", v.Size()).
		Msg(reason)

	return &types.MalformedFieldError{
		Reason:    reason,
		Offset:    int64(v.Offset()),
		Depth:     depth,
		Length:    length,
		Available: v.Size(),
	}
}
