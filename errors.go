package boxtree

import (
	"github.com/simonhull/boxtree/internal/types"
)

// RangeError is an alias to types.RangeError.
// It reports a slice or advance that falls outside a buffer view.
type RangeError = types.RangeError

// MalformedFieldError is an alias to types.MalformedFieldError.
// It reports a record whose declared length does not fit the bytes available.
type MalformedFieldError = types.MalformedFieldError

// DepthLimitError is an alias to types.DepthLimitError.
type DepthLimitError = types.DepthLimitError

// LoadError is an alias to types.LoadError.
// It reports an input file that could not be opened or read.
type LoadError = types.LoadError

// UnknownHeuristicError is an alias to types.UnknownHeuristicError.
type UnknownHeuristicError = types.UnknownHeuristicError

// UnknownFormatError is an alias to types.UnknownFormatError.
type UnknownFormatError = types.UnknownFormatError
