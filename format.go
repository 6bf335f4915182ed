package boxtree

import (
	"github.com/simonhull/boxtree/internal/types"
)

// OutputFormat is an alias to types.OutputFormat.
type OutputFormat = types.OutputFormat

// Re-export all format constants.
const (
	FormatText = types.FormatText
	FormatYAML = types.FormatYAML
	FormatDump = types.FormatDump
)

// ParseOutputFormat is a wrapper around types.ParseOutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	return types.ParseOutputFormat(name)
}
