package types

import "strings"

// OutputFormat selects how a field tree is rendered.
type OutputFormat int

const (
	// FormatText renders one indented "<tag>, size: <n>" line per field.
	FormatText OutputFormat = iota
	// FormatYAML renders the tree as a YAML document.
	FormatYAML
	// FormatDump renders a spew dump of the tree, for debugging.
	FormatDump
)

// String returns the name used for the format in flags and config files.
func (f OutputFormat) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	case FormatDump:
		return "dump"
	default:
		return "unknown"
	}
}

// ParseOutputFormat maps a format name to an OutputFormat.
//
// Names are case-insensitive; "txt" and "yml" are accepted as aliases.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt", "":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "dump", "spew":
		return FormatDump, nil
	default:
		return FormatText, &UnknownFormatError{Name: name}
	}
}
