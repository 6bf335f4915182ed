package fieldtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v2"

	"github.com/simonhull/boxtree/internal/types"
)

// DefaultIndent is the per-level indentation of the text format.
const DefaultIndent = "\t"

// Render writes f to w in the given format. indent only affects FormatText.
func Render(w io.Writer, f *types.Field, format types.OutputFormat, indent string) error {
	switch format {
	case types.FormatText:
		return RenderText(w, f, indent)
	case types.FormatYAML:
		return RenderYAML(w, f)
	case types.FormatDump:
		return RenderDump(w, f)
	default:
		return &types.UnknownFormatError{Name: format.String()}
	}
}

// RenderText writes one line per field, parents before children:
//
//	<indent x depth><tag>, size: <payload bytes>
//
// The tag is written as its four raw bytes.
func RenderText(w io.Writer, f *types.Field, indent string) error {
	return renderText(w, f, indent, 0)
}

func renderText(w io.Writer, f *types.Field, indent string, depth int) error {
	if _, err := fmt.Fprintf(w, "%s%s, size: %d\n", strings.Repeat(indent, depth), f.Tag, len(f.Payload)); err != nil {
		return err
	}
	for _, c := range f.Children {
		if err := renderText(w, c, indent, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// yamlField is the YAML shape of a Field. Payload bytes are summarised by
// count; the document describes structure, not content.
type yamlField struct {
	Tag      string      `yaml:"tag"`
	Offset   int64       `yaml:"offset"`
	Length   uint32      `yaml:"length,omitempty"`
	Payload  int         `yaml:"payload"`
	Children []yamlField `yaml:"children,omitempty"`
}

func toYAML(f *types.Field) yamlField {
	y := yamlField{
		Tag:     f.Tag.String(),
		Offset:  f.Offset,
		Length:  f.Length,
		Payload: len(f.Payload),
	}
	for _, c := range f.Children {
		y.Children = append(y.Children, toYAML(c))
	}
	return y
}

// RenderYAML writes f as a YAML document.
func RenderYAML(w io.Writer, f *types.Field) error {
	out, err := yaml.Marshal(toYAML(f))
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	_, err = w.Write(out)
	return err
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// RenderDump writes a spew dump of f including payload hex, for debugging.
func RenderDump(w io.Writer, f *types.Field) error {
	dumpConfig.Fdump(w, f)
	return nil
}
