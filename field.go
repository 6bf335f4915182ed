package boxtree

import (
	"github.com/simonhull/boxtree/internal/types"
)

// Field is an alias to types.Field, one node of a parsed tree.
type Field = types.Field

// Tag is an alias to types.Tag, the 4-byte record identifier.
type Tag = types.Tag

// HeaderSize is the size of a record header (length plus tag).
const HeaderSize = types.HeaderSize

// RootTag is the tag carried by the synthetic root field.
var RootTag = types.RootTag

// TagOf builds a Tag from a string such as "moov".
func TagOf(s string) Tag {
	return types.TagOf(s)
}
