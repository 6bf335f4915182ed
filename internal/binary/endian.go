package binary

import (
	"encoding/binary"

	"github.com/simonhull/boxtree/internal/types"
)

// Uint32At decodes the big-endian uint32 at off within v.
//
// The caller must ensure v holds at least off+4 bytes; Uint32At panics
// otherwise. Use ReadUint32 when the bounds are not already known.
func Uint32At(v View, off int) uint32 {
	return binary.BigEndian.Uint32(v.buf[v.start+off : v.start+off+4])
}

// ReadUint32 decodes the big-endian uint32 at off within v with bounds checking.
//
// Example:
//
//	length, err := binary.ReadUint32(v, 0)
func ReadUint32(v View, off int) (uint32, error) {
	if off < 0 || off > v.Size()-4 {
		return 0, &types.RangeError{Op: "read", Offset: v.start, Want: off + 4, Size: v.Size()}
	}
	return Uint32At(v, off), nil
}

// TagAt returns the 4 bytes at off within v as a tag.
// The same precondition as Uint32At applies.
func TagAt(v View, off int) types.Tag {
	var t types.Tag
	copy(t[:], v.buf[v.start+off:v.start+off+4])
	return t
}
