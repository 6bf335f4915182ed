package fieldtree

import (
	"fmt"
	"io"
	"math"

	"github.com/simonhull/boxtree/internal/binary"
	"github.com/simonhull/boxtree/internal/types"
)

// Encode writes f back out as records.
//
// Each non-root field is written as its header, its children and then its
// payload. Lengths are recomputed from the tree, so a tree built by Builder
// encodes to exactly the bytes it was parsed from. The root contributes no
// header of its own; like IsRoot, Encode treats any field with a zero Length
// as a root.
func Encode(w io.Writer, f *types.Field) error {
	return encode(binary.NewSafeWriter(w), f)
}

func encode(sw *binary.SafeWriter, f *types.Field) error {
	if !f.IsRoot() {
		size := f.Size()
		if size > math.MaxUint32 {
			return fmt.Errorf("encode %s at offset %d: size %d does not fit a 32-bit length",
				f.Tag, sw.Offset(), size)
		}
		if err := binary.Write[uint32](sw, uint32(size)); err != nil {
			return fmt.Errorf("encode %s length: %w", f.Tag, err)
		}
		if err := sw.WriteTag(f.Tag); err != nil {
			return fmt.Errorf("encode %s tag: %w", f.Tag, err)
		}
	}

	for _, c := range f.Children {
		if err := encode(sw, c); err != nil {
			return err
		}
	}

	if err := sw.WriteBytes(f.Payload); err != nil {
		return fmt.Errorf("encode %s payload: %w", f.Tag, err)
	}
	return nil
}
