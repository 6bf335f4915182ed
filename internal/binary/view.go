// Package binary provides bounds-checked views and big-endian primitives
// over byte buffers.
package binary

import "github.com/simonhull/boxtree/internal/types"

// View is a read-only window [start, end) over a backing byte slice.
//
// A View never copies or modifies the bytes it covers. Slice and Advance
// return new views and leave the receiver untouched, so a View can be
// passed by value and reused freely.
type View struct {
	buf   []byte
	start int
	end   int
}

// NewView returns a view covering all of buf.
func NewView(buf []byte) View {
	return View{buf: buf, start: 0, end: len(buf)}
}

// Size returns the number of bytes in the view.
func (v View) Size() int {
	return v.end - v.start
}

// Offset returns the position of the view start in the backing buffer.
func (v View) Offset() int {
	return v.start
}

// Slice returns the sub-view [offset, offset+length) relative to v.
func (v View) Slice(offset, length int) (View, error) {
	if offset < 0 || length < 0 {
		return View{}, &types.RangeError{Op: "slice", Offset: v.start, Want: min(offset, length), Size: v.Size()}
	}
	// offset+length is compared as a difference to avoid overflow
	if offset > v.Size() || length > v.Size()-offset {
		return View{}, &types.RangeError{Op: "slice", Offset: v.start, Want: offset + length, Size: v.Size()}
	}

	v.start += offset
	v.end = v.start + length
	return v, nil
}

// Advance returns the view with its first count bytes dropped.
func (v View) Advance(count int) (View, error) {
	if count < 0 || count > v.Size() {
		return View{}, &types.RangeError{Op: "advance", Offset: v.start, Want: count, Size: v.Size()}
	}

	v.start += count
	return v, nil
}

// Bytes returns the bytes under the view without copying.
// The result aliases the backing buffer and must not be modified.
func (v View) Bytes() []byte {
	return v.buf[v.start:v.end:v.end]
}

// Clone returns an owned copy of the bytes under the view.
func (v View) Clone() []byte {
	out := make([]byte, v.Size())
	copy(out, v.buf[v.start:v.end])
	return out
}
