// Package types provides the core data structures shared by the parser,
// the renderers and the public API.
//
// This package defines Tag, Field, OutputFormat and the error types raised
// while slicing buffers and building field trees.
package types

// HeaderSize is the size of a record header: a 4-byte big-endian length
// followed by a 4-byte tag.
const HeaderSize = 8

// Tag is the 4-byte identifier that follows a record's length prefix.
//
// Tags are usually printable ASCII but are not guaranteed to be valid UTF-8.
type Tag [4]byte

// RootTag is the sentinel tag of the synthetic root field.
var RootTag = Tag{'r', 'o', 'o', 't'}

// TagOf builds a Tag from the first four bytes of s, padding with spaces.
func TagOf(s string) Tag {
	t := Tag{' ', ' ', ' ', ' '}
	copy(t[:], s)
	return t
}

// String returns the tag's four raw bytes.
func (t Tag) String() string {
	return string(t[:])
}

// Printable reports whether every tag byte is printable ASCII.
func (t Tag) Printable() bool {
	for _, c := range t {
		if !IsPrintable(c) {
			return false
		}
	}
	return true
}

// IsPrintable reports whether c is in the printable ASCII range 0x20..0x7E.
func IsPrintable(c byte) bool {
	return c >= 0x20 && c <= 0x7e
}

// Field is one node of a parsed record tree.
//
// A Field owns its payload and its children. Non-root fields satisfy
// HeaderSize <= Length, and Length covers the header, every child record
// and the payload.
type Field struct {
	// Tag identifies the record. The root carries RootTag.
	Tag Tag

	// Length is the declared record length including the header.
	// It is zero for the synthetic root.
	Length uint32

	// Offset is the absolute position of the record header in the input.
	Offset int64

	// Payload holds the trailing bytes not decomposed into children.
	Payload []byte

	// Children are the nested records in byte order.
	Children []*Field
}

// IsRoot reports whether f is the synthetic root of a tree.
func (f *Field) IsRoot() bool {
	return f.Length == 0
}

// Size returns the number of input bytes accounted for by f: its header
// (none for the root), every child record and its payload.
func (f *Field) Size() int64 {
	var n int64
	if !f.IsRoot() {
		n = HeaderSize
	}
	for _, c := range f.Children {
		n += c.Size()
	}
	return n + int64(len(f.Payload))
}

// Walk visits f and its descendants depth-first, parents before children.
// Returning false from fn skips the children of the visited field.
func (f *Field) Walk(fn func(f *Field, depth int) bool) {
	f.walk(fn, 0)
}

func (f *Field) walk(fn func(*Field, int) bool, depth int) {
	if !fn(f, depth) {
		return
	}
	for _, c := range f.Children {
		c.walk(fn, depth+1)
	}
}

// Find returns every field under f (f included) carrying tag, in walk order.
func (f *Field) Find(tag Tag) []*Field {
	var found []*Field
	f.Walk(func(c *Field, _ int) bool {
		if c.Tag == tag {
			found = append(found, c)
		}
		return true
	})
	return found
}
