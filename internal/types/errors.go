package types

import "fmt"

// RangeError is returned when a view operation would step outside the
// bytes the view covers.
type RangeError struct {
	Op     string // "slice", "advance" or "read"
	Offset int    // Absolute offset of the view start
	Want   int    // Bytes requested past the view start
	Size   int    // Bytes available in the view
}

func (e *RangeError) Error() string {
	if e.Want < 0 {
		return fmt.Sprintf("%s at offset %d: negative range %d", e.Op, e.Offset, e.Want)
	}
	return fmt.Sprintf("%s at offset %d: %d bytes requested but view holds %d",
		e.Op, e.Offset, e.Want, e.Size)
}

// MalformedFieldError is returned when a record's declared length does not
// fit the bytes it was sliced from.
type MalformedFieldError struct {
	Reason    string
	Offset    int64  // Absolute offset of the record start
	Depth     int    // Nesting depth (root children are depth 1)
	Length    uint32 // Declared length, 0 if it could not be read
	Available int    // Bytes available for the record
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("malformed field at offset %d (depth %d): %s (declared %d, available %d)",
		e.Offset, e.Depth, e.Reason, e.Length, e.Available)
}

// DepthLimitError is returned when records nest deeper than the configured limit.
type DepthLimitError struct {
	Offset int64
	Depth  int
	Limit  int
}

func (e *DepthLimitError) Error() string {
	return fmt.Sprintf("field at offset %d exceeds nesting limit %d (depth %d)",
		e.Offset, e.Limit, e.Depth)
}

// LoadError is returned when an input file cannot be opened or read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: load failed: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// UnknownHeuristicError is returned when a heuristic name is not registered.
type UnknownHeuristicError struct {
	Name string
}

func (e *UnknownHeuristicError) Error() string {
	return fmt.Sprintf("unknown subfield heuristic %q", e.Name)
}

// UnknownFormatError is returned when an output format name is not recognised.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format %q", e.Name)
}
