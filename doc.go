// Package boxtree parses length-prefixed, tagged binary records into a tree.
//
// Box-based containers such as ISO-BMFF (MP4), fragmented MP4 and DASH/CMAF
// segments are made of records ("fields") that each start with a 4-byte
// big-endian length and a 4-byte tag. boxtree decomposes such input without
// a schema: after each header it decides, heuristically, whether the bytes
// that follow are further records or opaque payload.
//
// # Quick Start
//
//	root, err := boxtree.ParseFile("segment.m4s")
//	if err != nil {
//		log.Fatal(err)
//	}
//	boxtree.Print(os.Stdout, root)
//
// prints
//
//	root, size: 0
//		styp, size: 16
//		moof, size: 0
//			mfhd, size: 8
//		...
//
// # Tree Shape
//
// Parse returns a synthetic root tagged "root" which has no header. Every
// other Field holds its tag, declared length, absolute offset, its child
// fields in byte order and the trailing payload bytes that were not split
// into children. Payload is copied, so the tree stays valid after the input
// buffer is released.
//
// # Heuristics
//
// A body is split into a child record when more than a header's worth of
// bytes remain, the candidate length fits, and the candidate tag is printable
// ASCII. Payload that happens to look like that is split too; this is
// accepted behaviour. WithHeuristic("bmff") restricts children to known
// ISO-BMFF box types for stricter results.
//
// # Error Handling
//
// Parsing fails fast. A record that is too short for its header or declares
// more bytes than are available aborts the whole parse with a
// *MalformedFieldError carrying the offset and nesting depth; no partial tree
// is returned. Files that cannot be read produce a *LoadError. Nesting beyond
// WithMaxDepth produces a *DepthLimitError.
//
//	var mfe *boxtree.MalformedFieldError
//	if errors.As(err, &mfe) {
//		log.Printf("bad record at offset %d", mfe.Offset)
//	}
//
// # Concurrency
//
// A single parse is synchronous. ParseFiles parses independent files in
// parallel and returns the trees in input order.
package boxtree
