package boxtree

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/boxtree/internal/binary"
	"github.com/simonhull/boxtree/internal/fieldtree"
)

// Load reads the whole file at path into memory.
//
// Any failure to open, stat or read the file is returned as a *LoadError.
func Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	data, err := binary.NewSafeReader(f, stat.Size(), path).ReadAll()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return data, nil
}

// Parse decomposes data into a tree under a synthetic root tagged "root".
//
// The root has no header of its own. Its body is split into records for as
// long as the configured heuristic accepts the next bytes; whatever remains
// becomes the root's payload. An empty input yields an empty root.
//
// Parse fails fast: any malformed record aborts the whole parse and no
// partial tree is returned.
//
// Example:
//
//	root, err := boxtree.Parse(data)
//	if err != nil {
//		return err
//	}
//	for _, moof := range root.Find(boxtree.TagOf("moof")) {
//		fmt.Println(moof.Offset, moof.Length)
//	}
func Parse(data []byte, opts ...Option) (*Field, error) {
	return parse(data, true, applyOptions(opts))
}

// ParseRecord parses data as a single record: a header followed by a body.
//
// Bytes past the record's declared length are ignored.
func ParseRecord(data []byte, opts ...Option) (*Field, error) {
	return parse(data, false, applyOptions(opts))
}

func parse(data []byte, topmost bool, options *parseOptions) (*Field, error) {
	b, err := options.builder()
	if err != nil {
		return nil, err
	}

	root, err := b.Build(binary.NewView(data), topmost)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return root, nil
}

// ParseFile loads the file at path and parses it with Parse.
//
// Example:
//
//	root, err := boxtree.ParseFile("init.mp4")
//	if err != nil {
//		return err
//	}
//	boxtree.Print(os.Stdout, root)
func ParseFile(path string, opts ...Option) (*Field, error) {
	return ParseFileContext(context.Background(), path, opts...)
}

// ParseFileContext is ParseFile with cancellation checked before loading and
// again before parsing. Parsing itself is not interruptible.
func ParseFileContext(ctx context.Context, path string, opts ...Option) (*Field, error) {
	options := applyOptions(opts)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := Load(path)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := parse(data, true, options)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// ParseFiles parses multiple files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails, the remaining work is cancelled and the first error is returned.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	roots, err := boxtree.ParseFiles(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
func ParseFiles(ctx context.Context, paths []string, opts ...Option) ([]*Field, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	// Resolve options once so a bad heuristic fails before any file is read.
	if _, err := applyOptions(opts).builder(); err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU()) // Limit concurrent operations

	results := make([]*Field, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			root, err := ParseFileContext(ctx, path, opts...)
			if err != nil {
				return err
			}

			results[i] = root
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Print writes the tree as indented text, one line per field:
//
//	root, size: 0
//		ftyp, size: 16
//		moov, size: 0
//			mvhd, size: 100
//
// Each line holds the raw tag and the number of payload bytes.
func Print(w io.Writer, f *Field, opts ...Option) error {
	return fieldtree.RenderText(w, f, applyOptions(opts).indent)
}

// Render writes the tree in the given format.
func Render(w io.Writer, f *Field, format OutputFormat, opts ...Option) error {
	return fieldtree.Render(w, f, format, applyOptions(opts).indent)
}

// Encode serialises a tree back into records. Encoding the result of Parse
// reproduces the parsed input byte for byte.
func Encode(w io.Writer, f *Field) error {
	return fieldtree.Encode(w, f)
}
