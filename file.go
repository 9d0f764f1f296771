package metaflac

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/metaflac/internal/flac"
)

// Document is a parsed FLAC stream whose metadata can be queried and edited.
//
// The whole stream is held in memory. Metadata blocks are decoded once at
// construction; audio frames are kept as the original bytes and written back
// untouched by Bytes, Save and SaveAs.
//
// Every mutation applies immediately to the in-memory model. A mutation that
// fails leaves the document unchanged. A Document is not safe for concurrent
// use.
//
//	doc, err := metaflac.Open("song.flac")
//	if err != nil {
//		return err
//	}
//	if err := doc.SetTag("TITLE=Song"); err != nil {
//		return err
//	}
//	return doc.Save()
type Document struct {
	// Path the document was opened from; empty for Parse.
	Path string

	// Size of the source stream in bytes
	Size int64

	// Warnings encountered during parsing (non-fatal issues)
	Warnings []Warning

	data    []byte
	meta    *flac.Metadata
	options *openOptions
}

// Parse decodes a FLAC stream held in memory. The document keeps a reference
// to data; callers must not modify it afterwards.
//
// Structural problems abort the parse: a missing "fLaC" marker
// (*NotFLACError), a block running past the end of data (*OutOfBoundsError),
// or an undecodable VORBIS_COMMENT or PICTURE body (*MalformedBlockError).
// A missing STREAMINFO or VORBIS_COMMENT block is not a parse error; the
// queries that need it fail instead.
func Parse(data []byte, opts ...Option) (*Document, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return parse(data, "", options)
}

func parse(data []byte, path string, options *openOptions) (*Document, error) {
	meta, err := flac.Parse(data, flac.ParseOptions{
		Path:   path,
		Strict: options.strictParsing,
		Logger: options.logger,
	})
	if err != nil {
		return nil, err
	}

	if options.strictParsing && len(meta.Warnings) > 0 {
		return nil, &StrictWarningError{Path: path, Warning: meta.Warnings[0]}
	}

	doc := &Document{
		Path:     path,
		Size:     int64(len(data)),
		Warnings: meta.Warnings,
		data:     data,
		meta:     meta,
		options:  options,
	}
	if options.ignoreWarnings {
		doc.Warnings = nil
	}

	return doc, nil
}

// Open reads a FLAC file and parses its metadata.
//
// The whole file is read into memory; there is nothing to close.
//
// Options can be provided to customize parsing behavior:
//
//	doc, err := metaflac.Open("song.flac",
//	    metaflac.WithStrictParsing(),
//	    metaflac.WithLogger(logger),
//	)
func Open(path string, opts ...Option) (*Document, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	doc, err := parse(data, path, options)
	if err != nil {
		return nil, fmt.Errorf("parse FLAC: %w", err)
	}
	return doc, nil
}

// OpenContext opens a file with context support for cancellation.
//
// The context is checked before the file is read. Parsing itself is a
// bounded in-memory pass and is not interrupted.
func OpenContext(ctx context.Context, path string, opts ...Option) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple FLAC files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. Every file is
// opened with the same options.
//
// If any file fails to open, or ctx is cancelled, no documents are returned.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	docs, err := metaflac.OpenMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, doc := range docs {
//		title, _ := doc.Tag("TITLE")
//		fmt.Println(doc.Path, title)
//	}
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*Document, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Document, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			doc, err := OpenContext(ctx, path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// BlockInfo summarizes one metadata block.
type BlockInfo struct {
	Type BlockType

	// Offset of the block header in the source stream, or -1 for a block
	// that is re-encoded from the document's current state.
	Offset int64

	// Length of the block body in bytes
	Length int
}

// Blocks lists the metadata blocks that Bytes would write, in order:
// STREAMINFO, APPLICATION, SEEKTABLE, CUESHEET and unknown blocks in their
// original relative order, VORBIS_COMMENT, every PICTURE, then PADDING.
func (d *Document) Blocks() []BlockInfo {
	blocks := d.meta.Blocks()
	infos := make([]BlockInfo, len(blocks))
	for i, b := range blocks {
		infos[i] = BlockInfo{Type: b.Type, Offset: b.Offset, Length: len(b.Body)}
	}
	return infos
}

// FrameOffset returns where audio frames begin in the source stream.
func (d *Document) FrameOffset() int64 {
	return d.meta.FrameOffset
}
