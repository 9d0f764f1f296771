// Package flac parses and rebuilds the metadata prologue of a FLAC stream:
// the "fLaC" marker followed by a chain of typed, length-prefixed metadata
// blocks. Audio frames that follow the prologue are never interpreted.
package flac

import (
	"fmt"
	"log/slog"

	"github.com/simonhull/metaflac/internal/types"
	"github.com/simonhull/metaflac/internal/vorbis"
)

// ParseOptions controls how Parse treats irregular streams.
type ParseOptions struct {
	// Path is used in error messages and warnings.
	Path string

	// Strict turns unknown block types and duplicate VORBIS_COMMENT blocks
	// into errors instead of warnings.
	Strict bool

	// Logger receives per-block debug records. Nil discards them.
	Logger *slog.Logger
}

// Metadata is the classified content of a metadata block chain.
type Metadata struct {
	// StreamInfo is the raw STREAMINFO block. It is never re-encoded.
	StreamInfo *Block

	// Comment is the decoded VORBIS_COMMENT block, nil when absent.
	Comment *vorbis.Comment

	// Pictures holds every decoded PICTURE block in stream order.
	Pictures []Picture

	// Opaque holds APPLICATION, SEEKTABLE, CUESHEET and unknown blocks,
	// verbatim and in stream order.
	Opaque []Block

	// Padding is the last PADDING block seen, nil when absent.
	Padding *Block

	// FrameOffset is where audio frames begin in the source stream.
	FrameOffset int64

	// Warnings lists non-fatal irregularities found while parsing.
	Warnings []types.Warning
}

// Parse walks the block chain in data and classifies every block.
//
// Any structural error aborts the parse: a bad marker, a truncated header or
// body, or a VORBIS_COMMENT or PICTURE body that cannot be decoded (reported
// as *types.MalformedBlockError). No partial result is returned.
func Parse(data []byte, opts ParseOptions) (*Metadata, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	chain, err := ParseChain(data, opts.Path)
	if err != nil {
		return nil, err
	}

	m := &Metadata{FrameOffset: chain.FrameOffset}
	for _, block := range chain.Blocks {
		logger.Debug("metadata block",
			"path", opts.Path,
			"type", block.Type.String(),
			"offset", block.Offset,
			"length", len(block.Body))

		if err := m.add(block, opts); err != nil {
			return nil, err
		}
	}

	for _, w := range m.Warnings {
		logger.Warn(w.Message, "path", opts.Path, "stage", w.Stage, "offset", w.Offset)
	}

	return m, nil
}

// add classifies one block into m.
func (m *Metadata) add(block Block, opts ParseOptions) error {
	bodyOffset := block.Offset + HeaderSize

	switch block.Type {
	case blockTypeStreamInfo:
		if m.StreamInfo != nil {
			m.warn(block.Offset, "duplicate STREAMINFO block replaces the earlier one")
		}
		if len(block.Body) != StreamInfoSize {
			m.warn(block.Offset, fmt.Sprintf("invalid STREAMINFO size: %d (expected %d)", len(block.Body), StreamInfoSize))
		}
		b := block
		m.StreamInfo = &b

	case blockTypePadding:
		b := block
		m.Padding = &b

	case blockTypeVorbisComment:
		if m.Comment != nil {
			if opts.Strict {
				return &types.DuplicateBlockError{Path: opts.Path, Type: block.Type, Offset: block.Offset}
			}
			m.warn(block.Offset, "duplicate VORBIS_COMMENT block replaces the earlier one")
		}
		comment, err := vorbis.DecodeAt(block.Body, bodyOffset, opts.Path)
		if err != nil {
			return &types.MalformedBlockError{Path: opts.Path, Type: block.Type, Offset: block.Offset, Err: err}
		}
		m.Comment = &comment

	case blockTypePicture:
		pic, err := DecodePictureAt(block.Body, bodyOffset, opts.Path)
		if err != nil {
			return &types.MalformedBlockError{Path: opts.Path, Type: block.Type, Offset: block.Offset, Err: err}
		}
		m.Pictures = append(m.Pictures, pic)

	case blockTypeApplication, blockTypeSeekTable, blockTypeCueSheet:
		m.Opaque = append(m.Opaque, block)

	default:
		// Reserved types are kept verbatim for forward compatibility.
		if opts.Strict {
			return &types.UnknownBlockTypeError{Path: opts.Path, Type: block.Type, Offset: block.Offset}
		}
		m.warn(block.Offset, fmt.Sprintf("preserving unknown metadata block type %d", uint8(block.Type)))
		m.Opaque = append(m.Opaque, block)
	}

	return nil
}

func (m *Metadata) warn(offset int64, msg string) {
	m.Warnings = append(m.Warnings, types.Warning{
		Stage:   "metadata",
		Message: msg,
		Offset:  offset,
	})
}

// Blocks returns the blocks a save writes, in canonical order: STREAMINFO,
// opaque blocks in their original relative order, VORBIS_COMMENT, every
// PICTURE, then PADDING. The original interleaving of block types is not
// kept. Re-encoded blocks have Offset -1.
func (m *Metadata) Blocks() []Block {
	blocks := make([]Block, 0, 3+len(m.Opaque)+len(m.Pictures))

	if m.StreamInfo != nil {
		blocks = append(blocks, *m.StreamInfo)
	}
	blocks = append(blocks, m.Opaque...)
	if m.Comment != nil {
		blocks = append(blocks, Block{Type: blockTypeVorbisComment, Offset: -1, Body: m.Comment.Encode()})
	}
	for _, pic := range m.Pictures {
		blocks = append(blocks, Block{Type: blockTypePicture, Offset: -1, Body: pic.Encode()})
	}
	if m.Padding != nil {
		blocks = append(blocks, *m.Padding)
	}

	return blocks
}

// Encode assembles a complete stream: the marker, the rebuilt metadata
// blocks with the last-block flag on the final one, then frames verbatim.
func (m *Metadata) Encode(frames []byte) ([]byte, error) {
	prologue, err := Build(m.Blocks())
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(Marker)+len(prologue)+len(frames))
	out = append(out, Marker...)
	out = append(out, prologue...)
	out = append(out, frames...)
	return out, nil
}

// CueSheet decodes the first CUESHEET block, or returns nil when there is none.
func (m *Metadata) CueSheet() (*CueSheet, error) {
	for _, b := range m.Opaque {
		if b.Type != blockTypeCueSheet {
			continue
		}
		cs, err := DecodeCueSheet(b.Body)
		if err != nil {
			return nil, &types.MalformedBlockError{Type: b.Type, Offset: b.Offset, Err: err}
		}
		return cs, nil
	}
	return nil, nil
}
