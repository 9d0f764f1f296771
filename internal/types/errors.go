package types

import (
	"encoding/hex"
	"fmt"
)

// OutOfBoundsError is returned when a read would run past the end of the
// buffer being decoded.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// NotFLACError is returned when the stream does not start with "fLaC".
type NotFLACError struct {
	Path   string
	Marker []byte
}

func (e *NotFLACError) Error() string {
	return fmt.Sprintf("%s: not a FLAC stream: marker %s, want 664c6143 (fLaC)",
		e.Path, hex.EncodeToString(e.Marker))
}

// MalformedBlockError is returned when the body of an interpreted metadata
// block cannot be decoded. Err is usually an *OutOfBoundsError.
type MalformedBlockError struct {
	Path   string
	Type   BlockType
	Offset int64
	Err    error
}

func (e *MalformedBlockError) Error() string {
	return fmt.Sprintf("%s: malformed %s block at offset %d: %v", e.Path, e.Type, e.Offset, e.Err)
}

func (e *MalformedBlockError) Unwrap() error {
	return e.Err
}

// MissingBlockError is returned by queries and mutations that depend on a
// block the stream does not contain.
type MissingBlockError struct {
	Path string
	Type BlockType
}

func (e *MissingBlockError) Error() string {
	return fmt.Sprintf("%s: no %s block", e.Path, e.Type)
}

// UnknownBlockTypeError is returned in strict mode for block types 7-127.
type UnknownBlockTypeError struct {
	Path   string
	Type   BlockType
	Offset int64
}

func (e *UnknownBlockTypeError) Error() string {
	return fmt.Sprintf("%s: unknown metadata block type %d at offset %d", e.Path, uint8(e.Type), e.Offset)
}

// DuplicateBlockError is returned in strict mode when a block that may only
// appear once is found again.
type DuplicateBlockError struct {
	Path   string
	Type   BlockType
	Offset int64
}

func (e *DuplicateBlockError) Error() string {
	return fmt.Sprintf("%s: duplicate %s block at offset %d", e.Path, e.Type, e.Offset)
}

// StrictWarningError is returned in strict mode when parsing produced a
// warning that has no more specific error type, such as a STREAMINFO block
// of the wrong size.
type StrictWarningError struct {
	Path    string
	Warning Warning
}

func (e *StrictWarningError) Error() string {
	return fmt.Sprintf("%s: strict parsing failed: %s", e.Path, e.Warning)
}

// BlockTooLargeError is returned when a block body does not fit the 24-bit
// length field of a metadata block header.
type BlockTooLargeError struct {
	Type   BlockType
	Length int
}

func (e *BlockTooLargeError) Error() string {
	return fmt.Sprintf("%s block of %d bytes exceeds the maximum of %d", e.Type, e.Length, MaxBlockLength)
}

// MaxBlockLength is the largest body a metadata block header can describe.
const MaxBlockLength = 1<<24 - 1

// MalformedTagError is returned for a tag that is not in NAME=VALUE form.
// Line is 1-based and only set for tags read from a tag file.
type MalformedTagError struct {
	Tag  string
	Line int
}

func (e *MalformedTagError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed tag on line %d: %q has no '='", e.Line, e.Tag)
	}
	return fmt.Sprintf("malformed tag: %q has no '='", e.Tag)
}

// TagFileError is returned when a file named by a tag operation cannot be read.
type TagFileError struct {
	Path string
	Err  error
}

func (e *TagFileError) Error() string {
	return fmt.Sprintf("read tag file %s: %v", e.Path, e.Err)
}

func (e *TagFileError) Unwrap() error {
	return e.Err
}

// UnsupportedPictureError is returned when an imported image has a MIME type
// that is not accepted for embedding.
type UnsupportedPictureError struct {
	Path string
	MIME string
}

func (e *UnsupportedPictureError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: unsupported picture format %q", e.Path, e.MIME)
	}
	return fmt.Sprintf("unsupported picture format %q", e.MIME)
}

// Warning represents a non-fatal issue encountered during parsing.
//
// Examples include a duplicate VORBIS_COMMENT block, a STREAMINFO block of
// the wrong size, or a block type this package does not interpret.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "metadata", "picture"

	// Warning message
	Message string

	// Stream offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
