package metaflac

import (
	"errors"

	"github.com/simonhull/metaflac/internal/types"
)

// ErrNoPath is returned by Save when the document was parsed from memory and
// has no file to write back to.
var ErrNoPath = errors.New("document has no file path; use SaveAs or Bytes")

// OutOfBoundsError is returned when a length or offset runs past the end of
// the data. It is the cause wrapped by MalformedBlockError.
type OutOfBoundsError = types.OutOfBoundsError

// NotFLACError is returned when a stream does not start with "fLaC".
type NotFLACError = types.NotFLACError

// MalformedBlockError is returned when a VORBIS_COMMENT, PICTURE or CUESHEET
// body cannot be decoded.
type MalformedBlockError = types.MalformedBlockError

// MissingBlockError is returned by operations that need a STREAMINFO or
// VORBIS_COMMENT block the stream does not have.
type MissingBlockError = types.MissingBlockError

// UnknownBlockTypeError is returned in strict mode for reserved block types.
type UnknownBlockTypeError = types.UnknownBlockTypeError

// DuplicateBlockError is returned in strict mode for a second VORBIS_COMMENT.
type DuplicateBlockError = types.DuplicateBlockError

// StrictWarningError is returned in strict mode for any other parse warning.
type StrictWarningError = types.StrictWarningError

// BlockTooLargeError is returned when a rebuilt block exceeds 2^24-1 bytes.
type BlockTooLargeError = types.BlockTooLargeError

// MalformedTagError is returned for a tag without '='.
type MalformedTagError = types.MalformedTagError

// TagFileError is returned when the file behind SetTagFromFile is unreadable.
type TagFileError = types.TagFileError

// UnsupportedPictureError is returned when an imported image has a MIME type
// that is not accepted.
type UnsupportedPictureError = types.UnsupportedPictureError

// Warning is a non-fatal issue found while parsing.
type Warning = types.Warning

// BlockType identifies a metadata block.
type BlockType = types.BlockType

const (
	BlockTypeStreamInfo    = types.BlockTypeStreamInfo
	BlockTypePadding       = types.BlockTypePadding
	BlockTypeApplication   = types.BlockTypeApplication
	BlockTypeSeekTable     = types.BlockTypeSeekTable
	BlockTypeVorbisComment = types.BlockTypeVorbisComment
	BlockTypeCueSheet      = types.BlockTypeCueSheet
	BlockTypePicture       = types.BlockTypePicture
	BlockTypeInvalid       = types.BlockTypeInvalid
)
