// Package types provides the shared data structures and error types used by
// the FLAC metadata codecs and the public metaflac package.
package types

import "fmt"

// BlockType identifies a FLAC metadata block. Only the low 7 bits of the
// on-disk type byte carry the type; bit 7 is the last-block flag.
type BlockType uint8

const (
	BlockTypeStreamInfo    BlockType = 0
	BlockTypePadding       BlockType = 1
	BlockTypeApplication   BlockType = 2
	BlockTypeSeekTable     BlockType = 3
	BlockTypeVorbisComment BlockType = 4
	BlockTypeCueSheet      BlockType = 5
	BlockTypePicture       BlockType = 6

	// BlockTypeInvalid is forbidden by the FLAC format. It is kept here so
	// it can be reported by name.
	BlockTypeInvalid BlockType = 127
)

var blockTypeNames = map[BlockType]string{
	BlockTypeStreamInfo:    "STREAMINFO",
	BlockTypePadding:       "PADDING",
	BlockTypeApplication:   "APPLICATION",
	BlockTypeSeekTable:     "SEEKTABLE",
	BlockTypeVorbisComment: "VORBIS_COMMENT",
	BlockTypeCueSheet:      "CUESHEET",
	BlockTypePicture:       "PICTURE",
	BlockTypeInvalid:       "INVALID",
}

// String returns the name used by the FLAC format documentation.
func (t BlockType) String() string {
	if name, ok := blockTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint8(t))
}

// Known reports whether t is one of the seven defined block types.
func (t BlockType) Known() bool {
	return t <= BlockTypePicture
}
