package flac

import (
	"github.com/simonhull/metaflac/internal/binary"
	"github.com/simonhull/metaflac/internal/types"
)

// Metadata block types, re-exported from types for brevity inside this package.
const (
	blockTypeStreamInfo    = types.BlockTypeStreamInfo
	blockTypePadding       = types.BlockTypePadding
	blockTypeApplication   = types.BlockTypeApplication
	blockTypeSeekTable     = types.BlockTypeSeekTable
	blockTypeVorbisComment = types.BlockTypeVorbisComment
	blockTypeCueSheet      = types.BlockTypeCueSheet
	blockTypePicture       = types.BlockTypePicture
)

const (
	// Marker is the four-byte signature at the start of every FLAC stream.
	Marker = "fLaC"

	// HeaderSize is the size of a metadata block header.
	HeaderSize = 4

	lastBlockFlag = 0x80
	blockTypeMask = 0x7F
)

// Header is a decoded metadata block header.
//
// On disk the header is one type byte, whose bit 7 is the last-block flag and
// whose low 7 bits are the block type, followed by a 24-bit big-endian body
// length. All packing and unpacking of the type byte goes through
// ParseTypeByte and TypeByte.
type Header struct {
	IsLast bool
	Type   types.BlockType
	Length uint32
}

// ParseTypeByte splits a header type byte into its last flag and block type.
func ParseTypeByte(b byte) (isLast bool, t types.BlockType) {
	return b&lastBlockFlag != 0, types.BlockType(b & blockTypeMask)
}

// TypeByte packs the last flag and block type into a header type byte.
func (h Header) TypeByte() byte {
	b := byte(h.Type) & blockTypeMask
	if h.IsLast {
		b |= lastBlockFlag
	}
	return b
}

// ReadHeader reads a block header at the cursor.
func ReadHeader(c *binary.Cursor) (Header, error) {
	b, err := binary.ReadBE[uint8](c, "metadata block header")
	if err != nil {
		return Header{}, err
	}
	length, err := c.Uint24("metadata block length")
	if err != nil {
		return Header{}, err
	}

	isLast, t := ParseTypeByte(b)
	return Header{IsLast: isLast, Type: t, Length: length}, nil
}

// Encode returns the four header bytes.
func (h Header) Encode() []byte {
	w := binary.NewWriter(HeaderSize)
	binary.Write(w, h.TypeByte())
	w.WriteUint(uint64(h.Length), 3, binary.BigEndian)
	return w.Bytes()
}

// Block is one metadata block: its type and its raw body. Offset is the
// position of the block header in the source stream, or -1 for blocks that
// were produced by re-encoding.
type Block struct {
	Type   types.BlockType
	Offset int64
	Body   []byte
}

// Chain is the result of walking the metadata blocks of a stream.
type Chain struct {
	Blocks []Block

	// FrameOffset is the position of the first byte after the last metadata
	// block, where audio frames begin.
	FrameOffset int64
}

// ParseChain verifies the stream marker and walks metadata blocks until one
// carries the last-block flag. Block bodies alias data.
//
// A stream without the marker fails with *types.NotFLACError; a header or
// body that runs past the end of data fails with *types.OutOfBoundsError.
func ParseChain(data []byte, path string) (*Chain, error) {
	if len(data) < len(Marker) || string(data[:len(Marker)]) != Marker {
		return nil, &types.NotFLACError{
			Path:   path,
			Marker: append([]byte(nil), data[:min(len(data), len(Marker))]...),
		}
	}

	c := binary.NewCursor(data, 0, path)
	if err := c.Skip(len(Marker), "FLAC marker"); err != nil {
		return nil, err
	}

	chain := &Chain{}
	for {
		offset := c.Position()

		header, err := ReadHeader(c)
		if err != nil {
			return nil, err
		}
		body, err := c.Bytes(int(header.Length), header.Type.String()+" block body")
		if err != nil {
			return nil, err
		}

		chain.Blocks = append(chain.Blocks, Block{
			Type:   header.Type,
			Offset: offset,
			Body:   body,
		})

		if header.IsLast {
			break
		}
	}
	chain.FrameOffset = c.Position()

	return chain, nil
}

// Build serializes blocks in the order given. The last-block flag is set on
// the final block only, regardless of where blocks came from.
//
// A body longer than types.MaxBlockLength fails with *types.BlockTooLargeError.
func Build(blocks []Block) ([]byte, error) {
	size := 0
	for _, b := range blocks {
		if len(b.Body) > types.MaxBlockLength {
			return nil, &types.BlockTooLargeError{Type: b.Type, Length: len(b.Body)}
		}
		size += HeaderSize + len(b.Body)
	}

	w := binary.NewWriter(size)
	for i, b := range blocks {
		header := Header{
			IsLast: i == len(blocks)-1,
			Type:   b.Type,
			Length: uint32(len(b.Body)),
		}
		w.WriteBytes(header.Encode())
		w.WriteBytes(b.Body)
	}
	return w.Bytes(), nil
}
