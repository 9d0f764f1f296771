// Package binary provides bounds-checked sequential reading and writing of
// fixed-width integers and raw byte runs over in-memory buffers.
package binary

import (
	"fmt"

	"github.com/simonhull/metaflac/internal/types"
)

// Cursor reads sequentially from a byte slice. Every read advances the
// cursor; a read past the end fails with *types.OutOfBoundsError and leaves
// the cursor where it was.
type Cursor struct {
	buf  []byte
	off  int
	base int64
	path string
}

// NewCursor creates a Cursor over buf. base is the absolute position of
// buf[0] in the enclosing stream and is only used in error messages.
func NewCursor(buf []byte, base int64, path string) *Cursor {
	return &Cursor{
		buf:  buf,
		base: base,
		path: path,
	}
}

// Path returns the file path associated with this cursor.
func (c *Cursor) Path() string {
	return c.path
}

// Offset returns the current position relative to the start of the buffer.
func (c *Cursor) Offset() int {
	return c.off
}

// Position returns the current absolute position in the enclosing stream.
func (c *Cursor) Position() int64 {
	return c.base + int64(c.off)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.off
}

// Len returns the size of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// check verifies that n more bytes can be read.
func (c *Cursor) check(n int, what string) error {
	if n < 0 || n > c.Remaining() {
		return &types.OutOfBoundsError{
			Path:   c.path,
			What:   what,
			Offset: c.Position(),
			Length: n,
			Size:   c.base + int64(len(c.buf)),
		}
	}
	return nil
}

// Bytes returns the next n bytes. The result aliases the underlying buffer
// with its capacity clipped, so appending to it never overwrites the source.
func (c *Cursor) Bytes(n int, what string) ([]byte, error) {
	if err := c.check(n, what); err != nil {
		return nil, err
	}
	b := c.buf[c.off : c.off+n : c.off+n]
	c.off += n
	return b, nil
}

// String reads n bytes as a string.
func (c *Cursor) String(n int, what string) (string, error) {
	b, err := c.Bytes(n, what)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Skip advances the cursor by n bytes.
func (c *Cursor) Skip(n int, what string) error {
	if err := c.check(n, what); err != nil {
		return err
	}
	c.off += n
	return nil
}

// Uint reads an n-byte unsigned integer, 1 <= n <= 8.
func (c *Cursor) Uint(n int, endian Endianness, what string) (uint64, error) {
	if n < 1 || n > 8 {
		return 0, fmt.Errorf("read %s: unsupported width %d", what, n)
	}
	b, err := c.Bytes(n, what)
	if err != nil {
		return 0, err
	}
	return decode(b, n, endian), nil
}

// Uint24 reads a 3-byte big-endian integer, the width of FLAC block lengths
// and frame sizes.
func (c *Cursor) Uint24(what string) (uint32, error) {
	v, err := c.Uint(3, BigEndian, what)
	return uint32(v), err
}

// ReadBE reads a big-endian value of type T and advances the cursor.
func ReadBE[T Unsigned](c *Cursor, what string) (T, error) {
	v, err := c.Uint(sizeOf[T](), BigEndian, what)
	return T(v), err
}

// ReadLE reads a little-endian value of type T and advances the cursor.
//
// Example:
//
//	length, err := binary.ReadLE[uint32](c, "vendor length")
func ReadLE[T Unsigned](c *Cursor, what string) (T, error) {
	v, err := c.Uint(sizeOf[T](), LittleEndian, what)
	return T(v), err
}

// ChainReader allows chaining multiple reads with deferred error checking.
// This avoids repetitive "if err != nil" checks.
type ChainReader struct {
	*Cursor
	err error
}

// NewChainReader creates a new ChainReader.
func NewChainReader(c *Cursor) *ChainReader {
	return &ChainReader{Cursor: c}
}

// ReadChained reads a value with deferred error checking.
// If a previous read failed, returns zero value without attempting read.
func ReadChained[T Unsigned](cr *ChainReader, endian Endianness, what string) T {
	if cr.err != nil {
		var zero T
		return zero
	}

	v, err := cr.Cursor.Uint(sizeOf[T](), endian, what)
	if err != nil {
		cr.err = err
		var zero T
		return zero
	}

	return T(v)
}

// Uint24 reads a 3-byte big-endian integer, accumulating any error.
func (cr *ChainReader) Uint24(what string) uint32 {
	if cr.err != nil {
		return 0
	}

	v, err := cr.Cursor.Uint24(what)
	if err != nil {
		cr.err = err
		return 0
	}

	return v
}

// Bytes reads n raw bytes, accumulating any error.
func (cr *ChainReader) Bytes(n int, what string) []byte {
	if cr.err != nil {
		return nil
	}

	b, err := cr.Cursor.Bytes(n, what)
	if err != nil {
		cr.err = err
		return nil
	}

	return b
}

// String reads a string, accumulating any error.
func (cr *ChainReader) String(n int, what string) string {
	return string(cr.Bytes(n, what))
}

// Error returns the accumulated error, if any.
func (cr *ChainReader) Error() error {
	return cr.err
}
