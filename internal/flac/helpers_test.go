package flac

import (
	"bytes"

	"github.com/simonhull/metaflac/internal/types"
)

// streamBuilder lays out a FLAC stream byte by byte, with headers written
// exactly as given so tests can produce irregular chains.
type streamBuilder struct {
	buf *bytes.Buffer
}

func newStream() *streamBuilder {
	b := &streamBuilder{buf: &bytes.Buffer{}}
	b.buf.WriteString("fLaC")
	return b
}

func (b *streamBuilder) raw(typeByte byte, body []byte) *streamBuilder {
	b.buf.WriteByte(typeByte)
	n := len(body)
	b.buf.WriteByte(byte(n >> 16))
	b.buf.WriteByte(byte(n >> 8))
	b.buf.WriteByte(byte(n))
	b.buf.Write(body)
	return b
}

func (b *streamBuilder) block(t types.BlockType, body []byte) *streamBuilder {
	return b.raw(byte(t), body)
}

func (b *streamBuilder) last(t types.BlockType, body []byte) *streamBuilder {
	return b.raw(byte(t)|0x80, body)
}

func (b *streamBuilder) frames(data []byte) *streamBuilder {
	b.buf.Write(data)
	return b
}

func (b *streamBuilder) bytes() []byte {
	return b.buf.Bytes()
}
