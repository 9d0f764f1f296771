package metaflac

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/simonhull/metaflac/internal/flac"
	"github.com/simonhull/metaflac/internal/vorbis"
)

// audioPayload stands in for audio frames; it is never interpreted.
var audioPayload = []byte{0xFF, 0xF8, 0x69, 0x08, 0x00, 0x13, 0x37, 0xC0, 0xDE, 0x01}

// stream lays out a FLAC stream block by block.
type stream struct {
	buf bytes.Buffer
}

func newStream() *stream {
	s := &stream{}
	s.buf.WriteString("fLaC")
	return s
}

func (s *stream) block(t BlockType, last bool, body []byte) *stream {
	typeByte := byte(t)
	if last {
		typeByte |= 0x80
	}
	n := len(body)
	s.buf.Write([]byte{typeByte, byte(n >> 16), byte(n >> 8), byte(n)})
	s.buf.Write(body)
	return s
}

func (s *stream) frames(data []byte) *stream {
	s.buf.Write(data)
	return s
}

func (s *stream) bytes() []byte {
	return s.buf.Bytes()
}

func commentBody(vendor string, tags ...string) []byte {
	return vorbis.Comment{Vendor: vendor, Tags: tags}.Encode()
}

func testStreamInfo() flac.StreamInfo {
	return flac.StreamInfo{
		MinBlockSize:  4096,
		MaxBlockSize:  4096,
		MinFrameSize:  14,
		MaxFrameSize:  12345,
		SampleRate:    44100,
		Channels:      2,
		BitsPerSample: 16,
		TotalSamples:  441000,
		MD5:           [16]byte{0xd4, 0x1d, 0x8c, 0xd9, 0x8f, 0x00, 0xb2, 0x04, 0xe9, 0x80, 0x09, 0x98, 0xec, 0xf8, 0x42, 0x7e},
	}
}

// minimalStream is STREAMINFO (34 zero bytes) then a last VORBIS_COMMENT
// with vendor "test" and TITLE=Song, then audioPayload.
func minimalStream() []byte {
	return newStream().
		block(BlockTypeStreamInfo, false, make([]byte, flac.StreamInfoSize)).
		block(BlockTypeVorbisComment, true, commentBody("test", "TITLE=Song")).
		frames(audioPayload).
		bytes()
}

// taggedStream has a real STREAMINFO, the given tags and a padding block.
func taggedStream(tags ...string) []byte {
	return newStream().
		block(BlockTypeStreamInfo, false, testStreamInfo().Encode()).
		block(BlockTypeVorbisComment, false, commentBody("reference libFLAC 1.4.3", tags...)).
		block(BlockTypePadding, true, make([]byte, 64)).
		frames(audioPayload).
		bytes()
}

func mustParse(t testing.TB, data []byte, opts ...Option) *Document {
	t.Helper()
	doc, err := Parse(data, opts...)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func writeTemp(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
