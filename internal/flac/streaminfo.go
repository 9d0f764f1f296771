package flac

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/simonhull/metaflac/internal/binary"
)

// StreamInfoSize is the fixed size of a STREAMINFO body.
const StreamInfoSize = 34

// StreamInfo holds the fields of a STREAMINFO block.
type StreamInfo struct {
	MinBlockSize  uint16
	MaxBlockSize  uint16
	MinFrameSize  uint32 // 24 bits; 0 means unknown
	MaxFrameSize  uint32 // 24 bits; 0 means unknown
	SampleRate    uint32 // 20 bits, Hz
	Channels      uint8  // 1-8
	BitsPerSample uint8  // 4-32
	TotalSamples  uint64 // 36 bits; 0 means unknown
	MD5           [16]byte
}

// DecodeStreamInfo decodes a STREAMINFO body. Bytes past the first 34 are
// ignored; a shorter body fails with *types.OutOfBoundsError.
func DecodeStreamInfo(body []byte) (StreamInfo, error) {
	return DecodeStreamInfoAt(body, 0, "")
}

// DecodeStreamInfoAt is DecodeStreamInfo with error positions relative to
// base in path.
func DecodeStreamInfoAt(body []byte, base int64, path string) (StreamInfo, error) {
	cr := binary.NewChainReader(binary.NewCursor(body, base, path))

	var si StreamInfo
	si.MinBlockSize = binary.ReadChained[uint16](cr, binary.BigEndian, "min block size")
	si.MaxBlockSize = binary.ReadChained[uint16](cr, binary.BigEndian, "max block size")
	si.MinFrameSize = cr.Uint24("min frame size")
	si.MaxFrameSize = cr.Uint24("max frame size")

	// Bytes 10-17 pack, most significant first: sample rate (20 bits),
	// channels-1 (3 bits), bits per sample-1 (5 bits), total samples (36 bits).
	packed := binary.ReadChained[uint64](cr, binary.BigEndian, "stream parameters")
	md5 := cr.Bytes(16, "MD5 signature")
	if err := cr.Error(); err != nil {
		return StreamInfo{}, err
	}

	si.SampleRate = uint32(packed >> 44)
	si.Channels = uint8((packed>>41)&0x7) + 1
	si.BitsPerSample = uint8((packed>>36)&0x1F) + 1
	si.TotalSamples = packed & 0xFFFFFFFFF
	copy(si.MD5[:], md5)

	return si, nil
}

// Encode packs the fields back into a 34-byte STREAMINFO body. Values wider
// than their bit fields are truncated.
func (si StreamInfo) Encode() []byte {
	w := binary.NewWriter(StreamInfoSize)
	binary.Write(w, si.MinBlockSize)
	binary.Write(w, si.MaxBlockSize)
	w.WriteUint(uint64(si.MinFrameSize), 3, binary.BigEndian)
	w.WriteUint(uint64(si.MaxFrameSize), 3, binary.BigEndian)

	packed := uint64(si.SampleRate&0xFFFFF)<<44 |
		uint64((si.Channels-1)&0x7)<<41 |
		uint64((si.BitsPerSample-1)&0x1F)<<36 |
		si.TotalSamples&0xFFFFFFFFF
	binary.Write(w, packed)
	w.WriteBytes(si.MD5[:])
	return w.Bytes()
}

// MD5Hex returns the MD5 signature of the unencoded audio as lowercase hex.
func (si StreamInfo) MD5Hex() string {
	return hex.EncodeToString(si.MD5[:])
}

// Duration returns the stream length, or 0 when the sample rate or sample
// count is unknown.
func (si StreamInfo) Duration() time.Duration {
	if si.SampleRate == 0 {
		return 0
	}
	seconds := float64(si.TotalSamples) / float64(si.SampleRate)
	return time.Duration(seconds * float64(time.Second))
}

// String summarizes the stream for display.
func (si StreamInfo) String() string {
	return fmt.Sprintf("%d Hz, %d ch, %d bit, %d samples", si.SampleRate, si.Channels, si.BitsPerSample, si.TotalSamples)
}
