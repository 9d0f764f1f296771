package flac

import (
	"fmt"
	"strings"
	"time"

	"github.com/simonhull/metaflac/internal/binary"
)

// LeadOutTrack is the track number of the lead-out track on a CD-DA cue sheet.
const LeadOutTrack = 170

// CueSheet represents a FLAC CUESHEET metadata block
type CueSheet struct {
	MediaCatalogNumber string
	LeadIn             uint64 // samples
	IsCD               bool
	Tracks             []CueTrack
}

// CueTrack represents a track in a cue sheet
type CueTrack struct {
	Offset      uint64 // samples from start of audio
	Number      byte   // track number (1-99, 170=lead-out)
	ISRC        string
	IsAudio     bool
	PreEmphasis bool
	Indices     []CueIndex
}

// CueIndex represents an index point within a track
type CueIndex struct {
	Offset uint64 // samples from start of track
	Number byte   // index number
}

// Start returns the track's start time at the given sample rate.
func (t CueTrack) Start(sampleRate uint32) time.Duration {
	if sampleRate == 0 {
		return 0
	}
	seconds := float64(t.Offset) / float64(sampleRate)
	return time.Duration(seconds * float64(time.Second))
}

// DecodeCueSheet decodes a CUESHEET body. CUESHEET blocks are carried through
// a save as raw bytes; this decoder only serves read-only inspection.
func DecodeCueSheet(body []byte) (*CueSheet, error) {
	c := binary.NewCursor(body, 0, "")
	cr := binary.NewChainReader(c)

	// Media catalog number (128 bytes, ASCII, NUL-padded)
	mcn := cr.Bytes(128, "media catalog number")
	leadIn := binary.ReadChained[uint64](cr, binary.BigEndian, "lead-in samples")
	// One flag bit followed by 7 + 258*8 reserved bits
	flags := binary.ReadChained[uint8](cr, binary.BigEndian, "cuesheet flags")
	cr.Bytes(258, "cuesheet reserved")
	trackCount := binary.ReadChained[uint8](cr, binary.BigEndian, "track count")
	if err := cr.Error(); err != nil {
		return nil, err
	}

	cs := &CueSheet{
		MediaCatalogNumber: strings.TrimRight(string(mcn), "\x00"),
		LeadIn:             leadIn,
		IsCD:               flags&0x80 != 0,
		Tracks:             make([]CueTrack, 0, trackCount),
	}

	for i := 0; i < int(trackCount); i++ {
		track, err := decodeCueTrack(cr)
		if err != nil {
			return nil, fmt.Errorf("parse track %d: %w", i, err)
		}
		cs.Tracks = append(cs.Tracks, track)
	}

	return cs, nil
}

// decodeCueTrack decodes a single 36-byte track header and its index points.
func decodeCueTrack(cr *binary.ChainReader) (CueTrack, error) {
	offset := binary.ReadChained[uint64](cr, binary.BigEndian, "track offset")
	number := binary.ReadChained[uint8](cr, binary.BigEndian, "track number")
	isrc := cr.Bytes(12, "ISRC")
	flags := binary.ReadChained[uint8](cr, binary.BigEndian, "track flags")
	cr.Bytes(13, "track reserved")
	indexCount := binary.ReadChained[uint8](cr, binary.BigEndian, "index count")
	if err := cr.Error(); err != nil {
		return CueTrack{}, err
	}

	track := CueTrack{
		Offset:      offset,
		Number:      number,
		ISRC:        strings.TrimRight(string(isrc), "\x00"),
		IsAudio:     flags&0x80 == 0, // Audio if bit 7 is NOT set
		PreEmphasis: flags&0x40 != 0,
		Indices:     make([]CueIndex, 0, indexCount),
	}

	for j := 0; j < int(indexCount); j++ {
		idxOffset := binary.ReadChained[uint64](cr, binary.BigEndian, "index offset")
		idxNumber := binary.ReadChained[uint8](cr, binary.BigEndian, "index number")
		cr.Bytes(3, "index reserved")
		if err := cr.Error(); err != nil {
			return CueTrack{}, fmt.Errorf("parse index %d: %w", j, err)
		}
		track.Indices = append(track.Indices, CueIndex{Offset: idxOffset, Number: idxNumber})
	}

	return track, nil
}
