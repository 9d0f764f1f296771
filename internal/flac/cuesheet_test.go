package flac

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"
)

// cueSheetBody builds a CD cue sheet with one audio track and the lead-out.
func cueSheetBody() []byte {
	buf := &bytes.Buffer{}

	mcn := make([]byte, 128)
	copy(mcn, "1234567890123")
	buf.Write(mcn)
	binary.Write(buf, binary.BigEndian, uint64(88200)) // lead-in
	buf.WriteByte(0x80)                                 // is CD
	buf.Write(make([]byte, 258))
	buf.WriteByte(2) // track count

	// Track 1: audio, pre-emphasis, two indices
	binary.Write(buf, binary.BigEndian, uint64(0))
	buf.WriteByte(1)
	buf.WriteString("USRC17607839")
	buf.WriteByte(0x40)
	buf.Write(make([]byte, 13))
	buf.WriteByte(2)
	binary.Write(buf, binary.BigEndian, uint64(0))
	buf.WriteByte(0)
	buf.Write(make([]byte, 3))
	binary.Write(buf, binary.BigEndian, uint64(588))
	buf.WriteByte(1)
	buf.Write(make([]byte, 3))

	// Lead-out
	binary.Write(buf, binary.BigEndian, uint64(44100*60))
	buf.WriteByte(LeadOutTrack)
	buf.Write(make([]byte, 12))
	buf.WriteByte(0x00)
	buf.Write(make([]byte, 13))
	buf.WriteByte(0)

	return buf.Bytes()
}

func TestDecodeCueSheet(t *testing.T) {
	cs, err := DecodeCueSheet(cueSheetBody())
	if err != nil {
		t.Fatalf("DecodeCueSheet failed: %v", err)
	}

	if cs.MediaCatalogNumber != "1234567890123" {
		t.Errorf("MediaCatalogNumber = %q", cs.MediaCatalogNumber)
	}
	if cs.LeadIn != 88200 || !cs.IsCD {
		t.Errorf("LeadIn = %d, IsCD = %v", cs.LeadIn, cs.IsCD)
	}
	if len(cs.Tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(cs.Tracks))
	}

	track := cs.Tracks[0]
	if track.Number != 1 || track.ISRC != "USRC17607839" || !track.IsAudio || !track.PreEmphasis {
		t.Errorf("unexpected track 1: %+v", track)
	}
	if len(track.Indices) != 2 || track.Indices[1].Offset != 588 || track.Indices[1].Number != 1 {
		t.Errorf("unexpected indices: %+v", track.Indices)
	}

	leadOut := cs.Tracks[1]
	if leadOut.Number != LeadOutTrack || leadOut.ISRC != "" || len(leadOut.Indices) != 0 {
		t.Errorf("unexpected lead-out: %+v", leadOut)
	}
	if leadOut.Start(44100) != time.Minute {
		t.Errorf("lead-out start = %v", leadOut.Start(44100))
	}
	if leadOut.Start(0) != 0 {
		t.Error("Start with unknown sample rate should be 0")
	}
}

func TestDecodeCueSheet_Truncated(t *testing.T) {
	body := cueSheetBody()
	for _, n := range []int{0, 100, 395, 400, len(body) - 1} {
		if _, err := DecodeCueSheet(body[:n]); err == nil {
			t.Errorf("truncated to %d bytes: expected error", n)
		}
	}
}
