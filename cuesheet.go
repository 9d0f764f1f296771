package metaflac

import (
	"errors"

	"github.com/simonhull/metaflac/internal/flac"
)

// CueSheet is a decoded CUESHEET block.
type CueSheet = flac.CueSheet

// CueTrack is one track of a CueSheet.
type CueTrack = flac.CueTrack

// CueIndex is one index point of a CueTrack.
type CueIndex = flac.CueIndex

// LeadOutTrack is the track number of the lead-out track on a CD-DA cue sheet.
const LeadOutTrack = flac.LeadOutTrack

// CueSheet decodes the first CUESHEET block. It returns nil, nil when the
// stream has none. The block itself is carried through saves untouched.
func (d *Document) CueSheet() (*CueSheet, error) {
	cs, err := d.meta.CueSheet()
	if err != nil {
		var mb *MalformedBlockError
		if errors.As(err, &mb) {
			mb.Path = d.Path
		}
		return nil, err
	}
	return cs, nil
}
