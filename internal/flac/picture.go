package flac

import (
	"fmt"

	"github.com/simonhull/metaflac/internal/binary"
)

// PictureType is the ID3v2 APIC picture type stored in a PICTURE block.
type PictureType uint32

const (
	PictureOther PictureType = iota
	PictureFileIcon
	PictureOtherFileIcon
	PictureFrontCover
	PictureBackCover
	PictureLeaflet
	PictureMedia
	PictureLeadArtist
	PictureArtist
	PictureConductor
	PictureBand
	PictureComposer
	PictureLyricist
	PictureRecordingLocation
	PictureDuringRecording
	PictureDuringPerformance
	PictureVideoCapture
	PictureBrightFish
	PictureIllustration
	PictureBandLogotype
	PicturePublisherLogotype
)

var pictureTypeNames = [...]string{
	"Other",
	"File icon",
	"Other file icon",
	"Cover (front)",
	"Cover (back)",
	"Leaflet page",
	"Media",
	"Lead artist/lead performer/soloist",
	"Artist/performer",
	"Conductor",
	"Band/Orchestra",
	"Composer",
	"Lyricist/text writer",
	"Recording location",
	"During recording",
	"During performance",
	"Movie/video screen capture",
	"A bright coloured fish",
	"Illustration",
	"Band/artist logotype",
	"Publisher/studio logotype",
}

func (t PictureType) String() string {
	if int(t) < len(pictureTypeNames) {
		return pictureTypeNames[t]
	}
	return fmt.Sprintf("Reserved (%d)", uint32(t))
}

// Defaults for pictures created from an imported image.
const (
	DefaultPictureType = PictureFrontCover
	DefaultColorDepth  = 24
)

// Picture is a decoded PICTURE block.
//
// The encoded MIME, description and data lengths are not stored: they are
// always derived from the fields at encode time.
type Picture struct {
	Type        PictureType
	MIME        string // printable ASCII
	Description string // UTF-8
	Width       uint32
	Height      uint32
	ColorDepth  uint32 // bits per pixel
	ColorCount  uint32 // 0 for non-indexed images
	Data        []byte
}

// NewPicture builds a front-cover picture with the defaults used when
// embedding an imported image: 24-bit depth, no palette, no description.
func NewPicture(mime string, width, height uint32, data []byte) Picture {
	return Picture{
		Type:       DefaultPictureType,
		MIME:       mime,
		Width:      width,
		Height:     height,
		ColorDepth: DefaultColorDepth,
		ColorCount: 0,
		Data:       data,
	}
}

// DecodePicture decodes a PICTURE body. All integers are big-endian.
// Truncated input fails with *types.OutOfBoundsError.
func DecodePicture(body []byte) (Picture, error) {
	return DecodePictureAt(body, 0, "")
}

// DecodePictureAt is DecodePicture with error positions relative to base in
// path.
func DecodePictureAt(body []byte, base int64, path string) (Picture, error) {
	cr := binary.NewChainReader(binary.NewCursor(body, base, path))

	var p Picture
	p.Type = PictureType(binary.ReadChained[uint32](cr, binary.BigEndian, "picture type"))
	mimeLength := binary.ReadChained[uint32](cr, binary.BigEndian, "MIME type length")
	p.MIME = cr.String(int(mimeLength), "MIME type")
	descLength := binary.ReadChained[uint32](cr, binary.BigEndian, "description length")
	p.Description = cr.String(int(descLength), "description")
	p.Width = binary.ReadChained[uint32](cr, binary.BigEndian, "width")
	p.Height = binary.ReadChained[uint32](cr, binary.BigEndian, "height")
	p.ColorDepth = binary.ReadChained[uint32](cr, binary.BigEndian, "color depth")
	p.ColorCount = binary.ReadChained[uint32](cr, binary.BigEndian, "color count")
	dataLength := binary.ReadChained[uint32](cr, binary.BigEndian, "picture data length")
	data := cr.Bytes(int(dataLength), "picture data")

	if err := cr.Error(); err != nil {
		return Picture{}, err
	}
	p.Data = append([]byte{}, data...)

	return p, nil
}

// EncodedLen returns the size of the encoded body.
func (p Picture) EncodedLen() int {
	return 32 + len(p.MIME) + len(p.Description) + len(p.Data)
}

// Encode serializes the picture.
func (p Picture) Encode() []byte {
	w := binary.NewWriter(p.EncodedLen())
	binary.Write(w, uint32(p.Type))
	binary.Write(w, uint32(len(p.MIME)))
	w.WriteString(p.MIME)
	binary.Write(w, uint32(len(p.Description)))
	w.WriteString(p.Description)
	binary.Write(w, p.Width)
	binary.Write(w, p.Height)
	binary.Write(w, p.ColorDepth)
	binary.Write(w, p.ColorCount)
	binary.Write(w, uint32(len(p.Data)))
	w.WriteBytes(p.Data)
	return w.Bytes()
}

// String returns a short description such as
// "Cover (front): image/jpeg 600x600, 24 bpp, 52311 bytes".
func (p Picture) String() string {
	return fmt.Sprintf("%s: %s %dx%d, %d bpp, %d bytes", p.Type, p.MIME, p.Width, p.Height, p.ColorDepth, len(p.Data))
}
