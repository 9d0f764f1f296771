// Package imageinfo identifies image data for embedding as a FLAC picture:
// its MIME type from content sniffing and, for formats the standard image
// decoders know, its pixel dimensions.
package imageinfo

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF for DecodeConfig
	_ "image/jpeg" // register JPEG for DecodeConfig
	_ "image/png"  // register PNG for DecodeConfig

	"github.com/gabriel-vasile/mimetype"
)

// Info describes an image.
type Info struct {
	MIME   string
	Width  uint32
	Height uint32
}

// Inspector sniffs image data with mimetype and reads dimensions with the
// registered image decoders.
type Inspector struct{}

// Inspect identifies data. The MIME type is always set; parameters such as
// "; charset=utf-8" are stripped. Width and Height stay 0 when the format has
// no registered decoder. A recognized image whose header cannot be decoded is
// an error.
func (Inspector) Inspect(data []byte) (Info, error) {
	mime := mimetype.Detect(data)
	info := Info{MIME: baseType(mime.String())}

	if !decodable(info.MIME) {
		return info, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return info, fmt.Errorf("decode %s header: %w", info.MIME, err)
	}
	info.Width = uint32(cfg.Width)
	info.Height = uint32(cfg.Height)

	return info, nil
}

func decodable(mime string) bool {
	switch mime {
	case "image/jpeg", "image/png", "image/gif":
		return true
	default:
		return false
	}
}

// baseType strips MIME parameters.
func baseType(mime string) string {
	for i := 0; i < len(mime); i++ {
		if mime[i] == ';' {
			return mime[:i]
		}
	}
	return mime
}
