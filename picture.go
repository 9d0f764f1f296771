package metaflac

import (
	"fmt"
	"os"
	"slices"

	"github.com/simonhull/metaflac/internal/flac"
	"github.com/simonhull/metaflac/internal/types"
)

// Picture is an embedded image from a PICTURE block.
type Picture = flac.Picture

// PictureType is the ID3v2 picture type of a Picture.
type PictureType = flac.PictureType

// Common picture types.
const (
	PictureOther      = flac.PictureOther
	PictureFrontCover = flac.PictureFrontCover
	PictureBackCover  = flac.PictureBackCover
	PictureArtist     = flac.PictureArtist
)

// Pictures returns a copy of the picture list in stream order. Image data is
// shared with the document.
func (d *Document) Pictures() []Picture {
	return slices.Clone(d.meta.Pictures)
}

// ImportPicture embeds data as a new front-cover picture after the existing
// ones.
//
// The image inspector supplies the MIME type and dimensions. Only MIME types
// configured with WithPictureMIMETypes are accepted (image/jpeg by default);
// others fail with *UnsupportedPictureError. A picture that would not fit in
// a metadata block fails with *BlockTooLargeError.
func (d *Document) ImportPicture(data []byte) error {
	return d.importPicture(data, "")
}

// ImportPictureFrom is ImportPicture reading the image from path.
func (d *Document) ImportPictureFrom(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read picture: %w", err)
	}
	return d.importPicture(data, path)
}

func (d *Document) importPicture(data []byte, path string) error {
	info, err := d.options.inspector.Inspect(data)
	if info.MIME != "" && !d.options.pictureMIMEs[info.MIME] {
		// A format outside the allow-list is rejected even if its header
		// could not be decoded.
		return &UnsupportedPictureError{Path: path, MIME: info.MIME}
	}
	if err != nil {
		return fmt.Errorf("inspect picture: %w", err)
	}
	if !d.options.pictureMIMEs[info.MIME] {
		return &UnsupportedPictureError{Path: path, MIME: info.MIME}
	}

	pic := flac.NewPicture(info.MIME, info.Width, info.Height, data)
	if n := pic.EncodedLen(); n > types.MaxBlockLength {
		return &BlockTooLargeError{Type: BlockTypePicture, Length: n}
	}

	d.meta.Pictures = append(d.meta.Pictures, pic)
	d.options.logger.Debug("picture imported",
		"path", d.Path,
		"mime", info.MIME,
		"width", info.Width,
		"height", info.Height,
		"bytes", len(data))
	return nil
}

// ExportPictureTo writes the image data of the first picture to path. It
// does nothing when the document has no pictures.
func (d *Document) ExportPictureTo(path string) error {
	if len(d.meta.Pictures) == 0 {
		return nil
	}
	if err := os.WriteFile(path, d.meta.Pictures[0].Data, 0o644); err != nil {
		return fmt.Errorf("export picture: %w", err)
	}
	return nil
}

// RemovePictures removes every picture.
func (d *Document) RemovePictures() {
	d.meta.Pictures = nil
}
