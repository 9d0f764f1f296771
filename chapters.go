package metaflac

import "github.com/simonhull/metaflac/internal/vorbis"

// Chapter is a chapter marker stored as CHAPTERxxx / CHAPTERxxxNAME tags.
type Chapter = vorbis.Chapter

// Chapters returns the chapter markers carried in the tags, ordered by
// chapter number. The last chapter ends at the stream duration, or 0 when
// STREAMINFO does not know the total sample count.
func (d *Document) Chapters() ([]Chapter, error) {
	c, err := d.comment()
	if err != nil {
		return nil, err
	}
	si, err := d.StreamInfo()
	if err != nil {
		return nil, err
	}
	return vorbis.Chapters(c.Tags, si.Duration()), nil
}
