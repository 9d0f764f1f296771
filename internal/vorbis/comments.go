// Package vorbis implements the Vorbis comment structure carried in FLAC
// VORBIS_COMMENT blocks: a vendor string followed by an ordered list of
// "NAME=VALUE" strings, every length a 32-bit little-endian integer.
package vorbis

import (
	"strings"

	"github.com/simonhull/metaflac/internal/binary"
)

// Comment is a decoded VORBIS_COMMENT block.
//
// Tag order is preserved exactly as stored; it matters both for writing the
// block back and for RemoveFirst.
type Comment struct {
	Vendor string
	Tags   []string
}

// Decode parses a VORBIS_COMMENT body.
//
// The stored comment count is read but not trusted: comments are read until
// the body is exhausted, so a count that disagrees with the content does not
// lose or invent tags. A length field that runs past the end of data fails
// with *types.OutOfBoundsError.
func Decode(data []byte) (Comment, error) {
	return DecodeAt(data, 0, "")
}

// DecodeAt is Decode with the absolute stream offset and file path of data,
// used to make errors point at the right place in the file.
func DecodeAt(data []byte, base int64, path string) (Comment, error) {
	c := binary.NewCursor(data, base, path)

	vendorLength, err := binary.ReadLE[uint32](c, "vendor string length")
	if err != nil {
		return Comment{}, err
	}
	vendor, err := c.String(int(vendorLength), "vendor string")
	if err != nil {
		return Comment{}, err
	}

	// Informational only; see above.
	if _, err := binary.ReadLE[uint32](c, "comment count"); err != nil {
		return Comment{}, err
	}

	var tags []string
	for i := 0; c.Remaining() > 0; i++ {
		length, err := binary.ReadLE[uint32](c, "comment length")
		if err != nil {
			return Comment{}, err
		}
		tag, err := c.String(int(length), "comment")
		if err != nil {
			return Comment{}, err
		}
		tags = append(tags, tag)
	}

	return Comment{Vendor: vendor, Tags: tags}, nil
}

// Encode serializes the comment. The count field is always len(c.Tags).
// Tags are written as given; the '=' requirement is enforced by callers.
func (c Comment) Encode() []byte {
	size := 8 + len(c.Vendor)
	for _, tag := range c.Tags {
		size += 4 + len(tag)
	}

	w := binary.NewWriter(size)
	binary.WriteLE(w, uint32(len(c.Vendor)))
	w.WriteString(c.Vendor)
	binary.WriteLE(w, uint32(len(c.Tags)))
	for _, tag := range c.Tags {
		binary.WriteLE(w, uint32(len(tag)))
		w.WriteString(tag)
	}
	return w.Bytes()
}

// Clone returns a deep copy of c.
func (c Comment) Clone() Comment {
	return Comment{
		Vendor: c.Vendor,
		Tags:   append([]string(nil), c.Tags...),
	}
}

// Split separates a tag into its field name and value at the first '='.
// ok is false when the tag has no '='.
func Split(tag string) (name, value string, ok bool) {
	return strings.Cut(tag, "=")
}

// FieldName returns the part of tag before the first '=', or the whole tag
// when it has none.
func FieldName(tag string) string {
	name, _, _ := Split(tag)
	return name
}

// Valid reports whether tag has the NAME=VALUE shape.
func Valid(tag string) bool {
	return strings.Contains(tag, "=")
}

// Matching reports whether tag's field name equals name.
//
// The comparison is case-sensitive. The Vorbis comment specification
// defines field names as case-insensitive; callers that want that behavior
// must normalize names themselves.
func Matching(tag, name string) bool {
	return FieldName(tag) == name
}

// Filter returns the tags whose field name is name, in stored order.
func Filter(tags []string, name string) []string {
	var out []string
	for _, tag := range tags {
		if Matching(tag, name) {
			out = append(out, tag)
		}
	}
	return out
}

// RemoveAll returns tags without any tag named name. Survivors keep their
// relative order. The input slice is not modified.
func RemoveAll(tags []string, name string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if !Matching(tag, name) {
			out = append(out, tag)
		}
	}
	return out
}

// RemoveFirst returns tags without the first tag named name. When nothing
// matches, the result equals tags. The input slice is not modified.
func RemoveFirst(tags []string, name string) []string {
	out := make([]string, 0, len(tags))
	removed := false
	for _, tag := range tags {
		if !removed && Matching(tag, name) {
			removed = true
			continue
		}
		out = append(out, tag)
	}
	return out
}
