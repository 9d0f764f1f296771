package metaflac

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/simonhull/metaflac/internal/vorbis"
)

// Tag names are matched case-sensitively: "TITLE" does not match "title".

func (d *Document) comment() (*vorbis.Comment, error) {
	if d.meta.Comment == nil {
		return nil, &MissingBlockError{Path: d.Path, Type: BlockTypeVorbisComment}
	}
	return d.meta.Comment, nil
}

// Vendor returns the vendor string of the VORBIS_COMMENT block.
func (d *Document) Vendor() (string, error) {
	c, err := d.comment()
	if err != nil {
		return "", err
	}
	return c.Vendor, nil
}

// Tags returns a copy of every tag, in stream order, as NAME=VALUE strings.
func (d *Document) Tags() ([]string, error) {
	c, err := d.comment()
	if err != nil {
		return nil, err
	}
	return slices.Clone(c.Tags), nil
}

// Tag returns every tag whose field name is exactly name, in stream order.
// Each entry is the full NAME=VALUE string.
func (d *Document) Tag(name string) ([]string, error) {
	c, err := d.comment()
	if err != nil {
		return nil, err
	}
	return vorbis.Filter(c.Tags, name), nil
}

// SetTag appends a NAME=VALUE tag. Repeated names are allowed.
func (d *Document) SetTag(field string) error {
	c, err := d.comment()
	if err != nil {
		return err
	}
	if !vorbis.Valid(field) {
		return &MalformedTagError{Tag: field}
	}
	c.Tags = append(c.Tags, field)
	return nil
}

// SetTagFromFile appends a tag whose value is the content of a file. field
// has the form NAME=PATH; the file is read verbatim, trailing newlines
// included.
func (d *Document) SetTagFromFile(field string) error {
	c, err := d.comment()
	if err != nil {
		return err
	}
	name, path, ok := vorbis.Split(field)
	if !ok {
		return &MalformedTagError{Tag: field}
	}

	value, err := os.ReadFile(path)
	if err != nil {
		return &TagFileError{Path: path, Err: err}
	}

	c.Tags = append(c.Tags, name+"="+string(value))
	return nil
}

// RemoveTag removes every tag named name. The survivors keep their order.
func (d *Document) RemoveTag(name string) error {
	c, err := d.comment()
	if err != nil {
		return err
	}
	c.Tags = vorbis.RemoveAll(c.Tags, name)
	return nil
}

// RemoveFirstTag removes the first tag named name, if any.
func (d *Document) RemoveFirstTag(name string) error {
	c, err := d.comment()
	if err != nil {
		return err
	}
	c.Tags = vorbis.RemoveFirst(c.Tags, name)
	return nil
}

// RemoveAllTags removes every tag. The vendor string is kept.
func (d *Document) RemoveAllTags() error {
	c, err := d.comment()
	if err != nil {
		return err
	}
	c.Tags = nil
	return nil
}

// ImportTags reads one NAME=VALUE tag per line from r and appends them all.
//
// The whole input is validated first: if any line lacks '=' the call fails
// with *MalformedTagError naming the 1-based line, and no tag is added. A
// single trailing newline is allowed. Values cannot contain newlines.
func (d *Document) ImportTags(r io.Reader) error {
	c, err := d.comment()
	if err != nil {
		return err
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read tags: %w", err)
	}

	text := strings.TrimSuffix(string(content), "\n")
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !vorbis.Valid(line) {
			return &MalformedTagError{Tag: line, Line: i + 1}
		}
	}

	c.Tags = append(c.Tags, lines...)
	return nil
}

// ImportTagsFrom is ImportTags reading from the file at path.
func (d *Document) ImportTagsFrom(path string) error {
	if _, err := d.comment(); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return &TagFileError{Path: path, Err: err}
	}
	defer f.Close() //nolint:errcheck // Read-only

	return d.ImportTags(f)
}

// ExportTags writes every tag to w, joined by newlines, with no trailing
// newline.
func (d *Document) ExportTags(w io.Writer) error {
	c, err := d.comment()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, strings.Join(c.Tags, "\n")); err != nil {
		return fmt.Errorf("write tags: %w", err)
	}
	return nil
}

// ExportTagsTo writes every tag to the file at path, replacing it.
func (d *Document) ExportTagsTo(path string) error {
	c, err := d.comment()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(strings.Join(c.Tags, "\n")), 0o644); err != nil {
		return fmt.Errorf("export tags: %w", err)
	}
	return nil
}
