package metaflac

import (
	"bytes"
	"testing"

	"github.com/dhowden/tag"
	"github.com/go-flac/flacvorbis"
	goflac "github.com/go-flac/go-flac"
)

// TestBytes_ReadableByTagLibrary checks rebuilt streams with an independent
// FLAC reader.
func TestBytes_ReadableByTagLibrary(t *testing.T) {
	cover := encodeImage(t, "jpeg", 4, 4)

	doc := mustParse(t, taggedStream("TITLE=Old", "ARTIST=Band"))
	if err := doc.RemoveTag("TITLE"); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetTag("TITLE=Rebuilt"); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetTag("ALBUM=Live"); err != nil {
		t.Fatal(err)
	}
	if err := doc.ImportPicture(cover); err != nil {
		t.Fatal(err)
	}

	out, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	m, err := tag.ReadFrom(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("tag.ReadFrom failed: %v", err)
	}

	if m.FileType() != tag.FLAC {
		t.Errorf("FileType = %v, want FLAC", m.FileType())
	}
	if m.Title() != "Rebuilt" {
		t.Errorf("Title = %q", m.Title())
	}
	if m.Artist() != "Band" {
		t.Errorf("Artist = %q", m.Artist())
	}
	if m.Album() != "Live" {
		t.Errorf("Album = %q", m.Album())
	}

	pic := m.Picture()
	if pic == nil {
		t.Fatal("no picture found")
	}
	if pic.MIMEType != "image/jpeg" || !bytes.Equal(pic.Data, cover) {
		t.Errorf("picture = %s, %d bytes", pic.MIMEType, len(pic.Data))
	}
}

func TestBytes_MinimalStreamReadableByTagLibrary(t *testing.T) {
	out, err := mustParse(t, minimalStream()).Bytes()
	if err != nil {
		t.Fatal(err)
	}

	m, err := tag.ReadFrom(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("tag.ReadFrom failed: %v", err)
	}
	if m.Title() != "Song" {
		t.Errorf("Title = %q, want Song", m.Title())
	}
}

// TestBytes_ReadableByGoFLAC walks the rebuilt block chain with a second
// independent parser and checks canonical order and frame preservation.
func TestBytes_ReadableByGoFLAC(t *testing.T) {
	doc := mustParse(t, taggedStream("TITLE=Song", "ARTIST=Band"))
	if err := doc.ImportPicture(encodeImage(t, "jpeg", 2, 2)); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetTag("GENRE=Jazz"); err != nil {
		t.Fatal(err)
	}

	out, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	f, err := goflac.ParseBytes(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}

	wantOrder := []goflac.BlockType{goflac.StreamInfo, goflac.VorbisComment, goflac.Picture, goflac.Padding}
	if len(f.Meta) != len(wantOrder) {
		t.Fatalf("got %d blocks, want %d", len(f.Meta), len(wantOrder))
	}
	for i, want := range wantOrder {
		if f.Meta[i].Type != want {
			t.Errorf("block %d type = %d, want %d", i, f.Meta[i].Type, want)
		}
	}
	if !bytes.Equal(f.Frames, audioPayload) {
		t.Errorf("frames = %x, want %x", f.Frames, audioPayload)
	}

	cmt, err := flacvorbis.ParseFromMetaDataBlock(*f.Meta[1])
	if err != nil {
		t.Fatalf("ParseFromMetaDataBlock failed: %v", err)
	}
	if cmt.Vendor != "reference libFLAC 1.4.3" {
		t.Errorf("Vendor = %q", cmt.Vendor)
	}
	wantTags := []string{"TITLE=Song", "ARTIST=Band", "GENRE=Jazz"}
	if len(cmt.Comments) != len(wantTags) {
		t.Fatalf("Comments = %q, want %q", cmt.Comments, wantTags)
	}
	for i := range wantTags {
		if cmt.Comments[i] != wantTags[i] {
			t.Errorf("comment %d = %q, want %q", i, cmt.Comments[i], wantTags[i])
		}
	}
}
