package flac

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/simonhull/metaflac/internal/types"
)

func samplePicture() Picture {
	return Picture{
		Type:        PictureBackCover,
		MIME:        "image/png",
		Description: "Back cover – scan",
		Width:       1200,
		Height:      800,
		ColorDepth:  32,
		ColorCount:  0,
		Data:        []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A},
	}
}

func TestPicture_EncodeLayout(t *testing.T) {
	p := Picture{Type: PictureFrontCover, MIME: "image/jpeg", Width: 1, Height: 2, ColorDepth: 24, Data: []byte{0xFF, 0xD8}}

	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, uint32(3))
	binary.Write(buf, binary.BigEndian, uint32(10))
	buf.WriteString("image/jpeg")
	binary.Write(buf, binary.BigEndian, uint32(0))
	binary.Write(buf, binary.BigEndian, uint32(1))
	binary.Write(buf, binary.BigEndian, uint32(2))
	binary.Write(buf, binary.BigEndian, uint32(24))
	binary.Write(buf, binary.BigEndian, uint32(0))
	binary.Write(buf, binary.BigEndian, uint32(2))
	buf.Write([]byte{0xFF, 0xD8})

	got := p.Encode()
	if !bytes.Equal(got, buf.Bytes()) {
		t.Errorf("Encode mismatch:\n got %x\nwant %x", got, buf.Bytes())
	}
	if p.EncodedLen() != len(got) {
		t.Errorf("EncodedLen = %d, encoded %d bytes", p.EncodedLen(), len(got))
	}
}

func TestPicture_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		pic  Picture
	}{
		{"full", samplePicture()},
		{"empty description and data", Picture{Type: PictureOther, MIME: "image/jpeg", Data: []byte{}}},
		{"URL picture", Picture{Type: PictureFrontCover, MIME: "-->", Data: []byte("https://example.com/cover.jpg")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePicture(tt.pic.Encode())
			if err != nil {
				t.Fatalf("DecodePicture failed: %v", err)
			}
			if got.Type != tt.pic.Type || got.MIME != tt.pic.MIME || got.Description != tt.pic.Description ||
				got.Width != tt.pic.Width || got.Height != tt.pic.Height ||
				got.ColorDepth != tt.pic.ColorDepth || got.ColorCount != tt.pic.ColorCount {
				t.Errorf("fields mismatch: got %+v, want %+v", got, tt.pic)
			}
			if !bytes.Equal(got.Data, tt.pic.Data) {
				t.Errorf("data mismatch: got %x, want %x", got.Data, tt.pic.Data)
			}
		})
	}
}

func TestPicture_LengthsFollowFields(t *testing.T) {
	p := samplePicture()
	p.Description = "a much longer description than before"
	p.MIME = "image/jpeg"

	got, err := DecodePicture(p.Encode())
	if err != nil {
		t.Fatalf("DecodePicture failed: %v", err)
	}
	if got.Description != p.Description || got.MIME != p.MIME {
		t.Errorf("got %+v", got)
	}
}

func TestDecodePicture_Truncated(t *testing.T) {
	full := samplePicture().Encode()

	for _, n := range []int{0, 3, 8, 20, 40, len(full) - 1} {
		_, err := DecodePicture(full[:n])
		var oob *types.OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Errorf("truncated to %d bytes: expected *types.OutOfBoundsError, got %v", n, err)
		}
	}
}

func TestDecodePicture_DataIsCopied(t *testing.T) {
	body := samplePicture().Encode()
	p, err := DecodePicture(body)
	if err != nil {
		t.Fatalf("DecodePicture failed: %v", err)
	}
	body[len(body)-1] ^= 0xFF
	if p.Data[len(p.Data)-1] != 0x0A {
		t.Error("picture data aliases the source buffer")
	}
}

func TestNewPicture_Defaults(t *testing.T) {
	p := NewPicture("image/jpeg", 640, 480, []byte{0xFF})

	if p.Type != PictureFrontCover || p.ColorDepth != 24 || p.ColorCount != 0 || p.Description != "" {
		t.Errorf("unexpected defaults: %+v", p)
	}
}

func TestPictureType_String(t *testing.T) {
	if PictureFrontCover.String() != "Cover (front)" {
		t.Errorf("got %q", PictureFrontCover.String())
	}
	if PictureType(21).String() != "Reserved (21)" {
		t.Errorf("got %q", PictureType(21).String())
	}
}
