package metaflac

import (
	"errors"
	"testing"

	"github.com/simonhull/metaflac/internal/flac"
)

func TestDocument_SampleRateVector(t *testing.T) {
	body := make([]byte, flac.StreamInfoSize)
	body[10], body[11], body[12] = 0x0A, 0xC4, 0x40

	doc := mustParse(t, newStream().block(BlockTypeStreamInfo, true, body).bytes())

	rate, err := doc.SampleRate()
	if err != nil {
		t.Fatalf("SampleRate failed: %v", err)
	}
	// The top 20 bits of 0x0AC440.
	const want = 0x0AC440 >> 4
	if rate != want {
		t.Errorf("SampleRate = %d, want %d", rate, want)
	}
}

func TestDocument_StreamInfoQueries(t *testing.T) {
	doc := mustParse(t, taggedStream())

	md5, err := doc.MD5Sum()
	if err != nil {
		t.Fatal(err)
	}
	if md5 != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Errorf("MD5Sum = %q", md5)
	}

	tests := []struct {
		name string
		get  func() (uint64, error)
		want uint64
	}{
		{"MinBlockSize", func() (uint64, error) { v, err := doc.MinBlockSize(); return uint64(v), err }, 4096},
		{"MaxBlockSize", func() (uint64, error) { v, err := doc.MaxBlockSize(); return uint64(v), err }, 4096},
		{"MinFrameSize", func() (uint64, error) { v, err := doc.MinFrameSize(); return uint64(v), err }, 14},
		{"MaxFrameSize", func() (uint64, error) { v, err := doc.MaxFrameSize(); return uint64(v), err }, 12345},
		{"SampleRate", func() (uint64, error) { v, err := doc.SampleRate(); return uint64(v), err }, 44100},
		{"Channels", func() (uint64, error) { v, err := doc.Channels(); return uint64(v), err }, 2},
		{"BitsPerSample", func() (uint64, error) { v, err := doc.BitsPerSample(); return uint64(v), err }, 16},
		{"TotalSamples", func() (uint64, error) { return doc.TotalSamples() }, 441000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.get()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDocument_MissingStreamInfo(t *testing.T) {
	data := newStream().block(BlockTypeVorbisComment, true, commentBody("v", "A=1")).frames(audioPayload).bytes()
	doc := mustParse(t, data)

	checks := map[string]error{}
	_, checks["MD5Sum"] = doc.MD5Sum()
	_, checks["SampleRate"] = doc.SampleRate()
	_, checks["Channels"] = doc.Channels()
	_, checks["TotalSamples"] = doc.TotalSamples()
	_, checks["Bytes"] = doc.Bytes()

	for name, err := range checks {
		var target *MissingBlockError
		if !errors.As(err, &target) {
			t.Errorf("%s: expected *MissingBlockError, got %v", name, err)
			continue
		}
		if target.Type != BlockTypeStreamInfo {
			t.Errorf("%s: Type = %v", name, target.Type)
		}
	}

	// Tag access does not need STREAMINFO.
	if _, err := doc.Tags(); err != nil {
		t.Errorf("Tags failed: %v", err)
	}
}

func TestDocument_ShortStreamInfo(t *testing.T) {
	doc := mustParse(t, newStream().block(BlockTypeStreamInfo, true, make([]byte, 18)).bytes())

	_, err := doc.SampleRate()
	var target *MissingBlockError
	if !errors.As(err, &target) {
		t.Fatalf("expected *MissingBlockError, got %v", err)
	}
}
