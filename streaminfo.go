package metaflac

import (
	"github.com/simonhull/metaflac/internal/flac"
)

// StreamInfo holds the decoded fields of the STREAMINFO block.
type StreamInfo = flac.StreamInfo

// StreamInfo decodes the STREAMINFO block.
//
// It fails with *MissingBlockError when the stream has no STREAMINFO block
// or the block is shorter than 34 bytes.
func (d *Document) StreamInfo() (StreamInfo, error) {
	block := d.meta.StreamInfo
	if block == nil || len(block.Body) < flac.StreamInfoSize {
		return StreamInfo{}, &MissingBlockError{Path: d.Path, Type: BlockTypeStreamInfo}
	}

	si, err := flac.DecodeStreamInfo(block.Body)
	if err != nil {
		return StreamInfo{}, &MissingBlockError{Path: d.Path, Type: BlockTypeStreamInfo}
	}
	return si, nil
}

// MD5Sum returns the MD5 signature of the unencoded audio as 32 lowercase
// hex digits.
func (d *Document) MD5Sum() (string, error) {
	si, err := d.StreamInfo()
	if err != nil {
		return "", err
	}
	return si.MD5Hex(), nil
}

// MinBlockSize returns the minimum block size in samples.
func (d *Document) MinBlockSize() (uint16, error) {
	si, err := d.StreamInfo()
	return si.MinBlockSize, err
}

// MaxBlockSize returns the maximum block size in samples.
func (d *Document) MaxBlockSize() (uint16, error) {
	si, err := d.StreamInfo()
	return si.MaxBlockSize, err
}

// MinFrameSize returns the minimum frame size in bytes; 0 means unknown.
func (d *Document) MinFrameSize() (uint32, error) {
	si, err := d.StreamInfo()
	return si.MinFrameSize, err
}

// MaxFrameSize returns the maximum frame size in bytes; 0 means unknown.
func (d *Document) MaxFrameSize() (uint32, error) {
	si, err := d.StreamInfo()
	return si.MaxFrameSize, err
}

// SampleRate returns the sample rate in Hz.
func (d *Document) SampleRate() (uint32, error) {
	si, err := d.StreamInfo()
	return si.SampleRate, err
}

// Channels returns the number of channels, 1 to 8.
func (d *Document) Channels() (uint8, error) {
	si, err := d.StreamInfo()
	return si.Channels, err
}

// BitsPerSample returns the sample resolution, 4 to 32.
func (d *Document) BitsPerSample() (uint8, error) {
	si, err := d.StreamInfo()
	return si.BitsPerSample, err
}

// TotalSamples returns the number of inter-channel samples; 0 means unknown.
func (d *Document) TotalSamples() (uint64, error) {
	si, err := d.StreamInfo()
	return si.TotalSamples, err
}
