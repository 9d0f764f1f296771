package metaflac

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
)

// Bytes rebuilds the complete stream from the document's current state.
//
// Metadata blocks are written in canonical order (see Blocks) with the
// last-block flag on the final one, followed by the original audio frames
// byte-for-byte. It fails with *MissingBlockError when the stream has no
// STREAMINFO block.
func (d *Document) Bytes() ([]byte, error) {
	if d.meta.StreamInfo == nil {
		return nil, &MissingBlockError{Path: d.Path, Type: BlockTypeStreamInfo}
	}
	return d.meta.Encode(d.data[d.meta.FrameOffset:])
}

// WriteTo writes the rebuilt stream to w. It implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	out, err := d.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(out)
	return int64(n), err
}

// Save writes the rebuilt stream back to the file the document was opened
// from.
//
// This is an atomic operation: writes to a temporary file first, then renames
// to the original path. If any step fails, the original file remains unchanged.
//
// Options can be provided to customize save behavior:
//
//	err := doc.Save(
//	    metaflac.WithBackup(".bak"),
//	    metaflac.WithValidation(),
//	)
//
// Returns ErrNoPath if the document was created with Parse.
func (d *Document) Save(opts ...SaveOption) error {
	if d.Path == "" {
		return ErrNoPath
	}
	return d.SaveAs(d.Path, opts...)
}

// SaveAs writes the rebuilt stream to outputPath.
//
// This is an atomic operation: writes to a temporary file first, then renames
// to the output path. If any step fails, any partially written data is cleaned up.
func (d *Document) SaveAs(outputPath string, opts ...SaveOption) error { //nolint:gocyclo // Atomic file operations require sequential steps
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	// Build before touching the file system so a bad document writes nothing
	out, err := d.Bytes()
	if err != nil {
		return err
	}

	// Get original file's mod time if we need to preserve it
	var origModTime os.FileInfo
	if options.preserveModTime {
		source := d.Path
		if source == "" {
			source = outputPath
		}
		if info, err := os.Stat(source); err == nil {
			origModTime = info
		}
	}

	// Create temp file in same directory as output (for atomic rename)
	outputDir := filepath.Dir(outputPath)
	tempFile, err := os.CreateTemp(outputDir, ".metaflac-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	if _, err := tempFile.Write(out); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	// Sync temp file (fsync) to ensure data is on disk
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// Keep the permissions of a file being replaced
	if info, err := os.Stat(outputPath); err == nil {
		_ = os.Chmod(tempPath, info.Mode().Perm()) //nolint:errcheck // Non-fatal: default temp mode is still readable by owner
	}

	if options.backupSuffix != "" {
		backupPath := outputPath + options.backupSuffix
		if _, err := os.Stat(outputPath); err == nil {
			if err := os.Rename(outputPath, backupPath); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	if err := os.Rename(tempPath, outputPath); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}

	success = true

	if options.preserveModTime && origModTime != nil {
		_ = os.Chtimes(outputPath, origModTime.ModTime(), origModTime.ModTime()) //nolint:errcheck // Non-fatal: file was written successfully
	}

	d.options.logger.Info("saved FLAC metadata",
		"path", outputPath,
		"bytes", len(out),
		"blocks", len(d.meta.Blocks()))

	if options.validate {
		if err := d.validateWrittenFile(outputPath); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	return nil
}

// validateWrittenFile re-opens the file and compares the editable metadata.
func (d *Document) validateWrittenFile(path string) error {
	written, err := Open(path)
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}

	if (written.meta.Comment == nil) != (d.meta.Comment == nil) {
		return fmt.Errorf("VORBIS_COMMENT presence mismatch")
	}
	if d.meta.Comment != nil {
		if written.meta.Comment.Vendor != d.meta.Comment.Vendor {
			return fmt.Errorf("vendor mismatch: got %q, want %q", written.meta.Comment.Vendor, d.meta.Comment.Vendor)
		}
		if !slices.Equal(written.meta.Comment.Tags, d.meta.Comment.Tags) {
			return fmt.Errorf("tags mismatch: got %d tags, want %d", len(written.meta.Comment.Tags), len(d.meta.Comment.Tags))
		}
	}

	if len(written.meta.Pictures) != len(d.meta.Pictures) {
		return fmt.Errorf("picture count mismatch: got %d, want %d", len(written.meta.Pictures), len(d.meta.Pictures))
	}
	for i, pic := range d.meta.Pictures {
		got := written.meta.Pictures[i]
		if got.MIME != pic.MIME || !bytes.Equal(got.Data, pic.Data) {
			return fmt.Errorf("picture %d mismatch", i)
		}
	}

	if written.meta.FrameOffset+int64(len(d.data))-d.meta.FrameOffset != written.Size {
		return fmt.Errorf("audio frame size mismatch")
	}

	return nil
}
