package metaflac

// SaveOption configures behavior when saving FLAC files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	err := doc.Save(
//	    metaflac.WithBackup(".bak"),
//	    metaflac.WithValidation(),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for saving files.
type saveOptions struct {
	backupSuffix    string // Suffix for backup file (e.g., ".bak")
	validate        bool   // Re-read after write to verify
	preserveModTime bool   // Keep original modification time
}

// defaultSaveOptions returns the default configuration for saving.
func defaultSaveOptions() *saveOptions {
	return &saveOptions{
		backupSuffix:    "",
		validate:        false,
		preserveModTime: false,
	}
}

// WithBackup creates a backup of the original file before saving.
//
// The backup file will have the specified suffix appended to the original
// filename. For example, WithBackup(".bak") will create "song.flac.bak"
// before replacing "song.flac".
//
// If the backup file already exists, it will be overwritten.
//
// Example:
//
//	err := doc.Save(metaflac.WithBackup(".bak"))
//	// Original file preserved as song.flac.bak
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing to verify integrity.
//
// After saving, the file is re-opened and its vendor string, tags and
// pictures are compared with the document. This adds overhead but provides
// confidence that the save operation succeeded.
//
// Use this for critical operations where data integrity is paramount.
//
// Example:
//
//	err := doc.Save(metaflac.WithValidation())
//	// File is re-read after save to verify
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time.
//
// By default, saving updates the file's modification time to the current
// time. This option preserves the original modification time.
//
// Use this when retagging a library should not disturb tools that sort or
// sync by modification date.
//
// Example:
//
//	err := doc.Save(metaflac.WithPreserveModTime())
//	// File modification time unchanged
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}
