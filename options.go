package metaflac

import (
	"log/slog"

	"github.com/simonhull/metaflac/internal/imageinfo"
)

// Option configures behavior when opening or parsing FLAC streams.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	doc, err := metaflac.Open("song.flac",
//	    metaflac.WithStrictParsing(),
//	    metaflac.WithLogger(slog.Default()),
//	)
type Option func(*openOptions)

// ImageInfo describes an image handed to ImportPicture.
type ImageInfo = imageinfo.Info

// ImageInspector identifies raw image data: its MIME type and pixel size.
// When Inspect fails it should still report the MIME type it sniffed, so
// that formats outside the allow-list fail as unsupported.
//
// The default inspector sniffs content with github.com/gabriel-vasile/mimetype
// and reads JPEG, PNG and GIF dimensions with the standard image decoders.
type ImageInspector interface {
	Inspect(data []byte) (ImageInfo, error)
}

// openOptions holds configuration for opening files.
type openOptions struct {
	strictParsing  bool            // Fail on unknown blocks, duplicates and any warning
	ignoreWarnings bool            // Suppress all warnings
	logger         *slog.Logger    // Destination for parse and save records
	inspector      ImageInspector  // Used by ImportPicture
	pictureMIMEs   map[string]bool // MIME types ImportPicture accepts
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		strictParsing:  false,
		ignoreWarnings: false,
		logger:         slog.New(slog.DiscardHandler),
		inspector:      imageinfo.Inspector{},
		pictureMIMEs:   map[string]bool{"image/jpeg": true},
	}
}

// WithStrictParsing treats irregular streams as errors.
//
// By default, reserved block types are preserved with a warning, and a second
// VORBIS_COMMENT block replaces the first with a warning. With strict parsing
// these fail with *UnknownBlockTypeError and *DuplicateBlockError, and any
// remaining warning fails the open.
//
// Example:
//
//	doc, err := metaflac.Open("song.flac", metaflac.WithStrictParsing())
//	// err != nil if ANY irregularity is encountered
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// Document.Warnings will always be empty. Warnings are still logged.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithLogger sends parse and save records to logger.
//
// Every metadata block is logged at debug level, every warning at warn level,
// and every successful save at info level. A nil logger discards records,
// which is the default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *openOptions) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		o.logger = logger
	}
}

// WithImageInspector replaces the inspector ImportPicture uses to identify
// image data.
func WithImageInspector(inspector ImageInspector) Option {
	return func(o *openOptions) {
		if inspector != nil {
			o.inspector = inspector
		}
	}
}

// WithPictureMIMETypes sets the MIME types ImportPicture accepts.
//
// The default is image/jpeg only.
//
// Example:
//
//	doc, err := metaflac.Open("song.flac",
//	    metaflac.WithPictureMIMETypes("image/jpeg", "image/png"),
//	)
func WithPictureMIMETypes(mimes ...string) Option {
	return func(o *openOptions) {
		o.pictureMIMEs = make(map[string]bool, len(mimes))
		for _, m := range mimes {
			o.pictureMIMEs[m] = true
		}
	}
}
