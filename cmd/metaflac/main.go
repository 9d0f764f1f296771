// Command metaflac lists and edits the metadata of FLAC files.
//
// Usage:
//
//	metaflac [options] FLACfile...
//
// Operations run in a fixed order regardless of the order of the flags:
// shows, then removals, then sets and imports, then exports. A file is saved
// once, after all of its operations, and only if one of them changed it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/simonhull/metaflac"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// listFlag collects every occurrence of a repeatable flag.
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

type config struct {
	showMD5          bool
	showMinBlockSize bool
	showMaxBlockSize bool
	showMinFrameSize bool
	showMaxFrameSize bool
	showSampleRate   bool
	showChannels     bool
	showBPS          bool
	showTotalSamples bool
	showVendor       bool
	showTags         listFlag
	showAllTags      bool
	list             bool

	removeTags      listFlag
	removeFirstTags listFlag
	removeAllTags   bool
	removePictures  bool

	setTags         listFlag
	setTagsFromFile listFlag
	importTags      string
	importPicture   string

	exportTags    string
	exportPicture string

	strict          bool
	backup          string
	preserveModTime bool
	verbose         bool
	version         bool
}

func newFlagSet(cfg *config, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("metaflac", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: metaflac [options] FLACfile...")
		fs.PrintDefaults()
	}

	fs.BoolVar(&cfg.showMD5, "show-md5sum", false, "show the MD5 signature from the STREAMINFO block")
	fs.BoolVar(&cfg.showMinBlockSize, "show-min-blocksize", false, "show the minimum block size from the STREAMINFO block")
	fs.BoolVar(&cfg.showMaxBlockSize, "show-max-blocksize", false, "show the maximum block size from the STREAMINFO block")
	fs.BoolVar(&cfg.showMinFrameSize, "show-min-framesize", false, "show the minimum frame size from the STREAMINFO block")
	fs.BoolVar(&cfg.showMaxFrameSize, "show-max-framesize", false, "show the maximum frame size from the STREAMINFO block")
	fs.BoolVar(&cfg.showSampleRate, "show-sample-rate", false, "show the sample rate from the STREAMINFO block")
	fs.BoolVar(&cfg.showChannels, "show-channels", false, "show the number of channels from the STREAMINFO block")
	fs.BoolVar(&cfg.showBPS, "show-bps", false, "show the bits per sample from the STREAMINFO block")
	fs.BoolVar(&cfg.showTotalSamples, "show-total-samples", false, "show the total number of samples from the STREAMINFO block")
	fs.BoolVar(&cfg.showVendor, "show-vendor-tag", false, "show the vendor string from the VORBIS_COMMENT block")
	fs.Var(&cfg.showTags, "show-tag", "show all tags where the field name matches `NAME` (repeatable)")
	fs.BoolVar(&cfg.showAllTags, "show-all-tags", false, "show every tag")
	fs.BoolVar(&cfg.list, "list", false, "list the metadata blocks the file would be saved with")

	fs.Var(&cfg.removeTags, "remove-tag", "remove all tags whose field name is `NAME` (repeatable)")
	fs.Var(&cfg.removeFirstTags, "remove-first-tag", "remove the first tag whose field name is `NAME` (repeatable)")
	fs.BoolVar(&cfg.removeAllTags, "remove-all-tags", false, "remove all tags, leaving only the vendor string")
	fs.BoolVar(&cfg.removePictures, "remove-pictures", false, "remove every PICTURE block")

	fs.Var(&cfg.setTags, "set-tag", "add a tag; `FIELD` must be NAME=VALUE (repeatable)")
	fs.Var(&cfg.setTagsFromFile, "set-tag-from-file", "add a tag whose value is the content of a file; `FIELD` is NAME=FILENAME (repeatable)")
	fs.StringVar(&cfg.importTags, "import-tags-from", "", "import tags from `FILE`, one NAME=VALUE per line")
	fs.StringVar(&cfg.importPicture, "import-picture-from", "", "import a JPEG picture from `FILE`")

	fs.StringVar(&cfg.exportTags, "export-tags-to", "", "export tags to `FILE`, or - for stdout")
	fs.StringVar(&cfg.exportPicture, "export-picture-to", "", "export the first picture to `FILE`")

	fs.BoolVar(&cfg.strict, "strict", false, "fail on unknown or duplicate metadata blocks")
	fs.StringVar(&cfg.backup, "backup", "", "keep the original file with `SUFFIX` appended")
	fs.BoolVar(&cfg.preserveModTime, "preserve-modtime", false, "keep the original modification time")
	fs.BoolVar(&cfg.verbose, "verbose", false, "log every metadata block")
	fs.BoolVar(&cfg.version, "version", false, "print the version and exit")

	return fs
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var cfg config
	fs := newFlagSet(&cfg, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if cfg.version {
		fmt.Fprintln(stdout, metaflac.GetVersionInfo())
		return 0
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	files := fs.Args()
	if len(files) == 0 {
		logger.Error("you must specify at least one FLAC file")
		return 1
	}

	opts := []metaflac.Option{metaflac.WithLogger(logger)}
	if cfg.strict {
		opts = append(opts, metaflac.WithStrictParsing())
	}

	docs, err := metaflac.OpenMany(ctx, files, opts...)
	if err != nil {
		logger.Error("open failed", "err", err)
		return 1
	}

	code := 0
	for _, doc := range docs {
		prefix := ""
		if len(docs) > 1 {
			prefix = doc.Path + ":"
		}
		if err := process(doc, &cfg, prefix, stdout); err != nil {
			logger.Error("operation failed", "path", doc.Path, "err", err)
			code = 1
		}
	}
	return code
}

// process applies every requested operation to one document.
func process(doc *metaflac.Document, cfg *config, prefix string, stdout io.Writer) error {
	if err := show(doc, cfg, prefix, stdout); err != nil {
		return err
	}

	changed, err := edit(doc, cfg)
	if err != nil {
		return err
	}

	if cfg.exportTags != "" {
		if cfg.exportTags == "-" {
			if err := doc.ExportTags(stdout); err != nil {
				return err
			}
			fmt.Fprintln(stdout)
		} else if err := doc.ExportTagsTo(cfg.exportTags); err != nil {
			return err
		}
	}
	if cfg.exportPicture != "" {
		if err := doc.ExportPictureTo(cfg.exportPicture); err != nil {
			return err
		}
	}

	if !changed {
		return nil
	}

	var saveOpts []metaflac.SaveOption
	if cfg.backup != "" {
		saveOpts = append(saveOpts, metaflac.WithBackup(cfg.backup))
	}
	if cfg.preserveModTime {
		saveOpts = append(saveOpts, metaflac.WithPreserveModTime())
	}
	return doc.Save(saveOpts...)
}

func show(doc *metaflac.Document, cfg *config, prefix string, w io.Writer) error {
	streamInfoShown := cfg.showMD5 || cfg.showMinBlockSize || cfg.showMaxBlockSize ||
		cfg.showMinFrameSize || cfg.showMaxFrameSize || cfg.showSampleRate ||
		cfg.showChannels || cfg.showBPS || cfg.showTotalSamples

	if streamInfoShown {
		si, err := doc.StreamInfo()
		if err != nil {
			return err
		}
		fields := []struct {
			enabled bool
			value   any
		}{
			{cfg.showMD5, si.MD5Hex()},
			{cfg.showMinBlockSize, si.MinBlockSize},
			{cfg.showMaxBlockSize, si.MaxBlockSize},
			{cfg.showMinFrameSize, si.MinFrameSize},
			{cfg.showMaxFrameSize, si.MaxFrameSize},
			{cfg.showSampleRate, si.SampleRate},
			{cfg.showChannels, si.Channels},
			{cfg.showBPS, si.BitsPerSample},
			{cfg.showTotalSamples, si.TotalSamples},
		}
		for _, f := range fields {
			if f.enabled {
				fmt.Fprintf(w, "%s%v\n", prefix, f.value)
			}
		}
	}

	if cfg.showVendor {
		vendor, err := doc.Vendor()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s%s\n", prefix, vendor)
	}

	for _, name := range cfg.showTags {
		tags, err := doc.Tag(name)
		if err != nil {
			return err
		}
		for _, tag := range tags {
			fmt.Fprintf(w, "%s%s\n", prefix, tag)
		}
	}

	if cfg.showAllTags {
		tags, err := doc.Tags()
		if err != nil {
			return err
		}
		for _, tag := range tags {
			fmt.Fprintf(w, "%s%s\n", prefix, tag)
		}
	}

	if cfg.list {
		list(doc, prefix, w)
	}

	return nil
}

func list(doc *metaflac.Document, prefix string, w io.Writer) {
	pictures := doc.Pictures()
	picture := 0
	for i, b := range doc.Blocks() {
		fmt.Fprintf(w, "%sMETADATA block #%d\n", prefix, i)
		fmt.Fprintf(w, "%s  type: %d (%s)\n", prefix, uint8(b.Type), b.Type)
		fmt.Fprintf(w, "%s  length: %d\n", prefix, b.Length)
		if b.Type == metaflac.BlockTypePicture && picture < len(pictures) {
			fmt.Fprintf(w, "%s  picture: %s\n", prefix, pictures[picture])
			picture++
		}
	}
}

// edit applies removals, then sets and imports. It reports whether the
// document changed.
func edit(doc *metaflac.Document, cfg *config) (bool, error) {
	changed := false

	if cfg.removeAllTags {
		if err := doc.RemoveAllTags(); err != nil {
			return false, err
		}
		changed = true
	}
	for _, name := range cfg.removeTags {
		if err := doc.RemoveTag(name); err != nil {
			return false, err
		}
		changed = true
	}
	for _, name := range cfg.removeFirstTags {
		if err := doc.RemoveFirstTag(name); err != nil {
			return false, err
		}
		changed = true
	}
	if cfg.removePictures {
		doc.RemovePictures()
		changed = true
	}

	for _, field := range cfg.setTags {
		if err := doc.SetTag(field); err != nil {
			return false, err
		}
		changed = true
	}
	for _, field := range cfg.setTagsFromFile {
		if err := doc.SetTagFromFile(field); err != nil {
			return false, err
		}
		changed = true
	}
	if cfg.importTags != "" {
		if err := doc.ImportTagsFrom(cfg.importTags); err != nil {
			return false, err
		}
		changed = true
	}
	if cfg.importPicture != "" {
		if err := doc.ImportPictureFrom(cfg.importPicture); err != nil {
			return false, err
		}
		changed = true
	}

	return changed, nil
}
