package main

import (
	"fmt"
	"io"
	"os"

	"github.com/simonhull/metaflac/internal/flac"
	"github.com/simonhull/metaflac/internal/types"
	"github.com/simonhull/metaflac/internal/vorbis"
)

// Debugging aid: prints every metadata block in stream order, as stored,
// before any canonical reordering.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: block-dump <file.flac>")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := dumpBlocks(os.Stdout, data, os.Args[1]); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func dumpBlocks(w io.Writer, data []byte, path string) error {
	chain, err := flac.ParseChain(data, path)
	if err != nil {
		return err
	}

	for i, b := range chain.Blocks {
		last := ""
		if i == len(chain.Blocks)-1 {
			last = ", last"
		}
		fmt.Fprintf(w, "#%d %s (type: %d, size: %d, offset: %d%s)\n", i, b.Type, uint8(b.Type), len(b.Body), b.Offset, last)
		describe(w, b)
	}

	fmt.Fprintf(w, "audio frames (size: %d, offset: %d)\n", int64(len(data))-chain.FrameOffset, chain.FrameOffset)
	return nil
}

func describe(w io.Writer, b flac.Block) {
	const indent = "  "

	switch b.Type {
	case types.BlockTypeStreamInfo:
		si, err := flac.DecodeStreamInfo(b.Body)
		if err != nil {
			fmt.Fprintf(w, "%sinvalid: %v\n", indent, err)
			return
		}
		fmt.Fprintf(w, "%s%s, md5 %s\n", indent, si, si.MD5Hex())

	case types.BlockTypeVorbisComment:
		c, err := vorbis.Decode(b.Body)
		if err != nil {
			fmt.Fprintf(w, "%sinvalid: %v\n", indent, err)
			return
		}
		fmt.Fprintf(w, "%svendor: %q\n", indent, c.Vendor)
		for _, tag := range c.Tags {
			fmt.Fprintf(w, "%s%s\n", indent, tag)
		}

	case types.BlockTypePicture:
		p, err := flac.DecodePicture(b.Body)
		if err != nil {
			fmt.Fprintf(w, "%sinvalid: %v\n", indent, err)
			return
		}
		fmt.Fprintf(w, "%s%s\n", indent, p)

	case types.BlockTypeCueSheet:
		cs, err := flac.DecodeCueSheet(b.Body)
		if err != nil {
			fmt.Fprintf(w, "%sinvalid: %v\n", indent, err)
			return
		}
		fmt.Fprintf(w, "%scatalog %q, lead-in %d, %d tracks\n", indent, cs.MediaCatalogNumber, cs.LeadIn, len(cs.Tracks))

	case types.BlockTypeApplication:
		if len(b.Body) >= 4 {
			fmt.Fprintf(w, "%sapplication id: %q\n", indent, b.Body[:4])
		}
	}
}
