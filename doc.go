// Package metaflac reads, inspects and rewrites the metadata of FLAC files
// without touching the audio.
//
// A FLAC stream starts with the "fLaC" marker and a chain of metadata blocks:
// STREAMINFO, VORBIS_COMMENT tags, PICTURE blocks for cover art, and others
// such as SEEKTABLE and CUESHEET. metaflac decodes the blocks it edits, keeps
// every other block as raw bytes, and rebuilds the prologue on save. Audio
// frames are copied byte-for-byte.
//
// # Quick Start
//
// Reading and editing tags:
//
//	doc, err := metaflac.Open("song.flac")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	rate, _ := doc.SampleRate()
//	titles, _ := doc.Tag("TITLE")
//	fmt.Println(rate, titles)
//
//	doc.RemoveTag("COMMENT")
//	doc.SetTag("ALBUM=Live")
//	if err := doc.Save(metaflac.WithBackup(".bak")); err != nil {
//		log.Fatal(err)
//	}
//
// # Tags
//
// Tags are NAME=VALUE strings kept in stream order. Names may repeat. Lookup
// and removal compare names case-sensitively, so "TITLE" and "title" are
// different fields.
//
// Chapter markers written as CHAPTER001=00:00:00.000 / CHAPTER001NAME=Intro
// tag pairs are available through Document.Chapters. Whole-disc rips with an
// embedded CUESHEET block expose it through Document.CueSheet.
//
// # Rebuild Order
//
// Saving always writes blocks in one canonical order, whatever order the
// source used:
//
//	STREAMINFO
//	APPLICATION, SEEKTABLE, CUESHEET, unknown  (original relative order)
//	VORBIS_COMMENT                             (re-encoded)
//	PICTURE...                                 (re-encoded)
//	PADDING                                    (last)
//
// # Error Handling
//
// metaflac distinguishes between fatal errors and warnings:
//
//   - Structural errors abort Parse and Open: *NotFLACError,
//     *OutOfBoundsError and *MalformedBlockError. No partial document is
//     returned.
//   - Queries and mutations that need an absent block fail with
//     *MissingBlockError.
//   - Warnings describe irregular but readable streams, such as a duplicate
//     VORBIS_COMMENT block. WithStrictParsing turns them into errors.
//
// Use errors.As to inspect a failure:
//
//	var tagErr *metaflac.MalformedTagError
//	if errors.As(err, &tagErr) {
//		log.Printf("line %d: %q", tagErr.Line, tagErr.Tag)
//	}
//
// # Logging
//
// The library logs through log/slog. Records are discarded unless a logger is
// supplied with WithLogger.
package metaflac
