package vorbis

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Chapter is a chapter marker read from CHAPTER comments.
type Chapter struct {
	Index int // 1-based position after sorting
	Title string
	Start time.Duration
	End   time.Duration // 0 when unknown
}

// Chapters reads chapter markers from the CHAPTERxxx comment convention:
//
//	CHAPTER001=00:00:00.000
//	CHAPTER001NAME=Introduction
//	CHAPTER002=00:05:23.500
//	CHAPTER002NAME=The Beginning
//
// Field names are matched case-sensitively, like every other tag lookup.
// Chapters are ordered by number; each ends where the next begins and the
// last ends at total, which may be 0 when the stream length is unknown.
// Entries without a parsable timestamp are skipped. A chapter without a NAME
// is titled "Chapter N".
func Chapters(tags []string, total time.Duration) []Chapter {
	type entry struct {
		number int
		start  time.Duration
		hasTS  bool
		title  string
	}
	byNumber := make(map[int]*entry)

	for _, tag := range tags {
		name, value, ok := Split(tag)
		if !ok {
			continue
		}
		rest, ok := strings.CutPrefix(name, "CHAPTER")
		if !ok {
			continue
		}
		digits, isName := strings.CutSuffix(rest, "NAME")
		num, err := strconv.Atoi(digits)
		if err != nil || num < 0 {
			continue
		}

		e := byNumber[num]
		if e == nil {
			e = &entry{number: num}
			byNumber[num] = e
		}
		if isName {
			e.title = strings.TrimSpace(value)
			continue
		}
		if start, err := ParseChapterTimestamp(strings.TrimSpace(value)); err == nil {
			e.start = start
			e.hasTS = true
		}
	}

	entries := make([]*entry, 0, len(byNumber))
	for _, e := range byNumber {
		if e.hasTS {
			entries = append(entries, e)
		}
	}
	if len(entries) == 0 {
		return nil
	}
	slices.SortFunc(entries, func(a, b *entry) int {
		return cmp.Compare(a.number, b.number)
	})

	chapters := make([]Chapter, len(entries))
	for i, e := range entries {
		end := total
		if i < len(entries)-1 {
			end = entries[i+1].start
		}
		title := e.title
		if title == "" {
			title = fmt.Sprintf("Chapter %d", e.number)
		}
		chapters[i] = Chapter{Index: i + 1, Title: title, Start: e.start, End: end}
	}
	return chapters
}

// ParseChapterTimestamp parses HH:MM:SS.mmm, MM:SS.mmm or SS.mmm.
func ParseChapterTimestamp(ts string) (time.Duration, error) {
	parts := strings.Split(ts, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid timestamp format: %s", ts)
	}

	seconds, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil || seconds < 0 || seconds >= 60 {
		return 0, fmt.Errorf("invalid seconds in timestamp: %s", ts)
	}

	var hours, minutes int
	if len(parts) >= 2 {
		minutes, err = strconv.Atoi(parts[len(parts)-2])
		if err != nil || minutes < 0 || minutes >= 60 {
			return 0, fmt.Errorf("invalid minutes in timestamp: %s", ts)
		}
	}
	if len(parts) == 3 {
		hours, err = strconv.Atoi(parts[0])
		if err != nil || hours < 0 {
			return 0, fmt.Errorf("invalid hours in timestamp: %s", ts)
		}
	}

	total := float64(hours*3600+minutes*60) + seconds
	return time.Duration(total * float64(time.Second)), nil
}
