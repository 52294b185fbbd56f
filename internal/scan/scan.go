// Package scan implements the forward line scans that locate a book, a
// chapter within it, and a verse within that chapter.
//
// The corpus carries no index. Each scan reads from wherever the cursor sits
// until it matches or reaches a structural boundary, so a miss on a chapter or
// verse never runs into a different book.
//
// Markers are compared token by token on the uppercased line rather than at
// fixed byte offsets, so multi-byte book names and doubled spaces behave.
package scan

import (
	"errors"
	"io"
	"slices"
	"strings"
	"unicode"
)

// Structural markers.
const (
	BookMarker    = "THE BOOK OF"
	ChapterMarker = "CHAPTER"
	PsalmMarker   = "PSALM"
)

var bookTokens = strings.Fields(BookMarker)

// Lines is the part of a cursor the scans need.
type Lines interface {
	Next() (string, error)
}

// FindBook advances past the header "THE BOOK OF <name>". It reports false
// at end of stream; the caller must rewind before searching again.
func FindBook(r Lines, name string) (bool, error) {
	want := strings.Fields(strings.ToUpper(name))
	if len(want) == 0 {
		return false, nil
	}
	for {
		line, err := r.Next()
		if err != nil {
			return false, eof(err)
		}
		f := strings.Fields(strings.ToUpper(line))
		if len(f) <= len(bookTokens) || !slices.Equal(f[:len(bookTokens)], bookTokens) {
			continue
		}
		if slices.Equal(f[len(bookTokens):], want) {
			return true, nil
		}
	}
}

// FindChapter advances past the "CHAPTER <token>" or "PSALM <token>" header of
// the current book. The token is compared as a raw string, so "1" and "01"
// differ. It reports false at end of stream or on reaching the next book.
//
// The book boundary is tested on the line as written: headers are upper case,
// while verse prose such as "the book of the law" is not.
func FindChapter(r Lines, token string) (bool, error) {
	for {
		line, err := r.Next()
		if err != nil {
			return false, eof(err)
		}
		if strings.Contains(line, BookMarker) {
			return false, nil
		}
		f := strings.Fields(strings.ToUpper(line))
		if len(f) < 2 {
			continue
		}
		if (f[0] == ChapterMarker || f[0] == PsalmMarker) && f[1] == token {
			return true, nil
		}
	}
}

// FindVerse returns the text of the verse numbered token in the current
// chapter, with its original casing. It returns "" at end of stream or at the
// next chapter, psalm or book header. Blank lines are skipped.
func FindVerse(r Lines, token string) (string, error) {
	if token == "" {
		return "", nil
	}
	for {
		line, err := r.Next()
		if err != nil {
			return "", eof(err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if IsMarker(line) {
			return "", nil
		}
		num, text := line, ""
		if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
			num, text = line[:i], line[i:]
		}
		if num == token {
			return strings.TrimSpace(text), nil
		}
	}
}

// IsMarker reports whether line starts a chapter, psalm or book.
func IsMarker(line string) bool {
	up := strings.ToUpper(strings.TrimSpace(line))
	return strings.HasPrefix(up, ChapterMarker) ||
		strings.HasPrefix(up, PsalmMarker) ||
		strings.HasPrefix(up, BookMarker)
}

// eof turns end of stream into a plain miss.
func eof(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
