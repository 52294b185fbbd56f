// wrap.go implements the verse block layout: reference prefix followed by
// the text, wrapped at a fixed column on word boundaries.

package format

import (
	"fmt"
	"strings"
)

// DefaultWidth is the column at which verse blocks wrap.
const DefaultWidth = 80

// Verse composes "{book} {chapter}:{verse} {text}" and wraps it at
// DefaultWidth.
func Verse(book, chapter, verse, text string) string {
	return VerseWidth(book, chapter, verse, text, DefaultWidth)
}

// VerseWidth is Verse with an explicit wrap width.
func VerseWidth(book, chapter, verse, text string, width int) string {
	return Wrap(fmt.Sprintf("%s %s:%s %s", book, chapter, verse, text), width)
}

// Wrap breaks s into lines of at most width characters by replacing spaces
// with newlines. While the unwrapped remainder is longer than width, the
// character at offset width is examined and the scan moves back to the
// nearest space. Words are never split: a word longer than width is left
// whole and the break goes at the first space after it. Widths are counted in
// runes.
//
// Only spaces are replaced, so joining the lines with " " yields s again.
func Wrap(s string, width int) string {
	if width <= 0 || !strings.Contains(s, " ") {
		return s
	}
	r := []rune(s)
	start := 0
	for len(r)-start > width {
		i := start + width
		for i >= start && r[i] != ' ' {
			i--
		}
		if i < start {
			i = start + width + 1
			for i < len(r) && r[i] != ' ' {
				i++
			}
			if i == len(r) {
				break
			}
		}
		r[i] = '\n'
		start = i + 1
	}
	return string(r)
}
