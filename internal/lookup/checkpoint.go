// checkpoint.go models the saved cursor positions a lookup rescans from.
//
// A Checkpoints value only exposes the book position after a book match and
// the chapter position after a chapter match. Stages return a new value, so a
// caller holding an older one cannot read a checkpoint it never earned.

package lookup

import "github.com/jpl-au/verse/internal/cursor"

// Stage is how far a lookup has progressed.
type Stage int

const (
	StageNone Stage = iota
	StageBook
	StageChapter
)

// Checkpoints holds the document start and, once earned, the start of the
// matched book and chapter.
type Checkpoints struct {
	start   cursor.Position
	book    cursor.Position
	chapter cursor.Position
	stage   Stage
}

// NewCheckpoints returns checkpoints holding only the document start.
func NewCheckpoints(start cursor.Position) Checkpoints {
	return Checkpoints{start: start}
}

// Stage reports the deepest checkpoint held.
func (c Checkpoints) Stage() Stage { return c.stage }

// Start is the document start.
func (c Checkpoints) Start() cursor.Position { return c.start }

// Book returns the position just after the matched book header.
func (c Checkpoints) Book() (cursor.Position, bool) {
	return c.book, c.stage >= StageBook
}

// Chapter returns the position just after the matched chapter header.
func (c Checkpoints) Chapter() (cursor.Position, bool) {
	return c.chapter, c.stage >= StageChapter
}

// withBook records a book match and drops any chapter checkpoint.
func (c Checkpoints) withBook(pos cursor.Position) Checkpoints {
	return Checkpoints{start: c.start, book: pos, stage: StageBook}
}

// withChapter records a chapter match within the current book.
func (c Checkpoints) withChapter(pos cursor.Position) Checkpoints {
	c.chapter = pos
	c.stage = StageChapter
	return c
}
