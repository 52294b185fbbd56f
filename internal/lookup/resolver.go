// resolver.go runs the three scan stages against a cursor.
//
// Both the interactive Session and one-shot lookups (find, MCP) go through
// the same stage methods so the rewind rules live in one place: the book scan
// always starts at the document start, the chapter scan at the book
// checkpoint, the verse scan at the chapter checkpoint.

package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jpl-au/verse/internal/abbrev"
	"github.com/jpl-au/verse/internal/cursor"
	"github.com/jpl-au/verse/internal/format"
	"github.com/jpl-au/verse/internal/scan"
)

var (
	// ErrBookNotFound is returned when no book header matches.
	ErrBookNotFound = errors.New("book not found")
	// ErrChapterNotFound is returned when the book has no such chapter.
	ErrChapterNotFound = errors.New("chapter not found")
	// ErrVerseNotFound is returned when the chapter has no such verse.
	ErrVerseNotFound = errors.New("verse not found")
	// ErrStage is returned when a stage runs before its predecessor matched.
	ErrStage = errors.New("previous stage has not matched")
)

// Reference is a book/chapter/verse triple as typed by the user, uppercased
// and trimmed. Chapter and verse are compared as strings.
type Reference struct {
	Book    string `json:"book"`
	Chapter string `json:"chapter"`
	Verse   string `json:"verse"`
}

// NewReference normalises the three parts.
func NewReference(book, chapter, verse string) Reference {
	return Reference{Book: Normalise(book), Chapter: Normalise(chapter), Verse: Normalise(verse)}
}

// String renders "BOOK C:V".
func (r Reference) String() string {
	return fmt.Sprintf("%s %s:%s", r.Book, r.Chapter, r.Verse)
}

// Result is a successful lookup.
type Result struct {
	Reference Reference `json:"reference"`
	Text      string    `json:"text"`
	Formatted string    `json:"formatted"`
}

// Source is the cursor surface the resolver drives.
type Source interface {
	scan.Lines
	Start() cursor.Position
	Save() cursor.Position
	Restore(cursor.Position) error
}

// Resolver resolves references against one document. Not safe for
// concurrent use.
type Resolver struct {
	src    Source
	abbrev *abbrev.Table
	width  int
	logger *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithWidth sets the wrap width for formatted results.
func WithWidth(w int) Option {
	return func(r *Resolver) {
		if w > 0 {
			r.width = w
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver returns a resolver over src using table for abbreviations.
// A nil table disables expansion.
func NewResolver(src Source, table *abbrev.Table, opts ...Option) *Resolver {
	r := &Resolver{
		src:    src,
		abbrev: table,
		width:  format.DefaultWidth,
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Expand replaces an abbreviated book name with its canonical name.
func (r *Resolver) Expand(book string) (string, bool) {
	return r.abbrev.Resolve(Normalise(book))
}

// Book rewinds to the document start and scans for the book. On a match the
// returned checkpoints hold the book position.
func (r *Resolver) Book(name string) (Checkpoints, bool, error) {
	cp := NewCheckpoints(r.src.Start())
	if err := r.src.Restore(cp.Start()); err != nil {
		return cp, false, err
	}
	ok, err := scan.FindBook(r.src, name)
	if err != nil || !ok {
		return cp, false, err
	}
	cp = cp.withBook(r.src.Save())
	r.logger.Debug("book matched", "book", name, "offset", cp.book.Offset())
	return cp, true, nil
}

// Chapter rewinds to the book checkpoint and scans for the chapter. On a
// miss the input checkpoints are returned unchanged.
func (r *Resolver) Chapter(cp Checkpoints, token string) (Checkpoints, bool, error) {
	pos, ok := cp.Book()
	if !ok {
		return cp, false, ErrStage
	}
	if err := r.src.Restore(pos); err != nil {
		return cp, false, err
	}
	found, err := scan.FindChapter(r.src, token)
	if err != nil || !found {
		return cp, false, err
	}
	next := cp.withChapter(r.src.Save())
	r.logger.Debug("chapter matched", "chapter", token, "offset", next.chapter.Offset())
	return next, true, nil
}

// Verse rewinds to the chapter checkpoint and scans for the verse. An empty
// result means not found.
func (r *Resolver) Verse(cp Checkpoints, token string) (string, error) {
	pos, ok := cp.Chapter()
	if !ok {
		return "", ErrStage
	}
	if err := r.src.Restore(pos); err != nil {
		return "", err
	}
	return scan.FindVerse(r.src, token)
}

// Format renders a found verse as a wrapped block.
func (r *Resolver) Format(ref Reference, text string) Result {
	return Result{
		Reference: ref,
		Text:      text,
		Formatted: format.VerseWidth(ref.Book, ref.Chapter, ref.Verse, text, r.width),
	}
}

// Resolve runs all three stages for ref, expanding an abbreviated book first.
// Misses are reported with ErrBookNotFound, ErrChapterNotFound or
// ErrVerseNotFound.
func (r *Resolver) Resolve(ctx context.Context, ref Reference) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	ref = NewReference(ref.Book, ref.Chapter, ref.Verse)
	ref.Book, _ = r.Expand(ref.Book)

	cp, ok, err := r.Book(ref.Book)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrBookNotFound, ref.Book)
	}

	cp, ok, err = r.Chapter(cp, ref.Chapter)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{}, fmt.Errorf("%w: %s %s", ErrChapterNotFound, ref.Book, ref.Chapter)
	}

	text, err := r.Verse(cp, ref.Verse)
	if err != nil {
		return Result{}, err
	}
	if text == "" {
		return Result{}, fmt.Errorf("%w: %s", ErrVerseNotFound, ref)
	}
	return r.Format(ref, text), nil
}

// Normalise uppercases and trims user input.
func Normalise(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
