// Package ref parses one-line references such as "Gen 1:3", "1 John 3:16" or
// "Song of Solomon 2.1" for the non-interactive commands.
package ref

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/jpl-au/verse/internal/lookup"
)

// ErrEmpty is returned for blank input.
var ErrEmpty = errors.New("empty reference")

// refGrammar matches an optional numeric book prefix, one or more book words,
// a chapter, and a verse separated by ':' or '.' (or just whitespace).
//
//nolint:govet // participle grammar tags are not standard struct tags
type refGrammar struct {
	Prefix  string   `parser:"@Int?"`
	Words   []string `parser:"@Word+"`
	Chapter string   `parser:"@Int"`
	Verse   string   `parser:"( \":\" | \".\" )? @Int"`
}

var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Word", Pattern: `[A-Za-z][A-Za-z']*`},
	{Name: "Punct", Pattern: `[:.]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var refParser = participle.MustBuild[refGrammar](
	participle.Lexer(refLexer),
	participle.Elide("Whitespace"),
)

// Parse turns s into a normalised reference. Chapter and verse keep their
// digits as written, so "01" stays "01".
func Parse(s string) (lookup.Reference, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return lookup.Reference{}, ErrEmpty
	}

	g, err := refParser.ParseString("", s)
	if err != nil {
		return lookup.Reference{}, fmt.Errorf("invalid reference %q: %w", s, err)
	}

	book := strings.Join(g.Words, " ")
	if g.Prefix != "" {
		book = g.Prefix + " " + book
	}
	return lookup.NewReference(book, g.Chapter, g.Verse), nil
}
