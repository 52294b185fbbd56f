// session.go drives the interactive prompt loop.
//
// The loop is a small state machine: book, chapter, verse, found. A miss
// repeats the current prompt; RESET at the chapter or verse prompt starts
// over from the book prompt. Typing anything containing EXIT or QUIT ends the
// session from any prompt. That is signalled with errTerminate and unwound
// through Run, so deferred closes in the caller still run.

package lookup

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ResetToken restarts the current reference from the book prompt.
const ResetToken = "RESET"

// Prompts.
const (
	PromptBook    = "Enter Book: "
	PromptChapter = "Enter Chapter: "
	PromptVerse   = "Enter Verse: "
	PromptAgain   = "Do you want to look up another verse? (y/n): "
)

var quitWords = []string{"EXIT", "QUIT"}

// errTerminate unwinds the session after a quit sentinel or end of input.
var errTerminate = errors.New("session terminated")

type state int

const (
	awaitBook state = iota
	awaitChapter
	awaitVerse
	found
	quit
)

// Hooks receive session outcomes. Both are optional.
type Hooks struct {
	// Found is called once per successful lookup, after the result is shown.
	// An error ends the session.
	Found func(Result) error
	// Miss is called when a stage fails to match.
	Miss func(stage string, ref Reference)
}

// Session is one interactive lookup session.
type Session struct {
	res   *Resolver
	in    *bufio.Reader
	out   io.Writer
	hooks Hooks

	ref    Reference
	cp     Checkpoints
	result Result
}

// NewSession reads answers from in and writes prompts and results to out.
func NewSession(res *Resolver, in io.Reader, out io.Writer, hooks Hooks) *Session {
	return &Session{
		res:   res,
		in:    bufio.NewReader(in),
		out:   out,
		hooks: hooks,
	}
}

// Run prompts until the user quits, declines another lookup, or input ends.
// It returns nil in all those cases; errors are I/O failures.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Welcome to the Bible lookup tool!")
	fmt.Fprintf(s.out, "Type %q at any time to quit.\n\n", "EXIT")

	st := awaitBook
	for st != quit {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		switch st {
		case awaitBook:
			st, err = s.book()
		case awaitChapter:
			st, err = s.chapter()
		case awaitVerse:
			st, err = s.verse()
		case found:
			st, err = s.found()
		}
		if errors.Is(err, errTerminate) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) book() (state, error) {
	name, err := s.prompt(PromptBook)
	if err != nil {
		return quit, err
	}
	if full, ok := s.res.Expand(name); ok {
		name = full
		fmt.Fprintf(s.out, "Replaced with %q\n", name)
	}

	s.ref = Reference{Book: name}
	cp, ok, err := s.res.Book(name)
	if err != nil {
		return quit, err
	}
	if !ok {
		fmt.Fprintf(s.out, "Could not find book %q\n", name)
		s.miss("book")
		return awaitBook, nil
	}
	s.cp = cp
	return awaitChapter, nil
}

func (s *Session) chapter() (state, error) {
	token, err := s.prompt(PromptChapter)
	if err != nil {
		return quit, err
	}
	if token == ResetToken {
		return awaitBook, nil
	}

	s.ref.Chapter = token
	cp, ok, err := s.res.Chapter(s.cp, token)
	if err != nil {
		return quit, err
	}
	if !ok {
		fmt.Fprintf(s.out, "Could not find chapter %s in %s.\n", token, s.ref.Book)
		s.resetHint()
		s.miss("chapter")
		return awaitChapter, nil
	}
	s.cp = cp
	return awaitVerse, nil
}

func (s *Session) verse() (state, error) {
	if s.cp.Stage() < StageChapter {
		return awaitBook, nil
	}
	token, err := s.prompt(PromptVerse)
	if err != nil {
		return quit, err
	}
	if token == ResetToken {
		return awaitBook, nil
	}

	s.ref.Verse = token
	text, err := s.res.Verse(s.cp, token)
	if err != nil {
		return quit, err
	}
	if text == "" {
		fmt.Fprintf(s.out, "Could not find verse %s in %s %s.\n", token, s.ref.Book, s.ref.Chapter)
		s.resetHint()
		s.miss("verse")
		return awaitVerse, nil
	}
	s.result = s.res.Format(s.ref, text)
	return found, nil
}

func (s *Session) found() (state, error) {
	fmt.Fprintln(s.out, "The verse you requested is:")
	fmt.Fprintln(s.out, s.result.Formatted)
	if s.hooks.Found != nil {
		if err := s.hooks.Found(s.result); err != nil {
			return quit, err
		}
	}

	answer, err := s.prompt(PromptAgain)
	if err != nil {
		return quit, err
	}
	if strings.HasPrefix(answer, "Y") {
		return awaitBook, nil
	}
	return quit, nil
}

// prompt writes label and returns the next input line uppercased and
// trimmed. It returns errTerminate on a quit word or end of input.
func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(s.out)
		return "", errTerminate
	}
	line = Normalise(line)
	if IsQuit(line) {
		return "", errTerminate
	}
	return line, nil
}

func (s *Session) resetHint() {
	fmt.Fprintf(s.out, "Try again or enter %q to restart query.\n", ResetToken)
}

func (s *Session) miss(stage string) {
	if s.hooks.Miss != nil {
		s.hooks.Miss(stage, s.ref)
	}
}

// IsQuit reports whether input contains a quit word, ignoring case.
func IsQuit(input string) bool {
	up := strings.ToUpper(input)
	for _, w := range quitWords {
		if strings.Contains(up, w) {
			return true
		}
	}
	return false
}
