package lookup

import (
	"context"
	"strings"
	"testing"

	"github.com/jpl-au/verse/internal/abbrev"
	"github.com/jpl-au/verse/internal/cursor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corpus = `THE BOOK OF GENESIS

CHAPTER 1
1 In the beginning God created the heaven and the earth.
2 And the earth was without form, and void; and darkness was upon the face of the deep.
3 And God said, Let there be light: and there was light.

CHAPTER 2
1 Thus the heavens and the earth were finished, and all the host of them.

THE BOOK OF EXODUS

CHAPTER 1
1 Now these are the names of the children of Israel, which came into Egypt.

CHAPTER 3
1 Now Moses kept the flock of Jethro his father in law.

THE BOOK OF JOHN

CHAPTER 11
35 Jesus wept.
`

func newResolver(t *testing.T, opts ...Option) *Resolver {
	t.Helper()
	tbl, err := abbrev.Parse(strings.NewReader("GEN,GENESIS\nEX,EXODUS\nJN,JOHN\n"))
	require.NoError(t, err)
	return NewResolver(cursor.New(strings.NewReader(corpus)), tbl, opts...)
}

func TestResolve(t *testing.T) {
	r := newResolver(t)

	res, err := r.Resolve(context.Background(), NewReference("gen", "1", "3"))
	require.NoError(t, err)
	assert.Equal(t, "GENESIS", res.Reference.Book)
	assert.Equal(t, "And God said, Let there be light: and there was light.", res.Text)
	assert.Equal(t, "GENESIS 1:3 And God said, Let there be light: and there was light.", res.Formatted)
}

func TestResolve_Misses(t *testing.T) {
	tests := []struct {
		name string
		ref  Reference
		want error
	}{
		{"book", NewReference("REVELATION", "1", "1"), ErrBookNotFound},
		{"chapter in next book", NewReference("GENESIS", "3", "1"), ErrChapterNotFound},
		{"padded chapter", NewReference("GENESIS", "01", "1"), ErrChapterNotFound},
		{"verse", NewReference("GENESIS", "2", "2"), ErrVerseNotFound},
		{"verse at end of stream", NewReference("JOHN", "11", "36"), ErrVerseNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newResolver(t).Resolve(context.Background(), tc.ref)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestResolve_Repeated(t *testing.T) {
	r := newResolver(t)
	ctx := context.Background()

	_, err := r.Resolve(ctx, NewReference("JN", "11", "35"))
	require.NoError(t, err)

	// The second lookup must rewind to the document start.
	res, err := r.Resolve(ctx, NewReference("GEN", "1", "1"))
	require.NoError(t, err)
	assert.Equal(t, "In the beginning God created the heaven and the earth.", res.Text)
}

func TestResolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newResolver(t).Resolve(ctx, NewReference("GEN", "1", "1"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStages_Checkpoints(t *testing.T) {
	r := newResolver(t)

	cp, ok, err := r.Book("GENESIS")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, StageBook, cp.Stage())
	_, ok = cp.Chapter()
	assert.False(t, ok)

	// A chapter miss leaves the book checkpoint usable.
	missed, ok, err := r.Chapter(cp, "9")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, cp, missed)

	cp, ok, err = r.Chapter(cp, "1")
	require.NoError(t, err)
	require.True(t, ok)

	// A verse miss does not disturb later verse scans from the same chapter.
	text, err := r.Verse(cp, "7")
	require.NoError(t, err)
	assert.Empty(t, text)

	text, err = r.Verse(cp, "2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "And the earth was without form"))
}

func TestStages_OutOfOrder(t *testing.T) {
	r := newResolver(t)
	cp := NewCheckpoints(cursor.Position{})

	_, _, err := r.Chapter(cp, "1")
	assert.ErrorIs(t, err, ErrStage)

	_, err = r.Verse(cp, "1")
	assert.ErrorIs(t, err, ErrStage)
}

func TestCheckpoints_BookClearsChapter(t *testing.T) {
	r := newResolver(t)
	cp, _, err := r.Book("EXODUS")
	require.NoError(t, err)
	cp, ok, err := r.Chapter(cp, "3")
	require.NoError(t, err)
	require.True(t, ok)

	again := cp.withBook(cursor.Position{})
	assert.Equal(t, StageBook, again.Stage())
	_, ok = again.Chapter()
	assert.False(t, ok)
}

func TestWithWidth(t *testing.T) {
	r := newResolver(t, WithWidth(20))
	res, err := r.Resolve(context.Background(), NewReference("GEN", "1", "1"))
	require.NoError(t, err)
	for _, l := range strings.Split(res.Formatted, "\n") {
		assert.LessOrEqual(t, len(l), 20)
	}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, IsQuit("please exit now"))
	assert.True(t, IsQuit("QUIT"))
	assert.True(t, IsQuit("Quitting"))
	assert.False(t, IsQuit("EXODUS"))
	assert.False(t, IsQuit(""))
}
