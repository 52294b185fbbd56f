// Package cursor provides a line-oriented reader over a seekable text stream
// that tracks its byte offset, so callers can save a position and later
// re-read from it.
//
// The reader is buffered. Offsets are counted from the bytes handed out, not
// from the underlying file position, which runs ahead of the buffer.
package cursor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrSeek wraps failures of the underlying stream to reposition. Callers treat
// it as unrecoverable.
var ErrSeek = errors.New("seek failed")

// Position is an opaque byte offset into the document. It is only meaningful
// for the cursor that produced it.
type Position struct {
	off int64
}

// Offset returns the byte offset for diagnostics.
func (p Position) Offset() int64 { return p.off }

// Cursor reads lines from an io.ReadSeeker. Not safe for concurrent use.
type Cursor struct {
	rs  io.ReadSeeker
	br  *bufio.Reader
	off int64
	c   io.Closer
}

// New wraps rs, which must be positioned at its start.
func New(rs io.ReadSeeker) *Cursor {
	return &Cursor{rs: rs, br: bufio.NewReader(rs)}
}

// Open opens the file at path for reading.
func Open(path string) (*Cursor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	c := New(f)
	c.c = f
	return c, nil
}

// Start returns the position of the first byte of the document.
func (c *Cursor) Start() Position { return Position{} }

// Save returns the position just past the last line returned by Next.
func (c *Cursor) Save() Position { return Position{off: c.off} }

// Restore repositions the cursor so the next call to Next reads from pos.
func (c *Cursor) Restore(pos Position) error {
	if _, err := c.rs.Seek(pos.off, io.SeekStart); err != nil {
		return fmt.Errorf("%w: offset %d: %w", ErrSeek, pos.off, err)
	}
	c.br.Reset(c.rs)
	c.off = pos.off
	return nil
}

// Next returns the next line without its line terminator. It returns io.EOF
// once the stream is exhausted. A final line with no trailing newline is
// still returned.
func (c *Cursor) Next() (string, error) {
	line, err := c.br.ReadString('\n')
	c.off += int64(len(line))
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

// Close releases the underlying file when the cursor was created by Open.
func (c *Cursor) Close() error {
	if c.c == nil {
		return nil
	}
	return c.c.Close()
}

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
