// Package abbrev maps short book tokens (GEN, 1CO, PS) to the canonical book
// names used in the corpus headers. The table is read once at startup from a
// two-column CSV file and is immutable afterwards.
package abbrev

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMalformed is returned when a row has fewer than two columns.
var ErrMalformed = errors.New("malformed abbreviation row")

// Table is an immutable mapping from an uppercased short form to its
// uppercased expansion.
type Table struct {
	entries map[string]string
}

// Load reads the abbreviation table at path. The first row is data, not a
// header.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open abbreviations: %w", err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read abbreviations %s: %w", path, err)
	}
	return t, nil
}

// Parse reads a table from r. Keys and values are trimmed and uppercased.
// Later rows win when a short form repeats.
func Parse(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	t := &Table{entries: make(map[string]string)}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < 2 {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d column(s)", ErrMalformed, line, len(rec))
		}
		key := normalise(rec[0])
		if key == "" {
			continue
		}
		t.entries[key] = normalise(rec[1])
	}
}

// Resolve returns the expansion for token and true, or token unchanged and
// false when it is not an abbreviation. The lookup is case-insensitive.
func (t *Table) Resolve(token string) (string, bool) {
	if t == nil {
		return token, false
	}
	if v, ok := t.entries[normalise(token)]; ok {
		return v, true
	}
	return token, false
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

func normalise(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
