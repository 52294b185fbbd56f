// Package log records lookups in a SQLite audit database so past sessions can
// be reviewed with "verse history". Both hits and misses are recorded.
//
// # Fluent API
//
//	log.Event("cli:find", "lookup").
//		Session(id).
//		Ref(ref.Book, ref.Chapter, ref.Verse).
//		Detail("width", 80).
//		Write(err)
//
// Source is "{surface}:{command}": "cli:session", "cli:find", "mcp:lookup".
// Logging is best-effort and never fails the lookup it describes.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry is a single audit record.
type Entry struct {
	Source  string // e.g. "cli:session", "mcp:lookup"
	Action  string // lookup, miss, config
	Session string // groups the entries of one interactive session

	Book    string
	Chapter string
	Verse   string

	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool
	Error   string
	Detail  map[string]any
}

// Builder constructs an entry. Create with [Event], finish with [Builder.Write].
type Builder struct {
	entry Entry
}

// Event starts an entry for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Session tags the entry with a session ID.
func (b *Builder) Session(id string) *Builder {
	b.entry.Session = id
	return b
}

// Ref sets the reference that was looked up.
func (b *Builder) Ref(book, chapter, verse string) *Builder {
	b.entry.Book = book
	b.entry.Chapter = chapter
	b.entry.Verse = verse
	return b
}

// Detail adds a key-value pair to the entry's detail map.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write records the entry, deriving success from err.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetCorpus tags subsequent entries with the document being searched.
func SetCorpus(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.corpus = hash(path)
	}
}

// Log writes an entry. A no-op when the logger is not open.
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
