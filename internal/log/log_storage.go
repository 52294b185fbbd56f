// log_storage.go persists entries to SQLite and reads them back for the
// history command. The corpus column holds a short hash of the corpus path so
// entries can be grouped per document without storing the path itself.

package log

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/jpl-au/verse/internal/config"
)

// ErrNotOpen is returned by queries when the logger has not been opened.
var ErrNotOpen = errors.New("audit log not open")

// Logger writes audit entries to a SQLite database.
type Logger struct {
	db     *sql.DB
	corpus string
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO log (start, end, corpus, source, action, session,
		                 book, chapter, verse, success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, l.corpus, e.Source, e.Action, nilIfEmpty(e.Session),
		nilIfEmpty(e.Book), nilIfEmpty(e.Chapter), nilIfEmpty(e.Verse),
		success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "verse: audit log write failed: %v\n", err)
	}
}

// Record is an entry read back from the database.
type Record struct {
	ID      int64
	Start   int64
	Source  string
	Action  string
	Session string
	Book    string
	Chapter string
	Verse   string
	Success bool
	Error   string
}

// Recent returns up to n entries, newest first.
func Recent(ctx context.Context, n int) ([]Record, error) {
	l, err := opened()
	if err != nil {
		return nil, err
	}

	rows, err := l.db.QueryContext(ctx, `
		SELECT id, start, source, action,
		       COALESCE(session, ''), COALESCE(book, ''), COALESCE(chapter, ''),
		       COALESCE(verse, ''), success, COALESCE(error, '')
		FROM log ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var success int
		if err := rows.Scan(&r.ID, &r.Start, &r.Source, &r.Action, &r.Session,
			&r.Book, &r.Chapter, &r.Verse, &success, &r.Error); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		r.Success = success == 1
		out = append(out, r)
	}
	return out, rows.Err()
}

// dbPathFunc returns the database path. Tests override it.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	return filepath.Join(config.Home(), "log", "verse-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

// hash returns a 16 hex character identifier for s.
func hash(s string) string {
	h, err := blake2b.New(8, nil)
	if err != nil {
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			start    INTEGER NOT NULL,
			end      INTEGER NOT NULL,
			corpus   TEXT NOT NULL,
			source   TEXT NOT NULL,
			action   TEXT NOT NULL,
			session  TEXT,
			book     TEXT,
			chapter  TEXT,
			verse    TEXT,
			success  INTEGER NOT NULL,
			error    TEXT,
			detail   TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_session ON log(session);
	`)
	return err
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// CountBefore returns the number of entries that started before cutoff.
func CountBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	l, err := opened()
	if err != nil {
		return 0, err
	}
	var n int64
	err = l.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM log WHERE start < ?`, cutoff.Unix()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count audit log: %w", err)
	}
	return n, nil
}

// Prune deletes entries that started before cutoff and returns how many were
// removed.
func Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	l, err := opened()
	if err != nil {
		return 0, err
	}
	res, err := l.db.ExecContext(ctx, `DELETE FROM log WHERE start < ?`, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("prune audit log: %w", err)
	}
	return res.RowsAffected()
}

func opened() (*Logger, error) {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		return nil, ErrNotOpen
	}
	return global, nil
}
