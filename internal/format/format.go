// Package format provides output formatting for CLI display: the wrapped
// verse block shown after a lookup and the audit history listing.
package format

import (
	"fmt"
	"io"
	"time"

	"github.com/jpl-au/verse/internal/log"
)

// History prints audit records, one per line, newest first as given.
func History(w io.Writer, recs []log.Record) error {
	if len(recs) == 0 {
		return nil
	}

	fmt.Fprintf(w, "%-16s  %-12s  %-7s  %-28s  %s\n", "TIME", "SOURCE", "RESULT", "REFERENCE", "ERROR")
	for _, r := range recs {
		when := time.Unix(r.Start, 0).Format("2006-01-02 15:04")
		result := "ok"
		if !r.Success {
			result = r.Action
		}
		errText := r.Error
		if errText == "" {
			errText = "-"
		}
		if _, err := fmt.Fprintf(w, "%-16s  %-12s  %-7s  %-28s  %s\n",
			when, r.Source, result, reference(r), errText); err != nil {
			return err
		}
	}
	return nil
}

// reference renders as much of the reference as was entered.
func reference(r log.Record) string {
	switch {
	case r.Verse != "":
		return fmt.Sprintf("%s %s:%s", r.Book, r.Chapter, r.Verse)
	case r.Chapter != "":
		return fmt.Sprintf("%s %s", r.Book, r.Chapter)
	case r.Book != "":
		return r.Book
	default:
		return "-"
	}
}
