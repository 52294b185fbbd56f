// Package vacuum prunes old entries from the audit log. Entries are kept
// until vacuum removes them; there is no automatic retention.
package vacuum

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jpl-au/verse/internal/progress"
)

// Store is the audit storage being pruned.
type Store interface {
	CountBefore(ctx context.Context, cutoff time.Time) (int64, error)
	Prune(ctx context.Context, cutoff time.Time) (int64, error)
}

// Options configures vacuum scope.
type Options struct {
	OlderThan time.Duration // zero removes every entry up to now
	DryRun    bool          // report without deleting
}

// Result reports how many entries were (or would be) removed.
type Result struct {
	Deleted int64     `json:"deleted"`
	Cutoff  time.Time `json:"cutoff"`
	DryRun  bool      `json:"dry_run"`
}

// Run removes entries older than opts.OlderThan, measured from now.
func Run(ctx context.Context, w io.Writer, s Store, opts Options) (Result, error) {
	return run(ctx, w, s, opts, time.Now())
}

func run(ctx context.Context, w io.Writer, s Store, opts Options, now time.Time) (Result, error) {
	result := Result{Cutoff: now.Add(-opts.OlderThan), DryRun: opts.DryRun}
	if opts.OlderThan == 0 {
		// Entries are stored with second precision; include the current second.
		result.Cutoff = now.Truncate(time.Second).Add(time.Second)
	}

	if opts.DryRun {
		n, err := s.CountBefore(ctx, result.Cutoff)
		if err != nil {
			return result, err
		}
		result.Deleted = n
		if w != nil {
			fmt.Fprintf(w, "Would delete %d log entr%s before %s\n",
				n, plural(n), result.Cutoff.Format("2006-01-02 15:04"))
		}
		return result, nil
	}

	spin := progress.NewSpinner("Vacuuming")
	spin.Start()
	n, err := s.Prune(ctx, result.Cutoff)
	spin.Stop()
	if err != nil {
		return result, err
	}

	result.Deleted = n
	if w != nil {
		if n == 0 {
			fmt.Fprintln(w, "No log entries to vacuum")
		} else {
			fmt.Fprintf(w, "Vacuumed %d log entr%s\n", n, plural(n))
		}
	}
	return result, nil
}

func plural(n int64) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
