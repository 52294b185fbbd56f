// vacuum.go implements "verse vacuum", which prunes the audit log.
//
// Without --force the user is asked to confirm, since removed entries cannot
// be recovered. --dry-run only counts.

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jpl-au/verse/internal/duration"
	"github.com/jpl-au/verse/internal/log"
	"github.com/jpl-au/verse/internal/vacuum"
	"github.com/spf13/cobra"
)

var (
	vacuumOlderThan string
	vacuumDryRun    bool
	vacuumForce     bool
)

var vacuumCmd = &cobra.Command{
	Use:   "vacuum",
	Short: "Prune old entries from the audit log",
	Long: `Permanently delete audit log entries.

This is irreversible. Use --force to skip confirmation.

Duration formats: 7d (days), 4w (weeks), 3m (months), or Go durations like 12h`,
	Args: cobra.NoArgs,
	RunE: runVacuum,
}

// auditStore adapts the package-level log functions to vacuum.Store.
type auditStore struct{}

func (auditStore) CountBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return log.CountBefore(ctx, cutoff)
}

func (auditStore) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	return log.Prune(ctx, cutoff)
}

func runVacuum(c *cobra.Command, _ []string) error {
	var opts vacuum.Options
	opts.DryRun = vacuumDryRun
	if vacuumOlderThan != "" {
		d, err := duration.Parse(vacuumOlderThan)
		if err != nil {
			return PrintJSONError(fmt.Errorf("parse duration %q: %w", vacuumOlderThan, err))
		}
		opts.OlderThan = d
	}

	if !opts.DryRun && !vacuumForce {
		fmt.Fprint(out, "Permanently delete audit log entries? This cannot be undone. [y/N] ")
		response, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && response == "" {
			return PrintJSONError(fmt.Errorf("reading confirmation: %w", err))
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(out, "Cancelled")
			return nil
		}
	}

	w := out
	if JSON() {
		w = nil
	}
	result, err := vacuum.Run(c.Context(), w, auditStore{}, opts)
	if err != nil {
		return PrintJSONError(fmt.Errorf("vacuum: %w", err))
	}

	log.Event("cli:vacuum", "vacuum").
		Detail("dry_run", opts.DryRun).
		Detail("count", result.Deleted).
		Write(nil)

	if JSON() {
		return PrintJSON(result)
	}
	return nil
}

func init() {
	vacuumCmd.Flags().StringVar(&vacuumOlderThan, "older-than", "", "Only remove entries older than duration (e.g., 7d, 4w, 3m)")
	vacuumCmd.Flags().BoolVarP(&vacuumDryRun, "dry-run", "n", false, "Show how many entries would be removed")
	vacuumCmd.Flags().BoolVarP(&vacuumForce, "force", "f", false, "Skip confirmation")
	rootCmd.AddCommand(vacuumCmd)
}
