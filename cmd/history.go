package cmd

import (
	"fmt"

	"github.com/jpl-au/verse/internal/format"
	"github.com/jpl-au/verse/internal/log"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent lookups",
	Long:  `Show recent lookups and misses from the audit log, newest first.`,
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		if historyLimit <= 0 {
			return fmt.Errorf("invalid limit %d: must be positive", historyLimit)
		}
		recs, err := log.Recent(c.Context(), historyLimit)
		if err != nil {
			return PrintJSONError(fmt.Errorf("history: %w", err))
		}
		if JSON() {
			return PrintJSON(recs)
		}
		return format.History(out, recs)
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of entries to show")
	rootCmd.AddCommand(historyCmd)
}
