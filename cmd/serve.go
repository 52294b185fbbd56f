package cmd

import (
	"log/slog"

	"github.com/jpl-au/verse/internal/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout exposing the
verse_lookup, verse_reference and verse_guide tools.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		res, cur, err := openResolver()
		if err != nil {
			return err
		}
		defer cur.Close()

		return mcp.Serve(res, mcp.Options{
			Journal: JournalPath(),
			Logger:  slog.Default(),
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
