package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/verse/guide"
	"github.com/spf13/cobra"
)

var guideCmd = &cobra.Command{
	Use:   "guide [page]",
	Short: "Show usage guides",
	Long:  `Show the built-in guide. With a page name, show that topic (corpus, config).`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		content, err := guide.Get(name)
		if err != nil {
			pages, _ := guide.List()
			return fmt.Errorf("unknown guide page %q (available: %v)", name, pages)
		}
		if isTerminal(out) {
			if rendered, err := glamour.Render(content, "dark"); err == nil {
				fmt.Fprint(out, rendered)
				return nil
			}
		}
		fmt.Fprint(out, content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
