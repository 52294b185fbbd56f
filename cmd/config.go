// config.go implements "verse config" for viewing and setting configuration.
//
// Config follows a cascade model similar to git: local config
// (.verse/config.yaml) takes precedence over global. The --local flag forces
// use of local config even if it doesn't exist yet.

package cmd

import (
	"fmt"
	"slices"

	"github.com/jpl-au/verse/internal/config"
	"github.com/jpl-au/verse/internal/log"
	"github.com/spf13/cobra"
)

var configLocal bool

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "View or set config values",
	Long: `View or set config values.

  verse config                    # show config
  verse config files.bible        # show files.bible value
  verse config display.width 72   # set display.width

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	var c *config.Config
	var err error
	if configLocal {
		c, err = config.LoadScope(config.ScopeLocal)
	} else {
		c, err = config.Load()
	}
	if err != nil {
		return PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	switch len(args) {
	case 0:
		all := c.All()
		log.Event("cli:config", "list").Write(nil)
		if JSON() {
			return PrintJSON(all)
		}
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "%s: %s\n", k, all[k])
		}

	case 1:
		v, err := c.Get(args[0])
		log.Event("cli:config", "get").Detail("key", args[0]).Write(err)
		if err != nil {
			return PrintJSONError(err)
		}
		if JSON() {
			return PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(out, v)

	case 2:
		err := c.Set(args[0], args[1])
		if err == nil {
			err = c.Save()
		}
		log.Event("cli:config", "set").Detail("key", args[0]).Detail("value", args[1]).Write(err)
		if err != nil {
			return PrintJSONError(fmt.Errorf("config set: %w", err))
		}
		if JSON() {
			return PrintJSON(map[string]string{"key": args[0], "value": args[1], "path": c.Path()})
		}
		fmt.Fprintf(out, "%s = %s (%s)\n", args[0], args[1], c.Path())
	}
	return nil
}

func init() {
	configCmd.Flags().BoolVar(&configLocal, "local", false, "Use local config (.verse/config.yaml)")
	rootCmd.AddCommand(configCmd)
}
