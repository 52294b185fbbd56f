// find.go implements "verse find", a one-shot lookup from a single-line
// reference. Terminal output is rendered with glamour; pipes and redirects get
// the plain wrapped block that the interactive session prints.

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/verse/internal/journal"
	"github.com/jpl-au/verse/internal/log"
	"github.com/jpl-au/verse/internal/lookup"
	"github.com/jpl-au/verse/internal/ref"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var findRaw bool

var findCmd = &cobra.Command{
	Use:   "find <reference>",
	Short: "Look up one verse",
	Long: `Look up one verse from a reference such as "John 11:35".

  verse find gen 1:3
  verse find "1 cor 13.4"
  verse find ps 23:1 -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

func runFind(c *cobra.Command, args []string) error {
	s := strings.Join(args, " ")
	r, err := ref.Parse(s)
	if err != nil {
		return PrintJSONError(err)
	}

	res, cur, err := openResolver()
	if err != nil {
		return err
	}
	defer cur.Close()

	result, err := res.Resolve(c.Context(), r)
	action, logged := "lookup", result.Reference
	if err != nil {
		action, logged = "miss", r
	}
	log.Event("cli:find", action).Ref(logged.Book, logged.Chapter, logged.Verse).Write(err)
	if err != nil {
		return PrintJSONError(fmt.Errorf("find %q: %w", s, err))
	}

	if p := JournalPath(); p != "" {
		if err := journal.Append(p, result.Formatted); err != nil {
			return err
		}
	}

	if JSON() {
		return PrintJSON(result)
	}
	if !findRaw && isTerminal(out) {
		if rendered, err := render(result); err == nil {
			fmt.Fprint(out, rendered)
			return nil
		}
	}
	fmt.Fprintln(out, result.Formatted)
	return nil
}

func render(r lookup.Result) (string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(Width()),
	)
	if err != nil {
		return "", err
	}
	md := fmt.Sprintf("**%s**\n\n> %s\n", r.Reference, r.Text)
	return tr.Render(md)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func init() {
	findCmd.Flags().BoolVar(&findRaw, "raw", false, "Print the plain wrapped block even on a terminal")
	rootCmd.AddCommand(findCmd)
}
