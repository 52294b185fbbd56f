/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// File flags override the loaded config; an empty flag means "use config".

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/verse/internal/config"
	"github.com/spf13/cobra"
)

var validOutputFormats = []string{"json"}

var (
	output      string
	verbose     bool
	bibleFile   string
	abbrevFile  string
	journalFile string
	width       int
	noJournal   bool
)

// cfg is the config loaded by PersistentPreRunE.
var cfg = &config.Config{}

// out and in are the command's output and input. Tests replace them.
var (
	out io.Writer = os.Stdout
	in  io.Reader = os.Stdin
)

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// SetIn sets the input reader (for testing).
func SetIn(r io.Reader) { in = r }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// BiblePath returns the corpus path: --bible flag, else config.
func BiblePath() string {
	if bibleFile != "" {
		return bibleFile
	}
	return cfg.Bible()
}

// AbbreviationsPath returns the abbreviation table path.
func AbbreviationsPath() string {
	if abbrevFile != "" {
		return abbrevFile
	}
	return cfg.Abbreviations()
}

// JournalPath returns the journal path, or "" when journaling is disabled.
func JournalPath() string {
	if noJournal {
		return ""
	}
	if journalFile != "" {
		return journalFile
	}
	return cfg.Journal()
}

// Width returns the wrap width.
func Width() int {
	if width > 0 {
		return width
	}
	return cfg.Width()
}

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if error was printed (suppressing Cobra error), or the original error if not.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&output, "output", "o", "", "Output format: json")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Debug logging to stderr")
	pf.StringVar(&bibleFile, "bible", "", "Corpus text file (default from config: Bible.txt)")
	pf.StringVar(&abbrevFile, "abbrev", "", "Abbreviation CSV file (default from config: Bible_Abbreviations.csv)")
	pf.StringVar(&journalFile, "journal", "", "Journal file for found verses (default from config: verses.txt)")
	pf.IntVar(&width, "width", 0, "Wrap width (default from config: 80)")
	pf.BoolVar(&noJournal, "no-journal", false, "Do not append found verses to the journal")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
