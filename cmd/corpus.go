// corpus.go opens the inputs every lookup command needs. Both files must
// exist; a missing one is reported before any prompt is shown.

package cmd

import (
	"log/slog"

	"github.com/jpl-au/verse/internal/abbrev"
	"github.com/jpl-au/verse/internal/cursor"
	"github.com/jpl-au/verse/internal/log"
	"github.com/jpl-au/verse/internal/lookup"
)

// openResolver loads the abbreviation table and opens the corpus. The caller
// must close the returned cursor.
func openResolver() (*lookup.Resolver, *cursor.Cursor, error) {
	tbl, err := abbrev.Load(AbbreviationsPath())
	if err != nil {
		return nil, nil, err
	}

	cur, err := cursor.Open(BiblePath())
	if err != nil {
		return nil, nil, err
	}
	log.SetCorpus(BiblePath())

	slog.Debug("corpus opened", "bible", BiblePath(), "abbreviations", tbl.Len(), "width", Width())

	res := lookup.NewResolver(cur, tbl,
		lookup.WithWidth(Width()),
		lookup.WithLogger(slog.Default()),
	)
	return res, cur, nil
}
