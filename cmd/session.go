package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jpl-au/verse/internal/journal"
	"github.com/jpl-au/verse/internal/log"
	"github.com/jpl-au/verse/internal/lookup"
	"github.com/spf13/cobra"
)

func runSession(c *cobra.Command, _ []string) error {
	res, cur, err := openResolver()
	if err != nil {
		return err
	}
	defer cur.Close()

	id := uuid.NewString()
	hooks := lookup.Hooks{
		Found: func(r lookup.Result) error {
			log.Event("cli:session", "lookup").
				Session(id).
				Ref(r.Reference.Book, r.Reference.Chapter, r.Reference.Verse).
				Write(nil)
			if p := JournalPath(); p != "" {
				return journal.Append(p, r.Formatted)
			}
			return nil
		},
		Miss: func(stage string, ref lookup.Reference) {
			log.Event("cli:session", "miss").
				Session(id).
				Ref(ref.Book, ref.Chapter, ref.Verse).
				Detail("stage", stage).
				Write(fmt.Errorf("%s not found", stage))
		},
	}

	return lookup.NewSession(res, in, out, hooks).Run(c.Context())
}
