package collections

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
)

// MigrateBackfillShareTokens assigns a share token to every quote that was
// created before share links existed. Safe to call on every startup --
// returns early if nothing to backfill.
func MigrateBackfillShareTokens(app *pocketbase.PocketBase) error {
	quotesCol, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return fmt.Errorf("migrate: could not find quotes collection: %w", err)
	}

	missing, err := app.FindRecordsByFilter(
		quotesCol,
		"share_token = ''",
		"",
		0,
		0,
		nil,
	)
	if err != nil {
		return fmt.Errorf("migrate: could not query quotes without share tokens: %w", err)
	}

	if len(missing) == 0 {
		return nil
	}

	log.Printf("migrate: found %d quote(s) without a share token -- backfilling...\n", len(missing))

	for _, quote := range missing {
		quote.Set("share_token", uuid.NewString())
		if err := app.Save(quote); err != nil {
			log.Printf("migrate: failed to backfill share token for quote %q: %v\n", quote.GetString("quote_number"), err)
			continue
		}
	}

	return nil
}
