package collections

import (
	"errors"
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"

	"quoteportal/services"
)

// MigrateRecomputeQuoteTotals re-derives the stored totals of every quote
// from its line items. Run on startup so quotes written by older builds with
// different rounding rules converge to the current calculator. Computation
// faults are logged and skipped; the clamped totals are still persisted.
func MigrateRecomputeQuoteTotals(app *pocketbase.PocketBase) error {
	quotesCol, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return fmt.Errorf("migrate: could not find quotes collection: %w", err)
	}

	quotes, err := app.FindAllRecords(quotesCol)
	if err != nil {
		return fmt.Errorf("migrate: could not query quotes: %w", err)
	}

	if len(quotes) == 0 {
		return nil
	}

	recomputed := 0
	for _, quote := range quotes {
		if err := services.RecalcQuoteTotals(app, quote.Id); err != nil {
			var fault *services.ComputationFault
			if errors.As(err, &fault) {
				log.Printf("migrate: quote %q totals clamped: %v\n", quote.GetString("quote_number"), fault)
				recomputed++
				continue
			}
			log.Printf("migrate: failed to recompute totals for quote %q: %v\n", quote.GetString("quote_number"), err)
			continue
		}
		recomputed++
	}

	log.Printf("migrate: recomputed totals for %d quote(s)\n", recomputed)
	return nil
}
