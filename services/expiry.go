package services

import (
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// ExpireOverdueQuotes is the periodic sweep backing the time-driven expiry
// transition: every non-terminal quote whose valid_until has passed is moved
// to expired. Returns how many quotes were expired. Safe to run at any time;
// quotes read individually are expired lazily by GetQuote regardless.
func ExpireOverdueQuotes(app core.App, now time.Time) (int, error) {
	records, err := app.FindRecordsByFilter(
		"quotes",
		"status != {:accepted} && status != {:rejected} && status != {:expired}",
		"",
		0,
		0,
		map[string]any{
			"accepted": string(StatusAccepted),
			"rejected": string(StatusRejected),
			"expired":  string(StatusExpired),
		},
	)
	if err != nil {
		return 0, fmt.Errorf("expiry: could not query quotes: %w", err)
	}

	expired := 0
	for _, quote := range records {
		current := Status(quote.GetString("status"))
		if EffectiveStatus(current, quote.GetDateTime("valid_until").Time(), now) != StatusExpired {
			continue
		}
		quote.Set("status", string(StatusExpired))
		if err := app.Save(quote); err != nil {
			log.Printf("expiry: could not expire quote %s: %v", quote.Id, err)
			continue
		}
		expired++
	}

	return expired, nil
}
