package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteportal/services"
	"quoteportal/views"
)

// HandleQuoteShare returns a handler that serves the public read-only quote
// page behind an unguessable share token. Opening a sent quote records the
// read receipt by moving it to viewed.
func HandleQuoteShare(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		token := e.Request.PathValue("token")
		if token == "" {
			return e.String(http.StatusNotFound, "Quote not found")
		}

		records, err := app.FindRecordsByFilter(
			"quotes",
			"share_token = {:token}",
			"",
			1,
			0,
			map[string]any{"token": token},
		)
		if err != nil || len(records) == 0 {
			return e.String(http.StatusNotFound, "Quote not found")
		}

		now := time.Now()
		quote, err := services.GetQuote(app, records[0].Id, now)
		if err != nil {
			return e.String(http.StatusNotFound, "Quote not found")
		}

		if quote.GetString("status") == string(services.StatusSent) {
			quote, err = services.TransitionQuote(app, quote.Id, services.StatusViewed, now)
			if err != nil {
				// The page still renders; the read receipt is best effort.
				log.Printf("quote_share: could not mark quote %s as viewed: %v", records[0].Id, err)
				quote = records[0]
			}
		}

		data, err := services.BuildQuoteExportData(app, quote.Id)
		if err != nil {
			log.Printf("quote_share: failed to build share page data for %s: %v", quote.Id, err)
			return e.String(http.StatusInternalServerError, "Failed to render quote")
		}

		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return views.SharePage(data).Render(e.Request.Context(), e.Response)
	}
}
