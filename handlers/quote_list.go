package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteportal/services"
)

// HandleQuoteList returns a handler that lists quotes with optional
// filtering (?status=), text search (?q=) and sorting (?sort=, ?order=desc).
func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		query := e.Request.URL.Query()

		q := services.QuoteSearchQuery{
			Status:   services.Status(query.Get("status")),
			Text:     query.Get("q"),
			SortBy:   query.Get("sort"),
			SortDesc: query.Get("order") == "desc",
		}

		quotes, err := services.SearchQuotes(app, q)
		if err != nil {
			return writeServiceErr(e, err)
		}

		items := make([]map[string]any, 0, len(quotes))
		for _, quote := range quotes {
			items = append(items, quoteJSON(quote))
		}

		return e.JSON(http.StatusOK, map[string]any{
			"items": items,
			"total": len(items),
		})
	}
}
