package handlers

import (
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteportal/services"
)

// HandleQuoteView returns a handler that fetches a single quote with its
// line items. Reading an overdue quote settles it to expired.
func HandleQuoteView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "missing quote id"})
		}

		quote, err := services.GetQuote(app, id, time.Now())
		if err != nil {
			return writeServiceErr(e, err)
		}

		items, err := services.QuoteLineItems(app, id)
		if err != nil {
			return writeServiceErr(e, err)
		}

		itemList := make([]map[string]any, 0, len(items))
		for _, item := range items {
			itemList = append(itemList, lineItemJSON(item))
		}

		resp := quoteJSON(quote)
		resp["line_items"] = itemList

		return e.JSON(http.StatusOK, resp)
	}
}
