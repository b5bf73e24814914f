package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteportal/services"
)

// HandleQuoteDelete returns a handler that permanently removes a quote and
// its line items.
func HandleQuoteDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "missing quote id"})
		}

		existed, err := services.DeleteQuote(app, id)
		if err != nil {
			return writeServiceErr(e, err)
		}
		if !existed {
			return e.JSON(http.StatusNotFound, map[string]any{"error": "quote not found"})
		}

		return e.JSON(http.StatusOK, map[string]any{"deleted": true})
	}
}
