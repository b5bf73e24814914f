package handlers

import (
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteportal/services"
)

// HandleQuoteDuplicate returns a handler that copies a quote into a fresh
// draft with a new quote number and validity window.
func HandleQuoteDuplicate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "missing quote id"})
		}

		dup, err := services.DuplicateQuote(app, id, time.Now())
		if err != nil {
			return writeServiceErr(e, err)
		}

		return e.JSON(http.StatusCreated, quoteJSON(dup))
	}
}
