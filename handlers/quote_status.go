package handlers

import (
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteportal/services"
)

type statusRequest struct {
	Status string `json:"status"`
}

// HandleQuoteStatus returns a handler that moves a quote through its
// lifecycle. Illegal moves come back as 409 with the attempted transition.
func HandleQuoteStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "missing quote id"})
		}

		var req statusRequest
		if err := e.BindBody(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}

		quote, err := services.TransitionQuote(app, id, services.Status(req.Status), time.Now())
		if err != nil {
			return writeServiceErr(e, err)
		}

		return e.JSON(http.StatusOK, quoteJSON(quote))
	}
}
