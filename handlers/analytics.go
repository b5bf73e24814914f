package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteportal/services"
)

// HandleAnalytics returns a handler that computes the portfolio analytics
// on demand from the current repository state.
func HandleAnalytics(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		analytics, err := services.CollectAnalytics(app)
		if err != nil {
			return writeServiceErr(e, err)
		}

		return e.JSON(http.StatusOK, analytics)
	}
}
