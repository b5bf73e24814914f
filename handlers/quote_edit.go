package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteportal/services"
)

type editQuoteRequest struct {
	Title               *string `json:"title"`
	ClientName          *string `json:"client_name"`
	ClientCompany       *string `json:"client_company"`
	ClientContactPerson *string `json:"client_contact_person"`
	ClientEmail         *string `json:"client_email"`
	ClientPhone         *string `json:"client_phone"`

	TaxRate       *float64 `json:"tax_rate"`
	DiscountType  *string  `json:"discount_type"`
	DiscountValue *float64 `json:"discount_value"`

	ValidUntil *string `json:"valid_until"`
	CreatedBy  *string `json:"created_by"`
	Notes      *string `json:"notes"`
}

// HandleQuoteEdit returns a handler that applies a partial update to a
// quote. Totals and status are not accepted here; totals are recomputed
// server-side and status changes go through the status endpoint.
func HandleQuoteEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "missing quote id"})
		}

		var req editQuoteRequest
		if err := e.BindBody(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}

		patch := services.QuotePatch{
			Title:               req.Title,
			ClientName:          req.ClientName,
			ClientCompany:       req.ClientCompany,
			ClientContactPerson: req.ClientContactPerson,
			ClientEmail:         req.ClientEmail,
			ClientPhone:         req.ClientPhone,
			TaxRate:             req.TaxRate,
			DiscountValue:       req.DiscountValue,
			CreatedBy:           req.CreatedBy,
			Notes:               req.Notes,
		}

		if req.DiscountType != nil {
			dt := services.DiscountType(*req.DiscountType)
			patch.DiscountType = &dt
		}

		if req.ValidUntil != nil {
			t, err := parseDate(*req.ValidUntil)
			if err != nil {
				return e.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
			}
			patch.ValidUntil = &t
		}

		quote, err := services.UpdateQuote(app, id, patch)
		if err != nil && quote == nil {
			return writeServiceErr(e, err)
		}

		resp := quoteJSON(quote)
		if err != nil {
			// The update committed with clamped totals; surface the fault.
			resp["warning"] = err.Error()
		}

		return e.JSON(http.StatusOK, resp)
	}
}
