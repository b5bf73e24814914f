package handlers

import (
	"errors"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteportal/services"
)

type lineItemRequest struct {
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Qty             float64 `json:"qty"`
	UoM             string  `json:"uom"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
	ProductID       string  `json:"product_id"`
}

type lineItemPatchRequest struct {
	Description     *string  `json:"description"`
	Category        *string  `json:"category"`
	Qty             *float64 `json:"qty"`
	UoM             *string  `json:"uom"`
	UnitPrice       *float64 `json:"unit_price"`
	DiscountPercent *float64 `json:"discount_percent"`
}

// HandleLineItemAdd returns a handler that appends a line item to a quote.
// When product_id is set, blank fields snapshot from the catalog record.
func HandleLineItemAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "missing quote id"})
		}

		var req lineItemRequest
		if err := e.BindBody(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}

		item, err := services.AddLineItem(app, quoteID, services.LineItemInput{
			Description:     req.Description,
			Category:        req.Category,
			Qty:             req.Qty,
			UoM:             req.UoM,
			UnitPrice:       req.UnitPrice,
			DiscountPercent: req.DiscountPercent,
			ProductID:       req.ProductID,
		})
		if err != nil && item == nil {
			return writeServiceErr(e, err)
		}

		resp := lineItemJSON(item)
		if err != nil {
			resp["warning"] = err.Error()
		}

		return e.JSON(http.StatusCreated, resp)
	}
}

// HandleLineItemUpdate returns a handler that partially updates a line item.
// The line total is re-derived server-side.
func HandleLineItemUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		itemID := e.Request.PathValue("itemId")
		if quoteID == "" || itemID == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "missing quote or line item id"})
		}

		var req lineItemPatchRequest
		if err := e.BindBody(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}

		item, err := services.UpdateLineItem(app, quoteID, itemID, services.LineItemPatch{
			Description:     req.Description,
			Category:        req.Category,
			Qty:             req.Qty,
			UoM:             req.UoM,
			UnitPrice:       req.UnitPrice,
			DiscountPercent: req.DiscountPercent,
		})
		if err != nil && item == nil {
			return writeServiceErr(e, err)
		}

		resp := lineItemJSON(item)
		if err != nil {
			resp["warning"] = err.Error()
		}

		return e.JSON(http.StatusOK, resp)
	}
}

// HandleLineItemDelete returns a handler that removes a line item and
// recomputes the quote totals.
func HandleLineItemDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		itemID := e.Request.PathValue("itemId")
		if quoteID == "" || itemID == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "missing quote or line item id"})
		}

		err := services.DeleteLineItem(app, quoteID, itemID)
		var fault *services.ComputationFault
		if err != nil && !errors.As(err, &fault) {
			return writeServiceErr(e, err)
		}

		resp := map[string]any{"deleted": true}
		if err != nil {
			resp["warning"] = err.Error()
		}

		return e.JSON(http.StatusOK, resp)
	}
}
