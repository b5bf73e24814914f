package handlers

import (
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteportal/config"
	"quoteportal/services"
)

// HandleTemplateList returns a handler that lists all quote templates.
func HandleTemplateList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		templates, err := services.ListTemplates(app)
		if err != nil {
			return writeServiceErr(e, err)
		}

		items := make([]map[string]any, 0, len(templates))
		for _, tpl := range templates {
			items = append(items, templateJSON(tpl))
		}

		return e.JSON(http.StatusOK, map[string]any{"items": items})
	}
}

// HandleTemplateInstantiate returns a handler that creates a quote from a
// template. The request body is the same as quote creation; the template id
// comes from the path.
func HandleTemplateInstantiate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		templateID := e.Request.PathValue("id")
		if templateID == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "missing template id"})
		}

		var req createQuoteRequest
		if err := e.BindBody(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}

		validUntil, err := parseDate(req.ValidUntil)
		if err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}

		taxRate := config.Get().DefaultTaxRate
		if req.TaxRate != nil {
			taxRate = *req.TaxRate
		}

		quote, err := services.InstantiateTemplate(app, templateID, time.Now(), services.CreateQuoteInput{
			ProjectID: req.ProjectID,
			Title:     req.Title,
			Client: services.ClientInfo{
				Name:          req.Client.Name,
				Company:       req.Client.Company,
				ContactPerson: req.Client.ContactPerson,
				Email:         req.Client.Email,
				Phone:         req.Client.Phone,
			},
			TaxRate:       taxRate,
			DiscountType:  services.DiscountType(req.DiscountType),
			DiscountValue: req.DiscountValue,
			ValidUntil:    validUntil,
			CreatedBy:     req.CreatedBy,
			Notes:         req.Notes,
		})
		if err != nil {
			return writeServiceErr(e, err)
		}

		return e.JSON(http.StatusCreated, quoteJSON(quote))
	}
}
