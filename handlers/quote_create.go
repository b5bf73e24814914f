package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteportal/config"
	"quoteportal/services"
)

type clientRequest struct {
	Name          string `json:"name"`
	Company       string `json:"company"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
}

type createQuoteRequest struct {
	ProjectID  string        `json:"project_id"`
	TemplateID string        `json:"template_id"`
	Title      string        `json:"title"`
	Client     clientRequest `json:"client"`

	// TaxRate is a percent; when omitted the configured default applies.
	TaxRate       *float64 `json:"tax_rate"`
	DiscountType  string   `json:"discount_type"`
	DiscountValue float64  `json:"discount_value"`

	ValidUntil string `json:"valid_until"`
	CreatedBy  string `json:"created_by"`
	Notes      string `json:"notes"`
}

// HandleQuoteCreate returns a handler that creates a quote: blank, seeded
// from a project, or instantiated from a template when template_id is set.
func HandleQuoteCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
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

		in := services.CreateQuoteInput{
			ProjectID:  req.ProjectID,
			TemplateID: req.TemplateID,
			Title:      req.Title,
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
		}

		quote, err := services.CreateQuote(app, time.Now(), in)
		if err != nil {
			return writeServiceErr(e, err)
		}

		return e.JSON(http.StatusCreated, quoteJSON(quote))
	}
}

// parseDate accepts a bare date or a full RFC 3339 timestamp. An empty
// string maps to the zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC 3339", s)
}
