package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"

	"quoteportal/config"
)

// QuoteExportData holds everything needed to render a quote document (PDF or
// share page).
type QuoteExportData struct {
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string
	CompanyPhone   string

	QuoteNumber string
	Title       string
	Status      string
	CreatedDate string
	ValidUntil  string

	Client ClientInfo

	LineItems []QuoteExportLineItem

	Subtotal       float64
	DiscountAmount float64
	TaxRate        float64
	TaxAmount      float64
	Total          float64

	AmountInWords string
	Notes         string
}

// QuoteExportLineItem is a single rendered table row.
type QuoteExportLineItem struct {
	SINo            int
	Description     string
	Category        string
	Qty             float64
	UoM             string
	UnitPrice       float64
	DiscountPercent float64
	LineTotal       float64
}

// BuildQuoteExportData assembles the export view for a quote: company block
// from config, quote header, client snapshot, ordered line items and totals.
func BuildQuoteExportData(app core.App, quoteID string) (*QuoteExportData, error) {
	quote, err := app.FindRecordById("quotes", quoteID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, quoteID)
	}

	items, err := findQuoteLineItems(app, quoteID)
	if err != nil {
		return nil, err
	}

	cfg := config.Get()
	data := &QuoteExportData{
		CompanyName:    cfg.CompanyName,
		CompanyAddress: cfg.CompanyAddress,
		CompanyEmail:   cfg.CompanyEmail,
		CompanyPhone:   cfg.CompanyPhone,

		QuoteNumber: quote.GetString("quote_number"),
		Title:       quote.GetString("title"),
		Status:      quote.GetString("status"),
		CreatedDate: quote.GetDateTime("created").Time().Format("2006-01-02"),

		Client: ClientInfo{
			Name:          quote.GetString("client_name"),
			Company:       quote.GetString("client_company"),
			ContactPerson: quote.GetString("client_contact_person"),
			Email:         quote.GetString("client_email"),
			Phone:         quote.GetString("client_phone"),
		},

		Subtotal:       quote.GetFloat("subtotal"),
		DiscountAmount: quote.GetFloat("discount_amount"),
		TaxRate:        quote.GetFloat("tax_rate"),
		TaxAmount:      quote.GetFloat("tax_amount"),
		Total:          quote.GetFloat("total"),

		Notes: quote.GetString("notes"),
	}

	if validUntil := quote.GetDateTime("valid_until").Time(); !validUntil.IsZero() {
		data.ValidUntil = validUntil.Format("2006-01-02")
	}

	for i, item := range items {
		data.LineItems = append(data.LineItems, QuoteExportLineItem{
			SINo:            i + 1,
			Description:     item.GetString("description"),
			Category:        item.GetString("category"),
			Qty:             item.GetFloat("qty"),
			UoM:             item.GetString("uom"),
			UnitPrice:       item.GetFloat("unit_price"),
			DiscountPercent: item.GetFloat("discount_percent"),
			LineTotal:       item.GetFloat("line_total"),
		})
	}

	data.AmountInWords = AmountToWords(data.Total)

	return data, nil
}
