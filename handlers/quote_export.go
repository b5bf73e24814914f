package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteportal/services"
)

// HandleQuoteExportPDF returns a handler that generates and downloads the
// PDF document for a quote.
func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "missing quote id"})
		}

		data, err := services.BuildQuoteExportData(app, id)
		if err != nil {
			return writeServiceErr(e, err)
		}

		pdfBytes, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("quote_export: failed to generate PDF for %s: %v", id, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to generate PDF"})
		}

		filename := fmt.Sprintf("%s.pdf", sanitizeFilename(data.QuoteNumber))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandlePortfolioExportExcel returns a handler that downloads the full quote
// portfolio workbook (quote list plus analytics sheet).
func HandlePortfolioExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := services.BuildPortfolioExportData(app)
		if err != nil {
			return writeServiceErr(e, err)
		}

		xlsxBytes, err := services.GenerateQuotePortfolioExcel(data)
		if err != nil {
			log.Printf("quote_export: failed to generate portfolio workbook: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "failed to generate Excel file"})
		}

		filename := fmt.Sprintf("quotes-%s.xlsx", time.Now().Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}
