package services

import (
	"bytes"
	"fmt"

	"github.com/pocketbase/pocketbase/core"
	"github.com/xuri/excelize/v2"
)

// PortfolioRow is one quote in the portfolio workbook.
type PortfolioRow struct {
	QuoteNumber   string
	Title         string
	ClientName    string
	ClientCompany string
	Status        string
	Subtotal      float64
	Discount      float64
	Tax           float64
	Total         float64
	CreatedDate   string
	ValidUntil    string
}

// PortfolioExportData holds everything the Excel export renders: the quote
// list plus the aggregated analytics.
type PortfolioExportData struct {
	Rows      []PortfolioRow
	Analytics QuoteAnalytics
}

// BuildPortfolioExportData collects every quote and the portfolio analytics
// for the Excel export.
func BuildPortfolioExportData(app core.App) (*PortfolioExportData, error) {
	records, err := GetAllQuotes(app)
	if err != nil {
		return nil, fmt.Errorf("portfolio export: %w", err)
	}

	data := &PortfolioExportData{
		Rows: make([]PortfolioRow, 0, len(records)),
	}
	snapshots := make([]QuoteSnapshot, 0, len(records))

	for _, rec := range records {
		data.Rows = append(data.Rows, PortfolioRow{
			QuoteNumber:   rec.GetString("quote_number"),
			Title:         rec.GetString("title"),
			ClientName:    rec.GetString("client_name"),
			ClientCompany: rec.GetString("client_company"),
			Status:        rec.GetString("status"),
			Subtotal:      rec.GetFloat("subtotal"),
			Discount:      rec.GetFloat("discount_amount"),
			Tax:           rec.GetFloat("tax_amount"),
			Total:         rec.GetFloat("total"),
			CreatedDate:   rec.GetDateTime("created").Time().Format("2006-01-02"),
			ValidUntil:    rec.GetDateTime("valid_until").Time().Format("2006-01-02"),
		})
		snapshots = append(snapshots, QuoteSnapshot{
			Status: Status(rec.GetString("status")),
			Total:  rec.GetFloat("total"),
		})
	}

	data.Analytics = Analyze(snapshots)
	return data, nil
}

// GenerateQuotePortfolioExcel creates a two-sheet workbook: "Quotes" lists
// every quote, "Analytics" shows the aggregated portfolio metrics. Returns
// the file contents as a byte slice.
func GenerateQuotePortfolioExcel(data *PortfolioExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	quotesSheet := "Quotes"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, quotesSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through K).
	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"}
	lastCol := columns[len(columns)-1]

	widths := []float64{14, 32, 22, 22, 14, 14, 12, 12, 14, 12, 12}
	for i, col := range columns {
		if err := f.SetColWidth(quotesSheet, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create body style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Quotes Sheet ────────────────────────────────────────────────────

	if err := f.MergeCell(quotesSheet, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(quotesSheet, "A1", "Quote Portfolio")
	f.SetCellStyle(quotesSheet, "A1", lastCol+"1", titleStyle)

	headers := []string{
		"Quote #", "Title", "Client", "Company", "Status",
		"Subtotal", "Discount", "Tax", "Total", "Created", "Valid Until",
	}
	for i, h := range headers {
		cell := fmt.Sprintf("%s3", columns[i])
		f.SetCellValue(quotesSheet, cell, h)
	}
	f.SetCellStyle(quotesSheet, "A3", lastCol+"3", headerStyle)

	row := 4
	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(quotesSheet, "A"+rowStr, sanitizeExcelCell(r.QuoteNumber))
		f.SetCellValue(quotesSheet, "B"+rowStr, sanitizeExcelCell(r.Title))
		f.SetCellValue(quotesSheet, "C"+rowStr, sanitizeExcelCell(r.ClientName))
		f.SetCellValue(quotesSheet, "D"+rowStr, sanitizeExcelCell(r.ClientCompany))
		f.SetCellValue(quotesSheet, "E"+rowStr, sanitizeExcelCell(r.Status))
		f.SetCellValue(quotesSheet, "F"+rowStr, FormatUSD(r.Subtotal))
		f.SetCellValue(quotesSheet, "G"+rowStr, FormatUSD(r.Discount))
		f.SetCellValue(quotesSheet, "H"+rowStr, FormatUSD(r.Tax))
		f.SetCellValue(quotesSheet, "I"+rowStr, FormatUSD(r.Total))
		f.SetCellValue(quotesSheet, "J"+rowStr, r.CreatedDate)
		f.SetCellValue(quotesSheet, "K"+rowStr, r.ValidUntil)
		f.SetCellStyle(quotesSheet, "A"+rowStr, lastCol+rowStr, bodyStyle)
		row++
	}

	// Summary row after a blank line.
	row++
	summaryRow := fmt.Sprintf("%d", row)
	f.SetCellValue(quotesSheet, "H"+summaryRow, "Portfolio Total:")
	f.SetCellStyle(quotesSheet, "H"+summaryRow, "H"+summaryRow, summaryLabelStyle)
	f.SetCellValue(quotesSheet, "I"+summaryRow, FormatUSD(data.Analytics.TotalValue))
	f.SetCellStyle(quotesSheet, "I"+summaryRow, "I"+summaryRow, summaryValueStyle)

	// ── Analytics Sheet ─────────────────────────────────────────────────

	analyticsSheet := "Analytics"
	if _, err := f.NewSheet(analyticsSheet); err != nil {
		return nil, fmt.Errorf("create analytics sheet: %w", err)
	}
	if err := f.SetColWidth(analyticsSheet, "A", "A", 28); err != nil {
		return nil, fmt.Errorf("set analytics col width: %w", err)
	}
	if err := f.SetColWidth(analyticsSheet, "B", "B", 18); err != nil {
		return nil, fmt.Errorf("set analytics col width: %w", err)
	}

	if err := f.MergeCell(analyticsSheet, "A1", "B1"); err != nil {
		return nil, fmt.Errorf("merge analytics title: %w", err)
	}
	f.SetCellValue(analyticsSheet, "A1", "Portfolio Analytics")
	f.SetCellStyle(analyticsSheet, "A1", "B1", titleStyle)

	a := data.Analytics
	metrics := []struct {
		label string
		value any
	}{
		{"Total Quotes", a.TotalQuotes},
		{"Total Value", FormatUSD(a.TotalValue)},
		{"Accepted Count", a.AcceptedCount},
		{"Accepted Value", FormatUSD(a.AcceptedValue)},
		{"Conversion Rate", fmt.Sprintf("%.1f%%", a.ConversionRate*100)},
		{"Average Quote Value", FormatUSD(a.AverageQuoteValue)},
	}

	row = 3
	for _, m := range metrics {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(analyticsSheet, "A"+rowStr, m.label)
		f.SetCellStyle(analyticsSheet, "A"+rowStr, "A"+rowStr, bodyStyle)
		f.SetCellValue(analyticsSheet, "B"+rowStr, m.value)
		f.SetCellStyle(analyticsSheet, "B"+rowStr, "B"+rowStr, bodyStyle)
		row++
	}

	// Per-status counts in lifecycle order.
	row++
	headerRow := fmt.Sprintf("%d", row)
	f.SetCellValue(analyticsSheet, "A"+headerRow, "Status")
	f.SetCellValue(analyticsSheet, "B"+headerRow, "Count")
	f.SetCellStyle(analyticsSheet, "A"+headerRow, "B"+headerRow, headerStyle)
	row++
	for _, s := range AllStatuses {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(analyticsSheet, "A"+rowStr, string(s))
		f.SetCellStyle(analyticsSheet, "A"+rowStr, "A"+rowStr, bodyStyle)
		f.SetCellValue(analyticsSheet, "B"+rowStr, a.StatusCounts[s])
		f.SetCellStyle(analyticsSheet, "B"+rowStr, "B"+rowStr, bodyStyle)
		row++
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
