package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func testPortfolioData() *PortfolioExportData {
	rows := []PortfolioRow{
		{QuoteNumber: "EVQ-2026-0001", Title: "Garage Retrofit", ClientName: "Dana Whitfield", Status: "accepted", Subtotal: 2058, Tax: 169.79, Total: 2227.79, CreatedDate: "2026-06-01", ValidUntil: "2026-07-01"},
		{QuoteNumber: "EVQ-2026-0002", Title: "Office Park Phase 1", ClientName: "Marcus Tran", Status: "sent", Subtotal: 9500, Discount: 475, Tax: 744.56, Total: 9769.56, CreatedDate: "2026-06-10", ValidUntil: "2026-07-10"},
	}
	return &PortfolioExportData{
		Rows: rows,
		Analytics: Analyze([]QuoteSnapshot{
			{Status: StatusAccepted, Total: 2227.79},
			{Status: StatusSent, Total: 9769.56},
		}),
	}
}

func TestGenerateQuotePortfolioExcel(t *testing.T) {
	xlsxBytes, err := GenerateQuotePortfolioExcel(testPortfolioData())
	if err != nil {
		t.Fatalf("GenerateQuotePortfolioExcel() error: %v", err)
	}
	if len(xlsxBytes) == 0 {
		t.Fatal("GenerateQuotePortfolioExcel() returned empty output")
	}

	f, err := excelize.OpenReader(bytes.NewReader(xlsxBytes))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	wantSheets := map[string]bool{"Quotes": false, "Analytics": false}
	for _, s := range sheets {
		if _, ok := wantSheets[s]; ok {
			wantSheets[s] = true
		}
	}
	for name, found := range wantSheets {
		if !found {
			t.Errorf("workbook is missing sheet %q (got %v)", name, sheets)
		}
	}

	got, err := f.GetCellValue("Quotes", "A4")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "EVQ-2026-0001" {
		t.Errorf("Quotes!A4 = %q, want first quote number", got)
	}

	convRate, err := f.GetCellValue("Analytics", "B7")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if convRate != "50.0%" {
		t.Errorf("Analytics!B7 = %q, want \"50.0%%\"", convRate)
	}
}

func TestGenerateQuotePortfolioExcel_Empty(t *testing.T) {
	data := &PortfolioExportData{Analytics: Analyze(nil)}

	xlsxBytes, err := GenerateQuotePortfolioExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuotePortfolioExcel() on empty portfolio error: %v", err)
	}
	if len(xlsxBytes) == 0 {
		t.Fatal("expected a workbook even with no quotes")
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Level 2 Charger", "Level 2 Charger"},
		{"formula", "=SUM(A1:A9)", "'=SUM(A1:A9)"},
		{"plus", "+1234", "'+1234"},
		{"minus", "-discount", "'-discount"},
		{"at", "@user", "'@user"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeExcelCell(tt.in); got != tt.want {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
