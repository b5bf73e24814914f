package services

import (
	"strings"
	"testing"
)

func testExportData() *QuoteExportData {
	return &QuoteExportData{
		CompanyName:    "VoltEdge Electrical Contractors",
		CompanyAddress: "4210 Pacific Ave, Tacoma, WA 98418",
		CompanyEmail:   "quotes@voltedge.example",
		CompanyPhone:   "(253) 555-0110",

		QuoteNumber: "EVQ-2026-0042",
		Title:       "Garage Retrofit",
		Status:      "sent",
		CreatedDate: "2026-06-01",
		ValidUntil:  "2026-07-01",

		Client: ClientInfo{
			Name:          "Dana Whitfield",
			Company:       "Harborview Property Group LLC",
			ContactPerson: "Dana Whitfield",
			Email:         "dwhitfield@example.com",
			Phone:         "(253) 555-0147",
		},

		LineItems: []QuoteExportLineItem{
			{SINo: 1, Description: "Level 2 Charger — 40A Wall Mount", Category: "charger", Qty: 2, UoM: "Each", UnitPrice: 649, LineTotal: 1298},
			{SINo: 2, Description: "Journeyman Electrician Labor", Category: "labor", Qty: 8, UoM: "Hour", UnitPrice: 95, LineTotal: 760},
		},

		Subtotal:       2058,
		DiscountAmount: 0,
		TaxRate:        8.25,
		TaxAmount:      169.79,
		Total:          2227.79,

		AmountInWords: AmountToWords(2227.79),
		Notes:         "Pricing assumes panel capacity is available.",
	}
}

func TestGenerateQuotePDF(t *testing.T) {
	pdfBytes, err := GenerateQuotePDF(testExportData())
	if err != nil {
		t.Fatalf("GenerateQuotePDF() error: %v", err)
	}

	if len(pdfBytes) == 0 {
		t.Fatal("GenerateQuotePDF() returned empty output")
	}
	if !strings.HasPrefix(string(pdfBytes[:5]), "%PDF-") {
		t.Errorf("output does not start with PDF header, got %q", string(pdfBytes[:5]))
	}
}

func TestGenerateQuotePDF_NoOptionalSections(t *testing.T) {
	data := testExportData()
	data.Notes = ""
	data.ValidUntil = ""
	data.AmountInWords = ""
	data.DiscountAmount = 0

	pdfBytes, err := GenerateQuotePDF(data)
	if err != nil {
		t.Fatalf("GenerateQuotePDF() error: %v", err)
	}
	if !strings.HasPrefix(string(pdfBytes[:5]), "%PDF-") {
		t.Errorf("output does not start with PDF header, got %q", string(pdfBytes[:5]))
	}
}

func TestGenerateQuotePDF_EmptyLineItems(t *testing.T) {
	data := testExportData()
	data.LineItems = nil

	if _, err := GenerateQuotePDF(data); err != nil {
		t.Fatalf("GenerateQuotePDF() with no line items error: %v", err)
	}
}
