package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"quoteportal/testhelpers"
)

func TestHandleQuoteExportPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "EVQ-2026-0160", "sent")
	testhelpers.CreateTestLineItem(t, app, quote.Id, 1, "Wall charger", 1, 649)
	handler := HandleQuoteExportPDF(app)
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/quotes/%s/export/pdf", quote.Id), nil)
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "EVQ-2026-0160.pdf") {
		t.Errorf("Content-Disposition = %q, want quote number filename", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("response body is not a PDF")
	}
}

func TestHandleQuoteExportPDF_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteExportPDF(app)
	req := httptest.NewRequest(http.MethodGet, "/api/quotes/nonexistent/export/pdf", nil)
	req.SetPathValue("id", "nonexistent")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandlePortfolioExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestQuote(t, app, "EVQ-2026-0161", "accepted")
	testhelpers.CreateTestQuote(t, app, "EVQ-2026-0162", "draft")
	handler := HandlePortfolioExportExcel(app)
	req := httptest.NewRequest(http.MethodGet, "/api/quotes/export/excel", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, ".xlsx") {
		t.Errorf("Content-Disposition = %q, want xlsx filename", cd)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("response is not a valid workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Quotes", "A4")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "EVQ-2026-") {
		t.Errorf("Quotes!A4 = %q, want a quote number", got)
	}
}
