package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quoteportal/testhelpers"
)

func TestHandleQuoteView_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "EVQ-2026-0100", "draft")
	testhelpers.CreateTestLineItem(t, app, quote.Id, 1, "Wall charger", 1, 649)
	handler := HandleQuoteView(app)
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/quotes/%s", quote.Id), nil)
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertJSONContains(t, rec.Body.String(),
		`"quote_number":"EVQ-2026-0100"`,
		`"line_items"`,
		`"description":"Wall charger"`,
	)
}

func TestHandleQuoteView_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteView(app)
	req := httptest.NewRequest(http.MethodGet, "/api/quotes/nonexistent", nil)
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

func TestHandleQuoteView_OverdueReadsExpired(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "EVQ-2026-0101", "sent")
	quote.Set("valid_until", time.Now().AddDate(0, 0, -1).UTC())
	if err := app.Save(quote); err != nil {
		t.Fatal(err)
	}
	handler := HandleQuoteView(app)
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/quotes/%s", quote.Id), nil)
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	testhelpers.AssertJSONContains(t, rec.Body.String(), `"status":"expired"`)
}
