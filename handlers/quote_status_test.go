package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"quoteportal/testhelpers"
)

func TestHandleQuoteStatus_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "EVQ-2026-0140", "draft")
	handler := HandleQuoteStatus(app)
	req := jsonRequest(http.MethodPost, fmt.Sprintf("/api/quotes/%s/status", quote.Id), `{"status":"sent"}`)
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	testhelpers.AssertJSONContains(t, rec.Body.String(), `"status":"sent"`)
}

func TestHandleQuoteStatus_InvalidTransition(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "EVQ-2026-0141", "draft")
	handler := HandleQuoteStatus(app)
	req := jsonRequest(http.MethodPost, fmt.Sprintf("/api/quotes/%s/status", quote.Id), `{"status":"accepted"}`)
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	testhelpers.AssertJSONContains(t, rec.Body.String(), `"from":"draft"`, `"to":"accepted"`)
}

func TestHandleQuoteStatus_UnknownStatus(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "EVQ-2026-0142", "draft")
	handler := HandleQuoteStatus(app)
	req := jsonRequest(http.MethodPost, fmt.Sprintf("/api/quotes/%s/status", quote.Id), `{"status":"archived"}`)
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
