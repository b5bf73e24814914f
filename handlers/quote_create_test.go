package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quoteportal/testhelpers"
)

func TestHandleQuoteCreate_Blank(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteCreate(app)
	body := `{"title":"Panel Upgrade","client":{"name":"Dana Whitfield","email":"dana@example.com"}}`
	req := jsonRequest(http.MethodPost, "/api/quotes", body)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	testhelpers.AssertJSONContains(t, rec.Body.String(),
		`"quote_number":"EVQ-`,
		`"status":"draft"`,
		`"title":"Panel Upgrade"`,
		`"name":"Dana Whitfield"`,
	)
}

func TestHandleQuoteCreate_DefaultTaxRate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteCreate(app)
	req := jsonRequest(http.MethodPost, "/api/quotes", `{}`)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	// Omitted tax rate falls back to the configured default, not zero.
	testhelpers.AssertJSONContains(t, rec.Body.String(), `"tax_rate":8.25`)
}

func TestHandleQuoteCreate_FromProject(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "Harborview Garage")
	handler := HandleQuoteCreate(app)
	body := `{"project_id":"` + proj.Id + `"}`
	req := jsonRequest(http.MethodPost, "/api/quotes", body)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	testhelpers.AssertJSONContains(t, rec.Body.String(), `"name":"Test Client"`)
}

func TestHandleQuoteCreate_InvalidEmail(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteCreate(app)
	body := `{"client":{"email":"not-an-email"}}`
	req := jsonRequest(http.MethodPost, "/api/quotes", body)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleQuoteCreate_BadValidUntil(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteCreate(app)
	body := `{"valid_until":"next tuesday"}`
	req := jsonRequest(http.MethodPost, "/api/quotes", body)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
