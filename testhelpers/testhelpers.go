// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteportal/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestProject creates a project record with the given name and returns it.
func CreateTestProject(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		t.Fatalf("failed to find projects collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("site_address", "100 Test Ave, Tacoma, WA 98402")
	record.Set("client_name", "Test Client")
	record.Set("client_company", "Test Client LLC")
	record.Set("client_email", "client@example.com")
	record.Set("client_phone", "(253) 555-0100")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test project: %v", err)
	}

	return record
}

// CreateTestProduct creates a catalog product record and returns it.
func CreateTestProduct(t *testing.T, app *pocketbase.PocketBase, sku, name, category string, unitPrice float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		t.Fatalf("failed to find products collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("sku", sku)
	record.Set("name", name)
	record.Set("category", category)
	record.Set("uom", "Each")
	record.Set("unit_price", unitPrice)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test product: %v", err)
	}

	return record
}

// CreateTestTemplate creates a quote template record and returns it.
func CreateTestTemplate(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quote_templates")
	if err != nil {
		t.Fatalf("failed to find quote_templates collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("usage_count", 0)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test template: %v", err)
	}

	return record
}

// CreateTestTemplateItem creates a template line item record.
func CreateTestTemplateItem(t *testing.T, app *pocketbase.PocketBase, templateID string, sortOrder int, description string, qty, unitPrice float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("template_line_items")
	if err != nil {
		t.Fatalf("failed to find template_line_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("template", templateID)
	record.Set("sort_order", sortOrder)
	record.Set("description", description)
	record.Set("category", "materials")
	record.Set("qty", qty)
	record.Set("uom", "Each")
	record.Set("unit_price", unitPrice)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test template item: %v", err)
	}

	return record
}

// CreateTestQuote creates a quote record with sensible defaults and returns it.
// The stored totals are zero; callers that need derived totals should add line
// items and recompute.
func CreateTestQuote(t *testing.T, app *pocketbase.PocketBase, quoteNumber string, status string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote_number", quoteNumber)
	record.Set("title", "Quote "+quoteNumber)
	record.Set("status", status)
	record.Set("client_name", "Test Client")
	record.Set("tax_rate", 8.25)
	record.Set("discount_type", "percent")
	record.Set("valid_until", time.Now().AddDate(0, 0, 30).UTC())
	record.Set("share_token", uuid.NewString())

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}

	return record
}

// CreateTestLineItem creates a quote line item with the given pricing fields.
// line_total is stored as qty*unitPrice; tests exercising the recompute path
// overwrite it deliberately.
func CreateTestLineItem(t *testing.T, app *pocketbase.PocketBase, quoteID string, sortOrder int, description string, qty, unitPrice float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quote_line_items")
	if err != nil {
		t.Fatalf("failed to find quote_line_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote", quoteID)
	record.Set("sort_order", sortOrder)
	record.Set("description", description)
	record.Set("category", "materials")
	record.Set("qty", qty)
	record.Set("uom", "Each")
	record.Set("unit_price", unitPrice)
	record.Set("discount_percent", 0)
	record.Set("line_total", qty*unitPrice)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test line item: %v", err)
	}

	return record
}

// AssertJSONContains checks that body contains all specified fragments.
func AssertJSONContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected response to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
