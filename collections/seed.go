package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type productDef struct {
	sku         string
	name        string
	category    string
	uom         string
	unitPrice   float64
	description string
}

type templateItemDef struct {
	sortOrder       int
	description     string
	category        string
	qty             float64
	uom             string
	unitPrice       float64
	discountPercent float64
}

type templateDef struct {
	name        string
	description string
	items       []templateItemDef
}

type projectDef struct {
	name                string
	siteAddress         string
	clientName          string
	clientCompany       string
	clientContactPerson string
	clientEmail         string
	clientPhone         string
}

// Seed populates the catalog, templates and projects with realistic EV
// charging installation data. It is safe to call on every startup because
// it returns early if any product records already exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if products already exist ──────────────────
	productsCol, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return fmt.Errorf("seed: could not find products collection: %w", err)
	}
	existing, err := app.FindAllRecords(productsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query products: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: products collection is empty – inserting seed data …")

	// ── lookup helper collections ────────────────────────────────────
	templatesCol, err := app.FindCollectionByNameOrId("quote_templates")
	if err != nil {
		return fmt.Errorf("seed: could not find quote_templates collection: %w", err)
	}
	templateItemsCol, err := app.FindCollectionByNameOrId("template_line_items")
	if err != nil {
		return fmt.Errorf("seed: could not find template_line_items collection: %w", err)
	}
	projectsCol, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		return fmt.Errorf("seed: could not find projects collection: %w", err)
	}

	// ── helper: create product ───────────────────────────────────────
	createProduct := func(d productDef) error {
		r := core.NewRecord(productsCol)
		r.Set("sku", d.sku)
		r.Set("name", d.name)
		r.Set("category", d.category)
		r.Set("uom", d.uom)
		r.Set("unit_price", d.unitPrice)
		if d.description != "" {
			r.Set("description", d.description)
		}
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save product %q: %w", d.sku, err)
		}
		return nil
	}

	// ── helper: create template with items ───────────────────────────
	createTemplate := func(d templateDef) error {
		r := core.NewRecord(templatesCol)
		r.Set("name", d.name)
		r.Set("description", d.description)
		r.Set("usage_count", 0)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save template %q: %w", d.name, err)
		}

		for _, it := range d.items {
			ir := core.NewRecord(templateItemsCol)
			ir.Set("template", r.Id)
			ir.Set("sort_order", it.sortOrder)
			ir.Set("description", it.description)
			ir.Set("category", it.category)
			ir.Set("qty", it.qty)
			ir.Set("uom", it.uom)
			ir.Set("unit_price", it.unitPrice)
			ir.Set("discount_percent", it.discountPercent)
			if err := app.Save(ir); err != nil {
				return fmt.Errorf("seed: save template item %q: %w", it.description, err)
			}
		}
		return nil
	}

	// ── helper: create project ───────────────────────────────────────
	createProject := func(d projectDef) error {
		r := core.NewRecord(projectsCol)
		r.Set("name", d.name)
		r.Set("site_address", d.siteAddress)
		r.Set("client_name", d.clientName)
		r.Set("client_company", d.clientCompany)
		r.Set("client_contact_person", d.clientContactPerson)
		r.Set("client_email", d.clientEmail)
		r.Set("client_phone", d.clientPhone)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save project %q: %w", d.name, err)
		}
		return nil
	}

	// ── Product Catalog ──────────────────────────────────────────────
	products := []productDef{
		{sku: "CHG-L2-40", name: "Level 2 Charger — 40A Wall Mount", category: "charger", uom: "Each", unitPrice: 649.00, description: "40A/9.6kW single-port commercial wall unit, WiFi enabled"},
		{sku: "CHG-L2-48", name: "Level 2 Charger — 48A Pedestal", category: "charger", uom: "Each", unitPrice: 1150.00, description: "48A/11.5kW dual-port pedestal unit with cable management"},
		{sku: "CHG-DCFC-60", name: "DC Fast Charger — 60kW", category: "charger", uom: "Each", unitPrice: 28500.00, description: "60kW CCS1/NACS dual-connector fast charger"},
		{sku: "MAT-PANEL-100", name: "100A Load Center Subpanel", category: "materials", uom: "Each", unitPrice: 285.00},
		{sku: "MAT-BRKR-2P50", name: "2-Pole 50A Breaker", category: "materials", uom: "Each", unitPrice: 42.50},
		{sku: "MAT-WIRE-6AWG", name: "6 AWG THHN Copper Wire", category: "materials", uom: "Ft", unitPrice: 1.85},
		{sku: "MAT-COND-1IN", name: "1\" EMT Conduit with Fittings", category: "materials", uom: "Ft", unitPrice: 3.20},
		{sku: "MAT-BOLLARD", name: "Steel Bollard (Concrete Filled)", category: "materials", uom: "Each", unitPrice: 165.00},
		{sku: "LAB-ELEC-JW", name: "Journeyman Electrician Labor", category: "labor", uom: "Hour", unitPrice: 95.00},
		{sku: "LAB-ELEC-MS", name: "Master Electrician Labor", category: "labor", uom: "Hour", unitPrice: 135.00},
		{sku: "LAB-TRENCH", name: "Trenching & Backfill", category: "labor", uom: "Ft", unitPrice: 18.00},
		{sku: "PRM-CITY", name: "City Electrical Permit", category: "permits", uom: "Each", unitPrice: 350.00},
		{sku: "PRM-UTIL", name: "Utility Interconnection Application", category: "permits", uom: "Each", unitPrice: 500.00},
		{sku: "SVC-COMM", name: "Commissioning & Network Activation", category: "service", uom: "Each", unitPrice: 275.00},
		{sku: "SVC-MAINT-1Y", name: "Preventive Maintenance Plan (1 Year)", category: "service", uom: "Each", unitPrice: 480.00},
	}
	for _, p := range products {
		if err := createProduct(p); err != nil {
			return err
		}
	}

	// ── Quote Templates ──────────────────────────────────────────────
	if err := createTemplate(templateDef{
		name:        "Residential Level 2 Install",
		description: "Single 40A wall charger on an existing 200A service, up to 30 ft wire run",
		items: []templateItemDef{
			{sortOrder: 1, description: "Level 2 Charger — 40A Wall Mount", category: "charger", qty: 1, uom: "Each", unitPrice: 649.00},
			{sortOrder: 2, description: "2-Pole 50A Breaker", category: "materials", qty: 1, uom: "Each", unitPrice: 42.50},
			{sortOrder: 3, description: "6 AWG THHN Copper Wire", category: "materials", qty: 90, uom: "Ft", unitPrice: 1.85},
			{sortOrder: 4, description: "1\" EMT Conduit with Fittings", category: "materials", qty: 30, uom: "Ft", unitPrice: 3.20},
			{sortOrder: 5, description: "Journeyman Electrician Labor", category: "labor", qty: 6, uom: "Hour", unitPrice: 95.00},
			{sortOrder: 6, description: "City Electrical Permit", category: "permits", qty: 1, uom: "Each", unitPrice: 350.00},
		},
	}); err != nil {
		return err
	}

	if err := createTemplate(templateDef{
		name:        "Commercial Dual-Port Pedestal",
		description: "Two dual-port pedestal chargers with subpanel, trenching and commissioning",
		items: []templateItemDef{
			{sortOrder: 1, description: "Level 2 Charger — 48A Pedestal", category: "charger", qty: 2, uom: "Each", unitPrice: 1150.00, discountPercent: 5},
			{sortOrder: 2, description: "100A Load Center Subpanel", category: "materials", qty: 1, uom: "Each", unitPrice: 285.00},
			{sortOrder: 3, description: "2-Pole 50A Breaker", category: "materials", qty: 4, uom: "Each", unitPrice: 42.50},
			{sortOrder: 4, description: "6 AWG THHN Copper Wire", category: "materials", qty: 360, uom: "Ft", unitPrice: 1.85},
			{sortOrder: 5, description: "Trenching & Backfill", category: "labor", qty: 60, uom: "Ft", unitPrice: 18.00},
			{sortOrder: 6, description: "Steel Bollard (Concrete Filled)", category: "materials", qty: 4, uom: "Each", unitPrice: 165.00},
			{sortOrder: 7, description: "Journeyman Electrician Labor", category: "labor", qty: 24, uom: "Hour", unitPrice: 95.00},
			{sortOrder: 8, description: "Master Electrician Labor", category: "labor", qty: 4, uom: "Hour", unitPrice: 135.00},
			{sortOrder: 9, description: "City Electrical Permit", category: "permits", qty: 1, uom: "Each", unitPrice: 350.00},
			{sortOrder: 10, description: "Utility Interconnection Application", category: "permits", qty: 1, uom: "Each", unitPrice: 500.00},
			{sortOrder: 11, description: "Commissioning & Network Activation", category: "service", qty: 2, uom: "Each", unitPrice: 275.00},
		},
	}); err != nil {
		return err
	}

	// ── Projects ─────────────────────────────────────────────────────
	if err := createProject(projectDef{
		name:                "Harborview Apartments — Garage Retrofit",
		siteAddress:         "1420 Harborview Dr, Tacoma, WA 98402",
		clientName:          "Dana Whitfield",
		clientCompany:       "Harborview Property Group LLC",
		clientContactPerson: "Dana Whitfield",
		clientEmail:         "dwhitfield@harborviewpg.com",
		clientPhone:         "(253) 555-0147",
	}); err != nil {
		return err
	}

	if err := createProject(projectDef{
		name:                "Cedar Ridge Office Park — Phase 1",
		siteAddress:         "8800 Cedar Ridge Pkwy, Bellevue, WA 98004",
		clientName:          "Marcus Tran",
		clientCompany:       "Cedar Ridge Commercial Partners",
		clientContactPerson: "Marcus Tran",
		clientEmail:         "mtran@cedarridgecp.com",
		clientPhone:         "(425) 555-0192",
	}); err != nil {
		return err
	}

	log.Println("seed: all seed data inserted successfully (15 products, 2 templates, 2 projects)")
	return nil
}
