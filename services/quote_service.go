package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"

	"quoteportal/config"
)

// quoteSaveAttempts bounds the unique-collision retry loop on quote numbers.
const quoteSaveAttempts = 3

// CreateQuote creates a new quote in draft status. When in.TemplateID is set
// the template engine takes over; otherwise a blank quote is created, with
// the client snapshot copied from the referenced project for any client
// field the caller left blank.
func CreateQuote(app core.App, now time.Time, in CreateQuoteInput) (*core.Record, error) {
	if err := in.Validate(); err != nil {
		return nil, validationErr(err)
	}

	if in.TemplateID != "" {
		return InstantiateTemplate(app, in.TemplateID, now, in)
	}

	if in.ProjectID != "" {
		project, err := app.FindRecordById("projects", in.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("%w: project %s", ErrNotFound, in.ProjectID)
		}
		in.Client = snapshotClientFromProject(project, in.Client)
	}

	validUntil, err := resolveValidUntil(in.ValidUntil, now)
	if err != nil {
		return nil, err
	}

	var quote *core.Record
	txErr := app.RunInTransaction(func(txApp core.App) error {
		col, err := txApp.FindCollectionByNameOrId("quotes")
		if err != nil {
			return fmt.Errorf("quote_service: could not find quotes collection: %w", err)
		}

		record := core.NewRecord(col)
		record.Set("status", string(StatusDraft))
		record.Set("project", in.ProjectID)
		record.Set("title", in.Title)
		setClientFields(record, in.Client)
		record.Set("tax_rate", in.TaxRate)
		record.Set("discount_type", string(discountTypeOrDefault(in.DiscountType)))
		record.Set("discount_value", in.DiscountValue)
		record.Set("valid_until", validUntil.UTC())
		record.Set("created_by", in.CreatedBy)
		record.Set("notes", in.Notes)
		record.Set("share_token", uuid.NewString())

		if err := saveWithFreshNumber(txApp, record, now); err != nil {
			return err
		}

		if err := recalcIgnoringFault(txApp, record.Id); err != nil {
			return err
		}

		// The recalc saved its own copy; reload so the returned record
		// carries the computed totals.
		quote, err = txApp.FindRecordById("quotes", record.Id)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return quote, nil
}

// saveWithFreshNumber assigns a quote number and saves, regenerating the
// number and retrying when the unique index rejects a concurrent duplicate.
func saveWithFreshNumber(txApp core.App, record *core.Record, now time.Time) error {
	autoTitle := record.GetString("title") == ""
	for attempt := 1; ; attempt++ {
		number, err := GenerateQuoteNumber(txApp, now)
		if err != nil {
			return err
		}
		record.Set("quote_number", number)
		if autoTitle {
			// Re-derive on every attempt so a collision retry cannot
			// leave a stale number in the title.
			record.Set("title", "Quote "+number)
		}

		err = txApp.Save(record)
		if err == nil {
			return nil
		}
		if attempt < quoteSaveAttempts && isUniqueViolation(err) {
			log.Printf("quote_service: quote number %s collided, retrying: %v", number, err)
			continue
		}
		return fmt.Errorf("quote_service: could not save quote: %w", err)
	}
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}

// GetQuote returns a quote by id, applying the lazy expiry rule: an overdue
// non-terminal quote is transitioned to expired and persisted before being
// returned.
func GetQuote(app core.App, id string, now time.Time) (*core.Record, error) {
	quote, err := app.FindRecordById("quotes", id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	current := Status(quote.GetString("status"))
	effective := EffectiveStatus(current, quote.GetDateTime("valid_until").Time(), now)
	if effective != current {
		quote.Set("status", string(effective))
		if err := app.Save(quote); err != nil {
			return nil, fmt.Errorf("quote_service: could not persist expiry of %s: %w", id, err)
		}
	}
	return quote, nil
}

// UpdateQuote applies a typed partial update. Caller-supplied totals are
// impossible by construction (QuotePatch has no totals fields); totals are
// re-derived after the merge since tax or discount settings may change.
func UpdateQuote(app core.App, id string, patch QuotePatch) (*core.Record, error) {
	if err := patch.Validate(); err != nil {
		return nil, validationErr(err)
	}

	var quote *core.Record
	var fault error
	txErr := app.RunInTransaction(func(txApp core.App) error {
		record, err := txApp.FindRecordById("quotes", id)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}

		applyQuotePatch(record, patch)

		if patch.ValidUntil != nil {
			created := record.GetDateTime("created").Time()
			if patch.ValidUntil.Before(created) {
				return validationErr(errors.New("valid_until cannot be before the quote's creation time"))
			}
			record.Set("valid_until", patch.ValidUntil.UTC())
		}

		if err := txApp.Save(record); err != nil {
			return fmt.Errorf("quote_service: could not save quote %s: %w", id, err)
		}

		fault, err = splitComputationFault(RecalcQuoteTotals(txApp, id))
		if err != nil {
			return err
		}

		quote, err = txApp.FindRecordById("quotes", id)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return quote, fault
}

func applyQuotePatch(record *core.Record, patch QuotePatch) {
	if patch.Title != nil {
		record.Set("title", *patch.Title)
	}
	if patch.ClientName != nil {
		record.Set("client_name", *patch.ClientName)
	}
	if patch.ClientCompany != nil {
		record.Set("client_company", *patch.ClientCompany)
	}
	if patch.ClientContactPerson != nil {
		record.Set("client_contact_person", *patch.ClientContactPerson)
	}
	if patch.ClientEmail != nil {
		record.Set("client_email", *patch.ClientEmail)
	}
	if patch.ClientPhone != nil {
		record.Set("client_phone", *patch.ClientPhone)
	}
	if patch.TaxRate != nil {
		record.Set("tax_rate", *patch.TaxRate)
	}
	if patch.DiscountType != nil {
		record.Set("discount_type", string(*patch.DiscountType))
	}
	if patch.DiscountValue != nil {
		record.Set("discount_value", *patch.DiscountValue)
	}
	if patch.CreatedBy != nil {
		record.Set("created_by", *patch.CreatedBy)
	}
	if patch.Notes != nil {
		record.Set("notes", *patch.Notes)
	}
}

// DeleteQuote removes a quote and (via cascade) its line items. It returns
// whether a record existed. Templates are never touched.
func DeleteQuote(app core.App, id string) (bool, error) {
	quote, err := app.FindRecordById("quotes", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("quote_service: could not load quote %s: %w", id, err)
	}
	if err := app.Delete(quote); err != nil {
		return true, fmt.Errorf("quote_service: could not delete quote %s: %w", id, err)
	}
	return true, nil
}

// DuplicateQuote deep-copies a quote into a fresh draft: new id, new quote
// number, new share token, reset status, copied client snapshot and pricing
// settings, and independent copies of every line item. The validity window
// restarts from now.
func DuplicateQuote(app core.App, id string, now time.Time) (*core.Record, error) {
	var copyRec *core.Record
	txErr := app.RunInTransaction(func(txApp core.App) error {
		source, err := txApp.FindRecordById("quotes", id)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}

		items, err := findQuoteLineItems(txApp, id)
		if err != nil {
			return err
		}

		col, err := txApp.FindCollectionByNameOrId("quotes")
		if err != nil {
			return fmt.Errorf("quote_service: could not find quotes collection: %w", err)
		}

		record := core.NewRecord(col)
		record.Set("status", string(StatusDraft))
		record.Set("title", source.GetString("title")+" (Copy)")
		record.Set("project", source.GetString("project"))
		record.Set("template", source.GetString("template"))
		setClientFields(record, ClientInfo{
			Name:          source.GetString("client_name"),
			Company:       source.GetString("client_company"),
			ContactPerson: source.GetString("client_contact_person"),
			Email:         source.GetString("client_email"),
			Phone:         source.GetString("client_phone"),
		})
		record.Set("tax_rate", source.GetFloat("tax_rate"))
		record.Set("discount_type", source.GetString("discount_type"))
		record.Set("discount_value", source.GetFloat("discount_value"))
		record.Set("valid_until", now.AddDate(0, 0, config.Get().DefaultValidDays).UTC())
		record.Set("created_by", source.GetString("created_by"))
		record.Set("notes", source.GetString("notes"))
		record.Set("share_token", uuid.NewString())

		if err := saveWithFreshNumber(txApp, record, now); err != nil {
			return err
		}

		itemsCol, err := txApp.FindCollectionByNameOrId("quote_line_items")
		if err != nil {
			return fmt.Errorf("quote_service: could not find quote_line_items collection: %w", err)
		}
		for _, item := range items {
			dup := core.NewRecord(itemsCol)
			dup.Set("quote", record.Id)
			dup.Set("sort_order", item.GetInt("sort_order"))
			dup.Set("description", item.GetString("description"))
			dup.Set("category", item.GetString("category"))
			dup.Set("qty", item.GetFloat("qty"))
			dup.Set("uom", item.GetString("uom"))
			dup.Set("unit_price", item.GetFloat("unit_price"))
			dup.Set("discount_percent", item.GetFloat("discount_percent"))
			dup.Set("line_total", item.GetFloat("line_total"))
			dup.Set("product", item.GetString("product"))
			if err := txApp.Save(dup); err != nil {
				return fmt.Errorf("quote_service: could not copy line item %s: %w", item.Id, err)
			}
		}

		if err := recalcIgnoringFault(txApp, record.Id); err != nil {
			return err
		}

		// The recalc saved its own copy; reload so the returned record
		// carries the computed totals.
		copyRec, err = txApp.FindRecordById("quotes", record.Id)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return copyRec, nil
}

// TransitionQuote validates and applies a status change. The lazy expiry
// rule runs first, so an overdue quote rejects further transitions the same
// way a swept one would.
func TransitionQuote(app core.App, id string, target Status, now time.Time) (*core.Record, error) {
	if !IsValidStatus(target) {
		return nil, validationErr(fmt.Errorf("unknown status %q", target))
	}

	quote, err := GetQuote(app, id, now)
	if err != nil {
		return nil, err
	}

	current := Status(quote.GetString("status"))
	if err := Transition(current, target); err != nil {
		return nil, err
	}

	quote.Set("status", string(target))
	if err := app.Save(quote); err != nil {
		return nil, fmt.Errorf("quote_service: could not save status of %s: %w", id, err)
	}
	return quote, nil
}

// AddLineItem appends a line item to a quote and recomputes its totals in
// the same transaction. When ProductID is set, blank fields are snapshotted
// from the catalog record.
func AddLineItem(app core.App, quoteID string, in LineItemInput) (*core.Record, error) {
	if err := in.Validate(); err != nil {
		return nil, validationErr(err)
	}

	var item *core.Record
	var fault error
	txErr := app.RunInTransaction(func(txApp core.App) error {
		if _, err := txApp.FindRecordById("quotes", quoteID); err != nil {
			return fmt.Errorf("%w: %s", ErrNotFound, quoteID)
		}

		if in.ProductID != "" {
			product, err := txApp.FindRecordById("products", in.ProductID)
			if err != nil {
				return fmt.Errorf("%w: product %s", ErrNotFound, in.ProductID)
			}
			in = snapshotFromProduct(product, in)
		}

		col, err := txApp.FindCollectionByNameOrId("quote_line_items")
		if err != nil {
			return fmt.Errorf("quote_service: could not find quote_line_items collection: %w", err)
		}

		record := core.NewRecord(col)
		record.Set("quote", quoteID)
		record.Set("sort_order", nextSortOrder(txApp, quoteID))
		record.Set("description", in.Description)
		record.Set("category", categoryOrDefault(in.Category))
		record.Set("qty", in.Qty)
		record.Set("uom", in.UoM)
		record.Set("unit_price", in.UnitPrice)
		record.Set("discount_percent", in.DiscountPercent)
		record.Set("line_total", CalcLineTotal(in.Qty, in.UnitPrice, in.DiscountPercent))
		record.Set("product", in.ProductID)

		if err := txApp.Save(record); err != nil {
			return fmt.Errorf("quote_service: could not save line item: %w", err)
		}

		fault, err = splitComputationFault(RecalcQuoteTotals(txApp, quoteID))
		if err != nil {
			return err
		}

		item = record
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return item, fault
}

// UpdateLineItem applies a partial update to a line item and recomputes both
// the line total and the quote totals.
func UpdateLineItem(app core.App, quoteID, itemID string, patch LineItemPatch) (*core.Record, error) {
	if err := patch.Validate(); err != nil {
		return nil, validationErr(err)
	}
	if patch.Qty != nil && *patch.Qty <= 0 {
		return nil, validationErr(errors.New("qty must be greater than zero"))
	}

	var item *core.Record
	var fault error
	txErr := app.RunInTransaction(func(txApp core.App) error {
		record, err := findOwnedLineItem(txApp, quoteID, itemID)
		if err != nil {
			return err
		}

		if patch.Description != nil {
			record.Set("description", *patch.Description)
		}
		if patch.Category != nil {
			record.Set("category", categoryOrDefault(*patch.Category))
		}
		if patch.Qty != nil {
			record.Set("qty", *patch.Qty)
		}
		if patch.UoM != nil {
			record.Set("uom", *patch.UoM)
		}
		if patch.UnitPrice != nil {
			record.Set("unit_price", *patch.UnitPrice)
		}
		if patch.DiscountPercent != nil {
			record.Set("discount_percent", *patch.DiscountPercent)
		}
		record.Set("line_total", CalcLineTotal(
			record.GetFloat("qty"),
			record.GetFloat("unit_price"),
			record.GetFloat("discount_percent"),
		))

		if err := txApp.Save(record); err != nil {
			return fmt.Errorf("quote_service: could not save line item %s: %w", itemID, err)
		}

		fault, err = splitComputationFault(RecalcQuoteTotals(txApp, quoteID))
		if err != nil {
			return err
		}

		item = record
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return item, fault
}

// DeleteLineItem removes a line item and recomputes the quote totals.
func DeleteLineItem(app core.App, quoteID, itemID string) error {
	var fault error
	txErr := app.RunInTransaction(func(txApp core.App) error {
		record, err := findOwnedLineItem(txApp, quoteID, itemID)
		if err != nil {
			return err
		}
		if err := txApp.Delete(record); err != nil {
			return fmt.Errorf("quote_service: could not delete line item %s: %w", itemID, err)
		}
		fault, err = splitComputationFault(RecalcQuoteTotals(txApp, quoteID))
		return err
	})
	if txErr != nil {
		return txErr
	}
	return fault
}

// RecalcQuoteTotals re-derives every line total and the quote-level totals
// from the stored line items. This is the only code path that writes the
// totals fields. On a computation fault the clamped totals are still
// persisted and the fault is returned for the caller to surface.
func RecalcQuoteTotals(app core.App, quoteID string) error {
	quote, err := app.FindRecordById("quotes", quoteID)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, quoteID)
	}

	items, err := findQuoteLineItems(app, quoteID)
	if err != nil {
		return err
	}

	lineTotals := make([]float64, 0, len(items))
	for _, item := range items {
		lineTotal := CalcLineTotal(
			item.GetFloat("qty"),
			item.GetFloat("unit_price"),
			item.GetFloat("discount_percent"),
		)
		if lineTotal != item.GetFloat("line_total") {
			item.Set("line_total", lineTotal)
			if err := app.Save(item); err != nil {
				return fmt.Errorf("quote_service: could not save line total of %s: %w", item.Id, err)
			}
		}
		lineTotals = append(lineTotals, lineTotal)
	}

	totals, calcErr := CalcQuoteTotals(
		lineTotals,
		quote.GetFloat("tax_rate"),
		DiscountType(quote.GetString("discount_type")),
		quote.GetFloat("discount_value"),
	)

	quote.Set("subtotal", totals.Subtotal)
	quote.Set("discount_amount", totals.DiscountAmount)
	quote.Set("tax_amount", totals.TaxAmount)
	quote.Set("total", totals.Total)
	if err := app.Save(quote); err != nil {
		return fmt.Errorf("quote_service: could not save totals of %s: %w", quoteID, err)
	}

	return calcErr
}

// ── helpers ──────────────────────────────────────────────────────────────

// splitComputationFault lets transactional callers commit despite a
// computation fault (the totals are clamped, the fault is reported) while
// still aborting on real errors.
func splitComputationFault(err error) (fault error, fatal error) {
	if err == nil {
		return nil, nil
	}
	var cf *ComputationFault
	if errors.As(err, &cf) {
		return cf, nil
	}
	return nil, err
}

func recalcIgnoringFault(txApp core.App, quoteID string) error {
	_, err := splitComputationFault(RecalcQuoteTotals(txApp, quoteID))
	return err
}

// QuoteLineItems returns the line items of a quote ordered by sort_order.
func QuoteLineItems(app core.App, quoteID string) ([]*core.Record, error) {
	return findQuoteLineItems(app, quoteID)
}

func findQuoteLineItems(app core.App, quoteID string) ([]*core.Record, error) {
	items, err := app.FindRecordsByFilter(
		"quote_line_items",
		"quote = {:quoteId}",
		"sort_order",
		0,
		0,
		map[string]any{"quoteId": quoteID},
	)
	if err != nil {
		return nil, fmt.Errorf("quote_service: could not query line items of %s: %w", quoteID, err)
	}
	return items, nil
}

func findOwnedLineItem(app core.App, quoteID, itemID string) (*core.Record, error) {
	record, err := app.FindRecordById("quote_line_items", itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: line item %s", ErrNotFound, itemID)
	}
	if record.GetString("quote") != quoteID {
		return nil, fmt.Errorf("%w: line item %s does not belong to quote %s", ErrNotFound, itemID, quoteID)
	}
	return record, nil
}

func nextSortOrder(app core.App, quoteID string) int {
	existing, err := app.FindRecordsByFilter(
		"quote_line_items",
		"quote = {:quoteId}",
		"-sort_order",
		1,
		0,
		map[string]any{"quoteId": quoteID},
	)
	if err != nil || len(existing) == 0 {
		return 1
	}
	return existing[0].GetInt("sort_order") + 1
}

func setClientFields(record *core.Record, client ClientInfo) {
	record.Set("client_name", client.Name)
	record.Set("client_company", client.Company)
	record.Set("client_contact_person", client.ContactPerson)
	record.Set("client_email", client.Email)
	record.Set("client_phone", client.Phone)
}

// snapshotClientFromProject copies project contact fields into any client
// field the caller left blank. The result is a snapshot on the quote; later
// project edits do not propagate.
func snapshotClientFromProject(project *core.Record, client ClientInfo) ClientInfo {
	if client.Name == "" {
		client.Name = project.GetString("client_name")
	}
	if client.Company == "" {
		client.Company = project.GetString("client_company")
	}
	if client.ContactPerson == "" {
		client.ContactPerson = project.GetString("client_contact_person")
	}
	if client.Email == "" {
		client.Email = project.GetString("client_email")
	}
	if client.Phone == "" {
		client.Phone = project.GetString("client_phone")
	}
	return client
}

// snapshotFromProduct fills blank line item fields from a catalog record.
func snapshotFromProduct(product *core.Record, in LineItemInput) LineItemInput {
	if in.Description == "" {
		in.Description = product.GetString("name")
	}
	if in.UoM == "" {
		in.UoM = product.GetString("uom")
	}
	if in.UnitPrice == 0 {
		in.UnitPrice = product.GetFloat("unit_price")
	}
	if in.Category == "" {
		in.Category = product.GetString("category")
	}
	return in
}

func categoryOrDefault(category string) string {
	if category == "" {
		return "other"
	}
	return category
}

func discountTypeOrDefault(dt DiscountType) DiscountType {
	if dt == "" {
		return DiscountPercent
	}
	return dt
}

func resolveValidUntil(requested time.Time, now time.Time) (time.Time, error) {
	if requested.IsZero() {
		return now.AddDate(0, 0, config.Get().DefaultValidDays), nil
	}
	if requested.Before(now) {
		return time.Time{}, validationErr(errors.New("valid_until cannot be in the past"))
	}
	return requested, nil
}
