package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"
)

// InstantiateTemplate materializes a new draft quote from a template: the
// template's line items are deep-copied (the quote never shares state with
// the template), a fresh id/number/share token are assigned, and the
// template's usage_count is incremented exactly once, all in a single
// transaction, so a failed instantiation leaves the counter untouched.
func InstantiateTemplate(app core.App, templateID string, now time.Time, in CreateQuoteInput) (*core.Record, error) {
	if err := in.Validate(); err != nil {
		return nil, validationErr(err)
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
		tpl, err := txApp.FindRecordById("quote_templates", templateID)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrTemplateNotFound, templateID)
		}

		tplItems, err := txApp.FindRecordsByFilter(
			"template_line_items",
			"template = {:templateId}",
			"sort_order",
			0,
			0,
			map[string]any{"templateId": templateID},
		)
		if err != nil {
			return fmt.Errorf("template: could not query template line items: %w", err)
		}

		quotesCol, err := txApp.FindCollectionByNameOrId("quotes")
		if err != nil {
			return fmt.Errorf("template: could not find quotes collection: %w", err)
		}

		record := core.NewRecord(quotesCol)
		record.Set("status", string(StatusDraft))
		record.Set("project", in.ProjectID)
		record.Set("template", templateID)
		title := in.Title
		if title == "" {
			title = tpl.GetString("name")
		}
		record.Set("title", title)
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

		itemsCol, err := txApp.FindCollectionByNameOrId("quote_line_items")
		if err != nil {
			return fmt.Errorf("template: could not find quote_line_items collection: %w", err)
		}
		for _, tplItem := range tplItems {
			item := core.NewRecord(itemsCol)
			item.Set("quote", record.Id)
			item.Set("sort_order", tplItem.GetInt("sort_order"))
			item.Set("description", tplItem.GetString("description"))
			item.Set("category", categoryOrDefault(tplItem.GetString("category")))
			item.Set("qty", tplItem.GetFloat("qty"))
			item.Set("uom", tplItem.GetString("uom"))
			item.Set("unit_price", tplItem.GetFloat("unit_price"))
			item.Set("discount_percent", tplItem.GetFloat("discount_percent"))
			item.Set("line_total", CalcLineTotal(
				tplItem.GetFloat("qty"),
				tplItem.GetFloat("unit_price"),
				tplItem.GetFloat("discount_percent"),
			))
			if err := txApp.Save(item); err != nil {
				return fmt.Errorf("template: could not copy template item %s: %w", tplItem.Id, err)
			}
		}

		tpl.Set("usage_count", tpl.GetInt("usage_count")+1)
		if err := txApp.Save(tpl); err != nil {
			return fmt.Errorf("template: could not update usage count of %s: %w", templateID, err)
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

// ListTemplates returns all quote templates ordered by name.
func ListTemplates(app core.App) ([]*core.Record, error) {
	records, err := app.FindRecordsByFilter("quote_templates", "", "name", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("template: could not list templates: %w", err)
	}
	return records, nil
}
