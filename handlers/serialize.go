package handlers

import (
	"github.com/pocketbase/pocketbase/core"
)

// quoteJSON flattens a quote record into the JSON shape the API returns.
func quoteJSON(q *core.Record) map[string]any {
	return map[string]any{
		"id":           q.Id,
		"quote_number": q.GetString("quote_number"),
		"title":        q.GetString("title"),
		"status":       q.GetString("status"),
		"project":      q.GetString("project"),
		"template":     q.GetString("template"),
		"client": map[string]any{
			"name":           q.GetString("client_name"),
			"company":        q.GetString("client_company"),
			"contact_person": q.GetString("client_contact_person"),
			"email":          q.GetString("client_email"),
			"phone":          q.GetString("client_phone"),
		},
		"tax_rate":        q.GetFloat("tax_rate"),
		"discount_type":   q.GetString("discount_type"),
		"discount_value":  q.GetFloat("discount_value"),
		"subtotal":        q.GetFloat("subtotal"),
		"discount_amount": q.GetFloat("discount_amount"),
		"tax_amount":      q.GetFloat("tax_amount"),
		"total":           q.GetFloat("total"),
		"valid_until":     q.GetString("valid_until"),
		"notes":           q.GetString("notes"),
		"created_by":      q.GetString("created_by"),
		"share_token":     q.GetString("share_token"),
		"created":         q.GetString("created"),
		"updated":         q.GetString("updated"),
	}
}

// lineItemJSON flattens a quote line item record.
func lineItemJSON(item *core.Record) map[string]any {
	return map[string]any{
		"id":               item.Id,
		"quote":            item.GetString("quote"),
		"product":          item.GetString("product"),
		"sort_order":       item.GetInt("sort_order"),
		"description":      item.GetString("description"),
		"category":         item.GetString("category"),
		"qty":              item.GetFloat("qty"),
		"uom":              item.GetString("uom"),
		"unit_price":       item.GetFloat("unit_price"),
		"discount_percent": item.GetFloat("discount_percent"),
		"line_total":       item.GetFloat("line_total"),
	}
}

// templateJSON flattens a quote template record.
func templateJSON(tpl *core.Record) map[string]any {
	return map[string]any{
		"id":          tpl.Id,
		"name":        tpl.GetString("name"),
		"description": tpl.GetString("description"),
		"usage_count": tpl.GetInt("usage_count"),
	}
}
