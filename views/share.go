// Package views renders the public-facing HTML pages.
package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"quoteportal/services"
)

// SharePage renders the read-only quote view served behind a share link.
// Clients open it from the emailed URL; no authentication is required.
func SharePage(data *services.QuoteExportData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<title>Quote %s — %s</title>",
			templ.EscapeString(data.QuoteNumber), templ.EscapeString(data.CompanyName)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<style>
body{font-family:system-ui,sans-serif;max-width:860px;margin:2rem auto;padding:0 1rem;color:#212529}
header{display:flex;justify-content:space-between;align-items:baseline;border-bottom:3px solid #212529;padding-bottom:.75rem}
h1{font-size:1.6rem;margin:0}
.muted{color:#6c757d;font-size:.85rem}
table{width:100%;border-collapse:collapse;margin:1.5rem 0}
th{background:#212529;color:#fff;padding:.5rem;font-size:.8rem;text-align:left}
td{padding:.5rem;border-bottom:1px solid #dee2e6;font-size:.9rem}
td.num,th.num{text-align:right}
.totals{margin-left:auto;width:280px}
.totals td{border:none;padding:.3rem .5rem}
.totals tr.grand td{background:#212529;color:#fff;font-weight:700}
.validity{background:#fff3cd;border:1px solid #ffe69c;padding:.75rem;border-radius:4px;font-size:.85rem}
</style></head><body>`); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<header><div><h1>%s</h1><div class="muted">%s</div></div><div><strong>QUOTE</strong><div class="muted">%s</div></div></header>`,
			templ.EscapeString(data.CompanyName),
			templ.EscapeString(data.CompanyAddress),
			templ.EscapeString(data.QuoteNumber)); err != nil {
			return err
		}

		clientName := data.Client.Name
		if clientName == "" {
			clientName = data.Client.Company
		}
		if _, err := fmt.Fprintf(w, `<p>Prepared for <strong>%s</strong>`, templ.EscapeString(clientName)); err != nil {
			return err
		}
		if data.Client.Company != "" && data.Client.Name != "" {
			if _, err := fmt.Fprintf(w, `, %s`, templ.EscapeString(data.Client.Company)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, ` on %s.</p>`, templ.EscapeString(data.CreatedDate)); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<table><thead><tr><th>#</th><th>Description</th><th>Category</th><th class="num">Qty</th><th>UoM</th><th class="num">Unit Price</th><th class="num">Line Total</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, item := range data.LineItems {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%d</td><td>%s</td><td>%s</td><td class="num">%s</td><td>%s</td><td class="num">%s</td><td class="num">%s</td></tr>`,
				item.SINo,
				templ.EscapeString(item.Description),
				templ.EscapeString(item.Category),
				templ.EscapeString(services.FormatQty(item.Qty)),
				templ.EscapeString(item.UoM),
				templ.EscapeString(services.FormatUSD(item.UnitPrice)),
				templ.EscapeString(services.FormatUSD(item.LineTotal)),
			); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tbody></table>`); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<table class="totals"><tr><td>Subtotal</td><td class="num">%s</td></tr>`,
			templ.EscapeString(services.FormatUSD(data.Subtotal))); err != nil {
			return err
		}
		if data.DiscountAmount > 0 {
			if _, err := fmt.Fprintf(w, `<tr><td>Discount</td><td class="num">-%s</td></tr>`,
				templ.EscapeString(services.FormatUSD(data.DiscountAmount))); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<tr><td>Tax (%.2f%%)</td><td class="num">%s</td></tr><tr class="grand"><td>Total</td><td class="num">%s</td></tr></table>`,
			data.TaxRate,
			templ.EscapeString(services.FormatUSD(data.TaxAmount)),
			templ.EscapeString(services.FormatUSD(data.Total))); err != nil {
			return err
		}

		if data.Notes != "" {
			if _, err := fmt.Fprintf(w, `<p class="muted">%s</p>`, templ.EscapeString(data.Notes)); err != nil {
				return err
			}
		}

		if data.ValidUntil != "" {
			if _, err := fmt.Fprintf(w, `<div class="validity">This quote is valid until <strong>%s</strong>. Contact %s with any questions.</div>`,
				templ.EscapeString(data.ValidUntil),
				templ.EscapeString(data.CompanyEmail)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
