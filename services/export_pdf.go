package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF creates the client-facing quote document using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateQuotePDF(data *QuoteExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteClientBlock(m, data)
	addQuoteLineItemsTable(m, data)
	addQuoteTotals(m, data)
	addQuoteAmountInWords(m, data)
	addQuoteNotes(m, data)
	addQuoteValidity(m, data)
	addQuoteSignatures(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteHeader adds company name, "QUOTE" title, contact line, and quote number.
func addQuoteHeader(m core.Maroto, data *QuoteExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.CompanyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("QUOTE", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("%s | %s | %s", data.CompanyAddress, data.CompanyEmail, data.CompanyPhone), props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Quote #: %s", data.QuoteNumber), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addQuoteClientBlock adds the client snapshot on the left and quote metadata
// on the right.
func addQuoteClientBlock(m core.Maroto, data *QuoteExportData) {
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}
	rightLabelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	rightValueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("PREPARED FOR", labelStyle)),
			col.New(6).Add(text.New("QUOTE DETAILS", rightLabelStyle)),
		),
	)

	clientName := data.Client.Name
	if clientName == "" {
		clientName = data.Client.Company
	}
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(clientName, props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
			col.New(3).Add(text.New("Date:", rightLabelStyle)),
			col.New(3).Add(text.New(data.CreatedDate, rightValueStyle)),
		),
	)

	if data.Client.Company != "" && data.Client.Name != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(6).Add(text.New(data.Client.Company, valueStyle)),
				col.New(3).Add(text.New("Valid Until:", rightLabelStyle)),
				col.New(3).Add(text.New(data.ValidUntil, rightValueStyle)),
			),
		)
	} else {
		m.AddRows(
			row.New(7).Add(
				col.New(6),
				col.New(3).Add(text.New("Valid Until:", rightLabelStyle)),
				col.New(3).Add(text.New(data.ValidUntil, rightValueStyle)),
			),
		)
	}

	contactParts := []string{}
	if data.Client.ContactPerson != "" {
		contactParts = append(contactParts, data.Client.ContactPerson)
	}
	if data.Client.Phone != "" {
		contactParts = append(contactParts, data.Client.Phone)
	}
	if data.Client.Email != "" {
		contactParts = append(contactParts, data.Client.Email)
	}
	if len(contactParts) > 0 {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New(fmt.Sprintf("Contact: %s", joinNonEmpty(contactParts, " | ")), valueStyle)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addQuoteLineItemsTable adds the line items table with header and body rows.
func addQuoteLineItemsTable(m core.Maroto, data *QuoteExportData) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("SI No", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Category", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("UoM", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Unit Price", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Disc %", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Line Total", headerText)).WithStyle(&headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}

	for i, item := range data.LineItems {
		bodyText := props.Text{Size: 7, Align: align.Center}
		bodyTextLeft := props.Text{Size: 7, Align: align.Left}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		colSINo := col.New(1).Add(text.New(fmt.Sprintf("%d", item.SINo), bodyText))
		colDesc := col.New(4).Add(text.New(item.Description, bodyTextLeft))
		colCategory := col.New(1).Add(text.New(item.Category, bodyText))
		colQty := col.New(1).Add(text.New(FormatQty(item.Qty), bodyTextRight))
		colUoM := col.New(1).Add(text.New(item.UoM, bodyText))
		colPrice := col.New(1).Add(text.New(FormatUSD(item.UnitPrice), bodyTextRight))
		colDisc := col.New(1).Add(text.New(fmt.Sprintf("%.0f%%", item.DiscountPercent), bodyText))
		colTotal := col.New(2).Add(text.New(FormatUSD(item.LineTotal), bodyTextRight))

		if cellStyle != nil {
			colSINo = colSINo.WithStyle(cellStyle)
			colDesc = colDesc.WithStyle(cellStyle)
			colCategory = colCategory.WithStyle(cellStyle)
			colQty = colQty.WithStyle(cellStyle)
			colUoM = colUoM.WithStyle(cellStyle)
			colPrice = colPrice.WithStyle(cellStyle)
			colDisc = colDisc.WithStyle(cellStyle)
			colTotal = colTotal.WithStyle(cellStyle)
		}

		m.AddRows(
			row.New(7).Add(
				colSINo, colDesc, colCategory, colQty, colUoM,
				colPrice, colDisc, colTotal,
			),
		)
	}

	m.AddRows(row.New(2))
}

// addQuoteTotals adds right-aligned total rows.
func addQuoteTotals(m core.Maroto, data *QuoteExportData) {
	summaryBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New("Subtotal", labelStyle)).WithStyle(summaryCell),
			col.New(3).Add(text.New(FormatUSD(data.Subtotal), valueStyle)).WithStyle(summaryCell),
		),
	)

	if data.DiscountAmount > 0 {
		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(text.New("Discount", labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New("-"+FormatUSD(data.DiscountAmount), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	taxLabel := fmt.Sprintf("Tax %.2f%%", data.TaxRate)
	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New(taxLabel, labelStyle)).WithStyle(summaryCell),
			col.New(3).Add(text.New(FormatUSD(data.TaxAmount), valueStyle)).WithStyle(summaryCell),
		),
	)

	grandBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	grandCell := &props.Cell{BackgroundColor: grandBg}
	grandStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Total", grandStyle)).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatUSD(data.Total), grandStyle)).WithStyle(grandCell),
		),
	)

	m.AddRows(row.New(3))
}

// addQuoteAmountInWords adds the amount in words row.
func addQuoteAmountInWords(m core.Maroto, data *QuoteExportData) {
	if data.AmountInWords == "" {
		return
	}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Amount in Words: %s", data.AmountInWords), props.Text{
					Size:  8,
					Style: fontstyle.BoldItalic,
					Align: align.Left,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addQuoteNotes adds the notes/terms section if non-empty.
func addQuoteNotes(m core.Maroto, data *QuoteExportData) {
	if data.Notes == "" {
		return
	}

	sectionLabel := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New("NOTES & TERMS", sectionLabel)),
		),
	)
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New(data.Notes, props.Text{
				Size:  8,
				Align: align.Left,
			})),
		),
	)

	m.AddRows(row.New(3))
}

// addQuoteValidity adds the validity reminder line.
func addQuoteValidity(m core.Maroto, data *QuoteExportData) {
	if data.ValidUntil == "" {
		return
	}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New(
				fmt.Sprintf("This quote is valid until %s. Prices are subject to change after this date.", data.ValidUntil),
				props.Text{
					Size:  7,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				},
			)),
		),
	)

	m.AddRows(row.New(3))
}

// addQuoteSignatures adds the signature section at the bottom.
func addQuoteSignatures(m core.Maroto) {
	m.AddRows(row.New(10))

	lineStyle := props.Text{
		Size:  8,
		Align: align.Center,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("____________________________", lineStyle)),
			col.New(6).Add(text.New("____________________________", lineStyle)),
		),
	)

	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New("Client Acceptance", labelStyle)),
			col.New(6).Add(text.New("Authorized Signatory", labelStyle)),
		),
	)
}

// joinNonEmpty joins non-empty strings with the given separator.
func joinNonEmpty(parts []string, sep string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	result := ""
	for i, p := range nonEmpty {
		if i > 0 {
			result += sep
		}
		result += p
	}
	return result
}
