// Package services holds the quote engine: pricing, numbering, lifecycle,
// templates, repository operations, analytics and exports.
package services

import (
	"fmt"
	"math"
)

// DiscountType selects how a quote-level discount is interpreted.
type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// QuoteTotals holds the derived money fields of a quote. These are always a
// pure function of the line items plus the quote-level tax/discount settings
// and are never written by anything except RecalcQuoteTotals.
type QuoteTotals struct {
	Subtotal       float64
	DiscountAmount float64
	TaxAmount      float64
	Total          float64
}

// Round2 rounds to 2 decimal places using half-up rounding, matching currency
// semantics.
func Round2(v float64) float64 {
	if v < 0 {
		return -math.Floor(-v*100+0.5) / 100
	}
	return math.Floor(v*100+0.5) / 100
}

// CalcLineTotal computes a single line item's total. An item-level discount
// percent is folded into the line before rounding.
func CalcLineTotal(qty, unitPrice, discountPercent float64) float64 {
	if discountPercent < 0 {
		discountPercent = 0
	}
	if discountPercent > 100 {
		discountPercent = 100
	}
	return Round2(qty * unitPrice * (1 - discountPercent/100))
}

// CalcQuoteTotals computes the quote-level totals from the given line totals.
// taxRate is a percent (e.g. 8.25 for 8.25%). The quote-level discount is
// applied once at the subtotal stage, clamped to [0, subtotal]; tax is then
// computed on the discounted base.
//
// A negative or non-finite total indicates a data-entry fault, not a valid
// business state: the returned total is clamped to zero and a
// *ComputationFault error is returned for the caller to surface.
func CalcQuoteTotals(lineTotals []float64, taxRate float64, discountType DiscountType, discountValue float64) (QuoteTotals, error) {
	var subtotal float64
	for _, lt := range lineTotals {
		subtotal += lt
	}
	subtotal = Round2(subtotal)

	var discount float64
	switch discountType {
	case DiscountPercent:
		discount = Round2(subtotal * discountValue / 100)
	case DiscountFixed:
		discount = Round2(discountValue)
	}
	if discount < 0 {
		discount = 0
	}
	if subtotal >= 0 && discount > subtotal {
		discount = subtotal
	}

	if taxRate < 0 {
		taxRate = 0
	}
	tax := Round2((subtotal - discount) * taxRate / 100)

	total := Round2(subtotal - discount + tax)

	totals := QuoteTotals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxAmount:      tax,
		Total:          total,
	}

	if math.IsNaN(total) || math.IsInf(total, 0) {
		return QuoteTotals{}, &ComputationFault{Reason: "total is not a finite number", Total: total}
	}
	if total < 0 {
		totals.Total = 0
		return totals, &ComputationFault{
			Reason: fmt.Sprintf("negative total from subtotal %v, discount %v, tax %v", subtotal, discount, tax),
			Total:  total,
		}
	}

	return totals, nil
}
