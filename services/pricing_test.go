package services

import (
	"errors"
	"math"
	"testing"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"whole", 100, 100},
		{"two_places", 10.25, 10.25},
		{"round_up", 10.255, 10.26},
		{"round_down", 10.254, 10.25},
		{"half_up", 10.005, 10.01},
		{"negative_half", -10.005, -10.01},
		{"float_artifact", 0.1 + 0.2, 0.3},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round2(tt.in)
			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCalcLineTotal(t *testing.T) {
	tests := []struct {
		name            string
		qty             float64
		unitPrice       float64
		discountPercent float64
		want            float64
	}{
		{"simple", 2, 500, 0, 1000},
		{"fractional_qty", 2.5, 100, 0, 250},
		{"with_discount", 10, 100, 10, 900},
		{"full_discount", 4, 250, 100, 0},
		{"discount_over_100_clamped", 4, 250, 150, 0},
		{"negative_discount_ignored", 2, 50, -10, 100},
		{"rounding", 3, 33.335, 0, 100.01},
		{"zero_price", 5, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcLineTotal(tt.qty, tt.unitPrice, tt.discountPercent)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("CalcLineTotal(%v, %v, %v) = %v, want %v",
					tt.qty, tt.unitPrice, tt.discountPercent, got, tt.want)
			}
		})
	}
}

func TestCalcQuoteTotals(t *testing.T) {
	tests := []struct {
		name          string
		lineTotals    []float64
		taxRate       float64
		discountType  DiscountType
		discountValue float64
		want          QuoteTotals
	}{
		{
			name:       "no_discount_no_tax",
			lineTotals: []float64{600, 400},
			want:       QuoteTotals{Subtotal: 1000, Total: 1000},
		},
		{
			name:       "ten_percent_tax",
			lineTotals: []float64{600, 400},
			taxRate:    10,
			want:       QuoteTotals{Subtotal: 1000, TaxAmount: 100, Total: 1100},
		},
		{
			name:          "percent_discount_then_tax",
			lineTotals:    []float64{1000},
			taxRate:       10,
			discountType:  DiscountPercent,
			discountValue: 20,
			want:          QuoteTotals{Subtotal: 1000, DiscountAmount: 200, TaxAmount: 80, Total: 880},
		},
		{
			name:          "fixed_discount",
			lineTotals:    []float64{500, 500},
			taxRate:       8.25,
			discountType:  DiscountFixed,
			discountValue: 100,
			want:          QuoteTotals{Subtotal: 1000, DiscountAmount: 100, TaxAmount: 74.25, Total: 974.25},
		},
		{
			name:          "fixed_discount_clamped_to_subtotal",
			lineTotals:    []float64{200},
			taxRate:       10,
			discountType:  DiscountFixed,
			discountValue: 5000,
			want:          QuoteTotals{Subtotal: 200, DiscountAmount: 200},
		},
		{
			name:          "percent_discount_over_100_clamped",
			lineTotals:    []float64{300},
			discountType:  DiscountPercent,
			discountValue: 250,
			want:          QuoteTotals{Subtotal: 300, DiscountAmount: 300},
		},
		{
			name:          "negative_discount_ignored",
			lineTotals:    []float64{100},
			discountType:  DiscountFixed,
			discountValue: -50,
			want:          QuoteTotals{Subtotal: 100, Total: 100},
		},
		{
			name:       "negative_tax_rate_ignored",
			lineTotals: []float64{100},
			taxRate:    -5,
			want:       QuoteTotals{Subtotal: 100, Total: 100},
		},
		{
			name: "empty_quote",
			want: QuoteTotals{},
		},
		{
			name:       "rounding_accumulates_per_quote",
			lineTotals: []float64{33.33, 33.33, 33.34},
			taxRate:    8.25,
			want:       QuoteTotals{Subtotal: 100, TaxAmount: 8.25, Total: 108.25},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalcQuoteTotals(tt.lineTotals, tt.taxRate, tt.discountType, tt.discountValue)
			if err != nil {
				t.Fatalf("CalcQuoteTotals() error: %v", err)
			}
			checkTotals(t, got, tt.want)
		})
	}
}

func TestCalcQuoteTotals_NegativeTotalFault(t *testing.T) {
	// Negative line totals can only come from corrupted stored data; the
	// calculator clamps the result and reports a fault.
	got, err := CalcQuoteTotals([]float64{-500}, 10, DiscountPercent, 0)
	if err == nil {
		t.Fatal("expected a computation fault for a negative total")
	}

	var fault *ComputationFault
	if !errors.As(err, &fault) {
		t.Fatalf("expected *ComputationFault, got %T: %v", err, err)
	}
	if fault.Total >= 0 {
		t.Errorf("fault.Total = %v, want negative", fault.Total)
	}
	if got.Total != 0 {
		t.Errorf("clamped Total = %v, want 0", got.Total)
	}
	if math.Abs(got.Subtotal-(-500)) > 0.001 {
		t.Errorf("Subtotal = %v, want -500", got.Subtotal)
	}
}

func checkTotals(t *testing.T, got, want QuoteTotals) {
	t.Helper()
	if math.Abs(got.Subtotal-want.Subtotal) > 0.001 {
		t.Errorf("Subtotal = %v, want %v", got.Subtotal, want.Subtotal)
	}
	if math.Abs(got.DiscountAmount-want.DiscountAmount) > 0.001 {
		t.Errorf("DiscountAmount = %v, want %v", got.DiscountAmount, want.DiscountAmount)
	}
	if math.Abs(got.TaxAmount-want.TaxAmount) > 0.001 {
		t.Errorf("TaxAmount = %v, want %v", got.TaxAmount, want.TaxAmount)
	}
	if math.Abs(got.Total-want.Total) > 0.001 {
		t.Errorf("Total = %v, want %v", got.Total, want.Total)
	}
}
