package services

import "testing"

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "$0.00"},
		{"whole", 1000, "$1,000.00"},
		{"cents", 1234.5, "$1,234.50"},
		{"millions", 1234567.89, "$1,234,567.89"},
		{"small", 0.99, "$0.99"},
		{"negative", -250.75, "-$250.75"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatUSD(tt.in); got != tt.want {
				t.Errorf("FormatUSD(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatQty(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"whole", 10, "10"},
		{"half", 2.5, "2.5"},
		{"two_places", 1.25, "1.25"},
		{"trailing_zero", 3.10, "3.1"},
		{"zero", 0, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatQty(tt.in); got != tt.want {
				t.Errorf("FormatQty(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAmountToWords(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "Zero Dollars Only"},
		{"one", 1, "One Dollar Only"},
		{"teens", 17, "Seventeen Dollars Only"},
		{"hundreds", 250, "Two Hundred Fifty Dollars Only"},
		{"thousand_scenario", 1100, "One Thousand One Hundred Dollars Only"},
		{"with_cents", 1234.56, "One Thousand Two Hundred Thirty Four Dollars and Fifty Six Cents Only"},
		{"one_cent", 0.01, "One Cent Only"},
		{"millions", 2000000, "Two Million Dollars Only"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AmountToWords(tt.in); got != tt.want {
				t.Errorf("AmountToWords(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
