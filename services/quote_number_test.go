package services

import "testing"

func TestFormatQuoteNumber(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		sequence int
		want     string
	}{
		{"first", 2026, 1, "EVQ-2026-0001"},
		{"padded", 2026, 42, "EVQ-2026-0042"},
		{"four_digits", 2026, 9999, "EVQ-2026-9999"},
		{"overflow_keeps_digits", 2026, 10000, "EVQ-2026-10000"},
		{"other_year", 2027, 7, "EVQ-2027-0007"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatQuoteNumber(tt.year, tt.sequence); got != tt.want {
				t.Errorf("formatQuoteNumber(%d, %d) = %q, want %q", tt.year, tt.sequence, got, tt.want)
			}
		})
	}
}

func TestParseQuoteSequence(t *testing.T) {
	tests := []struct {
		name   string
		number string
		prefix string
		want   int
	}{
		{"normal", "EVQ-2026-0042", "EVQ-2026-", 42},
		{"first", "EVQ-2026-0001", "EVQ-2026-", 1},
		{"no_padding", "EVQ-2026-10000", "EVQ-2026-", 10000},
		{"wrong_year", "EVQ-2025-0042", "EVQ-2026-", 0},
		{"garbage_suffix", "EVQ-2026-abc", "EVQ-2026-", 0},
		{"empty", "", "EVQ-2026-", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseQuoteSequence(tt.number, tt.prefix); got != tt.want {
				t.Errorf("parseQuoteSequence(%q, %q) = %d, want %d", tt.number, tt.prefix, got, tt.want)
			}
		})
	}
}
