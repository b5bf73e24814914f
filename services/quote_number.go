package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

const quoteNumberPrefix = "EVQ"

// formatQuoteNumber constructs the quote number string from components.
// Format: EVQ-{year}-{sequence}, e.g. "EVQ-2026-0042".
func formatQuoteNumber(year int, sequence int) string {
	return fmt.Sprintf("%s-%d-%04d", quoteNumberPrefix, year, sequence)
}

// parseQuoteSequence extracts the numeric sequence from a quote number with
// the given prefix (e.g. "EVQ-2026-"). Returns 0 for malformed numbers.
func parseQuoteSequence(quoteNumber, prefix string) int {
	if !strings.HasPrefix(quoteNumber, prefix) {
		return 0
	}
	seq, err := strconv.Atoi(strings.TrimPrefix(quoteNumber, prefix))
	if err != nil {
		return 0
	}
	return seq
}

// GenerateQuoteNumber creates the next quote number for the given time.
// The sequence restarts every calendar year and is derived from the highest
// existing sequence rather than a record count, so deleting quotes can never
// cause a number to be reissued. Uniqueness under concurrent callers is
// still enforced by the unique index on quotes.quote_number; CreateQuote
// retries with the next sequence when a save collides.
func GenerateQuoteNumber(app core.App, now time.Time) (string, error) {
	year := now.Year()
	prefix := fmt.Sprintf("%s-%d-", quoteNumberPrefix, year)

	existing, err := app.FindRecordsByFilter(
		"quotes",
		"quote_number ~ {:prefix}",
		"-quote_number",
		0,
		0,
		map[string]any{"prefix": prefix + "%"},
	)
	if err != nil {
		return "", fmt.Errorf("quote_number: could not query quotes: %w", err)
	}

	maxSeq := 0
	for _, rec := range existing {
		if seq := parseQuoteSequence(rec.GetString("quote_number"), prefix); seq > maxSeq {
			maxSeq = seq
		}
	}

	return formatQuoteNumber(year, maxSeq+1), nil
}
