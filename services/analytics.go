package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
)

// QuoteSnapshot is the minimal per-quote view the analytics aggregator
// operates on.
type QuoteSnapshot struct {
	Status Status
	Total  float64
}

// QuoteAnalytics is a computed portfolio view. It is never persisted;
// callers recompute it from the repository on each request.
type QuoteAnalytics struct {
	TotalQuotes int     `json:"total_quotes"`
	TotalValue  float64 `json:"total_value"`

	AcceptedCount int     `json:"accepted_count"`
	AcceptedValue float64 `json:"accepted_value"`

	// ConversionRate is accepted count over total count, as a fraction.
	ConversionRate    float64 `json:"conversion_rate"`
	AverageQuoteValue float64 `json:"average_quote_value"`

	StatusCounts map[Status]int `json:"status_counts"`
}

// Analyze computes portfolio metrics over the given snapshot. TotalValue
// sums every quote regardless of status, so expired and rejected quotes
// count toward pipeline value; callers wanting won-only use AcceptedValue.
// All ratios are zero when the portfolio is empty.
func Analyze(quotes []QuoteSnapshot) QuoteAnalytics {
	analytics := QuoteAnalytics{
		StatusCounts: make(map[Status]int),
	}

	for _, q := range quotes {
		analytics.TotalQuotes++
		analytics.TotalValue += q.Total
		analytics.StatusCounts[q.Status]++
		if q.Status == StatusAccepted {
			analytics.AcceptedCount++
			analytics.AcceptedValue += q.Total
		}
	}

	analytics.TotalValue = Round2(analytics.TotalValue)
	analytics.AcceptedValue = Round2(analytics.AcceptedValue)

	if analytics.TotalQuotes > 0 {
		analytics.ConversionRate = float64(analytics.AcceptedCount) / float64(analytics.TotalQuotes)
		analytics.AverageQuoteValue = Round2(analytics.TotalValue / float64(analytics.TotalQuotes))
	}

	return analytics
}

// CollectAnalytics snapshots the repository and aggregates it. Reads only;
// it never locks the repository for writers.
func CollectAnalytics(app core.App) (QuoteAnalytics, error) {
	records, err := GetAllQuotes(app)
	if err != nil {
		return QuoteAnalytics{}, fmt.Errorf("analytics: %w", err)
	}

	snapshots := make([]QuoteSnapshot, 0, len(records))
	for _, rec := range records {
		snapshots = append(snapshots, QuoteSnapshot{
			Status: Status(rec.GetString("status")),
			Total:  rec.GetFloat("total"),
		})
	}

	return Analyze(snapshots), nil
}
