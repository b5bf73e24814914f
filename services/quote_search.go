package services

import (
	"fmt"
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

// QuoteSearchQuery filters and orders the quote list.
type QuoteSearchQuery struct {
	// Status restricts results to a single lifecycle state when set.
	Status Status

	// Text matches case-insensitively against quote number, client name,
	// client company and title.
	Text string

	// SortBy is one of quote_number, client, status, total, created,
	// updated. Empty means newest first.
	SortBy   string
	SortDesc bool
}

// sortFields maps public sort keys to record fields.
var sortFields = map[string]string{
	"quote_number": "quote_number",
	"client":       "client_name",
	"status":       "status",
	"total":        "total",
	"created":      "created",
	"updated":      "updated",
}

// SearchQuotes returns quotes matching the query. The result is a finite
// snapshot; with no sort key it comes back newest first.
func SearchQuotes(app core.App, q QuoteSearchQuery) ([]*core.Record, error) {
	var parts []string
	params := map[string]any{}

	if q.Status != "" {
		if !IsValidStatus(q.Status) {
			return nil, validationErr(fmt.Errorf("unknown status %q", q.Status))
		}
		parts = append(parts, "status = {:status}")
		params["status"] = string(q.Status)
	}

	if text := strings.TrimSpace(q.Text); text != "" {
		parts = append(parts, "(quote_number ~ {:text} || client_name ~ {:text} || client_company ~ {:text} || title ~ {:text})")
		params["text"] = "%" + text + "%"
	}

	sort := "-created"
	if q.SortBy != "" {
		field, ok := sortFields[q.SortBy]
		if !ok {
			return nil, validationErr(fmt.Errorf("unknown sort key %q", q.SortBy))
		}
		sort = field
		if q.SortDesc {
			sort = "-" + field
		}
	}

	records, err := app.FindRecordsByFilter(
		"quotes",
		strings.Join(parts, " && "),
		sort,
		0,
		0,
		params,
	)
	if err != nil {
		return nil, fmt.Errorf("quote_search: could not query quotes: %w", err)
	}
	return records, nil
}

// GetAllQuotes returns every quote in the repository, unordered.
func GetAllQuotes(app core.App) ([]*core.Record, error) {
	records, err := app.FindRecordsByFilter("quotes", "", "", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("quote_search: could not list quotes: %w", err)
	}
	return records, nil
}
