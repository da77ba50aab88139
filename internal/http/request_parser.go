// Package http provides the HTTP server and handler implementations.
//
// This file implements parsing and validation of request data: period
// and sort query parameters, and expense payloads arriving either as
// JSON or as form-encoded data.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tally/internal/core"
)

var errMissingCustomRange = errors.New("custom period requires from and to dates")

// ParsePeriod extracts the period filter from query parameters:
// period=all|today|week|month|custom, with from/to (YYYY-MM-DD)
// required for custom. Absent period means all.
func ParsePeriod(query url.Values) (core.Period, error) {
	kind, err := core.ParsePeriodKind(strings.TrimSpace(query.Get("period")))
	if err != nil {
		return core.Period{}, fmt.Errorf("period %q: %w", query.Get("period"), err)
	}
	if kind != core.PeriodCustom {
		return core.Period{Kind: kind}, nil
	}

	fromStr := strings.TrimSpace(query.Get("from"))
	toStr := strings.TrimSpace(query.Get("to"))
	if fromStr == "" || toStr == "" {
		return core.Period{}, errMissingCustomRange
	}
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return core.Period{}, fmt.Errorf("from date %q: %w", fromStr, err)
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return core.Period{}, fmt.Errorf("to date %q: %w", toStr, err)
	}
	return core.Custom(from, to), nil
}

// ParseSort extracts the sort key from query parameters, defaulting to
// date descending.
func ParseSort(query url.Values) (core.SortKey, error) {
	key, ok := core.ParseSortKey(strings.TrimSpace(query.Get("sort")))
	if !ok {
		return "", fmt.Errorf("unknown sort key %q", query.Get("sort"))
	}
	return key, nil
}

// ExpensePayload is the raw user input for creating or updating an
// expense, before amount and date validation.
type ExpensePayload struct {
	Amount   string
	Category string
	Date     string
	Notes    string
}

// ParseExpensePayload reads the request body as JSON or form data and
// extracts the expense fields as strings.
func ParseExpensePayload(r *http.Request) (ExpensePayload, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.Contains(contentType, "application/json") {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return ExpensePayload{}, fmt.Errorf("read body: %w", err)
		}
		var raw map[string]interface{}
		if err := json.Unmarshal(body, &raw); err != nil {
			return ExpensePayload{}, fmt.Errorf("parse json body: %w", err)
		}
		return ExpensePayload{
			Amount:   rawString(raw, "amount"),
			Category: sanitizeInput(rawString(raw, "category")),
			Date:     rawString(raw, "date"),
			Notes:    sanitizeInput(rawString(raw, "notes")),
		}, nil
	}

	if err := r.ParseForm(); err != nil {
		return ExpensePayload{}, fmt.Errorf("parse form: %w", err)
	}
	return ExpensePayload{
		Amount:   strings.TrimSpace(r.Form.Get("amount")),
		Category: sanitizeInput(r.Form.Get("category")),
		Date:     strings.TrimSpace(r.Form.Get("date")),
		Notes:    sanitizeInput(r.Form.Get("notes")),
	}, nil
}

// Resolve validates the payload into concrete field values. An absent
// date defaults to now.
func (p ExpensePayload) Resolve(now time.Time) (core.Money, string, time.Time, string, error) {
	cents, err := core.ParseDecimalToCents(p.Amount)
	if err != nil {
		return core.Money{}, "", time.Time{}, "", fmt.Errorf("amount %q: %w", p.Amount, err)
	}

	date := now
	if p.Date != "" {
		date, err = parseDate(p.Date)
		if err != nil {
			return core.Money{}, "", time.Time{}, "", fmt.Errorf("date %q: %w", p.Date, err)
		}
	}

	return core.Money{Cents: cents}, p.Category, date, p.Notes, nil
}

// parseCategoryName reads the category name from a JSON or form body.
// Both "name" and "category" are accepted as field names.
func parseCategoryName(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.Contains(contentType, "application/json") {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return "", fmt.Errorf("read body: %w", err)
		}
		var raw map[string]interface{}
		if err := json.Unmarshal(body, &raw); err != nil {
			return "", fmt.Errorf("parse json body: %w", err)
		}
		if name := sanitizeInput(rawString(raw, "name")); name != "" {
			return name, nil
		}
		return sanitizeInput(rawString(raw, "category")), nil
	}

	if err := r.ParseForm(); err != nil {
		return "", fmt.Errorf("parse form: %w", err)
	}
	if name := sanitizeInput(r.Form.Get("name")); name != "" {
		return name, nil
	}
	return sanitizeInput(r.Form.Get("category")), nil
}

// parseDate accepts RFC3339 timestamps and bare YYYY-MM-DD days.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// rawString renders a JSON field as a string. Numeric amounts arrive as
// float64 from encoding/json and are reformatted losslessly.
func rawString(raw map[string]interface{}, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strings.TrimSpace(formatFloat(t))
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

func formatFloat(f float64) string {
	s := fmt.Sprintf("%.4f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// sanitizeInput removes potentially dangerous characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
