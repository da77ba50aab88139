package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"tally/internal/core"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantKind core.PeriodKind
		wantErr  bool
	}{
		{"absent defaults to all", "", core.PeriodAll, false},
		{"all", "period=all", core.PeriodAll, false},
		{"today", "period=today", core.PeriodToday, false},
		{"week", "period=week", core.PeriodThisWeek, false},
		{"month", "period=month", core.PeriodThisMonth, false},
		{"custom with range", "period=custom&from=2024-01-01&to=2024-01-31", core.PeriodCustom, false},
		{"custom missing to", "period=custom&from=2024-01-01", "", true},
		{"custom missing both", "period=custom", "", true},
		{"custom bad date", "period=custom&from=nope&to=2024-01-31", "", true},
		{"unknown kind", "period=fortnight", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatal(err)
			}
			p, err := ParsePeriod(q)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Kind != tt.wantKind {
				t.Fatalf("kind=%q, want %q", p.Kind, tt.wantKind)
			}
		})
	}
}

func TestParsePeriodCustomRange(t *testing.T) {
	q, _ := url.ParseQuery("period=custom&from=2024-01-01&to=2024-01-31")
	p, err := ParsePeriod(q)
	if err != nil {
		t.Fatal(err)
	}
	if p.From.Format("2006-01-02") != "2024-01-01" || p.To.Format("2006-01-02") != "2024-01-31" {
		t.Fatalf("range %v..%v", p.From, p.To)
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		query   string
		want    core.SortKey
		wantErr bool
	}{
		{"", core.SortDateDesc, false},
		{"sort=date_asc", core.SortDateAsc, false},
		{"sort=amount_desc", core.SortAmountDesc, false},
		{"sort=amount_asc", core.SortAmountAsc, false},
		{"sort=alphabetical", "", true},
	}

	for _, tt := range tests {
		q, _ := url.ParseQuery(tt.query)
		key, err := ParseSort(q)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("query %q: expected error", tt.query)
			}
			continue
		}
		if err != nil {
			t.Fatalf("query %q: %v", tt.query, err)
		}
		if key != tt.want {
			t.Fatalf("query %q: key=%q, want %q", tt.query, key, tt.want)
		}
	}
}

func TestParseExpensePayloadJSON(t *testing.T) {
	body := `{"amount":12.5,"category":" Food ","date":"2024-01-02","notes":"lunch"}`
	req := httptest.NewRequest(http.MethodPost, "/api/expenses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	p, err := ParseExpensePayload(req)
	if err != nil {
		t.Fatal(err)
	}
	if p.Amount != "12.5" {
		t.Fatalf("amount=%q", p.Amount)
	}
	if p.Category != "Food" {
		t.Fatalf("category=%q", p.Category)
	}
	if p.Date != "2024-01-02" || p.Notes != "lunch" {
		t.Fatalf("payload %+v", p)
	}
}

func TestParseExpensePayloadForm(t *testing.T) {
	form := "amount=9%2C99&category=Bills&notes=power"
	req := httptest.NewRequest(http.MethodPost, "/api/expenses", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	p, err := ParseExpensePayload(req)
	if err != nil {
		t.Fatal(err)
	}
	if p.Amount != "9,99" || p.Category != "Bills" || p.Date != "" {
		t.Fatalf("payload %+v", p)
	}
}

func TestParseExpensePayloadBadJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/expenses", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	if _, err := ParseExpensePayload(req); err == nil {
		t.Fatal("expected error for malformed json")
	}
}

func TestResolve(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		payload   ExpensePayload
		wantCents int64
		wantDate  time.Time
		wantErr   bool
	}{
		{
			name:      "full payload",
			payload:   ExpensePayload{Amount: "12.34", Category: "Food", Date: "2024-01-02"},
			wantCents: 1234,
			wantDate:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "missing date defaults to now",
			payload:   ExpensePayload{Amount: "5", Category: "Food"},
			wantCents: 500,
			wantDate:  now,
		},
		{
			name:      "zero amount allowed",
			payload:   ExpensePayload{Amount: "0", Category: "Food"},
			wantCents: 0,
			wantDate:  now,
		},
		{
			name:    "negative amount rejected",
			payload: ExpensePayload{Amount: "-1", Category: "Food"},
			wantErr: true,
		},
		{
			name:    "garbage amount rejected",
			payload: ExpensePayload{Amount: "abc", Category: "Food"},
			wantErr: true,
		},
		{
			name:    "garbage date rejected",
			payload: ExpensePayload{Amount: "1", Category: "Food", Date: "yesterday"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, _, date, _, err := tt.payload.Resolve(now)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if amount.Cents != tt.wantCents {
				t.Fatalf("cents=%d, want %d", amount.Cents, tt.wantCents)
			}
			if !date.Equal(tt.wantDate) {
				t.Fatalf("date=%v, want %v", date, tt.wantDate)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	if d, err := parseDate("2024-01-02T15:04:05Z"); err != nil || d.Hour() != 15 {
		t.Fatalf("rfc3339: %v %v", d, err)
	}
	if d, err := parseDate("2024-01-02"); err != nil || !d.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("day: %v %v", d, err)
	}
	if _, err := parseDate("02/01/2024"); err == nil {
		t.Fatal("expected error for unsupported layout")
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := sanitizeInput("  caf\x00e\x07  "); got != "cafe" {
		t.Fatalf("got %q", got)
	}
	if got := sanitizeInput("multi\nline"); got != "multi\nline" {
		t.Fatalf("newline should survive, got %q", got)
	}
}
