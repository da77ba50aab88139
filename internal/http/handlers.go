package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"tally/internal/core"
)

// handleHealth performs basic liveness check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	health := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.startedAt).String(),
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(health)
}

// handleReady performs readiness check with dependency verification
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	status := "ready"
	httpStatus := http.StatusOK
	checks := make(map[string]interface{})

	if s.ledger == nil {
		checks["ledger"] = "not_configured"
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else if _, err := s.ledger.Categories(r.Context()); err != nil {
		checks["ledger"] = "failed: " + err.Error()
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["ledger"] = "ok"
	}

	checks["cache"] = map[string]interface{}{
		"summary_entries": s.summaryCache.Size(),
		"status":          "ok",
	}

	response := map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	}

	w.WriteHeader(httpStatus)
	json.NewEncoder(w).Encode(response)
}

// indexData feeds the server-rendered overview page.
type indexData struct {
	Expenses   []core.Expense
	Summary    core.Summary
	Categories []string
	Period     string
	Sort       string
}

// handleIndex renders the overview page: the expense list under the
// current filter and sort, plus the period summary.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		NotFoundError("page not found").Write(w)
		return
	}
	if r.Method != http.MethodGet {
		MethodNotAllowedError("GET").Write(w)
		return
	}
	if s.templates == nil {
		InternalServerError("templates not loaded").Write(w)
		return
	}

	period, err := ParsePeriod(r.URL.Query())
	if err != nil {
		BadRequestError(err.Error()).Write(w)
		return
	}
	sortKey, err := ParseSort(r.URL.Query())
	if err != nil {
		BadRequestError(err.Error()).Write(w)
		return
	}

	expenses, err := s.ledger.Expenses(r.Context(), period, sortKey)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed listing expenses", "error", err)
		InternalServerError("error loading expenses").Write(w)
		return
	}
	summary, err := s.ledger.Summarize(r.Context(), period)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed summarizing expenses", "error", err)
		InternalServerError("error loading summary").Write(w)
		return
	}
	categories, err := s.ledger.Categories(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed listing categories", "error", err)
		InternalServerError("error loading categories").Write(w)
		return
	}

	data := indexData{
		Expenses:   expenses,
		Summary:    summary,
		Categories: categories,
		Period:     string(period.Kind),
		Sort:       string(sortKey),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Failed rendering index", "error", err)
	}
}
