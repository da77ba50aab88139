package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tally/internal/core"
)

// ExpenseListResponse is the payload for GET /api/expenses.
type ExpenseListResponse struct {
	Expenses []core.Expense `json:"expenses"`
	Count    int            `json:"count"`
}

// SummaryResponse is the payload for GET /api/summary.
type SummaryResponse struct {
	Period         string                `json:"period"`
	Total          core.Money            `json:"total"`
	Count          int                   `json:"count"`
	Average        core.Money            `json:"average"`
	CategoryTotals map[string]core.Money `json:"category_totals"`
}

// CategoryListResponse is the payload for the category endpoints.
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listExpenses(w, r)
	case http.MethodPost:
		s.createExpense(w, r)
	default:
		MethodNotAllowedError("GET, POST").Write(w)
	}
}

func (s *Server) listExpenses(w http.ResponseWriter, r *http.Request) {
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
		slog.ErrorContext(r.Context(), "Failed listing expenses",
			"error", err,
			"period", string(period.Kind),
			"sort_key", string(sortKey))
		InternalServerError("error listing expenses").Write(w)
		return
	}

	NewResponse().JSON(ExpenseListResponse{Expenses: expenses, Count: len(expenses)}).Write(w)
}

func (s *Server) createExpense(w http.ResponseWriter, r *http.Request) {
	payload, err := ParseExpensePayload(r)
	if err != nil {
		BadRequestError(err.Error()).Write(w)
		return
	}

	amount, category, date, notes, err := payload.Resolve(time.Now())
	if err != nil {
		UnprocessableEntityError(err.Error()).Write(w)
		return
	}

	expense, err := s.ledger.AddExpense(r.Context(), amount, category, date, notes)
	if err != nil {
		s.writeLedgerError(w, r, err, "create")
		return
	}
	s.summaryCache.Clear()

	NewResponse().Status(http.StatusCreated).JSON(expense).Write(w)
}

func (s *Server) handleExpenseByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/expenses/")
	if id == "" || strings.Contains(id, "/") {
		NotFoundError("expense not found").Write(w)
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.updateExpense(w, r, id)
	case http.MethodDelete:
		s.deleteExpense(w, r, id)
	default:
		MethodNotAllowedError("PUT, DELETE").Write(w)
	}
}

func (s *Server) updateExpense(w http.ResponseWriter, r *http.Request, id string) {
	payload, err := ParseExpensePayload(r)
	if err != nil {
		BadRequestError(err.Error()).Write(w)
		return
	}

	amount, category, date, notes, err := payload.Resolve(time.Now())
	if err != nil {
		UnprocessableEntityError(err.Error()).Write(w)
		return
	}

	expense, err := s.ledger.UpdateExpense(r.Context(), id, amount, category, date, notes)
	if err != nil {
		s.writeLedgerError(w, r, err, "update")
		return
	}
	s.summaryCache.Clear()

	NewResponse().JSON(expense).Write(w)
}

func (s *Server) deleteExpense(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.ledger.DeleteExpense(r.Context(), id); err != nil {
		s.writeLedgerError(w, r, err, "delete")
		return
	}
	s.summaryCache.Clear()

	NewResponse().Status(http.StatusNoContent).Write(w)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		categories, err := s.ledger.Categories(r.Context())
		if err != nil {
			InternalServerError("error listing categories").Write(w)
			return
		}
		NewResponse().JSON(CategoryListResponse{Categories: categories}).Write(w)

	case http.MethodPost:
		name, err := parseCategoryName(r)
		if err != nil {
			BadRequestError(err.Error()).Write(w)
			return
		}
		categories, err := s.ledger.AddCategory(r.Context(), name)
		if err != nil {
			s.writeLedgerError(w, r, err, "add category")
			return
		}
		s.summaryCache.Clear()
		NewResponse().Status(http.StatusCreated).JSON(CategoryListResponse{Categories: categories}).Write(w)

	default:
		MethodNotAllowedError("GET, POST").Write(w)
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		MethodNotAllowedError("GET").Write(w)
		return
	}

	query := r.URL.Query()
	period, err := ParsePeriod(query)
	if err != nil {
		BadRequestError(err.Error()).Write(w)
		return
	}

	key := summaryCacheKey(query.Get("period"), query.Get("from"), query.Get("to"), time.Now())
	if cached, ok := s.summaryCache.Get(key); ok {
		NewResponse().Header("X-Cache", "hit").JSON(cached).Write(w)
		return
	}

	summary, err := s.ledger.Summarize(r.Context(), period)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed summarizing expenses",
			"error", err,
			"period", string(period.Kind))
		InternalServerError("error computing summary").Write(w)
		return
	}

	resp := SummaryResponse{
		Period:         string(period.Kind),
		Total:          summary.Total,
		Count:          summary.Count,
		Average:        summary.Average,
		CategoryTotals: summary.ByCategory,
	}
	s.summaryCache.Set(key, resp)

	NewResponse().Header("X-Cache", "miss").JSON(resp).Write(w)
}

// writeLedgerError maps service errors onto API status codes.
func (s *Server) writeLedgerError(w http.ResponseWriter, r *http.Request, err error, op string) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		NotFoundError("expense not found").Write(w)
	case errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrEmptyCategory),
		errors.Is(err, core.ErrZeroDate):
		UnprocessableEntityError(err.Error()).Write(w)
	default:
		slog.ErrorContext(r.Context(), "Ledger operation failed",
			"error", err,
			"operation", op,
			"url", r.URL.Path)
		InternalServerError("operation failed").Write(w)
	}
}

