// Package services holds the ledger service: the in-memory expense
// list that is the session's source of truth, mirrored to the record
// store after every mutation.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"tally/internal/core"
	"tally/internal/log"
	"tally/internal/storage"
)

// LedgerService owns the in-memory expense and category lists. Every
// operation holds a weight-1 semaphore, so one mutation fully persists
// before the next begins; no other locking discipline is needed. A
// mutation is applied to a copy, written through the repository, and
// only then committed to memory, so a failed save leaves the visible
// state untouched.
type LedgerService struct {
	repo *storage.Repository
	gate *semaphore.Weighted
	log  *log.Logger

	expenses   []core.Expense
	categories []string

	now func() time.Time
}

func NewLedgerService(repo *storage.Repository) *LedgerService {
	return &LedgerService{
		repo: repo,
		gate: semaphore.NewWeighted(1),
		log:  log.New(log.Config{Component: log.ComponentLedger}),
		now:  time.Now,
	}
}

// Load hydrates the in-memory state from the record store and seeds the
// default categories on first run.
func (s *LedgerService) Load(ctx context.Context) error {
	if err := s.gate.Acquire(ctx, 1); err != nil {
		return err
	}
	defer s.gate.Release(1)

	expenses, err := s.repo.LoadExpenses(ctx)
	if err != nil {
		return fmt.Errorf("hydrate expenses: %w", err)
	}

	categories, err := s.repo.EnsureDefaultCategories(ctx)
	if err != nil {
		return fmt.Errorf("hydrate categories: %w", err)
	}

	s.expenses = expenses
	s.categories = categories

	s.log.InfoContext(ctx, "Ledger loaded",
		"expenses", len(expenses),
		"categories", len(categories))
	return nil
}

// AddExpense records a new expense and returns it with its minted ID.
func (s *LedgerService) AddExpense(ctx context.Context, amount core.Money, category string, date time.Time, notes string) (core.Expense, error) {
	e := core.Expense{
		ID:       uuid.NewString(),
		Amount:   amount,
		Category: strings.TrimSpace(category),
		Date:     date,
		Notes:    notes,
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}

	if err := s.gate.Acquire(ctx, 1); err != nil {
		return core.Expense{}, err
	}
	defer s.gate.Release(1)

	next := append(copyExpenses(s.expenses), e)
	if err := s.repo.SaveExpenses(ctx, next); err != nil {
		return core.Expense{}, err
	}
	s.expenses = next

	s.log.InfoContext(ctx, "Expense created",
		log.FieldExpenseID, e.ID,
		log.FieldAmountCents, e.Amount.Cents,
		log.FieldCategory, e.Category)
	return e, nil
}

// UpdateExpense replaces the attributes of the expense with the given
// id. The id itself is immutable.
func (s *LedgerService) UpdateExpense(ctx context.Context, id string, amount core.Money, category string, date time.Time, notes string) (core.Expense, error) {
	e := core.Expense{
		ID:       id,
		Amount:   amount,
		Category: strings.TrimSpace(category),
		Date:     date,
		Notes:    notes,
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}

	if err := s.gate.Acquire(ctx, 1); err != nil {
		return core.Expense{}, err
	}
	defer s.gate.Release(1)

	next := copyExpenses(s.expenses)
	idx := -1
	for i := range next {
		if next[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return core.Expense{}, core.ErrNotFound
	}
	next[idx] = e

	if err := s.repo.SaveExpenses(ctx, next); err != nil {
		return core.Expense{}, err
	}
	s.expenses = next

	s.log.InfoContext(ctx, "Expense updated", log.FieldExpenseID, id, log.FieldAmountCents, e.Amount.Cents)
	return e, nil
}

// DeleteExpense removes the expense with the given id.
func (s *LedgerService) DeleteExpense(ctx context.Context, id string) error {
	if err := s.gate.Acquire(ctx, 1); err != nil {
		return err
	}
	defer s.gate.Release(1)

	next := make([]core.Expense, 0, len(s.expenses))
	found := false
	for _, e := range s.expenses {
		if e.ID == id {
			found = true
			continue
		}
		next = append(next, e)
	}
	if !found {
		return core.ErrNotFound
	}

	if err := s.repo.SaveExpenses(ctx, next); err != nil {
		return err
	}
	s.expenses = next

	s.log.InfoContext(ctx, "Expense deleted", log.FieldExpenseID, id)
	return nil
}

// AddCategory appends a category name. Adding an existing name is a
// no-op; categories are never deleted or renamed.
func (s *LedgerService) AddCategory(ctx context.Context, name string) ([]string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, core.ErrEmptyCategory
	}

	if err := s.gate.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.gate.Release(1)

	next, changed := core.AppendCategory(append([]string(nil), s.categories...), name)
	if changed {
		if err := s.repo.SaveCategories(ctx, next); err != nil {
			return nil, err
		}
		s.categories = next
		s.log.InfoContext(ctx, "Category added", log.FieldCategory, strings.TrimSpace(name))
	}
	return append([]string(nil), next...), nil
}

// Categories returns the category list in insertion order.
func (s *LedgerService) Categories(ctx context.Context) ([]string, error) {
	if err := s.gate.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.gate.Release(1)
	return append([]string(nil), s.categories...), nil
}

// Expenses returns the list sorted by key, then filtered by the period.
// Sort and filter state are independent and both always apply.
func (s *LedgerService) Expenses(ctx context.Context, p core.Period, key core.SortKey) ([]core.Expense, error) {
	if err := s.gate.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.gate.Release(1)
	return core.Filter(core.Sorted(s.expenses, key), p, s.now()), nil
}

// Summarize computes the aggregation for the period over the full list.
func (s *LedgerService) Summarize(ctx context.Context, p core.Period) (core.Summary, error) {
	if err := s.gate.Acquire(ctx, 1); err != nil {
		return core.Summary{}, err
	}
	defer s.gate.Release(1)
	return core.Summarize(s.expenses, p, s.now(), s.categories), nil
}

func copyExpenses(in []core.Expense) []core.Expense {
	out := make([]core.Expense, len(in))
	copy(out, in)
	return out
}
