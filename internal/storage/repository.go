package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"tally/internal/core"
)

// Persisted blob keys. The version suffix tracks the blob layout, not
// the schema of the records table.
const (
	KeyExpenses   = "expenses_v1"
	KeyCategories = "categories_v1"
)

// Repository serializes the expense and category lists to and from a
// RecordStore. Each list lives under a single key and is overwritten
// whole on save.
type Repository struct {
	store RecordStore
}

func NewRepository(store RecordStore) *Repository {
	return &Repository{store: store}
}

// LoadExpenses returns all persisted expenses. A missing or empty blob
// reads as an empty list. A structurally invalid blob propagates as a
// parse error; the stored data is never written by anything but
// SaveExpenses, so this is not defended against further.
func (r *Repository) LoadExpenses(ctx context.Context) ([]core.Expense, error) {
	blob, ok, err := r.store.Get(ctx, KeyExpenses)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	if !ok || blob == "" {
		return []core.Expense{}, nil
	}

	var expenses []core.Expense
	if err := json.Unmarshal([]byte(blob), &expenses); err != nil {
		return nil, fmt.Errorf("parse expenses blob: %w", err)
	}
	return expenses, nil
}

// SaveExpenses overwrites the persisted expense list. Field order in
// the blob follows the struct definition, so loading and saving back
// an unchanged list reproduces the stored bytes.
func (r *Repository) SaveExpenses(ctx context.Context, expenses []core.Expense) error {
	blob, err := json.Marshal(expenses)
	if err != nil {
		return fmt.Errorf("serialize expenses: %w", err)
	}
	if err := r.store.Set(ctx, KeyExpenses, string(blob)); err != nil {
		return fmt.Errorf("save expenses: %w", err)
	}

	slog.DebugContext(ctx, "Expenses persisted", "count", len(expenses))
	return nil
}

// LoadCategories returns the persisted category list, empty if none
// stored. It is a pure read; seeding happens via EnsureDefaultCategories.
func (r *Repository) LoadCategories(ctx context.Context) ([]string, error) {
	blob, ok, err := r.store.Get(ctx, KeyCategories)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	if !ok || blob == "" {
		return []string{}, nil
	}

	var cats []string
	if err := json.Unmarshal([]byte(blob), &cats); err != nil {
		return nil, fmt.Errorf("parse categories blob: %w", err)
	}
	return cats, nil
}

// SaveCategories overwrites the persisted category list.
func (r *Repository) SaveCategories(ctx context.Context, cats []string) error {
	blob, err := json.Marshal(cats)
	if err != nil {
		return fmt.Errorf("serialize categories: %w", err)
	}
	if err := r.store.Set(ctx, KeyCategories, string(blob)); err != nil {
		return fmt.Errorf("save categories: %w", err)
	}
	return nil
}

// EnsureDefaultCategories persists the default category set on first
// run. The write only happens when the key is absent, keeping the seed
// a one-time explicit initialization instead of a side effect of reads.
func (r *Repository) EnsureDefaultCategories(ctx context.Context) ([]string, error) {
	_, ok, err := r.store.Get(ctx, KeyCategories)
	if err != nil {
		return nil, fmt.Errorf("check categories: %w", err)
	}
	if ok {
		return r.LoadCategories(ctx)
	}

	seeded := append([]string(nil), core.DefaultCategories...)
	if err := r.SaveCategories(ctx, seeded); err != nil {
		return nil, fmt.Errorf("seed default categories: %w", err)
	}

	slog.InfoContext(ctx, "Seeded default categories", "count", len(seeded))
	return seeded, nil
}
