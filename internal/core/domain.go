package core

import (
	"errors"
	"strings"
	"time"
)

// Expense is a single recorded expense. ID is an opaque unique string
// assigned at creation and never changed afterwards.
type Expense struct {
	ID       string    `json:"id"`
	Amount   Money     `json:"amount"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
	Notes    string    `json:"notes,omitempty"`
}

var (
	ErrEmptyID       = errors.New("empty expense id")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyCategory = errors.New("empty category")
	ErrZeroDate      = errors.New("date cannot be zero")
	ErrNotFound      = errors.New("expense not found")
)

func (e Expense) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return ErrEmptyID
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if len(e.Notes) > 500 {
		return errors.New("notes too long (max 500 characters)")
	}
	if e.Date.IsZero() {
		return ErrZeroDate
	}
	return nil
}

// DefaultCategories are seeded on first run, in display order.
var DefaultCategories = []string{"Food", "Transport", "Shopping", "Bills", "Other"}

// AppendCategory adds name to cats unless already present, preserving
// insertion order. The bool reports whether the list changed.
func AppendCategory(cats []string, name string) ([]string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return cats, false
	}
	for _, c := range cats {
		if c == name {
			return cats, false
		}
	}
	return append(cats, name), true
}
