package core

import "time"

// Summary holds the derived values for a filtered expense set.
type Summary struct {
	Filtered   []Expense
	Total      Money
	Count      int
	Average    Money
	ByCategory map[string]Money
}

// Filter returns the expenses whose date falls inside the period
// resolved against now, preserving input order.
func Filter(expenses []Expense, p Period, now time.Time) []Expense {
	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if p.Contains(e.Date, now) {
			out = append(out, e)
		}
	}
	return out
}

// Summarize filters expenses by the period and computes totals.
//
// ByCategory starts with every known category at zero, then accumulates
// each filtered expense into its category entry. An expense whose
// category is not in the known list still accumulates under that name:
// the mapping grows to cover whatever categories appear in the data.
// Average is Total/Count in cents (truncating division) and zero for an
// empty filtered set.
func Summarize(expenses []Expense, p Period, now time.Time, categories []string) Summary {
	s := Summary{
		Filtered:   Filter(expenses, p, now),
		ByCategory: make(map[string]Money, len(categories)),
	}
	for _, c := range categories {
		s.ByCategory[c] = Money{}
	}
	for _, e := range s.Filtered {
		s.Total.Cents += e.Amount.Cents
		s.ByCategory[e.Category] = Money{Cents: s.ByCategory[e.Category].Cents + e.Amount.Cents}
	}
	s.Count = len(s.Filtered)
	if s.Count > 0 {
		s.Average = Money{Cents: s.Total.Cents / int64(s.Count)}
	}
	return s
}
