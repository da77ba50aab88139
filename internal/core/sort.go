package core

import "sort"

// SortKey orders the expense list by date or amount, each direction.
type SortKey string

const (
	SortDateDesc   SortKey = "date_desc"
	SortDateAsc    SortKey = "date_asc"
	SortAmountDesc SortKey = "amount_desc"
	SortAmountAsc  SortKey = "amount_asc"
)

// ParseSortKey validates a sort key from user input. Empty input maps
// to the default date-descending order.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortDateDesc, SortDateAsc, SortAmountDesc, SortAmountAsc:
		return SortKey(s), true
	case "":
		return SortDateDesc, true
	}
	return "", false
}

// Sorted returns a copy of expenses ordered by the key. Ordering among
// equal keys is unspecified.
func Sorted(expenses []Expense, key SortKey) []Expense {
	out := make([]Expense, len(expenses))
	copy(out, expenses)
	switch key {
	case SortDateAsc:
		sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	case SortAmountDesc:
		sort.Slice(out, func(i, j int) bool { return out[i].Amount.Cents > out[j].Amount.Cents })
	case SortAmountAsc:
		sort.Slice(out, func(i, j int) bool { return out[i].Amount.Cents < out[j].Amount.Cents })
	default: // SortDateDesc
		sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	}
	return out
}
