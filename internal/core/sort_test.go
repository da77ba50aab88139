package core

import (
	"testing"
	"time"
)

func TestSortedByDate(t *testing.T) {
	expenses := []Expense{
		expense("b", 200, "Food", date(2024, time.January, 2, 0, 0, 0)),
		expense("c", 300, "Food", date(2024, time.January, 3, 0, 0, 0)),
		expense("a", 100, "Food", date(2024, time.January, 1, 0, 0, 0)),
	}

	desc := Sorted(expenses, SortDateDesc)
	asc := Sorted(expenses, SortDateAsc)

	if desc[0].ID != "c" || desc[2].ID != "a" {
		t.Fatalf("date desc order wrong: %v %v %v", desc[0].ID, desc[1].ID, desc[2].ID)
	}
	// With unique dates, descending is exactly the reverse of ascending.
	for i := range desc {
		if desc[i].ID != asc[len(asc)-1-i].ID {
			t.Fatalf("desc is not the reverse of asc at index %d", i)
		}
	}
	// Input untouched.
	if expenses[0].ID != "b" {
		t.Fatal("Sorted must not mutate its input")
	}
}

func TestSortedByAmount(t *testing.T) {
	expenses := []Expense{
		expense("mid", 200, "Food", date(2024, time.January, 1, 0, 0, 0)),
		expense("high", 900, "Food", date(2024, time.January, 2, 0, 0, 0)),
		expense("low", 50, "Food", date(2024, time.January, 3, 0, 0, 0)),
	}

	desc := Sorted(expenses, SortAmountDesc)
	if desc[0].ID != "high" || desc[1].ID != "mid" || desc[2].ID != "low" {
		t.Fatalf("amount desc order wrong: %v %v %v", desc[0].ID, desc[1].ID, desc[2].ID)
	}

	asc := Sorted(expenses, SortAmountAsc)
	if asc[0].ID != "low" || asc[2].ID != "high" {
		t.Fatalf("amount asc order wrong: %v %v %v", asc[0].ID, asc[1].ID, asc[2].ID)
	}
}

func TestParseSortKey(t *testing.T) {
	if k, ok := ParseSortKey(""); !ok || k != SortDateDesc {
		t.Fatalf("empty input should default to date_desc, got %q", k)
	}
	if _, ok := ParseSortKey("price_desc"); ok {
		t.Fatal("expected rejection of unknown sort key")
	}
}
