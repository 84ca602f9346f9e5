package paging

import "testing"

func TestValidRowsPerPage(t *testing.T) {
	for _, n := range []int{10, 25, 100} {
		if !ValidRowsPerPage(n) {
			t.Errorf("expected %d to be valid", n)
		}
	}
	for _, n := range []int{0, 5, 50, -25} {
		if ValidRowsPerPage(n) {
			t.Errorf("expected %d to be invalid", n)
		}
	}
}

func TestPageIndexConversion(t *testing.T) {
	if got := FromPageIndex(1); got != 2 {
		t.Errorf("FromPageIndex(1) = %d, want 2", got)
	}
	if got := ToPageIndex(2); got != 1 {
		t.Errorf("ToPageIndex(2) = %d, want 1", got)
	}
	if got := ToPageIndex(0); got != 0 {
		t.Errorf("ToPageIndex(0) = %d, want 0", got)
	}
	if got := FromPageIndex(-3); got != 1 {
		t.Errorf("FromPageIndex(-3) = %d, want 1", got)
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		name               string
		index, rows, total int
		wantFrom, wantTo   int
	}{
		{"first page", 0, 25, 60, 1, 25},
		{"middle page", 1, 25, 60, 26, 50},
		{"last partial page", 2, 25, 60, 51, 60},
		{"empty", 0, 25, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Range(tt.index, tt.rows, tt.total)
			if w.From != tt.wantFrom || w.To != tt.wantTo {
				t.Errorf("Range(%d,%d,%d) = %+v", tt.index, tt.rows, tt.total, w)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	if got := Range(1, 25, 60).Label(); got != "26–50 of 60" {
		t.Errorf("unexpected label %q", got)
	}
}

func TestPageCountAndHasNext(t *testing.T) {
	if got := PageCount(25, 60); got != 3 {
		t.Errorf("PageCount = %d, want 3", got)
	}
	if !HasNext(1, 25, 60) {
		t.Error("expected a page after index 1")
	}
	if HasNext(2, 25, 60) {
		t.Error("expected no page after index 2")
	}
}
