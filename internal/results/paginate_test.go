// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package results

import (
	"fmt"
	"testing"

	"github.com/pdiddy/paperscope/pkg/types"
)

func makePapers(n int) []types.Paper {
	out := make([]types.Paper, n)
	for i := range out {
		out[i] = types.Paper{ID: fmt.Sprintf("p%d", i+1)}
	}
	return out
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, pageSize, want int
	}{
		{0, 6, 0},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{8, 6, 2},
		{12, 6, 2},
		{13, 6, 3},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.count, tt.pageSize); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.count, tt.pageSize, got, tt.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, totalPages, want int
	}{
		{1, 2, 1},
		{2, 2, 2},
		{-5, 2, 1},
		{0, 2, 1},
		{9999, 2, 2},
		{3, 0, 1}, // empty set still displays as page 1
	}
	for _, tt := range tests {
		if got := ClampPage(tt.page, tt.totalPages); got != tt.want {
			t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.totalPages, got, tt.want)
		}
	}
}

// Eight items at page size six: page 1 shows items 1-6, page 2 shows 7-8.
func TestPaginateEightItemsPageSizeSix(t *testing.T) {
	papers := makePapers(8)

	page1, total := Paginate(papers, 1, 6)
	if total != 2 {
		t.Fatalf("totalPages = %d, want 2", total)
	}
	if len(page1) != 6 || page1[0].ID != "p1" || page1[5].ID != "p6" {
		t.Errorf("page 1 = %v", page1)
	}

	page2, _ := Paginate(papers, 2, 6)
	if len(page2) != 2 || page2[0].ID != "p7" || page2[1].ID != "p8" {
		t.Errorf("page 2 = %v", page2)
	}
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	papers := makePapers(8)

	slice, _ := Paginate(papers, 9999, 6)
	if len(slice) != 2 || slice[0].ID != "p7" {
		t.Errorf("overshoot should land on last page, got %v", slice)
	}

	slice, _ = Paginate(papers, -5, 6)
	if len(slice) != 6 || slice[0].ID != "p1" {
		t.Errorf("undershoot should land on first page, got %v", slice)
	}
}

func TestPaginateEmptySet(t *testing.T) {
	slice, total := Paginate(nil, 1, 6)
	if len(slice) != 0 {
		t.Errorf("slice = %v, want empty", slice)
	}
	if total != 0 {
		t.Errorf("totalPages = %d, want 0", total)
	}
}
