package pagination

import (
	"errors"
	"reflect"
	"testing"
)

func TestPaginate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		items     []int
		pageSize  int
		wantPages [][]int
		wantCount int
	}{
		{
			name:      "seven items across two pages",
			items:     []int{1, 2, 3, 4, 5, 6, 7},
			pageSize:  5,
			wantPages: [][]int{{1, 2, 3, 4, 5}, {6, 7}},
			wantCount: 2,
		},
		{
			name:      "empty input",
			items:     []int{},
			pageSize:  5,
			wantPages: [][]int{},
			wantCount: 0,
		},
		{
			name:      "exact multiple",
			items:     []int{1, 2, 3, 4},
			pageSize:  2,
			wantPages: [][]int{{1, 2}, {3, 4}},
			wantCount: 2,
		},
		{
			name:      "single short page",
			items:     []int{1, 2, 3},
			pageSize:  10,
			wantPages: [][]int{{1, 2, 3}},
			wantCount: 1,
		},
		{
			name:      "page size one",
			items:     []int{1, 2, 3},
			pageSize:  1,
			wantPages: [][]int{{1}, {2}, {3}},
			wantCount: 3,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pages, count, err := Paginate(tt.items, tt.pageSize)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if count != tt.wantCount {
				t.Errorf("page count = %d, want %d", count, tt.wantCount)
			}
			if !reflect.DeepEqual(pages, tt.wantPages) {
				t.Errorf("pages = %v, want %v", pages, tt.wantPages)
			}
		})
	}
}

func TestPaginateRejectsNonPositivePageSize(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -1} {
		_, _, err := Paginate([]int{1, 2, 3}, size)
		if !errors.Is(err, ErrInvalidPageSize) {
			t.Errorf("pageSize %d: got %v, want ErrInvalidPageSize", size, err)
		}
	}
}

func TestPaginatePreservesOrder(t *testing.T) {
	t.Parallel()

	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	pages, count, err := Paginate(items, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 5 {
		t.Fatalf("page count = %d, want 5", count)
	}

	var flat []int
	for _, page := range pages {
		flat = append(flat, page...)
	}
	if !reflect.DeepEqual(flat, items) {
		t.Errorf("flattened pages do not match input order")
	}
}
