package repository

import "testing"

func TestNormalizedDefaults(t *testing.T) {
	opts := ListOptions{}.Normalized()

	if opts.Page != DefaultPage {
		t.Errorf("expected page %d, got %d", DefaultPage, opts.Page)
	}
	if opts.Limit != DefaultLimit {
		t.Errorf("expected limit %d, got %d", DefaultLimit, opts.Limit)
	}
	if opts.Sort != DefaultSort {
		t.Errorf("expected sort %q, got %q", DefaultSort, opts.Sort)
	}
	if opts.SortBy != DefaultSortBy {
		t.Errorf("expected sortBy %q, got %q", DefaultSortBy, opts.SortBy)
	}
}

func TestNormalizedClampsLimit(t *testing.T) {
	opts := ListOptions{Page: 2, Limit: 500, Sort: "asc"}.Normalized()

	if opts.Limit != MaxLimit {
		t.Errorf("expected limit clamped to %d, got %d", MaxLimit, opts.Limit)
	}
	if opts.Page != 2 {
		t.Errorf("expected page preserved, got %d", opts.Page)
	}
	if opts.Sort != "asc" {
		t.Errorf("expected sort preserved, got %q", opts.Sort)
	}
}

func TestNormalizedRejectsBadSort(t *testing.T) {
	opts := ListOptions{Sort: "sideways"}.Normalized()
	if opts.Sort != DefaultSort {
		t.Errorf("expected sort %q, got %q", DefaultSort, opts.Sort)
	}
}

func TestOffset(t *testing.T) {
	opts := ListOptions{Page: 3, Limit: 10}
	if got := opts.Offset(); got != 20 {
		t.Errorf("expected offset 20, got %d", got)
	}
}

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name  string
		limit int
		total int64
		pages int64
	}{
		{"exact multiple", 10, 100, 10},
		{"partial last page", 10, 101, 11},
		{"empty", 10, 0, 0},
		{"single row", 10, 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(1, tc.limit, tc.total)
			if p.Pages != tc.pages {
				t.Errorf("total=%d limit=%d: expected %d pages, got %d", tc.total, tc.limit, tc.pages, p.Pages)
			}
			if p.Total != tc.total {
				t.Errorf("expected total %d, got %d", tc.total, p.Total)
			}
		})
	}
}

func TestSortColumnFallback(t *testing.T) {
	repo := NewRepository[struct{}](nil, []string{"id", "created_at", "search_volume"})

	if got := repo.SortColumn("search_volume"); got != "search_volume" {
		t.Errorf("expected allow-listed column, got %q", got)
	}
	if got := repo.SortColumn("length(keyword)"); got != DefaultSortBy {
		t.Errorf("expected fallback to %q, got %q", DefaultSortBy, got)
	}
}
