package response

import "testing"

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		pageSize   int
		total      int64
		totalPages int64
		hasMore    bool
		from, to   int
	}{
		{"first of many", 1, 20, 45, 3, true, 1, 20},
		{"middle page", 2, 20, 45, 3, true, 21, 40},
		{"last partial page", 3, 20, 45, 3, false, 41, 45},
		{"exact fit", 2, 10, 20, 2, false, 11, 20},
		{"empty", 1, 20, 0, 0, false, 0, 0},
		{"defaults on bad input", 0, 0, 5, 1, false, 1, 5},
	}
	for _, c := range cases {
		p := NewPagination(c.page, c.pageSize, c.total)
		if p.TotalPages != c.totalPages {
			t.Errorf("%s: TotalPages = %d, want %d", c.name, p.TotalPages, c.totalPages)
		}
		if p.HasMore != c.hasMore {
			t.Errorf("%s: HasMore = %v, want %v", c.name, p.HasMore, c.hasMore)
		}
		if p.From != c.from || p.To != c.to {
			t.Errorf("%s: From/To = %d/%d, want %d/%d", c.name, p.From, p.To, c.from, c.to)
		}
	}
}
