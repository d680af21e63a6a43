package listview

import (
	"fmt"
	"strings"
	"testing"
)

type product struct {
	Code     string
	Name     string
	Category string
	Price    int64
}

func productConfig() Config[product] {
	return Config[product]{
		SearchFields: []func(product) string{
			func(p product) string { return p.Name },
			func(p product) string { return p.Category },
			func(p product) string { return p.Code },
		},
		Sorters: map[string]func(a, b product) int{
			"nameAsc":  func(a, b product) int { return strings.Compare(a.Name, b.Name) },
			"nameDesc": func(a, b product) int { return strings.Compare(b.Name, a.Name) },
			"priceAsc": func(a, b product) int {
				switch {
				case a.Price < b.Price:
					return -1
				case a.Price > b.Price:
					return 1
				}
				return 0
			},
			"priceDesc": func(a, b product) int {
				switch {
				case a.Price > b.Price:
					return -1
				case a.Price < b.Price:
					return 1
				}
				return 0
			},
		},
	}
}

func sampleProducts(n int) []product {
	items := make([]product, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, product{
			Code:     fmt.Sprintf("SP%03d", i+1),
			Name:     fmt.Sprintf("Item %03d", i+1),
			Category: "General",
			Price:    int64((i%7 + 1) * 10000),
		})
	}
	return items
}

func TestDerive_Filtering(t *testing.T) {
	items := []product{
		{Code: "P1", Name: "Ao Thun", Price: 100000},
		{Code: "P2", Name: "Ao So Mi", Price: 150000},
	}
	cfg := productConfig()

	t.Run("matches are case-insensitive substrings", func(t *testing.T) {
		got := Derive(items, cfg, Params{Query: "ao", Page: 1})
		if got.Total != 2 {
			t.Fatalf("query 'ao': expected 2 matches, got %d", got.Total)
		}

		got = Derive(items, cfg, Params{Query: "thun", Page: 1})
		if got.Total != 1 || got.Items[0].Code != "P1" {
			t.Fatalf("query 'thun': expected only P1, got %+v", got.Items)
		}
	})

	t.Run("blank and whitespace queries match everything", func(t *testing.T) {
		for _, q := range []string{"", "   ", "\t"} {
			got := Derive(items, cfg, Params{Query: q, Page: 1})
			if got.Total != len(items) {
				t.Errorf("query %q: expected %d items, got %d", q, len(items), got.Total)
			}
		}
	})

	t.Run("filtering is idempotent", func(t *testing.T) {
		once := Derive(items, cfg, Params{Query: "ao", Page: 1})
		twice := Derive(once.Items, cfg, Params{Query: "ao", Page: 1})
		if twice.Total != once.Total {
			t.Errorf("re-filtering changed the match count: %d -> %d", once.Total, twice.Total)
		}
		for i := range once.Items {
			if once.Items[i] != twice.Items[i] {
				t.Errorf("re-filtering changed item %d: %+v vs %+v", i, once.Items[i], twice.Items[i])
			}
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		before := make([]product, len(items))
		copy(before, items)
		Derive(items, cfg, Params{Sort: "nameDesc", Page: 1})
		for i := range items {
			if items[i] != before[i] {
				t.Fatalf("Derive reordered the caller's slice at %d", i)
			}
		}
	})
}

func TestDerive_Sorting(t *testing.T) {
	items := sampleProducts(25)
	cfg := productConfig()

	t.Run("sort changes order only", func(t *testing.T) {
		unsorted := Derive(items, cfg, Params{Query: "item", Page: 1, PageSize: 100})
		sorted := Derive(items, cfg, Params{Query: "item", Sort: "priceDesc", Page: 1, PageSize: 100})

		if sorted.Total != unsorted.Total {
			t.Fatalf("sort changed membership size: %d vs %d", sorted.Total, unsorted.Total)
		}
		seen := map[string]bool{}
		for _, p := range unsorted.Items {
			seen[p.Code] = true
		}
		for _, p := range sorted.Items {
			if !seen[p.Code] {
				t.Errorf("sort introduced item %s not in the filtered set", p.Code)
			}
		}
	})

	t.Run("sort is stable", func(t *testing.T) {
		// Many items share a price; ties must keep their original order.
		got := Derive(items, cfg, Params{Sort: "priceAsc", Page: 1, PageSize: 100})
		for i := 1; i < len(got.Items); i++ {
			a, b := got.Items[i-1], got.Items[i]
			if a.Price == b.Price && a.Code > b.Code {
				t.Fatalf("equal prices reordered: %s before %s", a.Code, b.Code)
			}
		}
	})

	t.Run("unknown sort key preserves order", func(t *testing.T) {
		got := Derive(items, cfg, Params{Sort: "bogus", Page: 1, PageSize: 100})
		for i, p := range got.Items {
			if p.Code != items[i].Code {
				t.Fatalf("order changed at %d with unknown sort key", i)
			}
		}
	})
}

func TestDerive_Pagination(t *testing.T) {
	cfg := productConfig()

	tests := []struct {
		name           string
		count          int
		page           int
		pageSize       int
		wantTotalPages int
		wantLen        int
	}{
		{"empty collection still has one page", 0, 1, 10, 1, 0},
		{"exact multiple", 20, 2, 10, 2, 10},
		{"partial last page", 25, 3, 10, 3, 5},
		{"single page", 7, 1, 10, 1, 7},
		{"page past the end yields nothing", 25, 4, 10, 3, 0},
		{"zero page size falls back to default", 25, 1, 0, 3, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(sampleProducts(tt.count), cfg, Params{Page: tt.page, PageSize: tt.pageSize})
			if got.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantTotalPages)
			}
			if len(got.Items) != tt.wantLen {
				t.Errorf("len(Items) = %d, want %d", len(got.Items), tt.wantLen)
			}
		})
	}

	t.Run("slice length invariant holds for every page", func(t *testing.T) {
		items := sampleProducts(43)
		const pageSize = 10
		full := Derive(items, cfg, Params{Page: 1, PageSize: pageSize})
		for page := 1; page <= full.TotalPages; page++ {
			got := Derive(items, cfg, Params{Page: page, PageSize: pageSize})
			want := full.Total - (page-1)*pageSize
			if want > pageSize {
				want = pageSize
			}
			if len(got.Items) != want {
				t.Errorf("page %d: len = %d, want %d", page, len(got.Items), want)
			}
		}
	})
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		want       int
	}{
		{"in range", 2, 3, 2},
		{"below range", 0, 3, 1},
		{"negative", -4, 3, 1},
		{"above range", 5, 3, 3},
		{"degenerate total", 7, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPage(tt.page, tt.totalPages); got != tt.want {
				t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.totalPages, got, tt.want)
			}
		})
	}

	t.Run("deletion that empties the last page steps back", func(t *testing.T) {
		// 25 items on page 3; a delete drops the count to 20 and page 3
		// no longer exists. The screen re-derives and clamps to page 2.
		cfg := productConfig()
		items := sampleProducts(20)
		page := 3

		view := Derive(items, cfg, Params{Page: page, PageSize: 10})
		page = ClampPage(page, view.TotalPages)
		if page != 2 {
			t.Fatalf("expected clamp to page 2, got %d", page)
		}
		view = Derive(items, cfg, Params{Page: page, PageSize: 10})
		if len(view.Items) != 10 {
			t.Fatalf("page 2 of 20 should hold 10 items, got %d", len(view.Items))
		}
	})
}
