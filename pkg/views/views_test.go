package views

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/retailops/storectl/pkg/api"
	"github.com/retailops/storectl/pkg/listview"
)

func TestSortKeysHaveSorters(t *testing.T) {
	check := func(t *testing.T, keys []string, sorters int, lookup func(string) bool) {
		t.Helper()
		if keys[0] != "" {
			t.Fatalf("first sort key should be empty, got %q", keys[0])
		}
		if got := len(keys) - 1; got != sorters {
			t.Fatalf("have %d sort keys but %d sorters", got, sorters)
		}
		for _, k := range keys[1:] {
			if !lookup(k) {
				t.Errorf("sort key %q has no sorter", k)
			}
		}
	}

	p := Products()
	check(t, p.SortKeys, len(p.Config.Sorters), func(k string) bool { _, ok := p.Config.Sorters[k]; return ok })
	c := Customers()
	check(t, c.SortKeys, len(c.Config.Sorters), func(k string) bool { _, ok := c.Config.Sorters[k]; return ok })
	o := Orders()
	check(t, o.SortKeys, len(o.Config.Sorters), func(k string) bool { _, ok := o.Config.Sorters[k]; return ok })
	s := StockIns()
	check(t, s.SortKeys, len(s.Config.Sorters), func(k string) bool { _, ok := s.Config.Sorters[k]; return ok })
}

func TestProductsPriceSort(t *testing.T) {
	items := []api.Product{
		{Code: "SP01", Name: "Ao thun", SalePrice: decimal.NewFromInt(120000)},
		{Code: "SP02", Name: "Quan jean", SalePrice: decimal.NewFromInt(350000)},
		{Code: "SP03", Name: "Ao khoac", SalePrice: decimal.NewFromInt(90000)},
	}
	page := listview.Derive(items, Products().Config, listview.Params{Sort: "priceAsc", Page: 1, PageSize: 10})
	want := []string{"SP03", "SP01", "SP02"}
	for i, w := range want {
		if page.Items[i].Code != w {
			t.Fatalf("priceAsc position %d = %s, want %s", i, page.Items[i].Code, w)
		}
	}
}

func TestOrdersSearchMatchesCodes(t *testing.T) {
	items := []api.Order{
		{Code: "DH01", CustomerCode: "KH02", EmployeeCode: "NV01"},
		{Code: "DH02", CustomerCode: "KH05", EmployeeCode: "NV03"},
	}
	page := listview.Derive(items, Orders().Config, listview.Params{Query: "kh05", Page: 1, PageSize: 10})
	if page.Total != 1 || page.Items[0].Code != "DH02" {
		t.Fatalf("search by customer code returned %+v", page.Items)
	}
}
