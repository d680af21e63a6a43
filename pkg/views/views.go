// Package views supplies each entity's field accessors and sort
// comparators for the shared list derivation. Screens pick a View; the
// algorithm lives in listview.
package views

import (
	"strings"

	"github.com/retailops/storectl/pkg/api"
	"github.com/retailops/storectl/pkg/listview"
)

// View couples a listview config with the entity's sort keys, in the order
// the console cycles through them. The empty key (no sorting) is always
// first.
type View[T any] struct {
	Config   listview.Config[T]
	SortKeys []string
}

// Products matches name, category and code; sorts by name or price.
func Products() View[api.Product] {
	return View[api.Product]{
		Config: listview.Config[api.Product]{
			SearchFields: []func(api.Product) string{
				func(p api.Product) string { return p.Name },
				func(p api.Product) string { return p.Category },
				func(p api.Product) string { return p.Code },
			},
			Sorters: map[string]func(a, b api.Product) int{
				"nameAsc":   func(a, b api.Product) int { return strings.Compare(a.Name, b.Name) },
				"nameDesc":  func(a, b api.Product) int { return strings.Compare(b.Name, a.Name) },
				"priceAsc":  func(a, b api.Product) int { return a.SalePrice.Cmp(b.SalePrice) },
				"priceDesc": func(a, b api.Product) int { return b.SalePrice.Cmp(a.SalePrice) },
			},
		},
		SortKeys: []string{"", "nameAsc", "nameDesc", "priceAsc", "priceDesc"},
	}
}

// Customers matches name and phone; sorts by name or birth year.
func Customers() View[api.Customer] {
	return View[api.Customer]{
		Config: listview.Config[api.Customer]{
			SearchFields: []func(api.Customer) string{
				func(c api.Customer) string { return c.Name },
				func(c api.Customer) string { return c.Phone },
			},
			Sorters: map[string]func(a, b api.Customer) int{
				"nameAsc":  func(a, b api.Customer) int { return strings.Compare(a.Name, b.Name) },
				"nameDesc": func(a, b api.Customer) int { return strings.Compare(b.Name, a.Name) },
				"yearAsc":  func(a, b api.Customer) int { return a.BirthYear - b.BirthYear },
				"yearDesc": func(a, b api.Customer) int { return b.BirthYear - a.BirthYear },
			},
		},
		SortKeys: []string{"", "nameAsc", "nameDesc", "yearAsc", "yearDesc"},
	}
}

// Orders matches order, customer and employee codes; sorts by date.
func Orders() View[api.Order] {
	return View[api.Order]{
		Config: listview.Config[api.Order]{
			SearchFields: []func(api.Order) string{
				func(o api.Order) string { return o.Code },
				func(o api.Order) string { return o.CustomerCode },
				func(o api.Order) string { return o.EmployeeCode },
			},
			Sorters: map[string]func(a, b api.Order) int{
				// ISO dates compare correctly as strings.
				"dateAsc":  func(a, b api.Order) int { return strings.Compare(a.CreatedAt, b.CreatedAt) },
				"dateDesc": func(a, b api.Order) int { return strings.Compare(b.CreatedAt, a.CreatedAt) },
			},
		},
		SortKeys: []string{"", "dateAsc", "dateDesc"},
	}
}

// StockIns matches record code, employee code and supplier; sorts by date.
func StockIns() View[api.StockIn] {
	return View[api.StockIn]{
		Config: listview.Config[api.StockIn]{
			SearchFields: []func(api.StockIn) string{
				func(s api.StockIn) string { return s.Code },
				func(s api.StockIn) string { return s.EmployeeCode },
				func(s api.StockIn) string { return s.Supplier },
			},
			Sorters: map[string]func(a, b api.StockIn) int{
				"dateAsc":  func(a, b api.StockIn) int { return strings.Compare(a.ReceivedAt, b.ReceivedAt) },
				"dateDesc": func(a, b api.StockIn) int { return strings.Compare(b.ReceivedAt, a.ReceivedAt) },
			},
		},
		SortKeys: []string{"", "dateAsc", "dateDesc"},
	}
}
