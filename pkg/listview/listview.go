// Package listview derives the visible page of a list screen from a full
// in-memory collection plus the screen's query, sort and page state.
package listview

import (
	"slices"
	"strings"
)

// DefaultPageSize is the page size every list screen uses.
const DefaultPageSize = 10

// Config describes how one entity participates in filtering and sorting.
// Each screen supplies accessors for its searchable text fields and a
// comparator per sort key; the derivation itself is shared.
type Config[T any] struct {
	// SearchFields are the text fields matched against the query.
	SearchFields []func(T) string
	// Sorters maps a sort key to a three-way comparator. An unknown or
	// empty key preserves the filtered order.
	Sorters map[string]func(a, b T) int
}

// Params is the screen state the derivation depends on.
type Params struct {
	Query    string
	Sort     string
	Page     int // 1-based
	PageSize int // defaults to DefaultPageSize when <= 0
}

// Page is the derived slice of a collection for one screen state.
type Page[T any] struct {
	Items      []T
	Total      int // filtered count
	TotalPages int // always >= 1
}

// Derive filters, sorts and paginates items. It is a pure function of its
// inputs: items is never mutated, and the result holds a fresh slice.
//
// Filtering is a case-insensitive substring match against the configured
// fields; a blank query matches everything. Sorting is stable and applied
// after filtering. TotalPages is ceil(filtered/pageSize), minimum 1.
// Callers are responsible for clamping Page when the collection, query or
// sort changes (see ClampPage); a Page beyond TotalPages yields no items.
func Derive[T any](items []T, cfg Config[T], p Params) Page[T] {
	pageSize := p.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	filtered := filter(items, cfg.SearchFields, p.Query)

	if cmp, ok := cfg.Sorters[p.Sort]; ok && cmp != nil {
		slices.SortStableFunc(filtered, cmp)
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (p.Page - 1) * pageSize
	end := start + pageSize
	if start < 0 || start >= total {
		return Page[T]{Items: []T{}, Total: total, TotalPages: totalPages}
	}
	if end > total {
		end = total
	}

	return Page[T]{Items: filtered[start:end], Total: total, TotalPages: totalPages}
}

// ClampPage snaps page into [1, totalPages]. Screens call this whenever a
// reload, deletion or filter change shrinks the collection, so a page that
// became empty falls back to the last populated one instead of rendering
// blank.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func filter[T any](items []T, fields []func(T) string, query string) []T {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" || len(fields) == 0 {
		return slices.Clone(items)
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(it)), query) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
