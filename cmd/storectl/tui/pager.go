package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/retailops/storectl/pkg/listview"
	"github.com/retailops/storectl/pkg/views"
)

// pager drives a searchable, sortable, paginated listing of one record
// type. Pages keep one per listing they render and call refresh after
// every mutation of the underlying items.
type pager[T any] struct {
	view    views.View[T]
	items   []T
	page    int
	sortIdx int
	cursor  int

	search    textinput.Model
	searching bool

	derived listview.Page[T]
}

func newPager[T any](view views.View[T]) pager[T] {
	ti := textinput.New()
	ti.Placeholder = "search"
	ti.CharLimit = 64
	ti.Width = 32
	return pager[T]{view: view, page: 1, search: ti}
}

// SetItems replaces the backing slice and re-derives the current page.
func (p *pager[T]) SetItems(items []T) {
	p.items = items
	p.refresh()
}

func (p *pager[T]) sortKey() string {
	if len(p.view.SortKeys) == 0 {
		return ""
	}
	return p.view.SortKeys[p.sortIdx%len(p.view.SortKeys)]
}

func (p *pager[T]) params() listview.Params {
	return listview.Params{
		Query:    p.search.Value(),
		Sort:     p.sortKey(),
		Page:     p.page,
		PageSize: listview.DefaultPageSize,
	}
}

func (p *pager[T]) refresh() {
	p.derived = listview.Derive(p.items, p.view.Config, p.params())
	clamped := listview.ClampPage(p.page, p.derived.TotalPages)
	if clamped != p.page {
		p.page = clamped
		p.derived = listview.Derive(p.items, p.view.Config, p.params())
	}
	if p.cursor >= len(p.derived.Items) {
		p.cursor = len(p.derived.Items) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// Selected returns the record under the cursor, or false when the page
// is empty.
func (p *pager[T]) Selected() (T, bool) {
	var zero T
	if len(p.derived.Items) == 0 {
		return zero, false
	}
	return p.derived.Items[p.cursor], true
}

// HandleKey consumes pager navigation keys. It reports whether the key
// was handled so callers can route unclaimed keys to page actions.
func (p *pager[T]) HandleKey(msg tea.KeyMsg) bool {
	if p.searching {
		switch msg.String() {
		case "enter", "esc":
			p.searching = false
			p.search.Blur()
		default:
			var cmd tea.Cmd
			p.search, cmd = p.search.Update(msg)
			_ = cmd
			p.page = 1
		}
		p.refresh()
		return true
	}

	switch msg.String() {
	case "/":
		p.searching = true
		p.search.Focus()
		return true
	case "s":
		if len(p.view.SortKeys) > 0 {
			p.sortIdx = (p.sortIdx + 1) % len(p.view.SortKeys)
			p.refresh()
		}
		return true
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
		return true
	case "down", "j":
		if p.cursor < len(p.derived.Items)-1 {
			p.cursor++
		}
		return true
	case "left", "h":
		if p.page > 1 {
			p.page--
			p.cursor = 0
			p.refresh()
		}
		return true
	case "right", "l":
		if p.page < p.derived.TotalPages {
			p.page++
			p.cursor = 0
			p.refresh()
		}
		return true
	}
	return false
}

// Header renders the search box and sort indicator above the table.
func (p *pager[T]) Header() string {
	var b strings.Builder
	if p.searching {
		b.WriteString(activeBoxStyle.Render(p.search.View()))
	} else if q := p.search.Value(); q != "" {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("filter: %q", q)))
	}
	if key := p.sortKey(); key != "" {
		if b.Len() > 0 {
			b.WriteString("  ")
		}
		b.WriteString(mutedStyle.Render("sort: " + key))
	}
	return b.String()
}

// Footer renders the page position line.
func (p *pager[T]) Footer() string {
	return mutedStyle.Render(fmt.Sprintf("page %d/%d • %d records", p.page, p.derived.TotalPages, p.derived.Total))
}
