package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/retailops/storectl/pkg/api"
	"github.com/retailops/storectl/pkg/form"
)

// lineDraft is the slice of draft behavior the editor needs; both the
// order and stock-in drafts provide it.
type lineDraft interface {
	AddLine() string
	RemoveLine(rowID string)
	SetQuantity(rowID string, qty int)
	SelectProduct(rowID string, p api.Product)
	TypeProductName(rowID, name string)
}

// productSuggestMsg delivers one search-as-you-type response. gen ties it
// to the keystroke that issued it; stale generations are dropped.
type productSuggestMsg struct {
	gen   uint64
	items []api.Product
}

func productSuggestCmd(client *api.Client, gen uint64, query string) tea.Cmd {
	return func() tea.Msg {
		items, err := client.SearchProducts(context.Background(), query)
		if err != nil {
			items = nil
		}
		return productSuggestMsg{gen: gen, items: items}
	}
}

// lineEditor drives the product rows of an order or stock-in form: cursor
// movement, quantity bumps, and a product-name search box with live
// suggestions.
type lineEditor struct {
	client *api.Client
	draft  lineDraft
	lines  func() []form.LineDraft

	cursor    int
	editing   bool
	input     textinput.Model
	suggest   form.Suggestions[api.Product]
	sugCursor int
}

func newLineEditor(client *api.Client, draft lineDraft, lines func() []form.LineDraft) lineEditor {
	return lineEditor{client: client, draft: draft, lines: lines}
}

func (e *lineEditor) current() (form.LineDraft, bool) {
	lines := e.lines()
	if e.cursor < 0 || e.cursor >= len(lines) {
		return form.LineDraft{}, false
	}
	return lines[e.cursor], true
}

func (e *lineEditor) clamp() {
	if n := len(e.lines()); e.cursor >= n {
		e.cursor = n - 1
	}
	if e.cursor < 0 {
		e.cursor = 0
	}
}

func (e *lineEditor) startEdit(name string) {
	ti := textinput.New()
	ti.Placeholder = "product name"
	ti.CharLimit = 64
	ti.Width = 32
	ti.SetValue(name)
	ti.CursorEnd()
	ti.Focus()
	e.input = ti
	e.suggest.Clear()
	e.sugCursor = 0
	e.editing = true
}

func (e *lineEditor) stopEdit() {
	e.editing = false
	e.suggest.Clear()
}

// handleMsg consumes line-editing messages and keys. It reports whether
// the message was handled.
func (e *lineEditor) handleMsg(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case productSuggestMsg:
		if e.suggest.Deliver(msg.gen, msg.items) {
			e.sugCursor = 0
		}
		return true, nil

	case tea.KeyMsg:
		if e.editing {
			return true, e.handleEditKey(msg)
		}
		return e.handleBrowseKey(msg)
	}
	return false, nil
}

func (e *lineEditor) handleBrowseKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}
		return true, nil
	case "down", "j":
		if e.cursor < len(e.lines())-1 {
			e.cursor++
		}
		return true, nil
	case "a":
		e.draft.AddLine()
		e.cursor = len(e.lines()) - 1
		e.startEdit("")
		return true, nil
	case "enter", "i":
		if line, ok := e.current(); ok {
			e.startEdit(line.ProductName)
		}
		return true, nil
	case "x":
		if line, ok := e.current(); ok {
			e.draft.RemoveLine(line.RowID)
			e.clamp()
		}
		return true, nil
	case "+", "=":
		if line, ok := e.current(); ok {
			e.draft.SetQuantity(line.RowID, line.Quantity+1)
		}
		return true, nil
	case "-":
		if line, ok := e.current(); ok && line.Quantity > 1 {
			e.draft.SetQuantity(line.RowID, line.Quantity-1)
		}
		return true, nil
	}
	return false, nil
}

func (e *lineEditor) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	line, ok := e.current()
	if !ok {
		e.stopEdit()
		return nil
	}

	switch msg.String() {
	case "esc":
		e.stopEdit()
		return nil
	case "enter":
		items := e.suggest.Items()
		if len(items) > 0 && e.sugCursor < len(items) {
			e.draft.SelectProduct(line.RowID, items[e.sugCursor])
		}
		e.stopEdit()
		return nil
	case "down", "ctrl+n", "tab":
		if e.sugCursor < len(e.suggest.Items())-1 {
			e.sugCursor++
		}
		return nil
	case "up", "ctrl+p", "shift+tab":
		if e.sugCursor > 0 {
			e.sugCursor--
		}
		return nil
	}

	before := e.input.Value()
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	_ = cmd
	after := e.input.Value()
	if after == before {
		return nil
	}

	e.draft.TypeProductName(line.RowID, after)
	if strings.TrimSpace(after) == "" {
		e.suggest.Clear()
		e.sugCursor = 0
		return nil
	}
	gen := e.suggest.Next()
	return productSuggestCmd(e.client, gen, after)
}

func (e lineEditor) view(showPrice bool) string {
	var b strings.Builder

	headers := []string{"PRODUCT", "NAME", "QTY", "PRICE", "TOTAL"}
	widths := []int{8, 24, 5, 12, 12}

	rows := make([][]string, 0, len(e.lines()))
	for _, l := range e.lines() {
		name := l.ProductName
		if !l.Selected() && name != "" {
			name = warningStyle.Render(name + " ?")
		}
		price, total := "", ""
		if l.Selected() || showPrice {
			price = l.UnitPrice.String()
			total = l.LineTotal.String()
		}
		rows = append(rows, []string{l.ProductCode, name, fmt.Sprintf("%d", l.Quantity), price, total})
	}
	if len(rows) == 0 {
		b.WriteString(mutedStyle.Render("no lines yet, press a to add one"))
		b.WriteString("\n")
	} else {
		b.WriteString(renderTable(headers, widths, rows, e.cursor))
	}

	if e.editing {
		b.WriteString("\n")
		b.WriteString(activeBoxStyle.Render(e.input.View()))
		b.WriteString("\n")
		for i, it := range e.suggest.Items() {
			label := fmt.Sprintf("%s  %s  %s", it.Code, it.Name, mutedStyle.Render(it.SalePrice.String()))
			if i == e.sugCursor {
				b.WriteString(selectedRowStyle.Render("▸ " + label))
			} else {
				b.WriteString(plainRowStyle.Render("  " + label))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (e lineEditor) help() string {
	if e.editing {
		return FormatKey("type", "search") + " • " + FormatKey("↑/↓", "suggestion") + " • " + FormatKey("enter", "pick") + " • " + FormatKey("esc", "done")
	}
	return FormatKey("a", "add line") + " • " + FormatKey("enter", "product") + " • " + FormatKey("+/-", "qty") + " • " + FormatKey("x", "remove")
}
