package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/retailops/storectl/pkg/api"
	"github.com/retailops/storectl/pkg/form"
	"github.com/retailops/storectl/pkg/session"
	"github.com/retailops/storectl/pkg/views"
)

type stockinMode int

const (
	stockinBrowse stockinMode = iota
	stockinDetail
	stockinForm
)

type stockinPhase int

const (
	stockinPhaseInfo stockinPhase = iota
	stockinPhaseLines
)

const (
	stockinFieldSupplier = iota
	stockinFieldDate
)

type stockinPage struct {
	client       *api.Client
	holder       *session.Holder
	employeeCode string

	mode  stockinMode
	pager pager[api.StockIn]

	detail *api.StockIn

	draft  *form.StockInDraft
	editor lineEditor
	phase  stockinPhase
	fields fieldSet

	priceEditing bool
	priceInput   textinput.Model

	busy     bool
	errMsg   string
	notice   string
	loaded bool
}

type stockinsLoadedMsg struct {
	items []api.StockIn
	err   error
}

type stockinDetailMsg struct {
	record *api.StockIn
	err    error
}

type stockinSavedMsg struct {
	err error
}

func newStockinPage(client *api.Client, holder *session.Holder) stockinPage {
	return stockinPage{client: client, holder: holder, pager: newPager(views.StockIns())}
}

func (p *stockinPage) typing() bool {
	return p.mode == stockinForm || p.pager.searching
}

func (p *stockinPage) load() tea.Cmd {
	c := p.client
	return func() tea.Msg {
		items, err := c.ListStockIns(context.Background())
		return stockinsLoadedMsg{items: items, err: err}
	}
}

func (p *stockinPage) detailCmd(code string) tea.Cmd {
	c := p.client
	return func() tea.Msg {
		record, err := c.GetStockIn(context.Background(), code)
		return stockinDetailMsg{record: record, err: err}
	}
}

func (p *stockinPage) openForm(d form.StockInDraft) {
	heap := d
	p.draft = &heap
	p.editor = newLineEditor(p.client, &heap, func() []form.LineDraft { return heap.Lines })
	p.phase = stockinPhaseInfo

	fs := newFieldSet("Supplier", "Date (YYYY-MM-DD)")
	fs.set(stockinFieldSupplier, heap.Supplier)
	fs.set(stockinFieldDate, heap.ReceivedAt)
	p.fields = fs

	p.priceEditing = false
	p.errMsg = ""
	p.mode = stockinForm
}

func (p *stockinPage) saveCmd() tea.Cmd {
	c := p.client
	d := p.draft
	return func() tea.Msg {
		var err error
		if d.Code == "" {
			_, err = c.CreateStockIn(context.Background(), d.Request())
		} else {
			_, err = c.UpdateStockIn(context.Background(), d.Code, d.Request())
		}
		return stockinSavedMsg{err: err}
	}
}

func (p *stockinPage) startPriceEdit(line form.LineDraft) {
	ti := textinput.New()
	ti.Placeholder = "unit price"
	ti.CharLimit = 16
	ti.Width = 16
	if line.UnitPrice.GreaterThan(decimal.Zero) {
		ti.SetValue(line.UnitPrice.String())
		ti.CursorEnd()
	}
	ti.Focus()
	p.priceInput = ti
	p.priceEditing = true
}

func (p *stockinPage) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case stockinsLoadedMsg:
		p.loaded = true
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return nil
		}
		p.errMsg = ""
		p.pager.SetItems(msg.items)
		return nil

	case stockinDetailMsg:
		p.busy = false
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return nil
		}
		p.detail = msg.record
		p.mode = stockinDetail
		return nil

	case stockinSavedMsg:
		p.busy = false
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return nil
		}
		p.mode = stockinBrowse
		p.notice = "Saved"
		return p.load()

	case stockinEditMsg:
		p.busy = false
		p.openForm(form.StockInDraftFrom(*msg.record))
		return nil
	}

	if p.mode == stockinForm {
		if handled, cmd := p.updateForm(msg); handled {
			return cmd
		}
		return nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok || p.busy {
		return nil
	}
	p.notice = ""

	switch p.mode {
	case stockinBrowse:
		if p.pager.HandleKey(key) {
			return nil
		}
		switch key.String() {
		case "enter":
			if item, ok := p.pager.Selected(); ok {
				p.busy = true
				return p.detailCmd(item.Code)
			}
		case "n":
			p.openForm(form.NewStockInDraft(p.employeeCode))
		case "e":
			if item, ok := p.pager.Selected(); ok {
				if len(item.Lines) > 0 {
					p.openForm(form.StockInDraftFrom(item))
				} else {
					p.busy = true
					code := item.Code
					c := p.client
					return func() tea.Msg {
						record, err := c.GetStockIn(context.Background(), code)
						if err != nil {
							return stockinSavedMsg{err: err}
						}
						return stockinEditMsg{record: record}
					}
				}
			}
		case "r":
			return p.load()
		}

	case stockinDetail:
		switch key.String() {
		case "esc", "enter", "q":
			p.mode = stockinBrowse
		}
	}
	return nil
}

type stockinEditMsg struct {
	record *api.StockIn
}

func (p *stockinPage) updateForm(msg tea.Msg) (bool, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if isKey && key.String() == "esc" && !p.editor.editing && !p.priceEditing {
		p.mode = stockinBrowse
		return true, nil
	}
	if p.busy {
		return true, nil
	}

	switch p.phase {
	case stockinPhaseInfo:
		if !isKey {
			return false, nil
		}
		if key.String() == "enter" {
			p.draft.Supplier = p.fields.value(stockinFieldSupplier)
			p.draft.ReceivedAt = p.fields.value(stockinFieldDate)
			if p.draft.Supplier == "" {
				p.errMsg = "supplier is required"
				return true, nil
			}
			p.errMsg = ""
			p.phase = stockinPhaseLines
			return true, nil
		}
		p.fields.handleKey(key)
		return true, nil

	case stockinPhaseLines:
		if p.priceEditing {
			if !isKey {
				return false, nil
			}
			switch key.String() {
			case "esc":
				p.priceEditing = false
				return true, nil
			case "enter":
				raw := strings.TrimSpace(p.priceInput.Value())
				price, err := decimal.NewFromString(raw)
				if err != nil || !price.GreaterThan(decimal.Zero) {
					p.errMsg = fmt.Sprintf("bad price %q", raw)
					return true, nil
				}
				if line, ok := p.editor.current(); ok {
					p.draft.SetUnitPrice(line.RowID, price)
				}
				p.errMsg = ""
				p.priceEditing = false
				return true, nil
			}
			var cmd tea.Cmd
			p.priceInput, cmd = p.priceInput.Update(msg)
			_ = cmd
			return true, nil
		}

		if isKey && !p.editor.editing {
			switch key.String() {
			case "u":
				if line, ok := p.editor.current(); ok {
					p.startPriceEdit(line)
				}
				return true, nil
			case "ctrl+s":
				if err := p.draft.Validate(); err != nil {
					p.errMsg = err.Error()
					return true, nil
				}
				p.busy = true
				p.errMsg = ""
				return true, p.saveCmd()
			case "b":
				p.phase = stockinPhaseInfo
				return true, nil
			}
		}
		if handled, cmd := p.editor.handleMsg(msg); handled {
			return true, cmd
		}
		return true, nil
	}
	return false, nil
}

func (p stockinPage) view() string {
	switch p.mode {
	case stockinDetail:
		return p.viewDetail()
	case stockinForm:
		return p.viewForm()
	}

	if !p.loaded {
		return infoStyle.Render("Loading stock-in records...")
	}

	rows := make([][]string, 0, len(p.pager.derived.Items))
	for _, it := range p.pager.derived.Items {
		rows = append(rows, []string{it.Code, it.Supplier, it.EmployeeCode, it.ReceivedAt, it.Total.String()})
	}

	out := titleStyle.Render("Stock-In") + "\n"
	if h := p.pager.Header(); h != "" {
		out += h + "\n"
	}
	out += renderTable(
		[]string{"RECORD", "SUPPLIER", "EMPLOYEE", "DATE", "TOTAL"},
		[]int{8, 20, 10, 12, 14},
		rows, p.pager.cursor,
	)
	out += p.pager.Footer()
	if p.notice != "" {
		out += "  " + successStyle.Render("✓ "+p.notice)
	}
	if p.busy {
		out += "  " + infoStyle.Render("loading...")
	}
	out += errorBanner(p.errMsg)
	out += "\n" + helpStyle.Render(FormatKey("/", "search")+" • "+FormatKey("s", "sort")+" • "+FormatKey("enter", "detail")+" • "+FormatKey("n", "new")+" • "+FormatKey("e", "edit")+" • "+FormatKey("r", "reload"))
	return out
}

func (p stockinPage) viewDetail() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Stock-in " + p.detail.Code))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Supplier: %s • Date: %s • Employee: %s", p.detail.Supplier, p.detail.ReceivedAt, p.detail.EmployeeCode)))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(p.detail.Lines))
	for _, l := range p.detail.Lines {
		name := l.ProductName
		if name == "" {
			name = l.ProductCode
		}
		rows = append(rows, []string{l.ProductCode, name, strconv.Itoa(l.Quantity), l.UnitPrice.String(), l.LineTotal.String()})
	}
	b.WriteString(renderTable(
		[]string{"PRODUCT", "NAME", "QTY", "UNIT PRICE", "TOTAL"},
		[]int{8, 22, 5, 12, 14},
		rows, -1,
	))
	b.WriteString("\n")
	b.WriteString(headerRowStyle.Render("Total: " + p.detail.Total.String()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(FormatKey("esc", "back")))
	return boxStyle.Render(b.String())
}

func (p stockinPage) viewForm() string {
	var b strings.Builder
	title := "New stock-in"
	if p.draft.Code != "" {
		title = "Edit stock-in " + p.draft.Code
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	switch p.phase {
	case stockinPhaseInfo:
		b.WriteString(p.fields.view())
		b.WriteString(helpStyle.Render(FormatKey("tab", "next field") + " • " + FormatKey("enter", "continue") + " • " + FormatKey("esc", "cancel")))

	case stockinPhaseLines:
		b.WriteString(mutedStyle.Render(fmt.Sprintf("Supplier: %s • Date: %s", p.draft.Supplier, p.draft.ReceivedAt)))
		b.WriteString("\n\n")
		b.WriteString(p.editor.view(true))
		if p.priceEditing {
			b.WriteString("\n")
			b.WriteString(activeBoxStyle.Render("Unit price: " + p.priceInput.View()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(headerRowStyle.Render("Total: " + p.draft.Total.String()))
		b.WriteString("\n")
		if p.busy {
			b.WriteString(infoStyle.Render("Saving..."))
			b.WriteString("\n")
		}
		help := p.editor.help()
		if !p.editor.editing && !p.priceEditing {
			help += " • " + FormatKey("u", "price") + " • " + FormatKey("ctrl+s", "save") + " • " + FormatKey("b", "info") + " • " + FormatKey("esc", "cancel")
		}
		b.WriteString(helpStyle.Render(help))
	}

	b.WriteString(errorBanner(p.errMsg))
	return activeBoxStyle.Render(b.String())
}
