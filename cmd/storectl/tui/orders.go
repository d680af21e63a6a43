package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/retailops/storectl/pkg/api"
	"github.com/retailops/storectl/pkg/form"
	"github.com/retailops/storectl/pkg/session"
	"github.com/retailops/storectl/pkg/views"
)

type ordersMode int

const (
	ordersBrowse ordersMode = iota
	ordersDetail
	ordersForm
)

type orderFormPhase int

const (
	phaseCustomer orderFormPhase = iota
	phaseLines
)

const (
	newCustFieldName = iota
	newCustFieldBirthYear
	newCustFieldAddress
	newCustFieldPhone
)

type ordersPage struct {
	client       *api.Client
	holder       *session.Holder
	employeeCode string

	mode  ordersMode
	pager pager[api.Order]

	// detail overlay
	detailCode    string
	detailLines   []api.OrderLine
	detailSampled bool

	// create/edit form
	draft       *form.OrderDraft
	editor      lineEditor
	phase       orderFormPhase
	custInput   textinput.Model
	custSuggest form.Suggestions[api.Customer]
	custCursor  int
	newCustomer bool
	custFields  fieldSet

	busy     bool
	sampled  bool
	errMsg   string
	notice   string
	loaded bool
}

type ordersLoadedMsg struct {
	items   []api.Order
	sampled bool
}

type orderLinesMsg struct {
	order   api.Order
	lines   []api.OrderLine
	sampled bool
	forEdit bool
	err     error
}

type orderSavedMsg struct {
	err error
}

// customerSuggestMsg delivers one customer search response, tagged with
// the generation of the keystroke that issued it.
type customerSuggestMsg struct {
	gen   uint64
	items []api.Customer
}

func customerSuggestCmd(client *api.Client, gen uint64, query string) tea.Cmd {
	return func() tea.Msg {
		items, err := client.SearchCustomersByName(context.Background(), query)
		if err != nil {
			items = nil
		}
		return customerSuggestMsg{gen: gen, items: items}
	}
}

func newOrdersPage(client *api.Client, holder *session.Holder) ordersPage {
	return ordersPage{client: client, holder: holder, pager: newPager(views.Orders())}
}

func (p *ordersPage) typing() bool {
	return p.mode == ordersForm || p.pager.searching
}

// load fetches the order book; an outage degrades to the built-in sample
// set so the listing still renders.
func (p *ordersPage) load() tea.Cmd {
	c := p.client
	return func() tea.Msg {
		items, err := c.ListOrders(context.Background())
		if err != nil {
			return ordersLoadedMsg{items: api.SampleOrders(), sampled: true}
		}
		return ordersLoadedMsg{items: items}
	}
}

func (p *ordersPage) linesCmd(o api.Order, forEdit bool) tea.Cmd {
	c := p.client
	return func() tea.Msg {
		lines, err := c.OrderDetails(context.Background(), o.Code)
		if err != nil {
			if forEdit {
				return orderLinesMsg{order: o, forEdit: true, err: err}
			}
			return orderLinesMsg{order: o, lines: api.SampleOrderLines(o.Code), sampled: true}
		}
		return orderLinesMsg{order: o, lines: lines, forEdit: forEdit}
	}
}

func (p *ordersPage) openCreate() {
	d := form.NewOrderDraft(p.employeeCode)
	p.draft = &d
	p.editor = newLineEditor(p.client, &d, func() []form.LineDraft { return d.Lines })
	p.phase = phaseCustomer

	ti := textinput.New()
	ti.Placeholder = "customer name"
	ti.CharLimit = 64
	ti.Width = 32
	ti.Focus()
	p.custInput = ti
	p.custSuggest.Clear()
	p.custCursor = 0
	p.newCustomer = false

	p.errMsg = ""
	p.mode = ordersForm
}

func (p *ordersPage) openEdit(o api.Order, lines []api.OrderLine) {
	d := form.OrderDraftFrom(o, lines)
	if d.EmployeeCode == "" {
		d.EmployeeCode = p.employeeCode
	}
	p.draft = &d
	p.editor = newLineEditor(p.client, &d, func() []form.LineDraft { return d.Lines })
	p.phase = phaseLines
	p.errMsg = ""
	p.mode = ordersForm
}

func (p *ordersPage) saveCmd() tea.Cmd {
	c := p.client
	d := p.draft
	return func() tea.Msg {
		var err error
		if d.OrderCode == "" {
			_, err = c.CreateOrder(context.Background(), d.CreateRequest())
		} else {
			_, err = c.UpdateOrder(context.Background(), d.UpdateRequest())
		}
		return orderSavedMsg{err: err}
	}
}

func (p *ordersPage) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ordersLoadedMsg:
		p.loaded = true
		p.sampled = msg.sampled
		p.pager.SetItems(msg.items)
		return nil

	case orderLinesMsg:
		p.busy = false
		if msg.forEdit {
			if msg.err != nil {
				p.errMsg = "cannot edit " + msg.order.Code + ": " + msg.err.Error()
				return nil
			}
			p.openEdit(msg.order, msg.lines)
			return nil
		}
		p.detailCode = msg.order.Code
		p.detailLines = msg.lines
		p.detailSampled = msg.sampled
		p.mode = ordersDetail
		return nil

	case customerSuggestMsg:
		if p.mode == ordersForm && p.custSuggest.Deliver(msg.gen, msg.items) {
			p.custCursor = 0
		}
		return nil

	case orderSavedMsg:
		p.busy = false
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return nil
		}
		p.mode = ordersBrowse
		p.notice = "Saved"
		return p.load()
	}

	if p.mode == ordersForm {
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
	case ordersBrowse:
		if p.pager.HandleKey(key) {
			return nil
		}
		switch key.String() {
		case "enter":
			if item, ok := p.pager.Selected(); ok {
				p.busy = true
				return p.linesCmd(item, false)
			}
		case "n":
			p.openCreate()
		case "e":
			if item, ok := p.pager.Selected(); ok {
				p.busy = true
				return p.linesCmd(item, true)
			}
		case "r":
			return p.load()
		}

	case ordersDetail:
		switch key.String() {
		case "esc", "enter", "q":
			p.mode = ordersBrowse
		}
	}
	return nil
}

func (p *ordersPage) updateForm(msg tea.Msg) (bool, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if isKey && key.String() == "esc" && !p.editor.editing {
		p.mode = ordersBrowse
		return true, nil
	}
	if p.busy {
		return true, nil
	}

	switch p.phase {
	case phaseCustomer:
		if !isKey {
			return false, nil
		}
		if p.newCustomer {
			switch key.String() {
			case "ctrl+n":
				p.newCustomer = false
				return true, nil
			case "enter":
				p.draft.CustomerCode = ""
				p.draft.CustomerName = p.custFields.value(newCustFieldName)
				p.draft.Address = p.custFields.value(newCustFieldAddress)
				p.draft.Phone = p.custFields.value(newCustFieldPhone)
				if raw := p.custFields.value(newCustFieldBirthYear); raw != "" {
					year, err := strconv.Atoi(raw)
					if err != nil {
						p.errMsg = fmt.Sprintf("bad birth year %q", raw)
						return true, nil
					}
					p.draft.BirthYear = year
				}
				if p.draft.CustomerName == "" {
					p.errMsg = "customer name is required"
					return true, nil
				}
				p.errMsg = ""
				p.phase = phaseLines
				return true, nil
			}
			p.custFields.handleKey(key)
			return true, nil
		}

		switch key.String() {
		case "ctrl+n":
			p.newCustomer = true
			p.custFields = newFieldSet("Name", "Birth year", "Address", "Phone")
			return true, nil
		case "down", "ctrl+j":
			if p.custCursor < len(p.custSuggest.Items())-1 {
				p.custCursor++
			}
			return true, nil
		case "up", "ctrl+k":
			if p.custCursor > 0 {
				p.custCursor--
			}
			return true, nil
		case "enter":
			items := p.custSuggest.Items()
			if len(items) == 0 || p.custCursor >= len(items) {
				p.errMsg = "pick a customer or press ctrl+n for a new one"
				return true, nil
			}
			c := items[p.custCursor]
			p.draft.CustomerCode = c.Code
			p.draft.CustomerName = c.Name
			p.errMsg = ""
			p.phase = phaseLines
			return true, nil
		}

		before := p.custInput.Value()
		var cmd tea.Cmd
		p.custInput, cmd = p.custInput.Update(msg)
		_ = cmd
		after := p.custInput.Value()
		if after == before {
			return true, nil
		}
		if strings.TrimSpace(after) == "" {
			p.custSuggest.Clear()
			p.custCursor = 0
			return true, nil
		}
		gen := p.custSuggest.Next()
		return true, customerSuggestCmd(p.client, gen, after)

	case phaseLines:
		if handled, cmd := p.editor.handleMsg(msg); handled {
			return true, cmd
		}
		if !isKey {
			return false, nil
		}
		switch key.String() {
		case "ctrl+s":
			if err := p.draft.Validate(); err != nil {
				p.errMsg = err.Error()
				return true, nil
			}
			p.busy = true
			p.errMsg = ""
			return true, p.saveCmd()
		case "b":
			if p.draft.OrderCode == "" {
				p.phase = phaseCustomer
			}
			return true, nil
		}
		return true, nil
	}
	return false, nil
}

func (p ordersPage) view() string {
	switch p.mode {
	case ordersDetail:
		return p.viewDetail()
	case ordersForm:
		return p.viewForm()
	}

	if !p.loaded {
		return infoStyle.Render("Loading orders...")
	}

	rows := make([][]string, 0, len(p.pager.derived.Items))
	for _, it := range p.pager.derived.Items {
		rows = append(rows, []string{it.Code, it.CustomerCode, it.EmployeeCode, it.CreatedAt, it.Total.String()})
	}

	out := titleStyle.Render("Orders") + "\n"
	if p.sampled {
		out += warningStyle.Render("⚠ backend unavailable, showing sample data") + "\n"
	}
	if h := p.pager.Header(); h != "" {
		out += h + "\n"
	}
	out += renderTable(
		[]string{"ORDER", "CUSTOMER", "EMPLOYEE", "DATE", "TOTAL"},
		[]int{8, 10, 10, 12, 14},
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

func (p ordersPage) viewDetail() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Order " + p.detailCode))
	b.WriteString("\n")
	if p.detailSampled {
		b.WriteString(warningStyle.Render("⚠ backend unavailable, showing sample data"))
		b.WriteString("\n")
	}

	rows := make([][]string, 0, len(p.detailLines))
	for _, l := range p.detailLines {
		rows = append(rows, []string{l.ProductCode, strconv.Itoa(l.Quantity), l.UnitPrice.String(), l.LineTotal.String()})
	}
	b.WriteString(renderTable(
		[]string{"PRODUCT", "QTY", "UNIT PRICE", "TOTAL"},
		[]int{10, 5, 14, 14},
		rows, -1,
	))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(FormatKey("esc", "back")))
	return boxStyle.Render(b.String())
}

func (p ordersPage) viewForm() string {
	var b strings.Builder
	title := "New order"
	if p.draft.OrderCode != "" {
		title = "Edit order " + p.draft.OrderCode
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	switch p.phase {
	case phaseCustomer:
		if p.newCustomer {
			b.WriteString(headerRowStyle.Render("New customer"))
			b.WriteString("\n")
			b.WriteString(p.custFields.view())
			b.WriteString(helpStyle.Render(FormatKey("enter", "continue") + " • " + FormatKey("ctrl+n", "existing customer") + " • " + FormatKey("esc", "cancel")))
		} else {
			b.WriteString(headerRowStyle.Render("Customer"))
			b.WriteString("\n")
			b.WriteString(p.custInput.View())
			b.WriteString("\n")
			for i, c := range p.custSuggest.Items() {
				label := fmt.Sprintf("%s  %s  %s", c.Code, c.Name, mutedStyle.Render(c.Phone))
				if i == p.custCursor {
					b.WriteString(selectedRowStyle.Render("▸ " + label))
				} else {
					b.WriteString(plainRowStyle.Render("  " + label))
				}
				b.WriteString("\n")
			}
			b.WriteString(helpStyle.Render(FormatKey("type", "search") + " • " + FormatKey("enter", "pick") + " • " + FormatKey("ctrl+n", "new customer") + " • " + FormatKey("esc", "cancel")))
		}

	case phaseLines:
		who := p.draft.CustomerName
		if p.draft.CustomerCode != "" {
			who += " (" + p.draft.CustomerCode + ")"
		}
		b.WriteString(mutedStyle.Render("Customer: " + who))
		b.WriteString("\n\n")
		b.WriteString(p.editor.view(false))
		b.WriteString("\n")
		b.WriteString(headerRowStyle.Render("Total: " + p.draft.Total.String()))
		b.WriteString("\n")
		if p.busy {
			b.WriteString(infoStyle.Render("Saving..."))
			b.WriteString("\n")
		}
		help := p.editor.help() + " • " + FormatKey("ctrl+s", "save")
		if p.draft.OrderCode == "" && !p.editor.editing {
			help += " • " + FormatKey("b", "customer")
		}
		if !p.editor.editing {
			help += " • " + FormatKey("esc", "cancel")
		}
		b.WriteString(helpStyle.Render(help))
	}

	b.WriteString(errorBanner(p.errMsg))
	return activeBoxStyle.Render(b.String())
}
