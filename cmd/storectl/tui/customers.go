package tui

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/retailops/storectl/pkg/api"
	"github.com/retailops/storectl/pkg/form"
	"github.com/retailops/storectl/pkg/views"
)

type customersMode int

const (
	customersBrowse customersMode = iota
	customersForm
)

const (
	customerFieldName = iota
	customerFieldBirthYear
	customerFieldAddress
	customerFieldPhone
)

type customersPage struct {
	client *api.Client
	mode   customersMode
	pager  pager[api.Customer]

	fields   fieldSet
	editing  string
	busy     bool
	errMsg   string
	notice   string
	loaded bool
}

type customersLoadedMsg struct {
	items []api.Customer
	err   error
}

type customerSavedMsg struct {
	err error
}

func newCustomersPage(client *api.Client) customersPage {
	return customersPage{client: client, pager: newPager(views.Customers())}
}

func (p *customersPage) typing() bool {
	return p.mode != customersBrowse || p.pager.searching
}

func (p *customersPage) load() tea.Cmd {
	c := p.client
	return func() tea.Msg {
		items, err := c.ListCustomers(context.Background())
		return customersLoadedMsg{items: items, err: err}
	}
}

func (p *customersPage) openForm(c api.Customer) {
	d := form.CustomerDraftFrom(c)
	fs := newFieldSet("Name", "Birth year", "Address", "Phone")
	fs.set(customerFieldName, d.Name)
	if d.BirthYear != 0 {
		fs.set(customerFieldBirthYear, strconv.Itoa(d.BirthYear))
	}
	fs.set(customerFieldAddress, d.Address)
	fs.set(customerFieldPhone, d.Phone)
	p.fields = fs
	p.editing = d.Code
	p.errMsg = ""
	p.mode = customersForm
}

func (p *customersPage) draft() (form.CustomerDraft, error) {
	d := form.CustomerDraft{
		Code:    p.editing,
		Name:    p.fields.value(customerFieldName),
		Address: p.fields.value(customerFieldAddress),
		Phone:   p.fields.value(customerFieldPhone),
	}
	if raw := p.fields.value(customerFieldBirthYear); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return d, fmt.Errorf("bad birth year %q", raw)
		}
		d.BirthYear = year
	}
	if err := d.Validate(); err != nil {
		return d, err
	}
	return d, nil
}

func (p *customersPage) saveCmd(d form.CustomerDraft) tea.Cmd {
	c := p.client
	return func() tea.Msg {
		_, err := c.UpdateCustomer(context.Background(), d.Code, d.Request())
		return customerSavedMsg{err: err}
	}
}

func (p *customersPage) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case customersLoadedMsg:
		p.loaded = true
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return nil
		}
		p.errMsg = ""
		p.pager.SetItems(msg.items)
		return nil

	case customerSavedMsg:
		p.busy = false
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return nil
		}
		p.mode = customersBrowse
		p.notice = "Saved"
		return p.load()

	case tea.KeyMsg:
		if p.busy {
			return nil
		}
		p.notice = ""

		switch p.mode {
		case customersBrowse:
			if p.pager.HandleKey(msg) {
				return nil
			}
			switch msg.String() {
			case "enter", "e":
				if item, ok := p.pager.Selected(); ok {
					p.openForm(item)
				}
			case "r":
				return p.load()
			}

		case customersForm:
			switch msg.String() {
			case "esc":
				p.mode = customersBrowse
				return nil
			case "enter":
				d, err := p.draft()
				if err != nil {
					p.errMsg = err.Error()
					return nil
				}
				p.busy = true
				p.errMsg = ""
				return p.saveCmd(d)
			}
			p.fields.handleKey(msg)
		}
	}
	return nil
}

func (p customersPage) view() string {
	if p.mode == customersForm {
		body := titleStyle.Render("Edit customer "+p.editing) + "\n" + p.fields.view() + errorBanner(p.errMsg) + "\n" +
			helpStyle.Render(FormatKey("tab", "next field")+" • "+FormatKey("enter", "save")+" • "+FormatKey("esc", "cancel"))
		return activeBoxStyle.Render(body)
	}

	if !p.loaded {
		return infoStyle.Render("Loading customers...")
	}

	rows := make([][]string, 0, len(p.pager.derived.Items))
	for _, it := range p.pager.derived.Items {
		year := ""
		if it.BirthYear != 0 {
			year = strconv.Itoa(it.BirthYear)
		}
		rows = append(rows, []string{it.Code, it.Name, year, it.Phone, it.Address})
	}

	out := titleStyle.Render("Customers") + "\n"
	if h := p.pager.Header(); h != "" {
		out += h + "\n"
	}
	out += renderTable(
		[]string{"CODE", "NAME", "BORN", "PHONE", "ADDRESS"},
		[]int{8, 24, 6, 14, 28},
		rows, p.pager.cursor,
	)
	out += p.pager.Footer()
	if p.notice != "" {
		out += "  " + successStyle.Render("✓ "+p.notice)
	}
	out += errorBanner(p.errMsg)
	out += "\n" + helpStyle.Render(FormatKey("/", "search")+" • "+FormatKey("s", "sort")+" • "+FormatKey("e", "edit")+" • "+FormatKey("r", "reload"))
	return out
}
