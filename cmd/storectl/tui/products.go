package tui

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/retailops/storectl/pkg/api"
	"github.com/retailops/storectl/pkg/form"
	"github.com/retailops/storectl/pkg/views"
)

type productsMode int

const (
	productsBrowse productsMode = iota
	productsForm
	productsConfirmDelete
)

const (
	productFieldName = iota
	productFieldCategory
	productFieldPrice
	productFieldQuantity
	productFieldDescription
	productFieldImageURL
)

type productsPage struct {
	client *api.Client
	mode   productsMode
	pager  pager[api.Product]

	fields   fieldSet
	editing  string // product code, empty for create
	confirm  ConfirmationDialog
	deleting string
	busy     bool
	errMsg   string
	notice   string
	loaded   bool
}

type productsLoadedMsg struct {
	items []api.Product
	err   error
}

type productSavedMsg struct {
	err error
}

type productDeletedMsg struct {
	err error
}

func newProductsPage(client *api.Client) productsPage {
	return productsPage{client: client, pager: newPager(views.Products())}
}

func (p *productsPage) typing() bool {
	return p.mode != productsBrowse || p.pager.searching
}

func (p *productsPage) load() tea.Cmd {
	c := p.client
	return func() tea.Msg {
		items, err := c.ListProducts(context.Background())
		return productsLoadedMsg{items: items, err: err}
	}
}

func (p *productsPage) openForm(draft form.ProductDraft) {
	fs := newFieldSet("Name", "Category", "Sale price", "Stock quantity", "Description", "Image URL")
	fs.set(productFieldName, draft.Name)
	fs.set(productFieldCategory, draft.Category)
	if draft.Code != "" {
		fs.set(productFieldPrice, draft.SalePrice.String())
		fs.set(productFieldQuantity, strconv.Itoa(draft.Quantity))
	}
	fs.set(productFieldDescription, draft.Description)
	fs.set(productFieldImageURL, draft.ImageURL)
	p.fields = fs
	p.editing = draft.Code
	p.errMsg = ""
	p.mode = productsForm
}

// draft rebuilds the dialog state from the typed field values.
func (p *productsPage) draft() (form.ProductDraft, error) {
	d := form.ProductDraft{
		Code:        p.editing,
		Name:        p.fields.value(productFieldName),
		Category:    p.fields.value(productFieldCategory),
		Description: p.fields.value(productFieldDescription),
		ImageURL:    p.fields.value(productFieldImageURL),
	}
	if raw := p.fields.value(productFieldPrice); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return d, fmt.Errorf("bad price %q", raw)
		}
		d.SalePrice = price
	}
	if raw := p.fields.value(productFieldQuantity); raw != "" {
		qty, err := strconv.Atoi(raw)
		if err != nil {
			return d, fmt.Errorf("bad quantity %q", raw)
		}
		d.Quantity = qty
	}
	if err := d.Validate(); err != nil {
		return d, err
	}
	return d, nil
}

func (p *productsPage) saveCmd(d form.ProductDraft) tea.Cmd {
	c := p.client
	return func() tea.Msg {
		var err error
		if d.Code == "" {
			_, err = c.CreateProduct(context.Background(), d.Request())
		} else {
			_, err = c.UpdateProduct(context.Background(), d.Code, d.Request())
		}
		return productSavedMsg{err: err}
	}
}

func (p *productsPage) deleteCmd(code string) tea.Cmd {
	c := p.client
	return func() tea.Msg {
		return productDeletedMsg{err: c.DeleteProduct(context.Background(), code)}
	}
}

func (p *productsPage) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		p.loaded = true
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return nil
		}
		p.errMsg = ""
		p.pager.SetItems(msg.items)
		return nil

	case productSavedMsg:
		p.busy = false
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return nil
		}
		p.mode = productsBrowse
		p.notice = "Saved"
		return p.load()

	case productDeletedMsg:
		p.busy = false
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			p.mode = productsBrowse
			return nil
		}
		p.mode = productsBrowse
		p.notice = "Deleted"
		return p.load()

	case tea.KeyMsg:
		if p.busy {
			return nil
		}
		p.notice = ""

		switch p.mode {
		case productsBrowse:
			if p.pager.HandleKey(msg) {
				return nil
			}
			switch msg.String() {
			case "n":
				p.openForm(form.NewProductDraft())
			case "enter", "e":
				if item, ok := p.pager.Selected(); ok {
					p.openForm(form.ProductDraftFrom(item))
				}
			case "d":
				if item, ok := p.pager.Selected(); ok {
					p.confirm = NewConfirmationDialog("Delete product",
						fmt.Sprintf("Delete %s (%s)? The product is hidden from sale.", item.Name, item.Code))
					p.deleting = item.Code
					p.mode = productsConfirmDelete
				}
			case "r":
				return p.load()
			}

		case productsForm:
			switch msg.String() {
			case "esc":
				p.mode = productsBrowse
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

		case productsConfirmDelete:
			switch msg.String() {
			case "esc":
				p.mode = productsBrowse
			case "enter":
				if p.confirm.YesSelected {
					p.busy = true
					return p.deleteCmd(p.deleting)
				}
				p.mode = productsBrowse
			default:
				p.confirm.Update(msg)
			}
		}
	}
	return nil
}

func (p productsPage) view() string {
	switch p.mode {
	case productsForm:
		title := "New product"
		if p.editing != "" {
			title = "Edit product " + p.editing
		}
		body := titleStyle.Render(title) + "\n" + p.fields.view() + errorBanner(p.errMsg) + "\n" +
			helpStyle.Render(FormatKey("tab", "next field")+" • "+FormatKey("enter", "save")+" • "+FormatKey("esc", "cancel"))
		return activeBoxStyle.Render(body)

	case productsConfirmDelete:
		return p.confirm.View()
	}

	if !p.loaded {
		return infoStyle.Render("Loading products...")
	}

	rows := make([][]string, 0, len(p.pager.derived.Items))
	for _, it := range p.pager.derived.Items {
		rows = append(rows, []string{it.Code, it.Name, it.Category, it.SalePrice.String(), strconv.Itoa(it.StockQuantity)})
	}

	out := titleStyle.Render("Products") + "\n"
	if h := p.pager.Header(); h != "" {
		out += h + "\n"
	}
	out += renderTable(
		[]string{"CODE", "NAME", "CATEGORY", "PRICE", "STOCK"},
		[]int{8, 28, 14, 12, 6},
		rows, p.pager.cursor,
	)
	out += p.pager.Footer()
	if p.notice != "" {
		out += "  " + successStyle.Render("✓ "+p.notice)
	}
	out += errorBanner(p.errMsg)
	out += "\n" + helpStyle.Render(FormatKey("/", "search")+" • "+FormatKey("s", "sort")+" • "+FormatKey("n", "new")+" • "+FormatKey("e", "edit")+" • "+FormatKey("d", "delete")+" • "+FormatKey("r", "reload"))
	return out
}
