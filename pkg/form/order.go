package form

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/retailops/storectl/pkg/api"
)

// OrderDraft is the create/edit dialog state for a sales order. The running
// Total is recomputed synchronously on every mutation and is display-only:
// the server's figure overwrites it on the next re-fetch.
type OrderDraft struct {
	OrderCode    string // set when editing an existing order
	EmployeeCode string

	// Existing customer (code set) or implicit new customer (name and
	// contact fields set, code empty).
	CustomerCode string
	CustomerName string
	BirthYear    int
	Address      string
	Phone        string

	Lines []LineDraft
	Total decimal.Decimal
}

// NewOrderDraft starts an empty order for the given employee.
func NewOrderDraft(employeeCode string) OrderDraft {
	return OrderDraft{EmployeeCode: employeeCode}
}

// OrderDraftFrom loads an existing order's lines for editing. Lines fetched
// from the server are trusted as selected; their codes are real.
func OrderDraftFrom(o api.Order, lines []api.OrderLine) OrderDraft {
	d := OrderDraft{
		OrderCode:    o.Code,
		EmployeeCode: o.EmployeeCode,
		CustomerCode: o.CustomerCode,
	}
	for _, l := range lines {
		ld := newLineDraft()
		ld.ProductCode = l.ProductCode
		ld.Quantity = l.Quantity
		ld.UnitPrice = l.UnitPrice
		ld.selected = true
		ld.recalc()
		d.Lines = append(d.Lines, ld)
	}
	d.recalc()
	return d
}

// AddLine appends an empty row (quantity 1) and returns its RowID.
func (d *OrderDraft) AddLine() string {
	l := newLineDraft()
	d.Lines = append(d.Lines, l)
	d.recalc()
	return l.RowID
}

// RemoveLine deletes a row and refreshes the total.
func (d *OrderDraft) RemoveLine(rowID string) {
	d.Lines = removeLine(d.Lines, rowID)
	d.recalc()
}

// SetQuantity updates a row's quantity and refreshes both totals.
func (d *OrderDraft) SetQuantity(rowID string, qty int) {
	if l := findLine(d.Lines, rowID); l != nil {
		l.Quantity = qty
		l.recalc()
	}
	d.recalc()
}

// SelectProduct fills a row from a chosen suggestion: code and unit price
// come from the catalog entry, and the row becomes submittable.
func (d *OrderDraft) SelectProduct(rowID string, p api.Product) {
	if l := findLine(d.Lines, rowID); l != nil {
		l.selectProduct(p)
	}
	d.recalc()
}

// TypeProductName records free text in a row's product field, clearing any
// previous selection.
func (d *OrderDraft) TypeProductName(rowID, name string) {
	if l := findLine(d.Lines, rowID); l != nil {
		l.typeName(name)
	}
	d.recalc()
}

func (d *OrderDraft) recalc() {
	d.Total = sumLines(d.Lines)
}

// Validate checks the draft before submission.
func (d *OrderDraft) Validate() error {
	if d.EmployeeCode == "" {
		return errors.New("employee code is required")
	}
	if d.CustomerCode == "" && d.CustomerName == "" {
		return errors.New("choose a customer or name a new one")
	}
	if len(d.Lines) == 0 {
		return ErrNoLines
	}
	for i := range d.Lines {
		if err := d.Lines[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

// CreateRequest shapes the draft into the create payload. New-customer
// fields travel only when no existing customer was chosen.
func (d *OrderDraft) CreateRequest() api.CreateOrderRequest {
	req := api.CreateOrderRequest{
		EmployeeCode: d.EmployeeCode,
		CustomerCode: d.CustomerCode,
		Lines:        d.lineRequests(),
	}
	if d.CustomerCode == "" {
		req.CustomerName = d.CustomerName
		req.BirthYear = d.BirthYear
		req.Address = d.Address
		req.Phone = d.Phone
	}
	return req
}

// UpdateRequest shapes the draft into the replace-lines payload.
func (d *OrderDraft) UpdateRequest() api.UpdateOrderRequest {
	return api.UpdateOrderRequest{
		Code:  d.OrderCode,
		Lines: d.lineRequests(),
	}
}

func (d *OrderDraft) lineRequests() []api.OrderLineRequest {
	out := make([]api.OrderLineRequest, 0, len(d.Lines))
	for _, l := range d.Lines {
		out = append(out, api.OrderLineRequest{
			ProductCode: l.ProductCode,
			Quantity:    l.Quantity,
		})
	}
	return out
}
