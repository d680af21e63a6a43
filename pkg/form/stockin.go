package form

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/retailops/storectl/pkg/api"
)

// StockInDraft is the create/edit dialog state for a goods receipt. Unlike
// order lines, purchase prices are typed in by the user.
type StockInDraft struct {
	Code         string // set when editing
	EmployeeCode string
	Supplier     string
	ReceivedAt   string

	Lines []LineDraft
	Total decimal.Decimal
}

// NewStockInDraft starts an empty receipt dated today.
func NewStockInDraft(employeeCode string) StockInDraft {
	return StockInDraft{
		EmployeeCode: employeeCode,
		ReceivedAt:   time.Now().Format("2006-01-02"),
	}
}

// StockInDraftFrom snapshots an existing receipt for editing.
func StockInDraftFrom(s api.StockIn) StockInDraft {
	d := StockInDraft{
		Code:         s.Code,
		EmployeeCode: s.EmployeeCode,
		Supplier:     s.Supplier,
		ReceivedAt:   s.ReceivedAt,
	}
	for _, l := range s.Lines {
		ld := newLineDraft()
		ld.ProductCode = l.ProductCode
		ld.ProductName = l.ProductName
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
func (d *StockInDraft) AddLine() string {
	l := newLineDraft()
	d.Lines = append(d.Lines, l)
	d.recalc()
	return l.RowID
}

// RemoveLine deletes a row and refreshes the total.
func (d *StockInDraft) RemoveLine(rowID string) {
	d.Lines = removeLine(d.Lines, rowID)
	d.recalc()
}

// SetQuantity updates a row's quantity and refreshes both totals.
func (d *StockInDraft) SetQuantity(rowID string, qty int) {
	if l := findLine(d.Lines, rowID); l != nil {
		l.Quantity = qty
		l.recalc()
	}
	d.recalc()
}

// SetUnitPrice records the negotiated purchase price for a row.
func (d *StockInDraft) SetUnitPrice(rowID string, price decimal.Decimal) {
	if l := findLine(d.Lines, rowID); l != nil {
		l.UnitPrice = price
		l.recalc()
	}
	d.recalc()
}

// SelectProduct fills a row from a chosen suggestion. The catalog sale price
// is a starting point; SetUnitPrice overrides it with the purchase price.
func (d *StockInDraft) SelectProduct(rowID string, p api.Product) {
	if l := findLine(d.Lines, rowID); l != nil {
		l.selectProduct(p)
	}
	d.recalc()
}

// TypeProductName records free text in a row's product field, clearing any
// previous selection.
func (d *StockInDraft) TypeProductName(rowID, name string) {
	if l := findLine(d.Lines, rowID); l != nil {
		l.typeName(name)
	}
	d.recalc()
}

func (d *StockInDraft) recalc() {
	d.Total = sumLines(d.Lines)
}

// Validate checks the draft before submission.
func (d *StockInDraft) Validate() error {
	if d.EmployeeCode == "" {
		return errors.New("employee code is required")
	}
	if d.Supplier == "" {
		return errors.New("supplier is required")
	}
	if len(d.Lines) == 0 {
		return ErrNoLines
	}
	for i := range d.Lines {
		if err := d.Lines[i].validate(); err != nil {
			return err
		}
		if !d.Lines[i].UnitPrice.GreaterThan(decimal.Zero) {
			return ErrBadPrice
		}
	}
	return nil
}

// Request shapes the draft into the backend payload.
func (d *StockInDraft) Request() api.StockInRequest {
	req := api.StockInRequest{
		EmployeeCode: d.EmployeeCode,
		Supplier:     d.Supplier,
		ReceivedAt:   d.ReceivedAt,
	}
	for _, l := range d.Lines {
		req.Lines = append(req.Lines, api.StockInLineRequest{
			ProductCode: l.ProductCode,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}
	return req
}
