// Package form holds the draft state behind the console's create/edit
// dialogs: field mutation, required-field validation and synchronous
// subtotal/total recomputation. Drafts are plain values owned by one dialog;
// nothing here talks to the network.
package form

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailops/storectl/pkg/api"
)

var (
	// ErrProductNotSelected means a line's product was typed but never
	// picked from a search suggestion. Such a line has no trusted code or
	// price and must not be submitted.
	ErrProductNotSelected = errors.New("product must be selected from search results")
	// ErrNoLines means an order or stock-in draft has no line items.
	ErrNoLines = errors.New("at least one line item is required")
	// ErrBadQuantity means a line quantity is below one.
	ErrBadQuantity = errors.New("quantity must be at least 1")
	// ErrBadPrice means a price is zero or negative.
	ErrBadPrice = errors.New("price must be positive")
)

// LineDraft is one product row of an order or stock-in draft. RowID is a
// client-side handle for rows the server has not named yet; it never leaves
// the process.
type LineDraft struct {
	RowID       string
	ProductCode string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
	selected    bool
}

func newLineDraft() LineDraft {
	return LineDraft{RowID: uuid.NewString(), Quantity: 1}
}

// Selected reports whether the row's product came from a search suggestion.
func (l *LineDraft) Selected() bool { return l.selected }

// recalc refreshes the row subtotal. Called on every mutation so the
// displayed running total is never stale.
func (l *LineDraft) recalc() {
	l.LineTotal = l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// selectProduct fills the row from a chosen catalog entry.
func (l *LineDraft) selectProduct(p api.Product) {
	l.ProductCode = p.Code
	l.ProductName = p.Name
	l.UnitPrice = p.SalePrice
	l.selected = true
	if l.Quantity < 1 {
		l.Quantity = 1
	}
	l.recalc()
}

// typeName records free text in the product field. Typing invalidates any
// previous selection: the code and price belong to the suggestion, not the
// text.
func (l *LineDraft) typeName(name string) {
	l.ProductName = name
	l.ProductCode = ""
	l.UnitPrice = decimal.Zero
	l.selected = false
	l.recalc()
}

func (l *LineDraft) validate() error {
	if !l.selected || l.ProductCode == "" {
		return ErrProductNotSelected
	}
	if l.Quantity < 1 {
		return ErrBadQuantity
	}
	return nil
}

// sumLines is the parent-total invariant: total = Σ line totals, exact.
func sumLines(lines []LineDraft) decimal.Decimal {
	total := decimal.Zero
	for i := range lines {
		total = total.Add(lines[i].LineTotal)
	}
	return total
}

func findLine(lines []LineDraft, rowID string) *LineDraft {
	for i := range lines {
		if lines[i].RowID == rowID {
			return &lines[i]
		}
	}
	return nil
}

func removeLine(lines []LineDraft, rowID string) []LineDraft {
	out := lines[:0]
	for _, l := range lines {
		if l.RowID != rowID {
			out = append(out, l)
		}
	}
	return out
}
