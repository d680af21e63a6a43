package form

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/retailops/storectl/pkg/api"
)

// ProductDraft is the create/edit dialog state for one product.
type ProductDraft struct {
	Code        string // empty for create
	Name        string
	Category    string
	SalePrice   decimal.Decimal
	Description string
	Quantity    int
	ImageURL    string
}

// NewProductDraft returns the empty template for a create dialog.
func NewProductDraft() ProductDraft {
	return ProductDraft{}
}

// ProductDraftFrom snapshots an existing product for an edit dialog. The
// dialog mutates only its copy; the listing stays untouched until reload.
func ProductDraftFrom(p api.Product) ProductDraft {
	return ProductDraft{
		Code:        p.Code,
		Name:        p.Name,
		Category:    p.Category,
		SalePrice:   p.SalePrice,
		Description: p.Description,
		Quantity:    p.StockQuantity,
		ImageURL:    p.ImageURL,
	}
}

// Validate checks required fields before any request is issued.
func (d *ProductDraft) Validate() error {
	if d.Name == "" {
		return errors.New("product name is required")
	}
	if d.Category == "" {
		return errors.New("category is required")
	}
	if !d.SalePrice.GreaterThan(decimal.Zero) {
		return ErrBadPrice
	}
	if d.Quantity < 0 {
		return errors.New("stock quantity cannot be negative")
	}
	return nil
}

// Request shapes the draft into the backend payload.
func (d *ProductDraft) Request() api.ProductRequest {
	return api.ProductRequest{
		Name:        d.Name,
		Category:    d.Category,
		SalePrice:   d.SalePrice,
		Description: d.Description,
		Quantity:    d.Quantity,
		ImageURL:    d.ImageURL,
	}
}
