package api

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is the catalog record as exchanged with the backend. Field names
// on the wire are the backend's own (Vietnamese) keys.
type Product struct {
	Code          string          `json:"maSP"`
	Name          string          `json:"tenSP"`
	Category      string          `json:"phanLoai"`
	SalePrice     decimal.Decimal `json:"giaBan"`
	Description   string          `json:"moTa"`
	StockQuantity int             `json:"soLuongTon"`
	ImageURL      string          `json:"url"`
}

// ProductRequest is the create/update payload. The server assigns the code.
type ProductRequest struct {
	Name        string          `json:"tenSP"`
	Category    string          `json:"phanLoai"`
	SalePrice   decimal.Decimal `json:"giaBan"`
	Description string          `json:"moTa"`
	Quantity    int             `json:"soLuong"`
	ImageURL    string          `json:"url"`
}

// ListProducts returns every product still on sale.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/quanly/khohang/sanpham/conban")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchProducts finds products whose name contains the given text.
func (c *Client) SearchProducts(ctx context.Context, name string) ([]Product, error) {
	var out []Product
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("tenSP", name).
		SetResult(&out).
		Get("/api/quanly/khohang/sanpham/tim")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct looks one product up by code. The backend exposes no per-code
// route, so this filters the full listing the same way the original console
// did.
func (c *Client) GetProduct(ctx context.Context, code string) (*Product, error) {
	all, err := c.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Code == code {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("product %s not found", code)
}

// CreateProduct registers a new product and returns the server's copy.
func (c *Client) CreateProduct(ctx context.Context, req ProductRequest) (*Product, error) {
	var out Product
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/api/quanly/khohang/taosp")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct replaces the product identified by code.
func (c *Client) UpdateProduct(ctx context.Context, code string, req ProductRequest) (*Product, error) {
	var out Product
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Put("/api/quanly/khohang/suasp/" + code)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct removes the product identified by code.
func (c *Client) DeleteProduct(ctx context.Context, code string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/api/quanly/khohang/sanpham/xoa/" + code)
	return check(resp, err)
}
