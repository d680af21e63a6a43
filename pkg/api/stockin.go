package api

import (
	"context"

	"github.com/shopspring/decimal"
)

// StockIn is a goods-receipt record: items purchased from a supplier into
// inventory, with its line items inlined.
type StockIn struct {
	Code         string          `json:"maNK"`
	EmployeeCode string          `json:"maNV"`
	Supplier     string          `json:"nhaCungCap"`
	ReceivedAt   string          `json:"ngayNhap"`
	Total        decimal.Decimal `json:"tongTien"`
	Lines        []StockInLine   `json:"chiTiet"`
}

// StockInLine is one product row within a stock-in record.
type StockInLine struct {
	Code        string          `json:"maCTNK"`
	ProductCode string          `json:"maSP"`
	ProductName string          `json:"tenSP,omitempty"`
	Quantity    int             `json:"soLuong"`
	UnitPrice   decimal.Decimal `json:"donGia"`
	LineTotal   decimal.Decimal `json:"thanhTien"`
}

// StockInLineRequest is one line of a create/update payload. Unlike order
// lines, the purchase price is caller-supplied.
type StockInLineRequest struct {
	ProductCode string          `json:"maSP"`
	Quantity    int             `json:"soLuong"`
	UnitPrice   decimal.Decimal `json:"donGia"`
}

// StockInRequest creates or replaces a stock-in record.
type StockInRequest struct {
	EmployeeCode string               `json:"maNV"`
	Supplier     string               `json:"nhaCungCap"`
	ReceivedAt   string               `json:"ngayNhap"`
	Lines        []StockInLineRequest `json:"chiTiet"`
}

// ListStockIns returns every stock-in record.
func (c *Client) ListStockIns(ctx context.Context) ([]StockIn, error) {
	var out []StockIn
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/quanly/khohang/donnhaphang/tatca")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStockIn returns one record with its lines.
func (c *Client) GetStockIn(ctx context.Context, code string) (*StockIn, error) {
	var out StockIn
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/quanly/khohang/donnhaphang/" + code)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateStockIn submits a new stock-in record.
func (c *Client) CreateStockIn(ctx context.Context, req StockInRequest) (*StockIn, error) {
	var out StockIn
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/api/quanly/khohang/donnhaphang/tao")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStockIn replaces the record identified by code.
func (c *Client) UpdateStockIn(ctx context.Context, code string, req StockInRequest) (*StockIn, error) {
	var out StockIn
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Put("/api/quanly/khohang/donnhaphang/" + code)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteStockInLine removes a single line from a record.
func (c *Client) DeleteStockInLine(ctx context.Context, lineCode string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/api/quanly/khohang/donnhaphang/chitiet/" + lineCode)
	return check(resp, err)
}
