package api

import (
	"context"

	"github.com/shopspring/decimal"
)

// Order is a sales order header. The total is server-computed.
type Order struct {
	Code         string          `json:"maDH"`
	CustomerCode string          `json:"maKH"`
	EmployeeCode string          `json:"maNV"`
	CreatedAt    string          `json:"ngayLap"`
	Total        decimal.Decimal `json:"tongTien"`
}

// OrderLine is one product row within an order.
type OrderLine struct {
	Code        string          `json:"maCTDH"`
	OrderCode   string          `json:"maDH"`
	ProductCode string          `json:"maSP"`
	Quantity    int             `json:"soLuong"`
	UnitPrice   decimal.Decimal `json:"donGia"`
	LineTotal   decimal.Decimal `json:"thanhTien"`
}

// OrderLineRequest is one line of a create/update payload; the server fills
// in prices and totals from the catalog.
type OrderLineRequest struct {
	ProductCode string `json:"maSP"`
	Quantity    int    `json:"soLuong"`
}

// CreateOrderRequest creates an order for an existing customer (code set) or
// implicitly registers a new one (name and contact fields set, code empty).
type CreateOrderRequest struct {
	EmployeeCode string             `json:"maNV"`
	CustomerCode string             `json:"maKH,omitempty"`
	CustomerName string             `json:"tenKH,omitempty"`
	BirthYear    int                `json:"namSinh,omitempty"`
	Address      string             `json:"diaChi,omitempty"`
	Phone        string             `json:"sdt,omitempty"`
	Lines        []OrderLineRequest `json:"chiTietDonHangs"`
}

// UpdateOrderRequest replaces an order's line items.
type UpdateOrderRequest struct {
	Code  string             `json:"maDH"`
	Lines []OrderLineRequest `json:"chiTiet"`
}

// OrderWithLines is the server's response to a create, header plus detail.
type OrderWithLines struct {
	Order
	Lines []OrderLine `json:"chiTiet"`
}

// ListOrders returns every order header.
func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/quanly/donhang/tatca")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// OrderDetails returns the line items of one order.
func (c *Client) OrderDetails(ctx context.Context, orderCode string) ([]OrderLine, error) {
	var out []OrderLine
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/quanly/donhang/chitiet/" + orderCode)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchOrders matches orders by order, customer or employee code.
func (c *Client) SearchOrders(ctx context.Context, keyword string) ([]Order, error) {
	var out []Order
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("keyword", keyword).
		SetResult(&out).
		Get("/api/quanly/donhang/tim")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateOrder submits a new order with its lines.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderWithLines, error) {
	var out OrderWithLines
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/api/quanly/donhang/tao")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrder replaces an order's lines and returns the new header.
func (c *Client) UpdateOrder(ctx context.Context, req UpdateOrderRequest) (*Order, error) {
	var out Order
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Put("/api/quanly/donhang/capnhat")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}
