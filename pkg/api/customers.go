package api

import "context"

// Customer is the customer record as exchanged with the backend.
type Customer struct {
	Code      string `json:"maKH"`
	Name      string `json:"tenKH"`
	BirthYear int    `json:"namSinh"`
	Address   string `json:"diaChi"`
	Phone     string `json:"sdt"`
}

// CustomerRequest is the update payload; the code travels in the path.
type CustomerRequest struct {
	Name      string `json:"tenKH"`
	BirthYear int    `json:"namSinh"`
	Address   string `json:"diaChi"`
	Phone     string `json:"sdt"`
}

// ListCustomers returns the full customer book.
func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	var out []Customer
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/quanly/khachhang/tatca")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchCustomers matches customers by name or phone.
func (c *Client) SearchCustomers(ctx context.Context, query string) ([]Customer, error) {
	var out []Customer
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("tenKH", query).
		SetResult(&out).
		Get("/api/quanly/khachhang/tim")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchCustomersByName backs the name suggestion fields on order forms.
func (c *Client) SearchCustomersByName(ctx context.Context, name string) ([]Customer, error) {
	var out []Customer
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("tenKH", name).
		SetResult(&out).
		Get("/api/quanly/khachhang/timkiem")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateCustomer replaces the customer identified by code.
func (c *Client) UpdateCustomer(ctx context.Context, code string, req CustomerRequest) (*Customer, error) {
	var out Customer
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Put("/api/quanly/khachhang/capnhat/" + code)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}
