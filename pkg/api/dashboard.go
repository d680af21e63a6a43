package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// WeeklyRevenue is one bar of the weekly revenue chart.
type WeeklyRevenue struct {
	Day     string          `json:"day"`
	Revenue decimal.Decimal `json:"revenue"`
}

// CustomerRanking is one row of the top-customers board. Rank is assigned
// client-side, in list order.
type CustomerRanking struct {
	Rank       int             `json:"rank,omitempty"`
	Name       string          `json:"name"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// LowStockProduct is one row of the low-stock warning board.
type LowStockProduct struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// CategoryRevenue is one slice of the revenue-by-category breakdown.
type CategoryRevenue struct {
	Category string          `json:"category"`
	Percent  float64         `json:"revenue_percent"`
	Amount   decimal.Decimal `json:"revenue_amount"`
}

// TotalCustomers returns the customer-count KPI. The endpoint answers with
// a bare number.
func (c *Client) TotalCustomers(ctx context.Context) (int, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/api/dashboard/kpis")
	if err := check(resp, err); err != nil {
		return 0, err
	}
	body := stringBody(resp)
	if n, err := strconv.Atoi(body); err == nil {
		return n, nil
	}
	var f float64
	if err := json.Unmarshal([]byte(body), &f); err != nil {
		return 0, fmt.Errorf("unexpected kpi payload %q: %w", body, err)
	}
	return int(f), nil
}

// GetWeeklyRevenue returns revenue per day for the current week.
func (c *Client) GetWeeklyRevenue(ctx context.Context) ([]WeeklyRevenue, error) {
	var out []WeeklyRevenue
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/dashboard/weekly-revenue")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTopCustomers returns the highest-spending customers, ranked in order.
func (c *Client) GetTopCustomers(ctx context.Context, limit int) ([]CustomerRanking, error) {
	var out []CustomerRanking
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&out).
		Get("/api/dashboard/top-customers")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out, nil
}

// GetLowStockProducts returns products nearest to running out.
func (c *Client) GetLowStockProducts(ctx context.Context, limit int) ([]LowStockProduct, error) {
	var out []LowStockProduct
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&out).
		Get("/api/dashboard/low-stock")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRevenueByCategory returns the category revenue breakdown.
func (c *Client) GetRevenueByCategory(ctx context.Context) ([]CategoryRevenue, error) {
	var out []CategoryRevenue
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/dashboard/revenue-by-category")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}
