package api

import "github.com/shopspring/decimal"

// Built-in sample datasets substituted by read-only screens when the backend
// is unreachable. Only order and dashboard reads degrade this way; write
// operations always surface their failure.

func vnd(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// SampleOrders is the order listing fallback.
func SampleOrders() []Order {
	return []Order{
		{Code: "1", CustomerCode: "101", EmployeeCode: "11", CreatedAt: "2025-01-01", Total: vnd(1500000)},
		{Code: "2", CustomerCode: "102", EmployeeCode: "12", CreatedAt: "2025-01-05", Total: vnd(2300000)},
		{Code: "3", CustomerCode: "103", EmployeeCode: "11", CreatedAt: "2025-01-06", Total: vnd(975000)},
	}
}

// SampleOrderLines is the order detail fallback for one order code.
func SampleOrderLines(orderCode string) []OrderLine {
	if orderCode == "1" {
		return []OrderLine{
			{Code: "1", OrderCode: "1", ProductCode: "201", Quantity: 2, UnitPrice: vnd(250000), LineTotal: vnd(500000)},
			{Code: "2", OrderCode: "1", ProductCode: "202", Quantity: 1, UnitPrice: vnd(1000000), LineTotal: vnd(1000000)},
		}
	}
	return []OrderLine{
		{Code: "99", OrderCode: orderCode, ProductCode: "299", Quantity: 1, UnitPrice: vnd(100000), LineTotal: vnd(100000)},
	}
}

// SampleTotalCustomers is the customer-count KPI fallback.
func SampleTotalCustomers() int { return 40 }

// SampleWeeklyRevenue is the weekly revenue chart fallback.
func SampleWeeklyRevenue() []WeeklyRevenue {
	return []WeeklyRevenue{
		{Day: "Thứ Hai", Revenue: vnd(15000000)},
		{Day: "Thứ Ba", Revenue: vnd(20000000)},
		{Day: "Thứ Tư", Revenue: vnd(18000000)},
		{Day: "Thứ Năm", Revenue: vnd(22000000)},
		{Day: "Thứ Sáu", Revenue: vnd(25000000)},
		{Day: "Thứ Bảy", Revenue: vnd(30000000)},
		{Day: "Chủ Nhật", Revenue: vnd(19000000)},
	}
}

// SampleTopCustomers is the top-customers board fallback.
func SampleTopCustomers() []CustomerRanking {
	return []CustomerRanking{
		{Rank: 1, Name: "Nguyễn Văn A", TotalSpent: vnd(50000000)},
		{Rank: 2, Name: "Trần Thị B", TotalSpent: vnd(35000000)},
		{Rank: 3, Name: "Lê Văn C", TotalSpent: vnd(28000000)},
		{Rank: 4, Name: "Phạm Văn D", TotalSpent: vnd(22000000)},
		{Rank: 5, Name: "Hoàng Thị E", TotalSpent: vnd(19000000)},
	}
}

// SampleLowStock is the low-stock board fallback.
func SampleLowStock() []LowStockProduct {
	return []LowStockProduct{
		{Name: "Áo Thun Đen", Stock: 10},
		{Name: "Giày Da Trắng", Stock: 12},
		{Name: "Quần Jeans Slimfit", Stock: 20},
		{Name: "Túi Xách Nữ", Stock: 15},
		{Name: "Đồng Hồ Cơ", Stock: 5},
	}
}

// SampleRevenueByCategory is the category breakdown fallback.
func SampleRevenueByCategory() []CategoryRevenue {
	return []CategoryRevenue{
		{Category: "Thời Trang", Percent: 30, Amount: vnd(150000000)},
		{Category: "Điện Tử", Percent: 55, Amount: vnd(275000000)},
		{Category: "Gia Dụng", Percent: 15, Amount: vnd(75000000)},
	}
}
