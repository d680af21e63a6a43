package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/retailops/storectl/pkg/api"
)

const dashboardRows = 5

// Each board loads independently so one failing endpoint never blanks the
// whole screen. A failed board shows the built-in sample set, flagged.
type dashboardModel struct {
	client *api.Client

	customers int
	weekly    []api.WeeklyRevenue
	top       []api.CustomerRanking
	low       []api.LowStockProduct
	category  []api.CategoryRevenue

	loaded  int
	sampled []string
}

type customersBoardMsg struct {
	count   int
	sampled bool
}

type weeklyBoardMsg struct {
	rows    []api.WeeklyRevenue
	sampled bool
}

type topCustomersBoardMsg struct {
	rows    []api.CustomerRanking
	sampled bool
}

type lowStockBoardMsg struct {
	rows    []api.LowStockProduct
	sampled bool
}

type categoryBoardMsg struct {
	rows    []api.CategoryRevenue
	sampled bool
}

func newDashboardModel(client *api.Client) dashboardModel {
	return dashboardModel{client: client}
}

func (d *dashboardModel) load() tea.Cmd {
	d.loaded = 0
	d.sampled = nil
	c := d.client
	return tea.Batch(
		func() tea.Msg {
			n, err := c.TotalCustomers(context.Background())
			if err != nil {
				return customersBoardMsg{count: api.SampleTotalCustomers(), sampled: true}
			}
			return customersBoardMsg{count: n}
		},
		func() tea.Msg {
			rows, err := c.GetWeeklyRevenue(context.Background())
			if err != nil {
				return weeklyBoardMsg{rows: api.SampleWeeklyRevenue(), sampled: true}
			}
			return weeklyBoardMsg{rows: rows}
		},
		func() tea.Msg {
			rows, err := c.GetTopCustomers(context.Background(), dashboardRows)
			if err != nil {
				return topCustomersBoardMsg{rows: api.SampleTopCustomers(), sampled: true}
			}
			return topCustomersBoardMsg{rows: rows}
		},
		func() tea.Msg {
			rows, err := c.GetLowStockProducts(context.Background(), dashboardRows)
			if err != nil {
				return lowStockBoardMsg{rows: api.SampleLowStock(), sampled: true}
			}
			return lowStockBoardMsg{rows: rows}
		},
		func() tea.Msg {
			rows, err := c.GetRevenueByCategory(context.Background())
			if err != nil {
				return categoryBoardMsg{rows: api.SampleRevenueByCategory(), sampled: true}
			}
			return categoryBoardMsg{rows: rows}
		},
	)
}

func (d *dashboardModel) board(name string, sampled bool) {
	d.loaded++
	if sampled {
		d.sampled = append(d.sampled, name)
	}
}

func (d *dashboardModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case customersBoardMsg:
		d.customers = msg.count
		d.board("customers", msg.sampled)
	case weeklyBoardMsg:
		d.weekly = msg.rows
		d.board("weekly revenue", msg.sampled)
	case topCustomersBoardMsg:
		d.top = msg.rows
		d.board("top customers", msg.sampled)
	case lowStockBoardMsg:
		d.low = msg.rows
		d.board("low stock", msg.sampled)
	case categoryBoardMsg:
		d.category = msg.rows
		d.board("category revenue", msg.sampled)
	case tea.KeyMsg:
		if msg.String() == "r" {
			return d.load()
		}
	}
	return nil
}

func revenueBar(revenue, max decimal.Decimal) string {
	const width = 20
	if !max.GreaterThan(decimal.Zero) {
		return ""
	}
	n := int(revenue.Div(max).Mul(decimal.NewFromInt(width)).IntPart())
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	return strings.Repeat("█", n)
}

func (d dashboardModel) view() string {
	if d.loaded < 5 {
		return infoStyle.Render(fmt.Sprintf("Loading dashboard (%d/5 boards)...", d.loaded))
	}

	var weekly strings.Builder
	weekly.WriteString(headerRowStyle.Render("Weekly revenue"))
	weekly.WriteString("\n")
	max := decimal.Zero
	for _, r := range d.weekly {
		if r.Revenue.GreaterThan(max) {
			max = r.Revenue
		}
	}
	for _, r := range d.weekly {
		weekly.WriteString(fmt.Sprintf("%-4s %s %s\n", r.Day, successStyle.Render(revenueBar(r.Revenue, max)), mutedStyle.Render(r.Revenue.String())))
	}

	var top strings.Builder
	top.WriteString(headerRowStyle.Render("Top customers"))
	top.WriteString("\n")
	for _, r := range d.top {
		top.WriteString(fmt.Sprintf("%d. %-20s %s\n", r.Rank, r.Name, mutedStyle.Render(r.TotalSpent.String())))
	}

	var low strings.Builder
	low.WriteString(headerRowStyle.Render("Low stock"))
	low.WriteString("\n")
	for _, r := range d.low {
		style := plainRowStyle
		if r.Stock <= 5 {
			style = dangerStyle
		}
		low.WriteString(fmt.Sprintf("%-24s %s\n", r.Name, style.Render(fmt.Sprintf("%d left", r.Stock))))
	}

	var cat strings.Builder
	cat.WriteString(headerRowStyle.Render("Revenue by category"))
	cat.WriteString("\n")
	for _, r := range d.category {
		cat.WriteString(fmt.Sprintf("%-16s %3.0f%%  %s\n", r.Category, r.Percent, mutedStyle.Render(r.Amount.String())))
	}

	kpi := boxStyle.Render(titleStyle.Render(fmt.Sprintf("%d", d.customers)) + "\n" + mutedStyle.Render("customers"))

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, kpi, "  ", boxStyle.Render(weekly.String()))
	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top,
		boxStyle.Render(top.String()), "  ",
		boxStyle.Render(low.String()), "  ",
		boxStyle.Render(cat.String()),
	)

	out := topRow + "\n" + bottomRow
	if len(d.sampled) > 0 {
		out += "\n" + warningStyle.Render("⚠ sample data: "+strings.Join(d.sampled, ", "))
	}
	out += "\n" + helpStyle.Render(FormatKey("r", "reload"))
	return out
}
