package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/retailops/storectl/pkg/api"
	"github.com/retailops/storectl/pkg/session"
)

// Page identifies the active screen of the console
type Page int

const (
	PageLogin Page = iota
	PageDashboard
	PageProducts
	PageCustomers
	PageOrders
	PageStockIn
)

var pageTabs = []struct {
	page  Page
	label string
	key   string
}{
	{PageDashboard, "Dashboard", "1"},
	{PageProducts, "Products", "2"},
	{PageCustomers, "Customers", "3"},
	{PageOrders, "Orders", "4"},
	{PageStockIn, "Stock-In", "5"},
}

// Model is the root Bubbletea model for the interactive console
type Model struct {
	client *api.Client
	holder *session.Holder

	page   Page
	width  int
	height int

	login     loginModel
	dashboard dashboardModel
	products  productsPage
	customers customersPage
	orders    ordersPage
	stockin   stockinPage
}

// NewModel creates the console model
func NewModel(client *api.Client, holder *session.Holder) Model {
	return Model{
		client:    client,
		holder:    holder,
		page:      PageLogin,
		login:     newLoginModel(holder),
		dashboard: newDashboardModel(client),
		products:  newProductsPage(client),
		customers: newCustomersPage(client),
		orders:    newOrdersPage(client, holder),
		stockin:   newStockinPage(client, holder),
	}
}

// Run starts the interactive console and blocks until it exits.
func Run(client *api.Client, holder *session.Holder) error {
	p := tea.NewProgram(NewModel(client, holder), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Messages
type sessionReadyMsg struct {
	user *session.User
}

type signedInMsg struct{}

type signedOutMsg struct{}

// Commands
func sessionInitCmd(holder *session.Holder) tea.Cmd {
	return func() tea.Msg {
		_ = holder.Init(context.Background())
		return sessionReadyMsg{user: holder.Current()}
	}
}

func logoutCmd(holder *session.Holder) tea.Cmd {
	return func() tea.Msg {
		holder.Logout(context.Background())
		return signedOutMsg{}
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(sessionInitCmd(m.holder), tea.EnterAltScreen)
}

// enter switches to a page and returns its load command.
func (m *Model) enter(page Page) tea.Cmd {
	m.page = page
	switch page {
	case PageDashboard:
		return m.dashboard.load()
	case PageProducts:
		return m.products.load()
	case PageCustomers:
		return m.customers.load()
	case PageOrders:
		return m.orders.load()
	case PageStockIn:
		return m.stockin.load()
	}
	return nil
}

// typing reports whether the active page currently owns the keyboard, so
// global shortcuts stay out of text inputs.
func (m Model) typing() bool {
	switch m.page {
	case PageLogin:
		return true
	case PageProducts:
		return m.products.typing()
	case PageCustomers:
		return m.customers.typing()
	case PageOrders:
		return m.orders.typing()
	case PageStockIn:
		return m.stockin.typing()
	}
	return false
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionReadyMsg:
		if msg.user == nil {
			m.page = PageLogin
			return m, nil
		}
		m.orders.employeeCode = msg.user.EmployeeCode
		m.stockin.employeeCode = msg.user.EmployeeCode
		return m, m.enter(PageDashboard)

	case signedInMsg:
		m.orders.employeeCode = employeeCode(m.holder)
		m.stockin.employeeCode = employeeCode(m.holder)
		return m, m.enter(PageDashboard)

	case signedOutMsg:
		m.login = newLoginModel(m.holder)
		m.page = PageLogin
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.typing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "ctrl+l":
				return m, logoutCmd(m.holder)
			}
			for _, t := range pageTabs {
				if msg.String() == t.key && m.page != PageLogin {
					return m, m.enter(t.page)
				}
			}
		}
	}

	switch m.page {
	case PageLogin:
		cmd := m.login.update(msg)
		return m, cmd
	case PageDashboard:
		cmd := m.dashboard.update(msg)
		return m, cmd
	case PageProducts:
		cmd := m.products.update(msg)
		return m, cmd
	case PageCustomers:
		cmd := m.customers.update(msg)
		return m, cmd
	case PageOrders:
		cmd := m.orders.update(msg)
		return m, cmd
	case PageStockIn:
		cmd := m.stockin.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) tabBar() string {
	var tabs []string
	for _, t := range pageTabs {
		label := t.key + " " + t.label
		if t.page == m.page {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Left, tabs...)
	if u := m.holder.Current(); u != nil {
		bar += mutedStyle.Render("  " + u.Username + " (" + u.EmployeeCode + ")")
	}
	return bar
}

// View renders the console
func (m Model) View() string {
	if m.page == PageLogin {
		return centered(m.width, m.height, m.login.view())
	}

	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	switch m.page {
	case PageDashboard:
		b.WriteString(m.dashboard.view())
	case PageProducts:
		b.WriteString(m.products.view())
	case PageCustomers:
		b.WriteString(m.customers.view())
	case PageOrders:
		b.WriteString(m.orders.view())
	case PageStockIn:
		b.WriteString(m.stockin.view())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(FormatKey("1-5", "pages") + " • " + FormatKey("ctrl+l", "sign out") + " • " + FormatKey("q", "quit")))
	return b.String()
}

func employeeCode(holder *session.Holder) string {
	if u := holder.Current(); u != nil {
		return u.EmployeeCode
	}
	return ""
}
