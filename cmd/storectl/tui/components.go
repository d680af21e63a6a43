package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationDialog represents a yes/no confirmation dialog. The owning
// page decides what enter does; the dialog only tracks the selection.
type ConfirmationDialog struct {
	Title       string
	Message     string
	YesSelected bool
}

// NewConfirmationDialog creates a new confirmation dialog
func NewConfirmationDialog(title, message string) ConfirmationDialog {
	return ConfirmationDialog{
		Title:       title,
		Message:     message,
		YesSelected: false,
	}
}

// Update handles confirmation dialog updates
func (d *ConfirmationDialog) Update(msg tea.Msg) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			d.YesSelected = true
		case "right", "l":
			d.YesSelected = false
		}
	}
}

// View renders the confirmation dialog
func (d ConfirmationDialog) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(d.Title))
	b.WriteString("\n\n")
	b.WriteString(d.Message)
	b.WriteString("\n\n")

	yesButton := inactiveButtonStyle.Render("Yes")
	noButton := inactiveButtonStyle.Render("No")

	if d.YesSelected {
		yesButton = activeButtonStyle.Render("Yes")
	} else {
		noButton = activeButtonStyle.Render("No")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, yesButton, "  ", noButton))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(FormatKey("←/→", "navigate") + " • " + FormatKey("enter", "confirm") + " • " + FormatKey("esc", "cancel")))

	return boxStyle.Render(b.String())
}

// errorBanner renders a dialog-level error message, or nothing.
func errorBanner(msg string) string {
	if msg == "" {
		return ""
	}
	return errorBannerStyle.Render("✗ " + msg)
}

// renderTable lays out rows in fixed-width columns with the row at cursor
// highlighted. A cursor of -1 highlights nothing.
func renderTable(headers []string, widths []int, rows [][]string, cursor int) string {
	var b strings.Builder

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = lipgloss.NewStyle().Width(widths[i]).Render(h)
	}
	b.WriteString(headerRowStyle.Render(strings.Join(cells, " ")))
	b.WriteString("\n")

	for r, row := range rows {
		for i, c := range row {
			cells[i] = lipgloss.NewStyle().Width(widths[i]).MaxWidth(widths[i]).Render(c)
		}
		line := strings.Join(cells, " ")
		if r == cursor {
			b.WriteString(selectedRowStyle.Render("▸ " + line))
		} else {
			b.WriteString(plainRowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// centered places content in the middle of the window.
func centered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
