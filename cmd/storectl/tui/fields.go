package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// fieldSet is a vertical stack of labeled text inputs with one focus.
// The dialog forms all share this shape; their Save logic differs.
type fieldSet struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newFieldSet(labels ...string) fieldSet {
	inputs := make([]textinput.Model, len(labels))
	for i := range labels {
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Width = 36
		inputs[i] = ti
	}
	fs := fieldSet{labels: labels, inputs: inputs}
	fs.setFocus(0)
	return fs
}

func (f *fieldSet) setFocus(i int) {
	f.focus = i
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (f *fieldSet) next() { f.setFocus((f.focus + 1) % len(f.inputs)) }

func (f *fieldSet) prev() { f.setFocus((f.focus + len(f.inputs) - 1) % len(f.inputs)) }

// handleKey consumes focus-cycling keys; other keys go to the focused
// input. It reports whether the key was consumed either way.
func (f *fieldSet) handleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "tab", "down":
		f.next()
		return true
	case "shift+tab", "up":
		f.prev()
		return true
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	_ = cmd
	return true
}

func (f *fieldSet) set(i int, value string) {
	f.inputs[i].SetValue(value)
}

func (f *fieldSet) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f fieldSet) view() string {
	var b strings.Builder
	for i, label := range f.labels {
		style := mutedStyle
		if i == f.focus {
			style = helpKeyStyle
		}
		b.WriteString(style.Render(label))
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	return b.String()
}
