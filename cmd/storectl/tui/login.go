package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/retailops/storectl/pkg/session"
)

type loginModel struct {
	holder   *session.Holder
	username textinput.Model
	password textinput.Model
	focus    int
	busy     bool
	errMsg   string
}

type loginResultMsg struct {
	err error
}

func newLoginModel(holder *session.Holder) loginModel {
	user := textinput.New()
	user.Placeholder = "username"
	user.CharLimit = 64
	user.Width = 28
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.CharLimit = 64
	pass.Width = 28
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	return loginModel{holder: holder, username: user, password: pass}
}

func loginCmd(holder *session.Holder, username, password string) tea.Cmd {
	return func() tea.Msg {
		return loginResultMsg{err: holder.Login(context.Background(), username, password)}
	}
}

func (l *loginModel) setFocus(i int) {
	l.focus = i
	if i == 0 {
		l.username.Focus()
		l.password.Blur()
	} else {
		l.username.Blur()
		l.password.Focus()
	}
}

func (l *loginModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loginResultMsg:
		l.busy = false
		if msg.err != nil {
			l.errMsg = msg.err.Error()
			l.password.SetValue("")
			l.setFocus(1)
			return nil
		}
		return func() tea.Msg { return signedInMsg{} }

	case tea.KeyMsg:
		if l.busy {
			return nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			l.setFocus(1 - l.focus)
			return nil
		case "enter":
			if l.focus == 0 {
				l.setFocus(1)
				return nil
			}
			username := strings.TrimSpace(l.username.Value())
			password := l.password.Value()
			if username == "" || password == "" {
				l.errMsg = "username and password are required"
				return nil
			}
			l.busy = true
			l.errMsg = ""
			return loginCmd(l.holder, username, password)
		}
	}

	var cmd tea.Cmd
	if l.focus == 0 {
		l.username, cmd = l.username.Update(msg)
	} else {
		l.password, cmd = l.password.Update(msg)
	}
	return cmd
}

func (l loginModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("storectl"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Sign in to continue"))
	b.WriteString("\n\n")
	b.WriteString(l.username.View())
	b.WriteString("\n")
	b.WriteString(l.password.View())
	b.WriteString("\n")
	if l.busy {
		b.WriteString(infoStyle.Render("Signing in..."))
		b.WriteString("\n")
	}
	if l.errMsg != "" {
		b.WriteString(errorBanner(l.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(FormatKey("tab", "switch field") + " • " + FormatKey("enter", "sign in") + " • " + FormatKey("ctrl+c", "quit")))
	return activeBoxStyle.Render(b.String())
}
