package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/gradia/pkg/client"
)

// Login form fields, in tab order.
const (
	fieldIdentifier = iota
	fieldSecret
	fieldCount
)

// loginResultMsg carries the outcome of a credentials submit.
type loginResultMsg struct {
	err error
}

// loginModel is the credentials form shown whenever there is no usable
// session. The identifier field accepts either a username or an email; the
// secret is rendered masked.
type loginModel struct {
	client     *client.Client
	identifier string
	secret     string
	focus      int
	submitting bool
	errMsg     string
	width      int
}

func newLoginModel(c *client.Client) loginModel {
	return loginModel{client: c}
}

func (m loginModel) Init() tea.Cmd { return nil }

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = loginErrorText(msg.err)
			m.secret = ""
			m.focus = fieldSecret
		}

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.focus = (m.focus + 1) % fieldCount
		case "shift+tab", "up":
			m.focus = (m.focus + fieldCount - 1) % fieldCount
		case "enter":
			if m.focus == fieldIdentifier {
				m.focus = fieldSecret
				return m, nil
			}
			if m.identifier == "" || m.secret == "" {
				m.errMsg = "both fields are required"
				return m, nil
			}
			m.submitting = true
			m.errMsg = ""
			return m, m.submit()
		default:
			switch m.focus {
			case fieldIdentifier:
				m.identifier = editRune(m.identifier, msg.String())
			case fieldSecret:
				m.secret = editRune(m.secret, msg.String())
			}
		}
	}
	return m, nil
}

func (m loginModel) submit() tea.Cmd {
	c, id, secret := m.client, m.identifier, m.secret
	return func() tea.Msg {
		_, err := c.Login(context.Background(), id, secret)
		return loginResultMsg{err: err}
	}
}

// loginErrorText maps auth failures to the message shown under the form.
func loginErrorText(err error) string {
	var authErr *client.AuthError
	if errors.As(err, &authErr) {
		if authErr.StatusCode == 401 || authErr.StatusCode == 403 {
			return "invalid credentials, try again"
		}
		return authErr.Message
	}
	return err.Error()
}

func (m loginModel) View() string {
	var b strings.Builder

	b.WriteString("\n  " + titleStyle.Render("G R A D I A") + "\n")
	b.WriteString("  " + metaStyle.Render("sign in with your campus account") + "\n\n")

	b.WriteString(m.field("username or email", m.identifier, m.focus == fieldIdentifier))
	b.WriteString(m.field("password", strings.Repeat("*", len([]rune(m.secret))), m.focus == fieldSecret))

	switch {
	case m.submitting:
		b.WriteString("\n  " + dimStyle.Render("signing in...") + "\n")
	case m.errMsg != "":
		b.WriteString("\n  " + errorStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

func (m loginModel) field(label, value string, focused bool) string {
	prompt := "  "
	if focused {
		prompt = inputPromptStyle.Render("> ")
	}
	text := normalStyle.Render(value)
	if value == "" {
		text = inputPlaceholderStyle.Render(label)
	}
	cursor := ""
	if focused {
		cursor = accentStyle.Render("█")
	}
	return fmt.Sprintf("  %s%s %s%s\n", prompt, metaStyle.Render(fmt.Sprintf("%-18s", label)), text, cursor)
}
