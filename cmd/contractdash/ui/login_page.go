package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"contractdash/internal/auth"
)

// LoginPageModel is the login screen: two required fields validated
// locally, submitted to the gate by the root model via SubmitLoginMsg.
type LoginPageModel struct {
	width  int
	height int

	username textinput.Model
	password textinput.Model
	focus    int // 0 = username, 1 = password
	spinner  spinner.Model

	fieldErrs auth.FieldErrors
	banner    string
	busy      bool

	styles Styles
}

// NewLoginPageModel creates the login page.
func NewLoginPageModel(styles Styles) LoginPageModel {
	user := textinput.New()
	user.Placeholder = "Enter your username"
	user.CharLimit = 64
	user.Width = 32
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "Enter your password"
	pass.CharLimit = 64
	pass.Width = 32
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return LoginPageModel{
		username: user,
		password: pass,
		spinner:  sp,
		styles:   styles,
	}
}

// Init initializes the model.
func (m LoginPageModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m LoginPageModel) Update(msg tea.Msg) (LoginPageModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focus = (m.focus + 1) % 2
			if m.focus == 0 {
				cmds = append(cmds, m.username.Focus())
				m.password.Blur()
			} else {
				cmds = append(cmds, m.password.Focus())
				m.username.Blur()
			}
			return m, tea.Batch(cmds...)
		case "enter":
			return m.submit()
		}

	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit runs the local required-field validation; only a valid pair is
// announced to the root model.
func (m LoginPageModel) submit() (LoginPageModel, tea.Cmd) {
	username := strings.TrimSpace(m.username.Value())
	password := m.password.Value()

	m.banner = ""
	m.fieldErrs = auth.ValidateCredentials(username, password)
	if m.fieldErrs != nil {
		return m, nil
	}

	m.busy = true
	return m, tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			return SubmitLoginMsg{Username: username, Password: password}
		},
	)
}

// Reject surfaces a failed authentication attempt as the banner.
func (m *LoginPageModel) Reject(message string) {
	m.busy = false
	m.banner = message
}

// Reset clears the form for a fresh login after logout.
func (m *LoginPageModel) Reset() {
	m.username.SetValue("")
	m.password.SetValue("")
	m.fieldErrs = nil
	m.banner = ""
	m.busy = false
	m.focus = 0
	m.username.Focus()
	m.password.Blur()
}

// SetSize updates the size.
func (m *LoginPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// View renders the page.
func (m LoginPageModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Saas Contracts"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render("Streamline your contract management"))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Bold.Render("Welcome Back"))
	sb.WriteString("\n\n")

	if m.banner != "" {
		sb.WriteString(m.styles.Banner.Render(m.banner))
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.styles.Muted.Render("Username"))
	sb.WriteString("\n")
	sb.WriteString(m.username.View())
	sb.WriteString("\n")
	if msg, ok := m.fieldErrs["username"]; ok {
		sb.WriteString(m.styles.FieldErr.Render(msg))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(m.styles.Muted.Render("Password"))
	sb.WriteString("\n")
	sb.WriteString(m.password.View())
	sb.WriteString("\n")
	if msg, ok := m.fieldErrs["password"]; ok {
		sb.WriteString(m.styles.FieldErr.Render(msg))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if m.busy {
		sb.WriteString(m.spinner.View())
		sb.WriteString(m.styles.Muted.Render(" Logging in..."))
	} else {
		sb.WriteString(m.styles.Badge.Render(" Login "))
		sb.WriteString(m.styles.Muted.Render("  [Enter] Submit  [Tab] Switch field"))
	}
	sb.WriteString("\n")

	card := m.styles.Card.Render(sb.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}
