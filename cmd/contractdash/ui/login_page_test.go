package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"contractdash/internal/auth"
)

func TestLoginViewBranding(t *testing.T) {
	view := NewLoginPageModel(DefaultStyles()).View()

	for _, want := range []string{
		"Saas Contracts",
		"Streamline your contract management",
		"Welcome Back",
		"Username",
		"Password",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("login view missing %q", want)
		}
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	m := NewLoginPageModel(DefaultStyles())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("empty submit must not produce a command")
	}

	view := m.View()
	if !strings.Contains(view, "Username is required") {
		t.Error("missing username field error")
	}
	if !strings.Contains(view, "Password is required") {
		t.Error("missing password field error")
	}
}

func TestLoginEmitsSubmitForValidPair(t *testing.T) {
	m := NewLoginPageModel(DefaultStyles())
	m.username.SetValue("  alice  ")
	m.password.SetValue("test123")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("valid submit must produce a command")
	}

	var submit *SubmitLoginMsg
	for _, msg := range runCmd(cmd) {
		if s, ok := msg.(SubmitLoginMsg); ok {
			submit = &s
		}
	}
	if submit == nil {
		t.Fatal("expected a SubmitLoginMsg")
	}
	if submit.Username != "alice" {
		t.Errorf("username not trimmed: %q", submit.Username)
	}
	if submit.Password != "test123" {
		t.Errorf("unexpected password %q", submit.Password)
	}

	if !strings.Contains(m.View(), "Logging in...") {
		t.Error("busy state not rendered")
	}
}

func TestLoginRejectShowsBanner(t *testing.T) {
	m := NewLoginPageModel(DefaultStyles())
	m.username.SetValue("alice")
	m.password.SetValue("wrong")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.Reject(auth.InvalidCredentialsMessage)

	view := m.View()
	if !strings.Contains(view, `Invalid password. Please use "test123".`) {
		t.Error("rejection banner not rendered")
	}
	if strings.Contains(view, "Logging in...") {
		t.Error("busy state must clear on rejection")
	}
}

func TestLoginReset(t *testing.T) {
	m := NewLoginPageModel(DefaultStyles())
	m.username.SetValue("alice")
	m.password.SetValue("wrong")
	m.Reject(auth.InvalidCredentialsMessage)

	m.Reset()

	if m.username.Value() != "" || m.password.Value() != "" {
		t.Error("fields not cleared")
	}
	if strings.Contains(m.View(), "Invalid password") {
		t.Error("banner not cleared")
	}
}

func TestLoginTabSwitchesFocus(t *testing.T) {
	m := NewLoginPageModel(DefaultStyles())
	if m.focus != 0 {
		t.Fatalf("expected initial focus on username, got %d", m.focus)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 1 {
		t.Errorf("expected focus on password, got %d", m.focus)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 0 {
		t.Errorf("expected focus back on username, got %d", m.focus)
	}
}
