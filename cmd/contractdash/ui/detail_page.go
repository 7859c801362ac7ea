package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"contractdash/internal/contracts"
	"contractdash/internal/viewmodel"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// DetailLoadedMsg carries a completed detail fetch back to the page.
type DetailLoadedMsg struct {
	Gen     uint64
	Details []contracts.Detail
	Err     error
}

// DetailPageModel is the contract detail page: metadata, clauses and
// insights rendered as markdown in a viewport, plus an evidence drawer
// and sidebar that toggle independently of fetch state.
type DetailPageModel struct {
	width  int
	height int

	vm       *viewmodel.DetailViewModel
	username string

	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	drawerOpen  bool
	sidebarOpen bool
	evidenceIdx int
	statusMsg   string

	styles Styles
}

// NewDetailPageModel creates the detail page over the detail view-model.
func NewDetailPageModel(vm *viewmodel.DetailViewModel, username string, styles Styles) DetailPageModel {
	vp := viewport.New(0, 0)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fall back to raw markdown in the viewport.
		renderer = nil
	}

	return DetailPageModel{
		vm:       vm,
		username: username,
		viewport: vp,
		spinner:  sp,
		renderer: renderer,
		styles:   styles,
	}
}

// Open starts loading the given contract. Both toggles reset to closed;
// the previous contract is never shown while the new one loads.
func (m *DetailPageModel) Open(id string) tea.Cmd {
	m.drawerOpen = false
	m.evidenceIdx = 0
	m.statusMsg = ""
	m.viewport.SetContent("")

	gen := m.vm.StartLoad(id)
	fetch := m.vm.Fetch
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		details, err := fetch(context.Background())
		return DetailLoadedMsg{Gen: gen, Details: details, Err: err}
	})
}

// Update handles messages.
func (m DetailPageModel) Update(msg tea.Msg) (DetailPageModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case DetailLoadedMsg:
		if m.vm.FinishLoad(msg.Gen, msg.Details, msg.Err) && m.vm.State() == viewmodel.DetailFound {
			m.viewport.SetContent(m.renderBody(m.vm.Detail()))
		}
		return m, nil

	case spinner.TickMsg:
		if m.vm.State() == viewmodel.DetailLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			return m, func() tea.Msg { return BackToDashboardMsg{} }
		case "e":
			m.drawerOpen = !m.drawerOpen
			m.evidenceIdx = 0
			return m, nil
		case "b":
			m.sidebarOpen = !m.sidebarOpen
			return m, nil
		case "ctrl+l":
			return m, func() tea.Msg { return LogoutMsg{} }
		case "j", "down":
			if m.drawerOpen {
				if m.evidenceIdx < len(m.vm.Detail().Evidence)-1 {
					m.evidenceIdx++
				}
				return m, nil
			}
		case "k", "up":
			if m.drawerOpen {
				if m.evidenceIdx > 0 {
					m.evidenceIdx--
				}
				return m, nil
			}
		case "c", "y":
			if m.drawerOpen {
				if ev, ok := m.selectedEvidence(); ok {
					if err := clipboardWriteAll(ev.Snippet); err != nil {
						m.statusMsg = "Failed to copy evidence snippet"
					} else {
						m.statusMsg = fmt.Sprintf("Copied evidence from %s", ev.Source)
					}
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m DetailPageModel) selectedEvidence() (contracts.Evidence, bool) {
	ev := m.vm.Detail().Evidence
	if m.evidenceIdx < 0 || m.evidenceIdx >= len(ev) {
		return contracts.Evidence{}, false
	}
	return ev[m.evidenceIdx], true
}

// DrawerOpen reports the evidence drawer toggle.
func (m DetailPageModel) DrawerOpen() bool { return m.drawerOpen }

// SidebarOpen reports the sidebar toggle.
func (m DetailPageModel) SidebarOpen() bool { return m.sidebarOpen }

// SetSize updates the size.
func (m *DetailPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	vpWidth := w - 6
	if m.drawerOpen {
		vpWidth -= 40
	}
	if vpWidth > 0 {
		m.viewport.Width = vpWidth
	}
	if h > 12 {
		m.viewport.Height = h - 10
	}
}

// renderBody builds the clause and insight sections as markdown and runs
// them through glamour; the metadata grid is prepended unrendered so its
// alignment survives.
func (m DetailPageModel) renderBody(d contracts.Detail) string {
	grid := NewFieldGrid()
	grid.Add("Parties", d.Parties)
	grid.Add("Start Date", d.Start)
	grid.Add("Expiry Date", d.Expiry)
	grid.Add("Status", string(d.Status))
	grid.Add("Risk Score", string(d.Risk))

	var md strings.Builder
	md.WriteString("## Clauses\n\n")
	for _, cl := range d.Clauses {
		md.WriteString(fmt.Sprintf("### %s\n\n%s\n\nConfidence: %.0f%%\n\n", cl.Title, cl.Summary, cl.Confidence*100))
	}
	md.WriteString("## AI Insights\n\n")
	for _, in := range d.Insights {
		md.WriteString(fmt.Sprintf("- **Risk: %s** — %s\n", in.Risk, in.Message))
	}

	body := md.String()
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(body); err == nil {
			body = rendered
		}
	}
	return grid.View(m.styles) + "\n" + body
}

// View renders the page.
func (m DetailPageModel) View() string {
	main := m.renderMain()

	panes := []string{main}
	if m.sidebarOpen {
		panes = append([]string{m.renderSidebar()}, panes...)
	}
	if m.drawerOpen {
		panes = append(panes, m.renderDrawer())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panes...)
}

func (m DetailPageModel) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Saas Contracts"))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.NavActive.Render("Contracts"))
	sb.WriteString("\n")
	for _, item := range []string{"Insights", "Reports", "Settings"} {
		sb.WriteString(m.styles.NavItem.Render(item))
		sb.WriteString("\n")
	}
	return m.styles.Sidebar.Render(sb.String())
}

func (m DetailPageModel) renderMain() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render(" Contract Details "))
	sb.WriteString("  ")
	sb.WriteString(m.styles.Muted.Render(m.username))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("← Back to Dashboard (esc)"))
	sb.WriteString("\n\n")

	switch m.vm.State() {
	case viewmodel.DetailLoading, viewmodel.DetailIdle:
		sb.WriteString(m.spinner.View())
		sb.WriteString(m.styles.Muted.Render(" Loading contract details..."))
		sb.WriteString("\n")
	case viewmodel.DetailNotFound, viewmodel.DetailFailed:
		sb.WriteString(m.styles.Error.Render(m.vm.Error()))
		sb.WriteString("\n")
	case viewmodel.DetailFound:
		sb.WriteString(m.styles.Title.Render(m.vm.Detail().Name))
		sb.WriteString("\n")
		sb.WriteString(m.viewport.View())
		sb.WriteString("\n")
	}

	if m.statusMsg != "" {
		sb.WriteString(m.styles.Success.Render(m.statusMsg))
		sb.WriteString("\n")
	}

	toggle := "[e] Show Evidence"
	if m.drawerOpen {
		toggle = "[e] Hide Evidence"
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Footer.Render(toggle + "  [b] Sidebar  [j/k] Navigate  [c] Copy snippet  [C-l] Logout"))
	return sb.String()
}

func (m DetailPageModel) renderDrawer() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Evidence"))
	sb.WriteString("\n")

	evidence := m.vm.Detail().Evidence
	if len(evidence) == 0 {
		sb.WriteString(m.styles.Muted.Render("No evidence available"))
		sb.WriteString("\n")
		return m.styles.Drawer.Render(sb.String())
	}

	for i, ev := range evidence {
		source := m.styles.Bold.Render("Source: " + ev.Source)
		if i == m.evidenceIdx {
			source = m.styles.NavActive.Render("Source: " + ev.Source)
		}
		sb.WriteString(source)
		sb.WriteString("\n")
		sb.WriteString(m.styles.Body.Render(wrap(ev.Snippet, 36)))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("Relevance: %.0f%%", ev.Relevance*100)))
		sb.WriteString("\n\n")
	}
	return m.styles.Drawer.Render(sb.String())
}

// wrap breaks a string into lines no wider than width, on word boundaries.
func wrap(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}
	var sb strings.Builder
	lineLen := 0
	for i, w := range words {
		if i > 0 {
			if lineLen+1+len(w) > width {
				sb.WriteString("\n")
				lineLen = 0
			} else {
				sb.WriteString(" ")
				lineLen++
			}
		}
		sb.WriteString(w)
		lineLen += len(w)
	}
	return sb.String()
}
