package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"contractdash/internal/contracts"
	"contractdash/internal/viewmodel"
)

// ContractsLoadedMsg carries a completed list fetch back to the page.
// The generation token lets the view-model drop superseded completions.
type ContractsLoadedMsg struct {
	Gen  uint64
	List []contracts.Contract
	Err  error
}

// DashboardPageModel is the contract list page: search, status/risk
// filters, and a paginated table over the fetched collection.
type DashboardPageModel struct {
	width  int
	height int

	vm       *viewmodel.ListViewModel
	username string

	table   table.Model
	search  textinput.Model
	spinner spinner.Model

	searchFocused bool
	statusIdx     int // 0 = all, 1.. = contracts.Statuses()
	riskIdx       int // 0 = all, 1.. = contracts.Risks()
	sidebarOpen   bool
	dataStale     bool

	pageItems []contracts.Contract

	styles Styles
}

// NewDashboardPageModel creates the dashboard page over the list view-model.
func NewDashboardPageModel(vm *viewmodel.ListViewModel, username string, styles Styles) DashboardPageModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Contract Name", Width: 30},
			{Title: "Parties", Width: 26},
			{Title: "Expiry Date", Width: 12},
			{Title: "Status", Width: 12},
			{Title: "Risk Score", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	search := textinput.New()
	search.Placeholder = "Search by name or party"
	search.CharLimit = 64
	search.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return DashboardPageModel{
		vm:       vm,
		username: username,
		table:    t,
		search:   search,
		spinner:  sp,
		styles:   styles,
	}
}

// Init starts the initial fetch.
func (m DashboardPageModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.LoadCmd())
}

// LoadCmd marks the view-model Loading and returns the command performing
// the fetch. StartLoad runs now, on the update loop; only the repository
// call happens off it.
func (m DashboardPageModel) LoadCmd() tea.Cmd {
	gen := m.vm.StartLoad()
	fetch := m.vm.Fetch
	return func() tea.Msg {
		list, err := fetch(context.Background())
		return ContractsLoadedMsg{Gen: gen, List: list, Err: err}
	}
}

// Update handles messages.
func (m DashboardPageModel) Update(msg tea.Msg) (DashboardPageModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case ContractsLoadedMsg:
		if m.vm.FinishLoad(msg.Gen, msg.List, msg.Err) {
			m.syncTable()
		}
		return m, nil

	case DataChangedMsg:
		m.dataStale = true
		return m, nil

	case spinner.TickMsg:
		if m.vm.State() == viewmodel.FetchLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.searchFocused {
			switch msg.String() {
			case "esc", "enter":
				m.searchFocused = false
				m.search.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			cmds = append(cmds, cmd)
			// Live filtering: every keystroke re-derives and resets to page 1.
			m.vm.SetQuery(m.search.Value())
			m.syncTable()
			return m, tea.Batch(cmds...)
		}

		switch msg.String() {
		case "/":
			m.searchFocused = true
			cmds = append(cmds, m.search.Focus())
			return m, tea.Batch(cmds...)
		case "tab":
			m.statusIdx = (m.statusIdx + 1) % (len(contracts.Statuses()) + 1)
			m.vm.SetStatus(m.statusFilter())
			m.syncTable()
			return m, nil
		case "shift+tab":
			m.riskIdx = (m.riskIdx + 1) % (len(contracts.Risks()) + 1)
			m.vm.SetRisk(m.riskFilter())
			m.syncTable()
			return m, nil
		case "left", "p":
			m.vm.PrevPage()
			m.syncTable()
			return m, nil
		case "right", "n":
			m.vm.NextPage()
			m.syncTable()
			return m, nil
		case "r":
			m.dataStale = false
			return m, tea.Batch(m.spinner.Tick, m.LoadCmd())
		case "b":
			m.sidebarOpen = !m.sidebarOpen
			return m, nil
		case "u":
			return m, func() tea.Msg { return OpenUploadMsg{} }
		case "ctrl+l":
			return m, func() tea.Msg { return LogoutMsg{} }
		case "enter":
			if id := m.selectedID(); id != "" {
				return m, func() tea.Msg { return OpenContractMsg{ID: id} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m DashboardPageModel) statusFilter() contracts.Status {
	if m.statusIdx == 0 {
		return ""
	}
	return contracts.Statuses()[m.statusIdx-1]
}

func (m DashboardPageModel) riskFilter() contracts.Risk {
	if m.riskIdx == 0 {
		return ""
	}
	return contracts.Risks()[m.riskIdx-1]
}

// selectedID returns the contract id under the table cursor.
func (m DashboardPageModel) selectedID() string {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.pageItems) {
		return ""
	}
	return m.pageItems[idx].ID
}

// syncTable rebuilds the table rows from the current page.
func (m *DashboardPageModel) syncTable() {
	m.pageItems = m.vm.PageItems()
	rows := make([]table.Row, 0, len(m.pageItems))
	for _, c := range m.pageItems {
		rows = append(rows, table.Row{c.Name, c.Parties, c.Expiry, string(c.Status), string(c.Risk)})
	}
	m.table.SetRows(rows)
	if len(rows) > 0 && m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// SetSize updates the size.
func (m *DashboardPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	tableWidth := w - 6
	if m.sidebarOpen {
		tableWidth -= 24
	}
	if tableWidth > 0 {
		m.table.SetWidth(tableWidth)
	}
	if h > 14 {
		m.table.SetHeight(h - 12)
	}
}

// View renders the page.
func (m DashboardPageModel) View() string {
	main := m.renderMain()
	if !m.sidebarOpen {
		return main
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), main)
}

func (m DashboardPageModel) renderSidebar() string {
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

func (m DashboardPageModel) renderMain() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render(" Contracts "))
	sb.WriteString("  ")
	sb.WriteString(m.styles.Muted.Render(m.username))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderFilterBar())
	sb.WriteString("\n\n")

	switch m.vm.State() {
	case viewmodel.FetchLoading, viewmodel.FetchIdle:
		sb.WriteString(m.spinner.View())
		sb.WriteString(m.styles.Muted.Render(" Loading contracts..."))
		sb.WriteString("\n")
	case viewmodel.FetchFailed:
		sb.WriteString(m.styles.Error.Render(m.vm.Error()))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("[r] Retry"))
		sb.WriteString("\n")
	case viewmodel.FetchLoaded:
		if len(m.vm.Filtered()) == 0 {
			sb.WriteString(m.styles.Muted.Render("No contracts yet"))
			sb.WriteString("\n")
		} else {
			sb.WriteString(m.styles.Content.Render(m.table.View()))
			sb.WriteString("\n")
			sb.WriteString(m.renderPagination())
			sb.WriteString("\n")
		}
	}

	if m.dataStale {
		sb.WriteString(m.styles.Warning.Render("Mock data changed on disk"))
		sb.WriteString(m.styles.Muted.Render("  [r] Reload"))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Footer.Render("[/] Search  [Tab] Status  [S-Tab] Risk  [←/→] Page  [Enter] Open  [u] Upload  [b] Sidebar  [C-l] Logout  [C-c] Quit"))
	return sb.String()
}

func (m DashboardPageModel) renderFilterBar() string {
	var sb strings.Builder

	searchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Theme.Border).
		Padding(0, 1)
	if m.searchFocused {
		searchStyle = searchStyle.BorderForeground(m.styles.Theme.Primary)
	}
	sb.WriteString(searchStyle.Render(m.search.View()))
	sb.WriteString("\n")

	sb.WriteString(m.styles.Muted.Render("Status: "))
	sb.WriteString(m.renderTabs("All Statuses", statusLabels(), m.statusIdx))
	sb.WriteString(m.styles.Muted.Render("   Risk: "))
	sb.WriteString(m.renderTabs("All Risks", riskLabels(), m.riskIdx))

	return sb.String()
}

func (m DashboardPageModel) renderTabs(allLabel string, labels []string, active int) string {
	var sb strings.Builder
	for i, label := range append([]string{allLabel}, labels...) {
		style := m.styles.NavItem
		if i == active {
			style = m.styles.NavActive
		}
		sb.WriteString(style.Render(label))
		sb.WriteString("  ")
	}
	return sb.String()
}

func (m DashboardPageModel) renderPagination() string {
	page := fmt.Sprintf("Page %d of %d", m.vm.Page(), m.vm.TotalPages())
	showing := fmt.Sprintf("  Showing %d of %d", len(m.pageItems), len(m.vm.Filtered()))
	return m.styles.Muted.Render(page + showing)
}

func statusLabels() []string {
	out := make([]string, 0, 3)
	for _, s := range contracts.Statuses() {
		out = append(out, string(s))
	}
	return out
}

func riskLabels() []string {
	out := make([]string, 0, 3)
	for _, r := range contracts.Risks() {
		out = append(out, string(r))
	}
	return out
}
