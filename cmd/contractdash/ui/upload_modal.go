package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"contractdash/internal/viewmodel"
)

// UploadEventMsg carries one item's terminal transition into the UI.
type UploadEventMsg viewmodel.UploadEvent

// UploadModalModel is the upload dialog: file names are entered in the
// input (the terminal's stand-in for browse/drag-and-drop) and each
// submitted file independently reaches Success or Error.
type UploadModalModel struct {
	width  int
	height int

	uploader *viewmodel.Uploader
	input    textinput.Model
	spinner  spinner.Model

	styles Styles
}

// NewUploadModalModel creates the modal over the upload simulator.
func NewUploadModalModel(uploader *viewmodel.Uploader, styles Styles) UploadModalModel {
	in := textinput.New()
	in.Placeholder = "contract.pdf, addendum.docx"
	in.CharLimit = 256
	in.Width = 44
	in.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styles.Spinner

	return UploadModalModel{
		uploader: uploader,
		input:    in,
		spinner:  sp,
		styles:   styles,
	}
}

// Init initializes the modal.
func (m UploadModalModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// waitForEvent blocks on the simulator's completion channel. It is
// re-armed after every event so completions keep flowing while items
// are pending.
func (m UploadModalModel) waitForEvent() tea.Cmd {
	events := m.uploader.Events()
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return UploadEventMsg(ev)
	}
}

// Update handles messages.
func (m UploadModalModel) Update(msg tea.Msg) (UploadModalModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case UploadEventMsg:
		// The simulator already applied the transition; keep listening
		// while anything is still uploading.
		if m.uploader.Pending() > 0 {
			cmds = append(cmds, m.waitForEvent())
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.uploader.SetDragActive(false)
			return m, func() tea.Msg { return CloseUploadMsg{} }
		case "enter":
			names := splitFileNames(m.input.Value())
			m.input.SetValue("")
			m.uploader.SetDragActive(false)
			if len(names) == 0 {
				return m, nil
			}
			m.uploader.Submit(names)
			return m, tea.Batch(m.spinner.Tick, m.waitForEvent())
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		// A batch being typed is the drop-target hover equivalent.
		m.uploader.SetDragActive(strings.TrimSpace(m.input.Value()) != "")
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// splitFileNames parses a comma separated batch, dropping empties.
func splitFileNames(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// SetSize updates the size.
func (m *UploadModalModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// View renders the modal.
func (m UploadModalModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Upload Contracts"))
	sb.WriteString("\n")

	dropStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.styles.Theme.Border).
		Padding(0, 1)
	if m.uploader.DragActive() {
		dropStyle = dropStyle.BorderForeground(m.styles.Theme.Primary)
	}

	var drop strings.Builder
	drop.WriteString(m.styles.Body.Render("Enter file names and press Enter"))
	drop.WriteString("\n")
	drop.WriteString(m.input.View())
	drop.WriteString("\n")
	drop.WriteString(m.styles.Muted.Render("Supported formats: PDF, DOC, DOCX"))
	sb.WriteString(dropStyle.Render(drop.String()))
	sb.WriteString("\n")

	items := m.uploader.Items()
	if len(items) > 0 {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Bold.Render("Uploaded Files"))
		sb.WriteString("\n")
		for _, item := range items {
			sb.WriteString(m.styles.Body.Render(item.Name))
			sb.WriteString("  ")
			switch item.Status {
			case viewmodel.UploadUploading:
				sb.WriteString(m.spinner.View())
				sb.WriteString(m.styles.Info.Render(" Uploading"))
			case viewmodel.UploadSuccess:
				sb.WriteString(m.styles.Success.Render("Success"))
			case viewmodel.UploadError:
				sb.WriteString(m.styles.Error.Render("Error: " + item.Error))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Footer.Render("[Enter] Upload  [esc] Close"))

	card := m.styles.Card.BorderForeground(m.styles.Theme.Primary).Render(sb.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}
