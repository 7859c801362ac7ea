// Package main provides the contractdash CLI entry point.
// This file implements the root model: it owns the session and routes
// between the login, dashboard and detail pages, with the upload modal
// overlaid on top.
package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"contractdash/cmd/contractdash/ui"
	"contractdash/internal/auth"
	"contractdash/internal/config"
	"contractdash/internal/contracts"
	"contractdash/internal/viewmodel"
)

// page identifies the active route: / (login), /dashboard, /contract/{id}.
type page int

const (
	pageLogin page = iota
	pageDashboard
	pageDetail
)

// appModel is the root bubbletea model.
type appModel struct {
	cfg  *config.Config
	log  *zap.Logger
	repo contracts.Repository

	gate    *auth.Gate
	session auth.Session

	listVM   *viewmodel.ListViewModel
	detailVM *viewmodel.DetailViewModel
	uploader *viewmodel.Uploader

	page       page
	login      ui.LoginPageModel
	dashboard  ui.DashboardPageModel
	detail     ui.DetailPageModel
	upload     ui.UploadModalModel
	showUpload bool

	styles ui.Styles
	width  int
	height int
}

// newAppModel wires the view-models and pages together. The session is
// held here and handed to pages as data; pages never mutate it.
func newAppModel(cfg *config.Config, repo contracts.Repository, gate *auth.Gate, uploader *viewmodel.Uploader, log *zap.Logger) appModel {
	if log == nil {
		log = zap.NewNop()
	}
	styles := ui.NewStyles(ui.ThemeFromName(cfg.UI.Theme))

	return appModel{
		cfg:      cfg,
		log:      log,
		repo:     repo,
		gate:     gate,
		listVM:   viewmodel.NewListViewModel(repo, cfg.Dashboard.PageSize, log),
		detailVM: viewmodel.NewDetailViewModel(repo, log),
		uploader: uploader,
		page:     pageLogin,
		login:    ui.NewLoginPageModel(styles),
		styles:   styles,
	}
}

// Init initializes the root model.
func (m appModel) Init() tea.Cmd {
	return m.login.Init()
}

// Update routes messages to the active page and handles navigation.
func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.login.SetSize(msg.Width, msg.Height)
		m.dashboard.SetSize(msg.Width, msg.Height)
		m.detail.SetSize(msg.Width, msg.Height)
		m.upload.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case ui.SubmitLoginMsg:
		sess, err := m.gate.Authenticate(msg.Username, msg.Password)
		if err != nil {
			m.login.Reject(auth.InvalidCredentialsMessage)
			return m, nil
		}
		m.session = sess
		m.dashboard = ui.NewDashboardPageModel(m.listVM, sess.Username, m.styles)
		m.detail = ui.NewDetailPageModel(m.detailVM, sess.Username, m.styles)
		m.upload = ui.NewUploadModalModel(m.uploader, m.styles)
		m.dashboard.SetSize(m.width, m.height)
		m.detail.SetSize(m.width, m.height)
		m.upload.SetSize(m.width, m.height)
		m.page = pageDashboard
		return m, m.dashboard.Init()

	case ui.LogoutMsg:
		if err := m.gate.Logout(&m.session); err != nil {
			m.log.Warn("logout cleanup failed", zap.Error(err))
		}
		m.showUpload = false
		m.page = pageLogin
		m.login.Reset()
		return m, m.login.Init()

	case ui.OpenContractMsg:
		m.page = pageDetail
		cmd := m.detail.Open(msg.ID)
		return m, cmd

	case ui.BackToDashboardMsg:
		m.page = pageDashboard
		return m, nil

	case ui.OpenUploadMsg:
		m.showUpload = true
		return m, m.upload.Init()

	case ui.CloseUploadMsg:
		m.showUpload = false
		return m, nil

	// Fetch completions go to their page regardless of what is on top,
	// so an open modal never stalls a load.
	case ui.ContractsLoadedMsg, ui.DataChangedMsg:
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd

	case ui.DetailLoadedMsg:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd

	case ui.UploadEventMsg:
		var cmd tea.Cmd
		m.upload, cmd = m.upload.Update(msg)
		return m, cmd
	}

	return m.routeToActive(msg)
}

// routeToActive delivers a message to the modal when it is open,
// otherwise to the current page.
func (m appModel) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.showUpload {
		m.upload, cmd = m.upload.Update(msg)
		return m, cmd
	}
	switch m.page {
	case pageLogin:
		m.login, cmd = m.login.Update(msg)
	case pageDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case pageDetail:
		m.detail, cmd = m.detail.Update(msg)
	}
	return m, cmd
}

// View renders the active page, with the upload modal replacing the
// dashboard while it is open.
func (m appModel) View() string {
	if m.showUpload {
		return m.upload.View()
	}
	switch m.page {
	case pageDashboard:
		return m.dashboard.View()
	case pageDetail:
		return m.detail.View()
	default:
		return m.login.View()
	}
}
