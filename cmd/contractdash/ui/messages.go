package ui

// Messages emitted by the page models for the root model to route on.
// Pages never navigate themselves; they announce intent and the app model
// owns the session and the page transitions.

// SubmitLoginMsg carries a locally validated credential pair.
type SubmitLoginMsg struct {
	Username string
	Password string
}

// OpenContractMsg asks for the detail page of one contract.
type OpenContractMsg struct {
	ID string
}

// BackToDashboardMsg returns from the detail page to the list.
type BackToDashboardMsg struct{}

// OpenUploadMsg opens the upload modal over the dashboard.
type OpenUploadMsg struct{}

// CloseUploadMsg closes the upload modal.
type CloseUploadMsg struct{}

// LogoutMsg ends the session and returns to the login page.
type LogoutMsg struct{}

// DataChangedMsg reports that a mock data file changed on disk; the
// dashboard surfaces a hint that a reload will pick it up.
type DataChangedMsg struct{}
