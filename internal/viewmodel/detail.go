package viewmodel

import (
	"context"

	"go.uber.org/zap"

	"contractdash/internal/contracts"
)

// DetailState is the lifecycle of a single contract lookup. NotFound is a
// successful fetch with no matching record; it is distinct from Failed.
type DetailState int

const (
	DetailIdle DetailState = iota
	DetailLoading
	DetailFound
	DetailNotFound
	DetailFailed
)

// Fixed user-facing messages for the two detail failure modes.
const (
	ContractNotFoundMessage  = "Contract not found"
	LoadDetailsFailedMessage = "Failed to load contract details"
)

// DetailViewModel drives the contract detail page, parameterized by a
// contract id. Re-loading with a different id fully resets the state so
// a stale record is never displayed while the new one loads.
type DetailViewModel struct {
	repo contracts.Repository
	log  *zap.Logger

	state  DetailState
	id     string
	detail contracts.Detail
	errMsg string
	gen    uint64
}

// NewDetailViewModel builds an idle detail view-model.
func NewDetailViewModel(repo contracts.Repository, log *zap.Logger) *DetailViewModel {
	if log == nil {
		log = zap.NewNop()
	}
	return &DetailViewModel{
		repo:  repo,
		log:   log.Named("detail"),
		state: DetailIdle,
	}
}

// StartLoad resets to Loading for the given id and returns the generation
// token. A later StartLoad supersedes any fetch still in flight.
func (m *DetailViewModel) StartLoad(id string) uint64 {
	m.state = DetailLoading
	m.id = id
	m.detail = contracts.Detail{}
	m.errMsg = ""
	m.gen++
	return m.gen
}

// Fetch retrieves the full detail collection. The id lookup happens in
// FinishLoad, on the consumer side of the data source.
func (m *DetailViewModel) Fetch(ctx context.Context) ([]contracts.Detail, error) {
	return m.repo.Details(ctx)
}

// FinishLoad applies a completed fetch for the generation it belongs to.
// Stale completions are ignored and the method reports false. Found,
// NotFound and Failed are mutually exclusive outcomes.
func (m *DetailViewModel) FinishLoad(gen uint64, details []contracts.Detail, err error) bool {
	if gen != m.gen {
		m.log.Debug("dropping stale detail load", zap.Uint64("gen", gen), zap.Uint64("current", m.gen))
		return false
	}
	if err != nil {
		m.state = DetailFailed
		m.errMsg = LoadDetailsFailedMessage
		m.log.Warn("detail load failed", zap.String("id", m.id), zap.Error(err))
		return true
	}
	for _, d := range details {
		if d.ID == m.id {
			m.state = DetailFound
			m.detail = d
			m.log.Info("contract detail loaded", zap.String("id", m.id))
			return true
		}
	}
	m.state = DetailNotFound
	m.errMsg = ContractNotFoundMessage
	m.log.Info("contract not found", zap.String("id", m.id))
	return true
}

// Load runs the full lookup cycle synchronously (CLI and tests).
func (m *DetailViewModel) Load(ctx context.Context, id string) {
	gen := m.StartLoad(id)
	details, err := m.Fetch(ctx)
	m.FinishLoad(gen, details, err)
}

// State returns the lookup lifecycle state.
func (m *DetailViewModel) State() DetailState { return m.state }

// ID returns the id of the current (or in-flight) lookup.
func (m *DetailViewModel) ID() string { return m.id }

// Detail returns the found record; only meaningful in DetailFound.
func (m *DetailViewModel) Detail() contracts.Detail { return m.detail }

// Error returns the user-facing message for NotFound or Failed.
func (m *DetailViewModel) Error() string { return m.errMsg }
