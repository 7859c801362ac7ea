// Package viewmodel holds the non-visual state machines behind the
// dashboard pages: the contract list (fetch + filter + pagination), the
// contract detail lookup, and the upload simulator. The pages under
// cmd/contractdash/ui render these; nothing here knows about terminals.
//
// Each view-model is owned by a single update loop. Completions arriving
// from a superseded load are discarded via a generation counter rather
// than an explicit abort ("latest request wins").
package viewmodel

import (
	"context"

	"go.uber.org/zap"

	"contractdash/internal/contracts"
)

// FetchState is the lifecycle of a collection fetch.
type FetchState int

const (
	FetchIdle FetchState = iota
	FetchLoading
	FetchLoaded
	FetchFailed
)

// LoadContractsFailedMessage is the fixed user-facing message for a failed
// list fetch. Recovery is an explicit reload only.
const LoadContractsFailedMessage = "Failed to load contracts. Please try again."

// DefaultPageSize matches the dashboard's contracts-per-page.
const DefaultPageSize = 10

// ListViewModel drives the contract list: one fetch of the full summary
// collection, then a reactive filtered/paginated view over it.
type ListViewModel struct {
	repo     contracts.Repository
	pageSize int
	log      *zap.Logger

	state    FetchState
	errMsg   string
	all      []contracts.Contract
	filtered []contracts.Contract
	filter   contracts.Filter
	page     int
	gen      uint64
}

// NewListViewModel builds an idle list view-model. pageSize values < 1
// fall back to DefaultPageSize.
func NewListViewModel(repo contracts.Repository, pageSize int, log *zap.Logger) *ListViewModel {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ListViewModel{
		repo:     repo,
		pageSize: pageSize,
		log:      log.Named("list"),
		state:    FetchIdle,
		page:     1,
	}
}

// StartLoad transitions to Loading and returns the generation token the
// eventual completion must present. Any in-flight older load is superseded.
func (m *ListViewModel) StartLoad() uint64 {
	m.state = FetchLoading
	m.errMsg = ""
	m.gen++
	return m.gen
}

// Fetch performs the repository call for a started load. It is safe to run
// off the update loop; apply the result with FinishLoad.
func (m *ListViewModel) Fetch(ctx context.Context) ([]contracts.Contract, error) {
	return m.repo.List(ctx)
}

// FinishLoad applies a completed fetch. Completions carrying a stale
// generation are ignored and the method reports false.
func (m *ListViewModel) FinishLoad(gen uint64, list []contracts.Contract, err error) bool {
	if gen != m.gen {
		m.log.Debug("dropping stale list load", zap.Uint64("gen", gen), zap.Uint64("current", m.gen))
		return false
	}
	if err != nil {
		m.state = FetchFailed
		m.errMsg = LoadContractsFailedMessage
		m.all = nil
		m.filtered = nil
		m.log.Warn("list load failed", zap.Error(err))
		return true
	}
	m.state = FetchLoaded
	m.all = list
	m.refresh()
	m.log.Info("contracts loaded", zap.Int("count", len(list)))
	return true
}

// Load runs the full fetch cycle synchronously. The TUI splits the cycle
// across messages instead; this is for the CLI and tests.
func (m *ListViewModel) Load(ctx context.Context) {
	gen := m.StartLoad()
	list, err := m.Fetch(ctx)
	m.FinishLoad(gen, list, err)
}

// State returns the fetch lifecycle state.
func (m *ListViewModel) State() FetchState { return m.state }

// Error returns the user-facing failure message, if any.
func (m *ListViewModel) Error() string { return m.errMsg }

// Filter returns the active predicates.
func (m *ListViewModel) Filter() contracts.Filter { return m.filter }

// Filtered returns the current derived sequence.
func (m *ListViewModel) Filtered() []contracts.Contract { return m.filtered }

// SetQuery updates the search term and resets to page 1.
func (m *ListViewModel) SetQuery(q string) {
	m.filter.Query = q
	m.refresh()
}

// SetStatus updates the status filter ("" clears it) and resets to page 1.
func (m *ListViewModel) SetStatus(s contracts.Status) {
	m.filter.Status = s
	m.refresh()
}

// SetRisk updates the risk filter ("" clears it) and resets to page 1.
func (m *ListViewModel) SetRisk(r contracts.Risk) {
	m.filter.Risk = r
	m.refresh()
}

// refresh re-derives the filtered view and resets the page as one step,
// so the page number is never stale with respect to the filtered count.
func (m *ListViewModel) refresh() {
	m.filtered = m.filter.Apply(m.all)
	m.page = 1
}

// Page returns the current 1-based page.
func (m *ListViewModel) Page() int { return m.page }

// TotalPages returns the page count for the current filtered view, min 1.
func (m *ListViewModel) TotalPages() int {
	return contracts.TotalPages(len(m.filtered), m.pageSize)
}

// PageItems returns the contracts on the current page.
func (m *ListViewModel) PageItems() []contracts.Contract {
	return contracts.Paginate(m.filtered, m.page, m.pageSize)
}

// GoTo moves to the given page. Requests outside [1, TotalPages] are a
// no-op, not an error.
func (m *ListViewModel) GoTo(page int) {
	if page < 1 || page > m.TotalPages() {
		return
	}
	m.page = page
}

// NextPage advances one page, clamped.
func (m *ListViewModel) NextPage() { m.GoTo(m.page + 1) }

// PrevPage goes back one page, clamped.
func (m *ListViewModel) PrevPage() { m.GoTo(m.page - 1) }
