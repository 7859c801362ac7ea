package viewmodel

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contractdash/internal/contracts"
)

// fakeRepo serves canned data and records nothing; tests drive the
// view-models through it.
type fakeRepo struct {
	list    []contracts.Contract
	details []contracts.Detail
	err     error
}

func (f *fakeRepo) List(context.Context) ([]contracts.Contract, error) {
	return f.list, f.err
}

func (f *fakeRepo) Details(context.Context) ([]contracts.Detail, error) {
	return f.details, f.err
}

// fifteenContracts builds the reference dataset shape: 15 contracts,
// 7 of them Active.
func fifteenContracts() []contracts.Contract {
	out := make([]contracts.Contract, 0, 15)
	for i := 1; i <= 15; i++ {
		status := contracts.StatusExpired
		if i <= 7 {
			status = contracts.StatusActive
		}
		out = append(out, contracts.Contract{
			ID:      fmt.Sprintf("c%d", i),
			Name:    fmt.Sprintf("Contract %d", i),
			Parties: "Acme & ABC Corp",
			Status:  status,
			Risk:    contracts.RiskLow,
		})
	}
	return out
}

func TestListViewModelLoad(t *testing.T) {
	t.Run("successful load", func(t *testing.T) {
		vm := NewListViewModel(&fakeRepo{list: fifteenContracts()}, 10, nil)
		assert.Equal(t, FetchIdle, vm.State())

		vm.Load(context.Background())

		assert.Equal(t, FetchLoaded, vm.State())
		assert.Empty(t, vm.Error())
		assert.Len(t, vm.Filtered(), 15)
		assert.Equal(t, 1, vm.Page())
		assert.Equal(t, 2, vm.TotalPages())
		assert.Len(t, vm.PageItems(), 10)
	})

	t.Run("failed load carries the fixed message", func(t *testing.T) {
		vm := NewListViewModel(&fakeRepo{err: errors.New("disk on fire")}, 10, nil)
		vm.Load(context.Background())

		assert.Equal(t, FetchFailed, vm.State())
		assert.Equal(t, "Failed to load contracts. Please try again.", vm.Error())
		assert.Empty(t, vm.Filtered())
	})

	t.Run("reload after failure recovers", func(t *testing.T) {
		repo := &fakeRepo{err: errors.New("boom")}
		vm := NewListViewModel(repo, 10, nil)
		vm.Load(context.Background())
		require.Equal(t, FetchFailed, vm.State())

		repo.err = nil
		repo.list = fifteenContracts()
		vm.Load(context.Background())
		assert.Equal(t, FetchLoaded, vm.State())
		assert.Empty(t, vm.Error())
	})

	t.Run("empty collection is a loaded state, not a failure", func(t *testing.T) {
		vm := NewListViewModel(&fakeRepo{list: nil}, 10, nil)
		vm.Load(context.Background())
		assert.Equal(t, FetchLoaded, vm.State())
		assert.Empty(t, vm.Filtered())
		assert.Equal(t, 1, vm.TotalPages())
	})
}

func TestListViewModelStaleCompletion(t *testing.T) {
	vm := NewListViewModel(&fakeRepo{}, 10, nil)

	oldGen := vm.StartLoad()
	newGen := vm.StartLoad()
	require.NotEqual(t, oldGen, newGen)

	// The superseded completion must be dropped wholesale.
	applied := vm.FinishLoad(oldGen, fifteenContracts(), nil)
	assert.False(t, applied)
	assert.Equal(t, FetchLoading, vm.State())
	assert.Empty(t, vm.Filtered())

	applied = vm.FinishLoad(newGen, fifteenContracts(), nil)
	assert.True(t, applied)
	assert.Equal(t, FetchLoaded, vm.State())
}

func TestListViewModelFiltering(t *testing.T) {
	newLoaded := func(t *testing.T) *ListViewModel {
		t.Helper()
		vm := NewListViewModel(&fakeRepo{list: fifteenContracts()}, 10, nil)
		vm.Load(context.Background())
		return vm
	}

	t.Run("status filter narrows and resets the page", func(t *testing.T) {
		vm := newLoaded(t)
		vm.GoTo(2)
		require.Equal(t, 2, vm.Page())

		vm.SetStatus(contracts.StatusActive)

		assert.Equal(t, 1, vm.Page())
		assert.Len(t, vm.Filtered(), 7)
		assert.Equal(t, 1, vm.TotalPages())
		assert.Len(t, vm.PageItems(), 7)
	})

	t.Run("query change resets the page even when already on page 1", func(t *testing.T) {
		vm := newLoaded(t)
		vm.SetQuery("contract 1")
		assert.Equal(t, 1, vm.Page())
		// "Contract 1" plus "Contract 10".."Contract 15".
		assert.Len(t, vm.Filtered(), 7)
	})

	t.Run("zero-match query yields an empty loaded view", func(t *testing.T) {
		vm := newLoaded(t)
		vm.SetQuery("nonexistent vendor")
		assert.Equal(t, FetchLoaded, vm.State())
		assert.Empty(t, vm.Filtered())
		assert.Empty(t, vm.PageItems())
		assert.Equal(t, 1, vm.TotalPages())
	})

	t.Run("clearing a filter restores the full view", func(t *testing.T) {
		vm := newLoaded(t)
		vm.SetStatus(contracts.StatusActive)
		require.Len(t, vm.Filtered(), 7)
		vm.SetStatus("")
		assert.Len(t, vm.Filtered(), 15)
	})
}

func TestListViewModelPaging(t *testing.T) {
	vm := NewListViewModel(&fakeRepo{list: fifteenContracts()}, 10, nil)
	vm.Load(context.Background())
	require.Equal(t, 2, vm.TotalPages())

	t.Run("out-of-range GoTo is a no-op", func(t *testing.T) {
		vm.GoTo(0)
		assert.Equal(t, 1, vm.Page())
		vm.GoTo(3)
		assert.Equal(t, 1, vm.Page())
		vm.GoTo(-5)
		assert.Equal(t, 1, vm.Page())
	})

	t.Run("next and prev clamp at the edges", func(t *testing.T) {
		vm.PrevPage()
		assert.Equal(t, 1, vm.Page())

		vm.NextPage()
		assert.Equal(t, 2, vm.Page())
		assert.Len(t, vm.PageItems(), 5)

		vm.NextPage()
		assert.Equal(t, 2, vm.Page())
	})

	t.Run("page items never exceed the page size", func(t *testing.T) {
		for page := 1; page <= vm.TotalPages(); page++ {
			vm.GoTo(page)
			assert.LessOrEqual(t, len(vm.PageItems()), 10)
		}
	})
}
