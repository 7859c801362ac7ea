package contracts

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleContracts() []Contract {
	return []Contract{
		{ID: "c1", Name: "MSA 2025", Parties: "Microsoft & ABC Corp", Status: StatusActive, Risk: RiskMedium},
		{ID: "c2", Name: "Network Services Agreement", Parties: "TelNet & ABC Corp", Status: StatusRenewalDue, Risk: RiskHigh},
		{ID: "c3", Name: "Cloud Hosting Contract", Parties: "AWS & ABC Corp", Status: StatusActive, Risk: RiskLow},
		{ID: "c4", Name: "Software License Agreement", Parties: "Oracle & ABC Corp", Status: StatusExpired, Risk: RiskHigh},
		{ID: "c5", Name: "Support Contract", Parties: "IBM & ABC Corp", Status: StatusActive, Risk: RiskLow},
	}
}

func TestFilterApply(t *testing.T) {
	all := sampleContracts()

	t.Run("zero filter copies the collection", func(t *testing.T) {
		got := Filter{}.Apply(all)
		if diff := cmp.Diff(all, got); diff != "" {
			t.Fatalf("unexpected result (-want +got):\n%s", diff)
		}
	})

	t.Run("search matches name OR parties, case-insensitive", func(t *testing.T) {
		got := Filter{Query: "msa"}.Apply(all)
		require.Len(t, got, 1)
		assert.Equal(t, "c1", got[0].ID)

		got = Filter{Query: "ORACLE"}.Apply(all)
		require.Len(t, got, 1)
		assert.Equal(t, "c4", got[0].ID)
	})

	t.Run("status and risk are exact matches, ANDed", func(t *testing.T) {
		got := Filter{Status: StatusActive, Risk: RiskLow}.Apply(all)
		require.Len(t, got, 2)
		assert.Equal(t, "c3", got[0].ID)
		assert.Equal(t, "c5", got[1].ID)
	})

	t.Run("search ANDs with status", func(t *testing.T) {
		got := Filter{Query: "contract", Status: StatusActive}.Apply(all)
		require.Len(t, got, 2)
		assert.Equal(t, "c3", got[0].ID)
		assert.Equal(t, "c5", got[1].ID)
	})

	t.Run("every result satisfies all active predicates", func(t *testing.T) {
		f := Filter{Query: "abc", Status: StatusActive}
		for _, c := range f.Apply(all) {
			assert.True(t, f.Matches(c))
		}
	})

	t.Run("no match yields empty, not error", func(t *testing.T) {
		got := Filter{Query: "zzzz"}.Apply(all)
		assert.Empty(t, got)
	})

	t.Run("order of the source collection is preserved", func(t *testing.T) {
		got := Filter{Risk: RiskHigh}.Apply(all)
		require.Len(t, got, 2)
		assert.Equal(t, "c2", got[0].ID)
		assert.Equal(t, "c4", got[1].ID)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		before := sampleContracts()
		Filter{Query: "msa"}.Apply(all)
		if diff := cmp.Diff(before, all); diff != "" {
			t.Fatalf("source mutated (-want +got):\n%s", diff)
		}
	})
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(7, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(25, 10))
	assert.Equal(t, 1, TotalPages(5, 0))
}

func TestPaginate(t *testing.T) {
	all := sampleContracts()

	t.Run("page slice bounds", func(t *testing.T) {
		got := Paginate(all, 1, 2)
		require.Len(t, got, 2)
		assert.Equal(t, "c1", got[0].ID)

		got = Paginate(all, 3, 2)
		require.Len(t, got, 1)
		assert.Equal(t, "c5", got[0].ID)
	})

	t.Run("never more than pageSize items", func(t *testing.T) {
		for page := 1; page <= 4; page++ {
			assert.LessOrEqual(t, len(Paginate(all, page, 2)), 2)
		}
	})

	t.Run("out of range pages are empty", func(t *testing.T) {
		assert.Empty(t, Paginate(all, 4, 2))
		assert.Empty(t, Paginate(all, 0, 2))
		assert.Empty(t, Paginate(nil, 1, 10))
	})
}
