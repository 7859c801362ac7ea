package contracts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	list    []Contract
	details []Detail
	err     error
}

func (s *stubRepo) List(context.Context) ([]Contract, error)  { return s.list, s.err }
func (s *stubRepo) Details(context.Context) ([]Detail, error) { return s.details, s.err }

func TestValidate(t *testing.T) {
	t.Run("well-formed data has no problems", func(t *testing.T) {
		repo := &stubRepo{
			list: []Contract{{ID: "c1", Name: "A"}},
			details: []Detail{{
				Contract: Contract{ID: "c1", Name: "A"},
				Clauses:  []Clause{{Title: "T", Confidence: 0.9}},
				Evidence: []Evidence{{Source: "S", Relevance: 0.5}},
			}},
		}
		problems, err := Validate(context.Background(), repo)
		require.NoError(t, err)
		assert.Empty(t, problems)
	})

	t.Run("reports structural problems", func(t *testing.T) {
		repo := &stubRepo{
			list: []Contract{{ID: "c1", Name: "A"}, {ID: "c1", Name: "B"}, {Name: "no id"}},
			details: []Detail{{
				Contract: Contract{ID: "c9", Name: "orphan"},
				Clauses:  []Clause{{Title: "T", Confidence: 1.7}},
			}},
		}
		problems, err := Validate(context.Background(), repo)
		require.NoError(t, err)
		assert.Len(t, problems, 4)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := &stubRepo{err: errors.New("boom")}
		_, err := Validate(context.Background(), repo)
		require.Error(t, err)
	})
}
