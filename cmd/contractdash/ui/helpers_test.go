package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"contractdash/internal/contracts"
)

// testRepo serves canned collections to the view-models behind the pages.
type testRepo struct {
	list    []contracts.Contract
	details []contracts.Detail
	err     error
}

func (r *testRepo) List(context.Context) ([]contracts.Contract, error) {
	return r.list, r.err
}

func (r *testRepo) Details(context.Context) ([]contracts.Detail, error) {
	return r.details, r.err
}

// dashContracts builds 15 contracts, 7 Active, the first with distinctive
// parties for search tests.
func dashContracts() []contracts.Contract {
	out := make([]contracts.Contract, 0, 15)
	for i := 1; i <= 15; i++ {
		status := contracts.StatusExpired
		if i <= 7 {
			status = contracts.StatusActive
		}
		parties := "Acme & ABC Corp"
		if i == 1 {
			parties = "Globex & Initech"
		}
		out = append(out, contracts.Contract{
			ID:      fmt.Sprintf("c%d", i),
			Name:    fmt.Sprintf("Contract %d", i),
			Parties: parties,
			Expiry:  "2026-12-31",
			Status:  status,
			Risk:    contracts.RiskLow,
		})
	}
	return out
}

// runCmd executes a command tree, flattening batches into a message list.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeString(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
