package contracts

import (
	"context"
	"fmt"
)

// Validate loads both collections and reports structural problems:
// duplicate ids within a collection, detail records with no summary,
// and confidence/relevance scores outside [0,1]. An empty slice means
// the mock data is well-formed.
func Validate(ctx context.Context, repo Repository) ([]string, error) {
	list, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	details, err := repo.Details(ctx)
	if err != nil {
		return nil, err
	}

	var problems []string

	seen := make(map[string]bool, len(list))
	for _, c := range list {
		if c.ID == "" {
			problems = append(problems, fmt.Sprintf("contract %q has an empty id", c.Name))
			continue
		}
		if seen[c.ID] {
			problems = append(problems, fmt.Sprintf("duplicate contract id %q", c.ID))
		}
		seen[c.ID] = true
	}

	seenDetail := make(map[string]bool, len(details))
	for _, d := range details {
		if seenDetail[d.ID] {
			problems = append(problems, fmt.Sprintf("duplicate detail id %q", d.ID))
		}
		seenDetail[d.ID] = true
		if !seen[d.ID] {
			problems = append(problems, fmt.Sprintf("detail id %q has no summary record", d.ID))
		}
		for _, cl := range d.Clauses {
			if cl.Confidence < 0 || cl.Confidence > 1 {
				problems = append(problems, fmt.Sprintf("contract %q clause %q confidence %.2f out of range", d.ID, cl.Title, cl.Confidence))
			}
		}
		for _, ev := range d.Evidence {
			if ev.Relevance < 0 || ev.Relevance > 1 {
				problems = append(problems, fmt.Sprintf("contract %q evidence %q relevance %.2f out of range", d.ID, ev.Source, ev.Relevance))
			}
		}
	}

	return problems, nil
}
