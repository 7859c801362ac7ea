package contracts

import "strings"

// Filter is the set of list-view predicates. Zero values mean "no filter".
// Filters are pure inputs to Apply; they are never persisted.
type Filter struct {
	Query  string // case-insensitive substring, matched against name OR parties
	Status Status // exact match when non-empty
	Risk   Risk   // exact match when non-empty
}

// IsZero reports whether no predicate is active.
func (f Filter) IsZero() bool {
	return f.Query == "" && f.Status == "" && f.Risk == ""
}

// Matches reports whether a single contract satisfies every active predicate.
// The search term uses OR semantics across name and parties; status and risk
// are ANDed with the search and with each other.
func (f Filter) Matches(c Contract) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Parties), q) {
			return false
		}
	}
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.Risk != "" && c.Risk != f.Risk {
		return false
	}
	return true
}

// Apply filters the collection, preserving the original relative order.
// The input slice is never mutated.
func (f Filter) Apply(all []Contract) []Contract {
	if f.IsZero() {
		out := make([]Contract, len(all))
		copy(out, all)
		return out
	}
	out := make([]Contract, 0, len(all))
	for _, c := range all {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

// TotalPages returns ceil(count/pageSize), with a minimum of one page so
// page arithmetic never divides by zero on an empty result.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate returns the 1-based page slice [(page-1)*pageSize, page*pageSize).
// Pages outside the collection yield an empty slice, never a panic.
func Paginate(filtered []Contract, page, pageSize int) []Contract {
	if page < 1 || pageSize <= 0 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}
