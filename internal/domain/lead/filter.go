package lead

import "strings"

// FilterOptions are the compound predicates of the leads list view.
// Empty fields match everything on their dimension.
type FilterOptions struct {
	SearchTerm string
	Status     string
	Source     string
}

// Filter applies the options to a slice of leads. Pure: the input is
// never mutated and output order follows input order. The search term
// matches case-insensitively against name OR phone OR city; status and
// source are exact matches ANDed with the search predicate.
func Filter(leads []Lead, opts FilterOptions) []Lead {
	term := strings.ToLower(strings.TrimSpace(opts.SearchTerm))

	out := make([]Lead, 0, len(leads))
	for _, l := range leads {
		if term != "" && !matchesTerm(l, term) {
			continue
		}
		if opts.Status != "" && string(l.LeadStatus) != opts.Status {
			continue
		}
		if opts.Source != "" && string(l.LeadSource) != opts.Source {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matchesTerm(l Lead, term string) bool {
	return strings.Contains(strings.ToLower(l.CustomerName), term) ||
		strings.Contains(strings.ToLower(l.Phone), term) ||
		strings.Contains(strings.ToLower(l.City), term)
}
