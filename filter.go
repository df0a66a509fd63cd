package main

// Filter interface to include a text fragment based on filters
type Filter interface {
	Include(fragment string) bool
}

// applyFilters returns fragments accepted by every filter, in their original order
func applyFilters(fragments []string, filters []Filter) []string {
	if len(filters) == 0 {
		return fragments
	}
	var kept []string
	for _, fragment := range fragments {
		included := true
		for _, filter := range filters {
			if !filter.Include(fragment) {
				included = false
				break
			}
		}
		if included {
			kept = append(kept, fragment)
		}
	}
	return kept
}
