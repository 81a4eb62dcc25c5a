package model

import "sort"

// Filter is a per-declared-type visibility toggle derived from the current
// aggregate. Identity is the wrapped type only, so a filter can be looked
// up and updated without disturbing its toggle state.
type Filter struct {
	Type PropertyType
	On   bool
}

// SortFilters orders filters by type name for stable presentation.
func SortFilters(filters []Filter) {
	sort.Slice(filters, func(i, j int) bool {
		return filters[i].Type.Name() < filters[j].Type.Name()
	})
}
