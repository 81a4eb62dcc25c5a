package domain

import (
	"strings"

	"golang.org/x/text/cases"

	m "github.com/mouse-blink/peek/internal/model"
)

// minQueryLength is the threshold below which a search query is a no-op.
// A single character matches nearly everything and would only thrash the
// list on the first keystroke of every word.
const minQueryLength = 2

var queryFolder = cases.Fold()

// normalizeQuery trims and case-folds a query. An empty result means the
// query should not filter at all.
func normalizeQuery(query string) string {
	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) < minQueryLength {
		return ""
	}

	return queryFolder.String(trimmed)
}

// matchesQuery reports whether a property matches an already normalized,
// non-empty query: case-folded containment in the value text, the
// declared type name, or the location label. Any one match includes the
// property.
func matchesQuery(p *m.Property, folded string) bool {
	if strings.Contains(queryFolder.String(p.Value.Text), folded) {
		return true
	}

	if strings.Contains(queryFolder.String(p.Value.Type.Name()), folded) {
		return true
	}

	return strings.Contains(queryFolder.String(p.Location.String()), folded)
}

// searchSet filters a property set by a normalized query. An empty query
// returns the set unchanged.
func searchSet(set m.PropertySet, folded string) m.PropertySet {
	if folded == "" {
		return set
	}

	matched := m.NewPropertySet()
	for _, p := range set {
		if matchesQuery(p, folded) {
			matched.Add(p)
		}
	}

	return matched
}
