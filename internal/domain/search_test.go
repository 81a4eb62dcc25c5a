package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/peek/internal/model"
)

func TestNormalizeQueryThreshold(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  string
	}{
		{"empty", "", ""},
		{"single rune", "a", ""},
		{"whitespace only", "   ", ""},
		{"padded single rune", "  a  ", ""},
		{"two runes", "ab", "ab"},
		{"case folded", "  HeLLo ", "hello"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeQuery(tc.query))
		})
	}
}

func TestMatchesQueryAcrossFields(t *testing.T) {
	p := propertyAt("header.go", 12, 0, "Welcome Banner")

	assert.True(t, matchesQuery(p, normalizeQuery("welcome")))
	assert.True(t, matchesQuery(p, normalizeQuery("STRING")))
	assert.True(t, matchesQuery(p, normalizeQuery("header.go:12")))
	assert.False(t, matchesQuery(p, normalizeQuery("footer")))
}

func TestSearchSetEmptyQueryPassesThrough(t *testing.T) {
	set := m.NewPropertySet(propertyAt("a.go", 1, 0, "alpha"), propertyAt("a.go", 2, 0, "beta"))

	assert.Equal(t, set, searchSet(set, ""))

	matched := searchSet(set, normalizeQuery("alp"))
	require.Len(t, matched, 1)
}
