package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallerLocationResolvesThisFile(t *testing.T) {
	loc := CallerLocation(0)

	require.Equal(t, "location_test.go", loc.File)
	assert.Positive(t, loc.Line)
	assert.Contains(t, loc.Function, "TestCallerLocationResolvesThisFile")
}

func TestLocationString(t *testing.T) {
	loc := NewPropertyLocation("render", "view.go", 42)

	assert.Equal(t, "view.go:42", loc.String())
}

func TestLocationCompareOrdersByFileThenNumericLine(t *testing.T) {
	cases := []struct {
		name string
		a, b PropertyLocation
		want int
	}{
		{"same", NewPropertyLocation("f", "a.go", 7), NewPropertyLocation("g", "a.go", 7), 0},
		{"file wins", NewPropertyLocation("f", "a.go", 99), NewPropertyLocation("f", "b.go", 1), -1},
		{"line numeric not lexicographic", NewPropertyLocation("f", "a.go", 2), NewPropertyLocation("f", "a.go", 10), -1},
		{"line greater", NewPropertyLocation("f", "a.go", 10), NewPropertyLocation("f", "a.go", 2), 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Compare(tc.b))
		})
	}
}

func TestShortFunctionNameTrimsPackagePath(t *testing.T) {
	assert.Equal(t, "Node.Inspect", shortFunctionName("github.com/mouse-blink/peek/internal/domain.Node.Inspect"))
	assert.Equal(t, "main", shortFunctionName("main.main"))
}
