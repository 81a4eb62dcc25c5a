package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listNode struct {
	value    []string
	children []Contributor[[]string]
}

func (n listNode) Contribution() []string { return n.value }

func (n listNode) Children() []Contributor[[]string] { return n.children }

func appendCombine(left, right []string) []string {
	return append(append([]string{}, left...), right...)
}

func TestFoldVisitsChildrenBeforeParent(t *testing.T) {
	tree := listNode{
		value: []string{"root"},
		children: []Contributor[[]string]{
			listNode{value: []string{"a"}},
			listNode{value: []string{"b"}, children: []Contributor[[]string]{
				listNode{value: []string{"b1"}},
			}},
		},
	}

	got := Fold[[]string](tree, appendCombine, nil)

	require.Equal(t, []string{"a", "b1", "b", "root"}, got)
}

func TestFoldNilRootReturnsZero(t *testing.T) {
	got := Fold[[]string](nil, appendCombine, []string{"zero"})

	assert.Equal(t, []string{"zero"}, got)
}

func TestFoldLeafOnly(t *testing.T) {
	got := Fold[[]string](listNode{value: []string{"leaf"}}, appendCombine, nil)

	assert.Equal(t, []string{"leaf"}, got)
}

func TestFoldLaterSiblingCombinesAfterEarlier(t *testing.T) {
	tree := listNode{
		children: []Contributor[[]string]{
			listNode{value: []string{"first"}},
			listNode{value: []string{"second"}},
		},
	}

	// With a right-biased combine the later sibling supersedes the earlier one.
	last := func(left, right []string) []string {
		if len(right) > 0 {
			return right
		}
		return left
	}

	got := Fold[[]string](tree, last, nil)

	assert.Equal(t, []string{"second"}, got)
}
