package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProperty(offset, line int, value any, flag *HighlightFlag) *Property {
	loc := NewPropertyLocation("render", "view.go", line)
	id := PropertyID{Offset: offset, CreatedAt: 1, Location: loc}

	return NewProperty(id, NewPropertyValue(value), flag)
}

func TestHighlightSharedAcrossSiblings(t *testing.T) {
	flag := NewHighlightFlag()
	first := testProperty(0, 10, "a", flag)
	second := testProperty(1, 10, "b", flag)

	require.False(t, first.Highlighted())
	require.False(t, second.Highlighted())

	first.SetHighlighted(true)

	assert.True(t, second.Highlighted())
	assert.Same(t, first.Flag(), second.Flag())

	second.SetHighlighted(false)

	assert.False(t, first.Highlighted())
}

func TestNewPropertyWithNilFlagStaysUsable(t *testing.T) {
	p := testProperty(0, 1, "x", nil)

	require.NotNil(t, p.Flag())
	assert.False(t, p.Highlighted())

	p.SetHighlighted(true)

	assert.True(t, p.Highlighted())
}

func TestPropertyCompareByLocationThenOffset(t *testing.T) {
	early := testProperty(0, 5, "a", nil)
	late := testProperty(0, 20, "b", nil)
	sibling := testProperty(1, 5, "c", nil)

	assert.Negative(t, early.Compare(late))
	assert.Positive(t, late.Compare(early))
	assert.Negative(t, early.Compare(sibling))
	assert.Equal(t, 0, early.Compare(early))
}

func TestPropertySetDeduplicatesByIdentity(t *testing.T) {
	stale := testProperty(0, 10, "old", nil)
	fresh := testProperty(0, 10, "new", nil)

	set := NewPropertySet(stale)
	set.Add(fresh)

	require.Len(t, set, 1)
	assert.Equal(t, "new", set[fresh.ID].Value.Text)
}

func TestPropertySetUnionOtherSupersedes(t *testing.T) {
	shared := testProperty(0, 10, "left", nil)
	winner := testProperty(0, 10, "right", nil)
	only := testProperty(1, 11, "solo", nil)

	merged := NewPropertySet(shared).Union(NewPropertySet(winner, only))

	require.Len(t, merged, 2)
	assert.Equal(t, "right", merged[shared.ID].Value.Text)
	assert.Len(t, merged.Values(), 2)
}

func TestPropertySetAddIgnoresNil(t *testing.T) {
	set := NewPropertySet()
	set.Add(nil)

	assert.Empty(t, set)
}
