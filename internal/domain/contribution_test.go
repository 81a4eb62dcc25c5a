package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/peek/internal/model"
)

func propertyAt(file string, line, offset int, value any) *m.Property {
	loc := m.NewPropertyLocation("render", file, line)
	id := m.PropertyID{Offset: offset, CreatedAt: 1, Location: loc}

	return m.NewProperty(id, m.NewPropertyValue(value), nil)
}

func TestAggregateUnionAccumulatesPerType(t *testing.T) {
	left := Aggregate{"int": m.NewPropertySet(propertyAt("a.go", 1, 0, 1))}
	right := Aggregate{
		"int":    m.NewPropertySet(propertyAt("b.go", 2, 0, 2)),
		"string": m.NewPropertySet(propertyAt("b.go", 3, 0, "s")),
	}

	merged := left.Union(right)

	require.Len(t, merged, 2)
	assert.Len(t, merged["int"], 2)
	assert.Len(t, merged["string"], 1)
	assert.Equal(t, 3, merged.Len())

	// The operands stay untouched.
	assert.Len(t, left["int"], 1)
}

func TestAggregateUnionEmptyOperandsYieldNil(t *testing.T) {
	assert.Nil(t, Aggregate{}.Union(nil))
}

func TestMergeContributionsRightRegistryWins(t *testing.T) {
	deep := Contribution{Icons: m.NewViewBuilderRegistry()}
	deep.Icons.Register("int", func(*m.Property) string { return "deep" })

	shallow := Contribution{Icons: m.NewViewBuilderRegistry()}
	shallow.Icons.Register("int", func(*m.Property) string { return "shallow" })

	merged := MergeContributions(deep, shallow)

	builder, ok := merged.Icons.Lookup("int")
	require.True(t, ok)
	assert.Equal(t, "shallow", builder(nil))
}
