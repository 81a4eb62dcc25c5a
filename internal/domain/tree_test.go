package domain

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/peek/internal/model"
)

func TestEvaluateCollectsEveryInspectedNode(t *testing.T) {
	root := NewNode("root").Add(
		Inspect(NewNode("header"), "title", 1),
		NewNode("body").Add(
			Inspect(NewNode("row"), 2, 3),
		),
	)

	contribution := root.Evaluate()

	assert.Equal(t, 4, contribution.Properties.Len())
	assert.Len(t, contribution.Properties["int"], 3)
	assert.Len(t, contribution.Properties["string"], 1)
}

func TestHideFromInspectionSilencesSubtree(t *testing.T) {
	leaf := Inspect(NewNode("secret"), "hunter2")
	branch := NewNode("vault").Add(leaf)
	root := NewNode("root").Add(
		Inspect(NewNode("visible"), 1),
		branch,
	)

	HideFromInspection(branch)

	contribution := root.Evaluate()

	assert.Equal(t, 1, contribution.Properties.Len())
	assert.Empty(t, contribution.Properties["string"])
	assert.Empty(t, leaf.emitter.cache)

	ShowInInspection(branch)

	contribution = root.Evaluate()

	assert.Equal(t, 2, contribution.Properties.Len())
}

func TestInspectLinksSiblingHighlights(t *testing.T) {
	node := Inspect(NewNode("stats"), 1, "two", 3.5)

	contribution := node.Evaluate()
	require.Equal(t, 3, contribution.Properties.Len())

	var first *m.Property
	for _, set := range contribution.Properties {
		for _, p := range set {
			first = p
		}
	}

	require.NotNil(t, first)
	first.SetHighlighted(true)

	for _, set := range contribution.Properties {
		for _, p := range set {
			assert.True(t, p.Highlighted())
		}
	}

	require.NotNil(t, node.Flag())
	assert.True(t, node.Flag().Get())
}

func TestInspectIdentitiesSurviveReEvaluation(t *testing.T) {
	node := Inspect(NewNode("counter"), 0)

	first := node.Evaluate().Properties["int"].Values()[0]

	Inspect(node, 1)
	second := node.Evaluate().Properties["int"].Values()[0]

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "0", first.Value.Text)
	assert.Equal(t, "1", second.Value.Text)
}

func TestInspectValuesReportsDeclaredType(t *testing.T) {
	node := InspectValues[error](NewNode("status"), os.ErrDeadlineExceeded)

	contribution := node.Evaluate()

	require.Len(t, contribution.Properties, 1)
	props := contribution.Properties["error"].Values()
	require.Len(t, props, 1)
	assert.Equal(t, os.ErrDeadlineExceeded.Error(), props[0].Value.Text)
}

func TestInspectSelfEmitsNodeName(t *testing.T) {
	node := InspectSelf(NewNode("sidebar"))

	props := node.Evaluate().Properties["string"].Values()

	require.Len(t, props, 1)
	assert.Equal(t, "sidebar", props[0].Value.Text)
}

func TestInspectCapturesCallerLocation(t *testing.T) {
	node := Inspect(NewNode("here"), 1)

	props := node.Evaluate().Properties["int"].Values()

	require.Len(t, props, 1)
	assert.Equal(t, "tree_test.go", props[0].Location.File)
	assert.Positive(t, props[0].Location.Line)
}

func TestRegisteredRenderersPropagateRootWins(t *testing.T) {
	child := Inspect(NewNode("child"), 7).
		RegisterIcon("int", func(*m.Property) string { return "child-icon" })
	root := NewNode("root").
		Add(child).
		RegisterIcon("int", func(*m.Property) string { return "#" }).
		RegisterLabel("int", func(p *m.Property) string { return "count " + p.Value.Text })

	contribution := root.Evaluate()

	icon, ok := contribution.Icons.Lookup("int")
	require.True(t, ok)
	assert.Equal(t, "#", icon(nil))

	label, ok := contribution.Labels.Lookup("int")
	require.True(t, ok)

	props := contribution.Properties["int"].Values()
	require.Len(t, props, 1)
	assert.Equal(t, "count 7", label(props[0]))
}

func TestFlagNilBeforeInspection(t *testing.T) {
	assert.Nil(t, NewNode("bare").Flag())
}
