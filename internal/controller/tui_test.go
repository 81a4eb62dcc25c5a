package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/peek/internal/domain"
	m "github.com/mouse-blink/peek/internal/model"
)

func sampleController() *domain.Controller {
	root := domain.NewNode("root").Add(
		domain.InspectAt(domain.NewNode("a"), m.NewPropertyLocation("renderA", "sample.go", 10), 42),
		domain.InspectAt(domain.NewNode("b"), m.NewPropertyLocation("renderB", "sample.go", 20), "hi"),
	)

	ctrl := domain.NewController(domain.WithDebounceWindow(0))
	ctrl.SetContribution(root.Evaluate())

	return ctrl
}

func samplePanelModel() panelModel {
	return newPanelModel(NewPanel(sampleController(), nil))
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, pm panelModel, msg tea.Msg) panelModel {
	t.Helper()

	updated, _ := pm.Update(msg)

	next, ok := updated.(panelModel)
	require.True(t, ok)

	return next
}

func TestPanelViewRendersSnapshot(t *testing.T) {
	view := samplePanelModel().View()

	assert.Contains(t, view, "42")
	assert.Contains(t, view, "hi")
	assert.Contains(t, view, "sample.go:10")
	assert.Contains(t, view, "2 of 2 properties")
	assert.Contains(t, view, "filters:")
}

func TestPanelViewEmptyState(t *testing.T) {
	ctrl := domain.NewController(domain.WithDebounceWindow(0))
	pm := newPanelModel(NewPanel(ctrl, nil))

	assert.Contains(t, pm.View(), "no properties")
}

func TestCursorNavigationClampsAtEdges(t *testing.T) {
	pm := samplePanelModel()
	require.Equal(t, 0, pm.cursor)

	pm = update(t, pm, keyRune('k'))
	assert.Equal(t, 0, pm.cursor)

	pm = update(t, pm, keyRune('j'))
	assert.Equal(t, 1, pm.cursor)

	pm = update(t, pm, keyRune('j'))
	assert.Equal(t, 1, pm.cursor)
}

func TestToggleKeyHighlightsSelectedRow(t *testing.T) {
	pm := samplePanelModel()

	pm = update(t, pm, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, pm.selected())
	assert.True(t, pm.selected().Highlighted())
	assert.Contains(t, pm.View(), "★")

	pm = update(t, pm, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, pm.selected().Highlighted())
}

func TestFilterKeyTogglesSelectedType(t *testing.T) {
	pm := samplePanelModel()

	require.Equal(t, m.PropertyType("int"), pm.selected().Value.Type)

	pm = update(t, pm, keyRune('f'))
	pm = update(t, pm, snapshotMsg{snapshot: pm.panel.ctrl.Snapshot()})

	require.Len(t, pm.snapshot.Properties, 1)
	assert.Equal(t, "hi", pm.snapshot.Properties[0].Value.Text)
}

func TestSearchFocusForwardsQueryAndBlurs(t *testing.T) {
	pm := samplePanelModel()

	pm = update(t, pm, keyRune('/'))
	require.True(t, pm.input.Focused())

	pm = update(t, pm, keyRune('h'))
	pm = update(t, pm, keyRune('i'))
	assert.Equal(t, "hi", pm.panel.ctrl.Query())

	pm = update(t, pm, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, pm.input.Focused())
}

func TestQuitKeyWhileSearching(t *testing.T) {
	pm := samplePanelModel()

	pm = update(t, pm, keyRune('/'))
	_, cmd := pm.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestSnapshotShrinkClampsCursor(t *testing.T) {
	pm := samplePanelModel()
	pm = update(t, pm, keyRune('j'))
	require.Equal(t, 1, pm.cursor)

	pm.panel.ctrl.ToggleFilter("string")
	pm = update(t, pm, snapshotMsg{snapshot: pm.panel.ctrl.Snapshot()})

	assert.Equal(t, 0, pm.cursor)
}

func TestPushDropsOldestWhenFull(t *testing.T) {
	panel := NewPanel(sampleController(), nil)

	for total := 1; total <= 10; total++ {
		panel.Push(domain.Snapshot{Total: total})
	}

	require.Len(t, panel.updates, 8)
	assert.Equal(t, 3, (<-panel.updates).Total)
}

func TestNewShellPicksPanelOnTTY(t *testing.T) {
	ctrl := sampleController()

	assert.IsType(t, &Panel{}, NewShell(nil, true, ctrl, nil))
	assert.IsType(t, &SimpleShell{}, NewShell(nil, false, ctrl, nil))
}
