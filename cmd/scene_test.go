package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScene = `title: checkout
nodes:
  - name: header
    values: [Checkout, 3]
  - name: vault
    hidden: true
    children:
      - name: token
        values: [hunter2]
  - name: footer
    children:
      - name: status
        values: [ok]
`

func writeScene(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "checkout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScene), 0o600))

	return path
}

func TestLoadSceneRecordsDeclarationLines(t *testing.T) {
	s, err := loadScene(writeScene(t))

	require.NoError(t, err)
	assert.Equal(t, "checkout", s.Title)
	require.Len(t, s.Nodes, 3)
	assert.Equal(t, "header", s.Nodes[0].Name)
	assert.Equal(t, 3, s.Nodes[0].line)
	assert.True(t, s.Nodes[1].Hidden)
	require.Len(t, s.Nodes[1].Children, 1)
}

func TestLoadSceneMissingFile(t *testing.T) {
	_, err := loadScene(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scene file")
}

func TestLoadSceneInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nodes: ["), 0o600))

	_, err := loadScene(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse scene file")
}

func TestSceneBuildHonorsHiddenSubtrees(t *testing.T) {
	path := writeScene(t)

	s, err := loadScene(path)
	require.NoError(t, err)

	root, inspected := s.build(path)

	require.Equal(t, "checkout", root.Name())
	assert.Len(t, inspected, 3)

	contribution := root.Evaluate()

	// The hidden vault subtree contributes nothing.
	assert.Equal(t, 3, contribution.Properties.Len())

	texts := make(map[string]bool)
	for _, set := range contribution.Properties {
		for _, p := range set {
			texts[p.Value.Text] = true
			assert.Equal(t, "checkout.yaml", p.Location.File)
		}
	}

	assert.True(t, texts["Checkout"])
	assert.True(t, texts["3"])
	assert.True(t, texts["ok"])
	assert.False(t, texts["hunter2"])
}
