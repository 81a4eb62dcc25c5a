package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/peek/internal/domain"
	m "github.com/mouse-blink/peek/internal/model"
)

// scene describes a demo view tree loaded from a YAML file, so the
// inspector can be tried against arbitrary shapes without recompiling.
type scene struct {
	Title string      `yaml:"title"`
	Nodes []sceneNode `yaml:"nodes"`
}

// sceneNode is one node of the scene. The YAML line it was declared on
// becomes the property location, so the panel's provenance labels point
// back into the scene file.
type sceneNode struct {
	Name     string
	Values   []any
	Hidden   bool
	Children []sceneNode

	line int
}

// UnmarshalYAML decodes the node and records its source line.
func (n *sceneNode) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Name     string      `yaml:"name"`
		Values   []any       `yaml:"values"`
		Hidden   bool        `yaml:"hidden"`
		Children []sceneNode `yaml:"children"`
	}

	if err := value.Decode(&raw); err != nil {
		return err
	}

	n.Name = raw.Name
	n.Values = raw.Values
	n.Hidden = raw.Hidden
	n.Children = raw.Children
	n.line = value.Line

	return nil
}

// loadScene reads and parses a scene file.
func loadScene(path string) (*scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var s scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene file: %w", err)
	}

	return &s, nil
}

// build turns the scene into an inspectable tree and returns the root
// together with every inspected node.
func (s *scene) build(path string) (*domain.Node, []*domain.Node) {
	file := filepath.Base(path)

	name := s.Title
	if name == "" {
		name = file
	}

	root := domain.NewNode(name)

	var inspected []*domain.Node
	for i := range s.Nodes {
		child := buildSceneNode(&s.Nodes[i], file, &inspected)
		root.Add(child)
	}

	return root, inspected
}

func buildSceneNode(sn *sceneNode, file string, inspected *[]*domain.Node) *domain.Node {
	node := domain.NewNode(sn.Name)

	if len(sn.Values) > 0 {
		location := m.NewPropertyLocation(sn.Name, file, sn.line)
		domain.InspectAt(node, location, sn.Values...)
		*inspected = append(*inspected, node)
	}

	if sn.Hidden {
		domain.HideFromInspection(node)
	}

	for i := range sn.Children {
		node.Add(buildSceneNode(&sn.Children[i], file, inspected))
	}

	return node
}
