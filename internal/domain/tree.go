package domain

import (
	m "github.com/mouse-blink/peek/internal/model"
	pkg "github.com/mouse-blink/peek/pkg"
)

// Node is one element of the inspectable view tree. It stays decoupled
// from any rendering framework: the host arranges nodes however it likes
// and calls Evaluate to obtain the tree-wide merged contribution.
type Node struct {
	name     string
	children []*Node
	emitter  *Emitter
	pending  []emittedValue
	hidden   bool
	icons    m.ViewBuilderRegistry
	labels   m.ViewBuilderRegistry
	details  m.ViewBuilderRegistry
}

// NewNode creates a named, childless, uninspected node.
func NewNode(name string) *Node {
	return &Node{name: name}
}

// Name returns the node's display name.
func (n *Node) Name() string {
	return n.name
}

// Add appends children and returns the node for chaining.
func (n *Node) Add(children ...*Node) *Node {
	n.children = append(n.children, children...)

	return n
}

// Children returns the node's children in declaration order.
func (n *Node) Children() []*Node {
	return n.children
}

// Inspect annotates the node with the given values, capturing the caller
// as the property location. The first call mounts the emitter; later
// calls reuse its identities so the same positional slot is recognized
// across re-evaluations.
func Inspect(n *Node, values ...any) *Node {
	return InspectAt(n, m.CallerLocation(1), values...)
}

// InspectAt is Inspect with an explicit location, for callers that relay
// provenance from elsewhere.
func InspectAt(n *Node, location m.PropertyLocation, values ...any) *Node {
	pending := make([]emittedValue, len(values))
	for i, v := range values {
		pending[i] = emittedValue{raw: v}
	}

	return n.inspect(location, pending)
}

// InspectValues is the generically typed inspection form: every value is
// reported under the declared type T, preserving interface types that the
// dynamic form would erase.
func InspectValues[T any](n *Node, values ...T) *Node {
	declared := m.TypeFor[T]()

	pending := make([]emittedValue, len(values))
	for i, v := range values {
		pending[i] = emittedValue{raw: v, declared: declared}
	}

	return n.inspect(m.CallerLocation(1), pending)
}

// InspectSelf is shorthand for inspecting the node's own name.
func InspectSelf(n *Node) *Node {
	return n.inspect(m.CallerLocation(1), []emittedValue{{raw: n.name}})
}

func (n *Node) inspect(location m.PropertyLocation, pending []emittedValue) *Node {
	if n.emitter == nil {
		n.emitter = NewEmitter(location)
	}

	n.pending = pending

	return n
}

// HideFromInspection marks the subtree rooted at n as non-inspectable.
// Every descendant emitter contributes the empty mapping until the node
// is shown again.
func HideFromInspection(n *Node) *Node {
	n.hidden = true

	return n
}

// ShowInInspection clears the disablement signal set by HideFromInspection.
func ShowInInspection(n *Node) *Node {
	n.hidden = false

	return n
}

// Flag exposes the node's shared highlight cell, or nil if the node was
// never inspected. The originating view uses it for its local toggle UI.
func (n *Node) Flag() *m.HighlightFlag {
	if n.emitter == nil {
		return nil
	}

	return n.emitter.Flag()
}

// RegisterIcon installs a custom icon renderer for a declared type,
// contributed upward with the node's properties.
func (n *Node) RegisterIcon(t m.PropertyType, builder m.ViewBuilder) *Node {
	if n.icons == nil {
		n.icons = m.NewViewBuilderRegistry()
	}

	n.icons.Register(t, builder)

	return n
}

// RegisterLabel installs a custom label renderer for a declared type.
func (n *Node) RegisterLabel(t m.PropertyType, builder m.ViewBuilder) *Node {
	if n.labels == nil {
		n.labels = m.NewViewBuilderRegistry()
	}

	n.labels.Register(t, builder)

	return n
}

// RegisterDetail installs a custom detail renderer for a declared type.
func (n *Node) RegisterDetail(t m.PropertyType, builder m.ViewBuilder) *Node {
	if n.details == nil {
		n.details = m.NewViewBuilderRegistry()
	}

	n.details.Register(t, builder)

	return n
}

// Evaluate runs one full evaluation pass: every node re-emits its pending
// values, disablement propagates down, and the contributions fold back up
// into one tree-wide snapshot.
func (n *Node) Evaluate() Contribution {
	return pkg.Fold(
		foldNode{node: n, hidden: n.hidden},
		MergeContributions,
		Contribution{},
	)
}

// foldNode adapts a Node to the fold, threading the inherited disablement
// signal down the tree as an explicit parameter.
type foldNode struct {
	node   *Node
	hidden bool
}

// Contribution returns the node's own partial value for this pass.
func (f foldNode) Contribution() Contribution {
	n := f.node

	contribution := Contribution{
		Icons:   n.icons,
		Labels:  n.labels,
		Details: n.details,
	}

	if n.emitter == nil {
		return contribution
	}

	if f.hidden {
		// Hidden nodes contribute nothing, and their cached entries are
		// no longer live, so they are dropped rather than left to linger.
		n.emitter.emit(nil)

		return contribution
	}

	contribution.Properties = n.emitter.emit(n.pending)

	return contribution
}

// Children wraps the node's children, inheriting disablement.
func (f foldNode) Children() []pkg.Contributor[Contribution] {
	children := make([]pkg.Contributor[Contribution], len(f.node.children))
	for i, child := range f.node.children {
		children[i] = foldNode{node: child, hidden: f.hidden || child.hidden}
	}

	return children
}
