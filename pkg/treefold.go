// Package pkg is a package that provides utilities for peek.
package pkg

import "log/slog"

// Contributor is a tree node that contributes a partial value of some
// merge-capable type T. The fold walks the tree bottom-up and combines
// every contribution into a single value, so a whole view tree can be
// reduced to one snapshot without the rendering framework in the loop.
type Contributor[T any] interface {
	// Contribution returns this node's own partial value.
	Contribution() T
	// Children returns the node's children in declaration order.
	Children() []Contributor[T]
}

// Combine merges two partial values. It must be associative for the fold
// to be well defined. The fold always passes the newer contribution as the
// right-hand operand, so a combine that lets the right side win conflicts
// gives deterministic "later sibling wins, ancestor wins over descendants"
// semantics.
type Combine[T any] func(left, right T) T

// Fold reduces the tree rooted at root to a single value. Children are
// folded before their parent, in declaration order, and the parent's own
// contribution is combined last. A nil root yields zero.
func Fold[T any](root Contributor[T], combine Combine[T], zero T) T {
	if root == nil {
		return zero
	}

	acc := zero

	children := root.Children()
	for _, child := range children {
		acc = combine(acc, Fold(child, combine, zero))
	}

	acc = combine(acc, root.Contribution())

	slog.Debug("folded subtree", "children", len(children))

	return acc
}
