// Package domain implements the property aggregation pipeline: per-node
// emitters, the tree-wide upward merge, and the reactive inspection
// controller that turns the merged snapshot into the list the shell shows.
package domain

import (
	m "github.com/mouse-blink/peek/internal/model"
)

// Aggregate is the tree-wide property collection keyed by declared type.
type Aggregate map[m.PropertyType]m.PropertySet

// Union merges another aggregate into a new one. Sets of the same type
// accumulate, never overwrite; within a set, identity collisions resolve
// last write wins (they cannot occur under correct per-node scoping).
func (a Aggregate) Union(other Aggregate) Aggregate {
	if len(a) == 0 && len(other) == 0 {
		return nil
	}

	merged := make(Aggregate, len(a)+len(other))
	for t, set := range a {
		merged[t] = set.Union(nil)
	}

	for t, set := range other {
		if existing, ok := merged[t]; ok {
			merged[t] = existing.Union(set)
			continue
		}

		merged[t] = set.Union(nil)
	}

	return merged
}

// Len counts every property in the aggregate.
func (a Aggregate) Len() int {
	total := 0
	for _, set := range a {
		total += len(set)
	}

	return total
}

// Contribution is the partial value one tree node hands to the upward
// fold: its property sets plus any renderer registries it installed.
type Contribution struct {
	Properties Aggregate
	Icons      m.ViewBuilderRegistry
	Labels     m.ViewBuilderRegistry
	Details    m.ViewBuilderRegistry
}

// MergeContributions is the reduce operation of the upward fold. Property
// sets union per type; registries merge with the right-hand (newer, closer
// to the root) operand winning overlaps.
func MergeContributions(left, right Contribution) Contribution {
	return Contribution{
		Properties: left.Properties.Union(right.Properties),
		Icons:      left.Icons.Merge(right.Icons),
		Labels:     left.Labels.Merge(right.Labels),
		Details:    left.Details.Merge(right.Details),
	}
}
