package model

// ViewBuilder renders a custom fragment (icon, label or detail text) for a
// property of a registered type.
type ViewBuilder func(p *Property) string

// ViewBuilderRegistry maps declared types to renderer closures. Registries
// contributed by different tree nodes are merged upward together with the
// property aggregate.
type ViewBuilderRegistry map[PropertyType]ViewBuilder

// NewViewBuilderRegistry builds an empty registry.
func NewViewBuilderRegistry() ViewBuilderRegistry {
	return make(ViewBuilderRegistry)
}

// Register installs a builder for a type, replacing any previous one.
func (r ViewBuilderRegistry) Register(t PropertyType, builder ViewBuilder) {
	if builder == nil {
		return
	}

	r[t] = builder
}

// Lookup returns the builder registered for a type.
func (r ViewBuilderRegistry) Lookup(t PropertyType) (ViewBuilder, bool) {
	builder, ok := r[t]

	return builder, ok
}

// Merge combines two registries into a new one. On overlapping types the
// entry of other wins: merge order is contribution order, so the builder
// registered closer to the tree root supersedes deeper ones.
func (r ViewBuilderRegistry) Merge(other ViewBuilderRegistry) ViewBuilderRegistry {
	if len(r) == 0 && len(other) == 0 {
		return nil
	}

	merged := make(ViewBuilderRegistry, len(r)+len(other))
	for t, builder := range r {
		merged[t] = builder
	}

	for t, builder := range other {
		merged[t] = builder
	}

	return merged
}
