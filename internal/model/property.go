package model

// PropertyID uniquely identifies one inspected value slot at one call
// site. Equality is by offset, creation timestamp and owning location,
// never by value content: the same call site re-evaluates many times with
// changing values, yet each slot must be recognized as the same identity
// for caching and highlight linking.
type PropertyID struct {
	Offset    int
	CreatedAt int64 // UnixNano captured when the slot was first created
	Location  PropertyLocation
}

// HighlightFlag is a mutable boolean cell shared by every Property that
// one emitter produced for one call site. Toggling it through any sibling
// toggles all of them. Writes are plain assignment; all mutation is
// confined to the owning update context.
type HighlightFlag struct {
	on bool
}

// NewHighlightFlag returns a fresh, unset flag.
func NewHighlightFlag() *HighlightFlag {
	return &HighlightFlag{}
}

// Get reports whether the flag is set.
func (f *HighlightFlag) Get() bool {
	return f.on
}

// Set assigns the flag. Last write wins.
func (f *HighlightFlag) Set(on bool) {
	f.on = on
}

// Property is the core inspection record: one inspected value, where it
// came from, and the highlight cell it shares with its call-site siblings.
// Identity is the ID alone; the value refreshes on every evaluation pass
// and the highlight state is deliberately excluded from identity.
type Property struct {
	ID        PropertyID
	Value     PropertyValue
	Location  PropertyLocation
	highlight *HighlightFlag
}

// NewProperty builds a Property bound to the given shared highlight cell.
// A nil flag is replaced with a private one so the accessors stay safe.
func NewProperty(id PropertyID, value PropertyValue, flag *HighlightFlag) *Property {
	if flag == nil {
		flag = NewHighlightFlag()
	}

	return &Property{
		ID:        id,
		Value:     value,
		Location:  id.Location,
		highlight: flag,
	}
}

// Highlighted reports the shared highlight state.
func (p *Property) Highlighted() bool {
	return p.highlight.Get()
}

// SetHighlighted assigns the shared highlight state, affecting every
// sibling Property bound to the same cell.
func (p *Property) SetHighlighted(on bool) {
	p.highlight.Set(on)
}

// Flag exposes the shared highlight cell so presentational observers can
// watch it directly.
func (p *Property) Flag() *HighlightFlag {
	return p.highlight
}

// Compare imposes the canonical ordering: location (file, then line), then
// slot offset. It keeps the rendered list visually stable across passes.
func (p *Property) Compare(other *Property) int {
	if c := p.Location.Compare(other.Location); c != 0 {
		return c
	}

	switch {
	case p.ID.Offset < other.ID.Offset:
		return -1
	case p.ID.Offset > other.ID.Offset:
		return 1
	}

	return 0
}

// PropertySet is a set of properties keyed by PropertyID, giving the
// deduplication the aggregate relies on as the tree re-renders.
type PropertySet map[PropertyID]*Property

// NewPropertySet builds a set from the given properties.
func NewPropertySet(properties ...*Property) PropertySet {
	set := make(PropertySet, len(properties))
	for _, p := range properties {
		set.Add(p)
	}

	return set
}

// Add inserts a property, superseding any previous entry with the same
// identity. Last write wins on collision.
func (s PropertySet) Add(p *Property) {
	if p == nil {
		return
	}

	s[p.ID] = p
}

// Union returns a new set containing every property of both operands.
// Entries of other supersede same-identity entries of s.
func (s PropertySet) Union(other PropertySet) PropertySet {
	merged := make(PropertySet, len(s)+len(other))
	for id, p := range s {
		merged[id] = p
	}

	for id, p := range other {
		merged[id] = p
	}

	return merged
}

// Values returns the set's properties in unspecified order.
func (s PropertySet) Values() []*Property {
	values := make([]*Property, 0, len(s))
	for _, p := range s {
		values = append(values, p)
	}

	return values
}
