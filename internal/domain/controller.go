package domain

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/peek/internal/model"
)

// DefaultDebounceWindow is the trailing quiescence window applied to
// search query edits before a recompute fires.
const DefaultDebounceWindow = 200 * time.Millisecond

// Snapshot is the controller's published output: the final ordered,
// filtered property list plus everything the shell needs around it.
type Snapshot struct {
	Properties []*m.Property
	Total      int // every live property, independent of search and filters
	Filters    []m.Filter
	Query      string
	Icons      m.ViewBuilderRegistry
	Labels     m.ViewBuilderRegistry
	Details    m.ViewBuilderRegistry
}

// Empty reports whether the published list has no rows.
func (s Snapshot) Empty() bool {
	return len(s.Properties) == 0
}

// EmptyMessage renders the empty-state line for the shell.
func (s Snapshot) EmptyMessage() string {
	if s.Query != "" {
		return fmt.Sprintf("no results for %q", s.Query)
	}

	return "no properties"
}

// Controller is the subtree-scoped reactive store. It combines the raw
// aggregated contribution with the live search query and the per-type
// filter toggles, and republishes the result whenever any input changes.
// Aggregate changes recompute immediately; query edits are debounced.
type Controller struct {
	mu sync.Mutex

	contribution Contribution
	query        string // applied query; requested may still be debouncing
	requested    string
	filters      map[m.PropertyType]*m.Filter
	active       map[m.PropertyType]bool // O(1) mirror of filter toggle state
	snapshot     Snapshot

	debounceWindow time.Duration
	pending        *time.Timer
	onChange       func(Snapshot)
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithDebounceWindow overrides the search debounce window. A zero or
// negative window applies query edits immediately.
func WithDebounceWindow(window time.Duration) ControllerOption {
	return func(c *Controller) {
		c.debounceWindow = window
	}
}

// WithOnChange registers a callback invoked with every published
// snapshot. The shell uses it to funnel updates back into its own update
// loop; it is called outside the controller's lock.
func WithOnChange(fn func(Snapshot)) ControllerOption {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// NewController creates a controller with no contribution yet.
func NewController(options ...ControllerOption) *Controller {
	c := &Controller{
		filters:        make(map[m.PropertyType]*m.Filter),
		active:         make(map[m.PropertyType]bool),
		debounceWindow: DefaultDebounceWindow,
	}

	for _, option := range options {
		option(c)
	}

	c.snapshot = Snapshot{}

	return c
}

// SetContribution replaces the raw aggregate. Tree mutations are rare
// compared to keystrokes, so this recomputes immediately.
func (c *Controller) SetContribution(contribution Contribution) {
	c.mu.Lock()
	c.contribution = contribution
	snapshot := c.recomputeLocked()
	c.mu.Unlock()

	c.publish(snapshot)
}

// SetQuery records a query edit. The recompute fires only after the
// debounce window of quiescence; an edit arriving before the previous one
// fired supersedes it, so at most one recompute is pending per burst.
func (c *Controller) SetQuery(query string) {
	c.mu.Lock()

	c.requested = query

	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}

	if c.debounceWindow <= 0 {
		c.query = query
		snapshot := c.recomputeLocked()
		c.mu.Unlock()

		c.publish(snapshot)

		return
	}

	c.pending = time.AfterFunc(c.debounceWindow, func() {
		c.applyQuery(query)
	})

	c.mu.Unlock()
}

// applyQuery commits a debounced query once its window elapsed.
func (c *Controller) applyQuery(query string) {
	c.mu.Lock()
	c.pending = nil
	c.query = query
	snapshot := c.recomputeLocked()
	c.mu.Unlock()

	c.publish(snapshot)
}

// Query returns the last query handed to SetQuery, including one still
// waiting out its debounce window.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.requested
}

// ToggleFilter flips the visibility toggle for one type. Turning a filter
// off also clears the highlight of every property of that type: invisible
// rows must not keep decorating the screen.
func (c *Controller) ToggleFilter(t m.PropertyType) {
	c.mu.Lock()

	filter, ok := c.filters[t]
	if !ok {
		c.mu.Unlock()
		return
	}

	filter.On = !filter.On
	c.active[t] = filter.On

	if !filter.On {
		c.clearHighlightsLocked(func(p *m.Property) bool {
			return p.Value.Type == t
		})
	}

	snapshot := c.recomputeLocked()
	c.mu.Unlock()

	c.publish(snapshot)
}

// ToggleAll turns every filter on when at least one is off, and every
// filter off otherwise. Turning all off clears every current highlight in
// one pass.
func (c *Controller) ToggleAll() {
	c.mu.Lock()

	allOn := true
	for _, filter := range c.filters {
		if !filter.On {
			allOn = false
			break
		}
	}

	target := !allOn
	for t, filter := range c.filters {
		filter.On = target
		c.active[t] = target
	}

	if !target {
		c.clearHighlightsLocked(func(*m.Property) bool { return true })
	}

	snapshot := c.recomputeLocked()
	c.mu.Unlock()

	c.publish(snapshot)
}

// Snapshot returns the last published snapshot.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshot
}

// clearHighlightsLocked resets the highlight flag of every live property
// matching the predicate.
func (c *Controller) clearHighlightsLocked(match func(*m.Property) bool) {
	for _, set := range c.contribution.Properties {
		for _, p := range set {
			if p.Highlighted() && match(p) {
				p.SetHighlighted(false)
			}
		}
	}
}

// recomputeLocked rebuilds the snapshot from {aggregate, query, filters}.
// The per-type search runs concurrently, but results only become visible
// here, under the lock, once every worker finished: the published
// snapshot never exposes a partial merge.
func (c *Controller) recomputeLocked() Snapshot {
	aggregate := c.contribution.Properties
	folded := normalizeQuery(c.query)

	matched := c.searchAggregate(aggregate, folded)

	c.reconcileFiltersLocked(aggregate, matched)

	candidates := c.visibleCandidatesLocked(matched)

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Compare(candidates[j]) < 0
	})

	filters := make([]m.Filter, 0, len(c.filters))
	for _, filter := range c.filters {
		filters = append(filters, *filter)
	}

	m.SortFilters(filters)

	appliedQuery := ""
	if folded != "" {
		appliedQuery = c.query
	}

	c.snapshot = Snapshot{
		Properties: candidates,
		Total:      aggregate.Len(),
		Filters:    filters,
		Query:      appliedQuery,
		Icons:      c.contribution.Icons,
		Labels:     c.contribution.Labels,
		Details:    c.contribution.Details,
	}

	slog.Debug("recomputed snapshot",
		"total", c.snapshot.Total,
		"visible", len(c.snapshot.Properties),
		"filters", len(c.snapshot.Filters),
		"query", appliedQuery,
	)

	return c.snapshot
}

// searchAggregate computes the matched set per type, one worker per type.
// Each worker writes only its own slot, so the only synchronization point
// is the group wait.
func (c *Controller) searchAggregate(aggregate Aggregate, folded string) map[m.PropertyType]m.PropertySet {
	matched := make(map[m.PropertyType]m.PropertySet, len(aggregate))
	if len(aggregate) == 0 {
		return matched
	}

	type slot struct {
		t   m.PropertyType
		set m.PropertySet
	}

	slots := make([]slot, 0, len(aggregate))
	for t, set := range aggregate {
		slots = append(slots, slot{t: t, set: set})
	}

	var group errgroup.Group

	for i := range slots {
		group.Go(func() error {
			slots[i].set = searchSet(slots[i].set, folded)
			return nil
		})
	}

	// Workers never fail; the wait is the publication barrier.
	_ = group.Wait()

	for _, s := range slots {
		matched[s.t] = s.set
	}

	return matched
}

// reconcileFiltersLocked carries filter toggles across changes to the
// type universe: filters for vanished types are dropped, types with a
// non-empty match get a filter defaulting to visible, and surviving
// filters keep their state.
func (c *Controller) reconcileFiltersLocked(aggregate Aggregate, matched map[m.PropertyType]m.PropertySet) {
	for t := range c.filters {
		if _, ok := aggregate[t]; !ok {
			delete(c.filters, t)
			delete(c.active, t)
		}
	}

	for t, set := range matched {
		if len(set) == 0 {
			continue
		}

		if _, ok := c.filters[t]; !ok {
			c.filters[t] = &m.Filter{Type: t, On: true}
			c.active[t] = true
		}
	}
}

// visibleCandidatesLocked unions the matched sets and applies type-level
// visibility. When nothing is excluded the candidates pass through
// without a redundant filter pass.
func (c *Controller) visibleCandidatesLocked(matched map[m.PropertyType]m.PropertySet) []*m.Property {
	activeCount := 0
	for _, on := range c.active {
		if on {
			activeCount++
		}
	}

	passThrough := activeCount == len(c.filters)

	candidates := make([]*m.Property, 0)

	for t, set := range matched {
		if !passThrough && !c.active[t] {
			continue
		}

		candidates = append(candidates, set.Values()...)
	}

	return candidates
}

// publish hands a snapshot to the registered observer outside the lock.
func (c *Controller) publish(snapshot Snapshot) {
	if c.onChange != nil {
		c.onChange(snapshot)
	}
}
