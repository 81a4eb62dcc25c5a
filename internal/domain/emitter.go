package domain

import (
	"log/slog"
	"time"

	m "github.com/mouse-blink/peek/internal/model"
)

// emittedValue pairs a raw value with an optional explicit declared type.
// A zero declared type means "derive from the runtime value".
type emittedValue struct {
	raw      any
	declared m.PropertyType
}

// cachedProperty memoizes one constructed Property keyed by its identity
// and the fingerprint of the value it was built from.
type cachedProperty struct {
	fingerprint string
	property    *m.Property
}

// Emitter owns the stable identities for the values passed at one
// inspection call site. It is created once at node-mount time and reused
// on every evaluation pass, so identities (and with them highlight linking
// and caching) survive the tree's constant re-evaluation.
type Emitter struct {
	location m.PropertyLocation
	flag     *m.HighlightFlag
	ids      []m.PropertyID
	cache    map[m.PropertyID]cachedProperty
	now      func() time.Time
}

// NewEmitter creates an emitter for one call site. All properties it ever
// produces share a single highlight cell.
func NewEmitter(location m.PropertyLocation) *Emitter {
	return &Emitter{
		location: location,
		flag:     m.NewHighlightFlag(),
		cache:    make(map[m.PropertyID]cachedProperty),
		now:      time.Now,
	}
}

// Location returns the call site this emitter belongs to.
func (e *Emitter) Location() m.PropertyLocation {
	return e.location
}

// Flag returns the shared highlight cell for this call site.
func (e *Emitter) Flag() *m.HighlightFlag {
	return e.flag
}

// Emit produces the aggregate contribution for one evaluation pass. The
// identity for each positional slot is created on first sight and reused
// afterwards; the Property object itself is rebuilt only when the value's
// fingerprint changed. Cache entries whose slot fell out of the live value
// list are pruned, bounding the cache to the live identities.
func (e *Emitter) Emit(values ...any) Aggregate {
	typed := make([]emittedValue, len(values))
	for i, v := range values {
		typed[i] = emittedValue{raw: v}
	}

	return e.emit(typed)
}

func (e *Emitter) emit(values []emittedValue) Aggregate {
	if len(values) == 0 {
		e.prune(0)
		return nil
	}

	aggregate := make(Aggregate)

	for offset, value := range values {
		id := e.identity(offset)

		pv := e.propertyValue(value)

		cached, ok := e.cache[id]
		if !ok || cached.fingerprint != pv.Text {
			cached = cachedProperty{
				fingerprint: pv.Text,
				property:    m.NewProperty(id, pv, e.flag),
			}
			e.cache[id] = cached
		}

		set, ok := aggregate[pv.Type]
		if !ok {
			set = m.NewPropertySet()
			aggregate[pv.Type] = set
		}

		set.Add(cached.property)
	}

	e.prune(len(values))

	slog.Debug("emitted properties", "location", e.location.String(), "count", len(values))

	return aggregate
}

func (e *Emitter) propertyValue(value emittedValue) m.PropertyValue {
	if value.declared != "" {
		return m.NewTypedPropertyValue(value.raw, value.declared)
	}

	return m.NewPropertyValue(value.raw)
}

// identity returns the stable PropertyID for a positional slot, creating
// it on first use. The creation timestamp is captured exactly once.
func (e *Emitter) identity(offset int) m.PropertyID {
	for len(e.ids) <= offset {
		e.ids = append(e.ids, m.PropertyID{
			Offset:    len(e.ids),
			CreatedAt: e.now().UnixNano(),
			Location:  e.location,
		})
	}

	return e.ids[offset]
}

// prune drops cached properties for slots at or beyond live, so the cache
// never outgrows the number of currently live identities.
func (e *Emitter) prune(live int) {
	for id := range e.cache {
		if id.Offset >= live {
			delete(e.cache, id)
		}
	}
}
