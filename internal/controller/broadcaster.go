package controller

import (
	"math/rand"
	"time"

	"github.com/mouse-blink/peek/internal/domain"
	m "github.com/mouse-blink/peek/internal/model"
)

// Pulse timing bounds. Each activation picks its own interval so
// simultaneous highlights do not blink in lockstep.
const (
	minPulse = 250 * time.Millisecond
	maxPulse = 750 * time.Millisecond
)

// Broadcaster is the visual side of a highlight flag: it decorates the
// originating node's rendered content while the flag is set. It only ever
// reads the flag for drawing; the sole write it performs is the
// hide-on-dismiss clear the user opted into.
type Broadcaster struct {
	flag     *m.HighlightFlag
	behavior func() domain.HighlightBehavior
	rng      *rand.Rand
	bright   bool
}

// NewBroadcaster creates a broadcaster for one call-site flag. behavior
// is read per decision so preference changes apply immediately; nil means
// manual.
func NewBroadcaster(flag *m.HighlightFlag, behavior func() domain.HighlightBehavior) *Broadcaster {
	if behavior == nil {
		behavior = func() domain.HighlightBehavior { return domain.HighlightManual }
	}

	return &Broadcaster{
		flag:     flag,
		behavior: behavior,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		bright:   true,
	}
}

// Active reports whether the decoration should currently be drawn, given
// whether the inspector panel is presented. Automatic behavior shows the
// decoration only while the panel is up; the other behaviors draw
// whenever the flag is set.
func (b *Broadcaster) Active(panelPresented bool) bool {
	if b.flag == nil || !b.flag.Get() {
		return false
	}

	if b.behavior() == domain.HighlightAutomatic {
		return panelPresented
	}

	return true
}

// PanelDismissed applies the panel-dismissal reaction: hide-on-dismiss
// clears the flag, everything else leaves it alone.
func (b *Broadcaster) PanelDismissed() {
	if b.flag == nil {
		return
	}

	if b.behavior() == domain.HighlightHideOnDismiss {
		b.flag.Set(false)
	}
}

// Pulse advances the blink phase and returns the randomized delay until
// the next pulse, bounded to keep the effect organic but calm.
func (b *Broadcaster) Pulse() time.Duration {
	b.bright = !b.bright

	return minPulse + time.Duration(b.rng.Int63n(int64(maxPulse-minPulse)))
}

// Decorate wraps content in the highlight border when active, or in plain
// padding otherwise, so the layout does not jump as highlights toggle.
func (b *Broadcaster) Decorate(content string, panelPresented bool) string {
	if !b.Active(panelPresented) {
		return plainNodeStyle.Render(content)
	}

	if b.bright {
		return pulseBrightStyle.Render(content)
	}

	return pulseDimStyle.Render(content)
}
