package domain

// HighlightBehavior controls how the highlight broadcaster reacts to the
// inspector panel being presented or dismissed. It never affects the
// aggregation core.
type HighlightBehavior string

const (
	// HighlightManual leaves every flag exactly as the user toggled it.
	HighlightManual HighlightBehavior = "manual"
	// HighlightAutomatic shows highlights while the panel is presented
	// and hides them when it is dismissed.
	HighlightAutomatic HighlightBehavior = "automatic"
	// HighlightHideOnDismiss only clears highlights when the panel is
	// dismissed, never raises them.
	HighlightHideOnDismiss HighlightBehavior = "hideOnDismiss"
)

// ParseHighlightBehavior maps a persisted string onto a behavior,
// defaulting to manual for anything unrecognized.
func ParseHighlightBehavior(value string) HighlightBehavior {
	switch HighlightBehavior(value) {
	case HighlightAutomatic:
		return HighlightAutomatic
	case HighlightHideOnDismiss:
		return HighlightHideOnDismiss
	case HighlightManual:
		return HighlightManual
	}

	return HighlightManual
}

// Next cycles to the following behavior, for the shell's toggle key.
func (b HighlightBehavior) Next() HighlightBehavior {
	switch b {
	case HighlightManual:
		return HighlightAutomatic
	case HighlightAutomatic:
		return HighlightHideOnDismiss
	case HighlightHideOnDismiss:
		return HighlightManual
	}

	return HighlightManual
}

// SettingsStore persists the user's highlight behavior across sessions.
// Implementations live at the boundary; the core only reads through this
// port.
type SettingsStore interface {
	HighlightBehavior() HighlightBehavior
	SetHighlightBehavior(behavior HighlightBehavior) error
}
