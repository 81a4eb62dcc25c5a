// Package adapter provides boundary implementations of the domain ports.
package adapter

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/mouse-blink/peek/internal/domain"
)

// HighlightBehaviorKey is the fixed config key the highlight behavior
// preference persists under.
const HighlightBehaviorKey = "inspector.highlight_behavior"

// ViperSettings persists user preferences through a viper instance backed
// by the config file. It implements domain.SettingsStore.
type ViperSettings struct {
	v    *viper.Viper
	path string
}

// NewViperSettings creates a settings store writing to the given config
// file path. The viper instance may be shared with the CLI config.
func NewViperSettings(v *viper.Viper, path string) *ViperSettings {
	if v == nil {
		v = viper.GetViper()
	}

	v.SetDefault(HighlightBehaviorKey, string(domain.HighlightManual))

	return &ViperSettings{v: v, path: path}
}

// HighlightBehavior reads the persisted behavior, defaulting to manual.
func (s *ViperSettings) HighlightBehavior() domain.HighlightBehavior {
	return domain.ParseHighlightBehavior(s.v.GetString(HighlightBehaviorKey))
}

// SetHighlightBehavior stores and persists the behavior. A write failure
// leaves the in-memory value updated so the running session still honors
// the choice.
func (s *ViperSettings) SetHighlightBehavior(behavior domain.HighlightBehavior) error {
	s.v.Set(HighlightBehaviorKey, string(behavior))

	if err := s.v.WriteConfigAs(s.path); err != nil {
		slog.Warn("failed to persist highlight behavior", "path", s.path, "error", err)
		return fmt.Errorf("failed to persist highlight behavior: %w", err)
	}

	slog.Debug("persisted highlight behavior", "behavior", string(behavior))

	return nil
}
