// Package controller provides the presentation shells that render the
// inspection controller's published snapshots: an interactive Bubble Tea
// panel for TTYs and a plain table dump for everything else.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mouse-blink/peek/internal/domain"
)

// Shell renders controller snapshots to the user until the context is
// cancelled or the user closes the panel.
type Shell interface {
	Run(ctx context.Context) error
}

// IsTTY reports whether the file is an interactive terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewShell picks the shell implementation for the output: the interactive
// panel on a TTY, the one-shot table dump otherwise.
func NewShell(cmd *cobra.Command, tty bool, ctrl *domain.Controller, settings domain.SettingsStore, options ...PanelOption) Shell {
	if tty {
		return NewPanel(ctrl, settings, options...)
	}

	return NewSimpleShell(cmd, ctrl)
}
